package services

import (
	"bytes"
	"fmt"
	"time"
	_ "time/tzdata"

	tele "gopkg.in/telebot.v3"

	"github.com/Goqerti/yeni/config"
	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/services/logger"
)

// OperatorNotifier Telegram tərəfə gedən log/xəbərdarlıq sink-idir.
// Göndərmələr fire-and-forget-dir: uğursuzluq sorğunu heç vaxt pozmur.
type OperatorNotifier interface {
	SendLog(message string)
	SendSimpleMessage(message string)
	FormatLog(actor models.Actor, action string) string
	SendBackup(filename string, data []byte)
}

// TelegramService telebot üzərindən OperatorNotifier-i yerinə yetirir.
// Token konfiqurasiya edilməyibsə bot nil qalır və bütün göndərmələr
// səssizcə ötürülür.
type TelegramService struct {
	bot        *tele.Bot
	logChat    tele.ChatID
	backupChat tele.ChatID
	log        logger.Logger
}

func NewTelegramService(cfg config.Config, log logger.Logger) *TelegramService {
	svc := &TelegramService{
		logChat:    tele.ChatID(cfg.TelegramLogChatID),
		backupChat: tele.ChatID(cfg.TelegramBackupChatID),
		log:        log,
	}

	if cfg.TelegramBotToken == "" {
		log.Info("TELEGRAM_BOT_TOKEN konfiqurasiya edilməyib, Telegram bildirişləri söndürülüb")
		return svc
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Error("Telegram botu yaradıla bilmədi: %v", err)
		return svc
	}

	svc.bot = bot
	log.Info("Telegram bot servisi aktivdir")
	return svc
}

// SendLog audit mesajını HTML formatında log çatına göndərir.
func (s *TelegramService) SendLog(message string) {
	if s.bot == nil || s.logChat == 0 {
		return
	}
	if _, err := s.bot.Send(s.logChat, message, tele.ModeHTML); err != nil {
		s.log.Error("Telegram log göndərmə xətası: %v", err)
	}
}

// SendSimpleMessage xəbərdarlıq mesajını Markdown formatında göndərir.
func (s *TelegramService) SendSimpleMessage(message string) {
	if s.bot == nil || s.logChat == 0 {
		return
	}
	if _, err := s.bot.Send(s.logChat, message, tele.ModeMarkdown); err != nil {
		s.log.Error("Telegram mesaj göndərmə xətası: %v", err)
	}
}

// FormatLog Bakı vaxtı + əməliyyatı edən istifadəçi ilə log başlığı qurur.
func (s *TelegramService) FormatLog(actor models.Actor, action string) string {
	loc, err := time.LoadLocation("Asia/Baku")
	if err != nil {
		loc = time.UTC
	}
	timestamp := time.Now().In(loc).Format("02.01.2006 15:04:05")
	return fmt.Sprintf("<b>🗓️ %s</b>\n👤 <b>İstifadəçi:</b> %s (<i>%s</i>)\n💬 <b>Əməliyyat:</b> %s",
		timestamp, actor.DisplayName, actor.Role, action)
}

// SendBackup sifariş bazasının dump-ını sənəd kimi backup çatına göndərir.
func (s *TelegramService) SendBackup(filename string, data []byte) {
	if s.bot == nil || s.backupChat == 0 {
		return
	}
	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: filename,
	}
	if _, err := s.bot.Send(s.backupChat, doc); err != nil {
		s.log.Error("Telegram backup göndərmə xətası: %v", err)
	}
}
