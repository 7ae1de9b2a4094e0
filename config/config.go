package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config bütün mühit parametrlərini saxlayır.
type Config struct {
	ServiceName string
	AppPort     int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	RedisAddr     string
	RedisUser     string
	RedisPassword string

	TelegramBotToken    string
	TelegramLogChatID   int64
	TelegramBackupChatID int64

	// BackupIntervalHours: sifariş bazasının Telegram-a göndərilmə intervalı.
	BackupIntervalHours int

	// Currencies: hesabatlarda izlənən valyuta çoxluğu.
	Currencies []string
}

// Load .env faylını oxuyur və Config qaytarır.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "goqerti-backoffice"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("PORT", 8083))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", ""))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "goqerti"))
	cfg.PostgresSSLMode = cast.ToString(getOrReturnDefault("POSTGRES_SSLMODE", "disable"))

	cfg.RedisAddr = cast.ToString(getOrReturnDefault("REDIS_ADDR", "localhost:6379"))
	cfg.RedisUser = cast.ToString(getOrReturnDefault("REDIS_USER", ""))
	cfg.RedisPassword = cast.ToString(getOrReturnDefault("REDIS_PASSWORD", ""))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TELEGRAM_BOT_TOKEN", ""))
	cfg.TelegramLogChatID = cast.ToInt64(getOrReturnDefault("TELEGRAM_LOG_CHAT_ID", 0))
	cfg.TelegramBackupChatID = cast.ToInt64(getOrReturnDefault("TELEGRAM_BACKUP_CHAT_ID", 0))

	cfg.BackupIntervalHours = cast.ToInt(getOrReturnDefault("BACKUP_INTERVAL_HOURS", 2))

	cfg.Currencies = splitCurrencies(cast.ToString(getOrReturnDefault("CURRENCIES", "AZN,USD,EUR")))

	return cfg
}

func splitCurrencies(raw string) []string {
	parts := strings.Split(raw, ",")
	currencies := make([]string, 0, len(parts))
	for _, p := range parts {
		if cur := strings.TrimSpace(p); cur != "" {
			currencies = append(currencies, strings.ToUpper(cur))
		}
	}
	if len(currencies) == 0 {
		currencies = []string{"AZN", "USD", "EUR"}
	}
	return currencies
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
