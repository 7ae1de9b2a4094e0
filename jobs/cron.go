package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Goqerti/yeni/dto"
	"github.com/Goqerti/yeni/services/logger"
	"github.com/Goqerti/yeni/services/notification"
)

// OrderSnapshotter dövri işlərin sifariş qatına çıxışıdır.
type OrderSnapshotter interface {
	GetAll(ctx context.Context) ([]dto.OrderResponse, error)
	UpcomingCheckinProblems(ctx context.Context, now time.Time) ([]dto.CheckinProblem, error)
}

// BackupSender ehtiyat nüsxəni operator kanalına göndərir.
type BackupSender interface {
	SendBackup(filename string, data []byte)
}

type CronOptions struct {
	Orders    OrderSnapshotter
	Telegram  BackupSender
	Broadcast notification.Service
	Logger    logger.Logger
	// Ehtiyat nüsxə intervalı saatla.
	BackupIntervalHours int
}

// InitCronJobs dövri işləri qeydiyyatdan keçirir və cron-u işə salır:
// sifariş bazasının ehtiyat nüsxəsi və hər səhər yaxınlaşan girişlərin yoxlanışı.
func InitCronJobs(c *cron.Cron, opts CronOptions) error {
	interval := opts.BackupIntervalHours
	if interval <= 0 {
		interval = 2
	}

	if _, err := c.AddFunc(fmt.Sprintf("0 */%d * * *", interval), func() {
		runBackup(opts)
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc("0 9 * * *", func() {
		runCheckinScan(opts)
	}); err != nil {
		return err
	}

	c.Start()
	opts.Logger.Info("cron işləri quruldu (backup hər %d saatdan bir)", interval)
	return nil
}

func runBackup(opts CronOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders, err := opts.Orders.GetAll(ctx)
	if err != nil {
		opts.Logger.Error("backup üçün sifarişlər oxuna bilmədi: %v", err)
		return
	}

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		opts.Logger.Error("backup serializasiya xətası: %v", err)
		return
	}

	opts.Telegram.SendBackup("sifarisler.json", data)
}

func runCheckinScan(opts CronOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	problems, err := opts.Orders.UpcomingCheckinProblems(ctx, time.Now())
	if err != nil {
		opts.Logger.Error("giriş yoxlanışı alınmadı: %v", err)
		return
	}

	for _, p := range problems {
		msg := fmt.Sprintf("⚠️ Sifariş №%s (%s), giriş %s: %s", p.SatisNo, p.Turist, p.GirisTarixi, p.Problem)
		if err := opts.Broadcast.SendMessage(msg); err != nil {
			opts.Logger.Error("bildiriş göndərilə bilmədi: %v", err)
		}
	}
}
