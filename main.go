package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goqerti/yeni/config"
	"github.com/Goqerti/yeni/controllers"
	"github.com/Goqerti/yeni/jobs"
	"github.com/Goqerti/yeni/routes"
	"github.com/Goqerti/yeni/services"
	"github.com/Goqerti/yeni/services/logger"
	"github.com/Goqerti/yeni/services/notification"
	"github.com/Goqerti/yeni/store/postgres"
)

func main() {
	cfg := config.Load()
	appLogger := logger.New("yeni")

	router, m, c, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	orderStore, err := postgres.New(config.DB, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize order store: %v", err)
	}

	auditService, err := services.NewAuditService(config.DB, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize audit service: %v", err)
	}

	telegramService := services.NewTelegramService(cfg, appLogger)
	broadcastService := notification.NewMelodyService(m)

	orderService := services.NewOrderService(services.OrderServiceOptions{
		Store:     orderStore,
		Redis:     config.RedisClient,
		Telegram:  telegramService,
		Broadcast: broadcastService,
		Audit:     auditService,
		Logger:    appLogger,
		Config:    cfg,
	})

	orderController := controllers.NewOrderController(orderService, appLogger)

	config.InitWebSocket(router, m)
	routes.SetupRoutes(router, orderController)

	if err := jobs.InitCronJobs(c, jobs.CronOptions{
		Orders:              orderService,
		Telegram:            telegramService,
		Broadcast:           broadcastService,
		Logger:              appLogger,
		BackupIntervalHours: cfg.BackupIntervalHours,
	}); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	log.Println("Server starting on " + addr + "...")
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
