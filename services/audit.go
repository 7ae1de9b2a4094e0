package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/services/logger"
)

// AuditSink əməliyyat izlərini qəbul edir. Yazılmaması sorğunu pozmur.
type AuditSink interface {
	LogAction(actor models.Actor, requestID, action string, payload interface{})
}

// AuditService audit sətirlərini bazaya yazır.
type AuditService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewAuditService(db *gorm.DB, log logger.Logger) (*AuditService, error) {
	if err := db.AutoMigrate(&models.AuditEntry{}); err != nil {
		return nil, err
	}
	return &AuditService{db: db, log: log}, nil
}

// LogAction bir audit sətri yazır; xətalar loglanır və udulur.
func (s *AuditService) LogAction(actor models.Actor, requestID, action string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("audit payload serialize edilə bilmədi: %v", err)
		data = []byte("{}")
	}

	entry := models.AuditEntry{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		RequestID:   requestID,
		Username:    actor.Username,
		DisplayName: actor.DisplayName,
		Role:        actor.Role,
		Action:      action,
		Payload:     data,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		s.log.Error("audit sətri yazıla bilmədi (action=%s): %v", action, err)
	}
}
