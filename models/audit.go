package models

import (
	"time"
)

// AuditEntry is one persisted line of the audit trail. Payload is the raw
// action detail as JSON; it is write-only from the application's point of view.
type AuditEntry struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	RequestID   string    `gorm:"size:36" json:"requestId"`
	Username    string    `gorm:"size:64;index" json:"username"`
	DisplayName string    `gorm:"size:128" json:"displayName"`
	Role        string    `gorm:"size:32" json:"role"`
	Action      string    `gorm:"size:64;index" json:"action"`
	Payload     []byte    `gorm:"type:jsonb" json:"payload"`
}
