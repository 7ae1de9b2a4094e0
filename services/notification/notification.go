package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/olahol/melody"
)

// Service operator panelinə real vaxt mesaj ötürən interfeys.
type Service interface {
	SendMessage(message string) error
}

// MelodyService qoşulu olan bütün operator sessiyalarına broadcast edir.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}

	payload, err := json.Marshal(map[string]string{
		"id":        uuid.NewString(),
		"type":      "notification",
		"text":      message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.m.Broadcast(payload)
}

// ChangeMessageBuilder sifariş dəyişikliyi üçün operator mesajı qurur.
type ChangeMessageBuilder struct {
	displayName string
	satisNo     string
	action      string
	changes     string
}

func NewChangeMessageBuilder(displayName, satisNo, action string) *ChangeMessageBuilder {
	return &ChangeMessageBuilder{
		displayName: displayName,
		satisNo:     satisNo,
		action:      action,
	}
}

func (b *ChangeMessageBuilder) WithChanges(changes string) *ChangeMessageBuilder {
	b.changes = changes
	return b
}

func (b *ChangeMessageBuilder) Build() string {
	msg := fmt.Sprintf("🔔 %s №%s sifarişi üzrə: %s", b.displayName, b.satisNo, b.action)
	if b.changes != "" {
		msg += "\n" + b.changes
	}
	return msg
}
