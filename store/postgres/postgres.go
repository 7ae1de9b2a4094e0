package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Goqerti/yeni/models"
	"github.com/Goqerti/yeni/services/logger"
)

// OrderRecord bir sifarişin bazadakı sətridir. Payload sifarişin tam JSON
// strukturudur; Tourists sütunu yalnız axtarış üçün denormalizə olunub.
// Seq artan primary key-dir və kolleksiyanın daxil edilmə sırasını saxlayır.
type OrderRecord struct {
	Seq      uint           `gorm:"primaryKey;autoIncrement"`
	SatisNo  string         `gorm:"uniqueIndex;size:32"`
	Tourists pq.StringArray `gorm:"type:text[]"`
	Payload  []byte         `gorm:"type:jsonb"`
}

func (OrderRecord) TableName() string { return "order_records" }

// PermissionRecord bir istifadəçinin capability çoxluğudur.
type PermissionRecord struct {
	Username string `gorm:"primaryKey;size:64"`
	Payload  []byte `gorm:"type:jsonb"`
}

func (PermissionRecord) TableName() string { return "permission_records" }

// Store gorm üzərindən OrderStore müqaviləsini yerinə yetirir.
type Store struct {
	db  *gorm.DB
	log logger.Logger
}

func New(db *gorm.DB, log logger.Logger) (*Store, error) {
	if err := db.AutoMigrate(&OrderRecord{}, &PermissionRecord{}); err != nil {
		return nil, fmt.Errorf("store migration failed: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// GetAll bütün sifarişləri daxil edilmə sırası ilə qaytarır.
func (s *Store) GetAll(ctx context.Context) ([]models.Order, error) {
	var records []OrderRecord
	if err := s.db.WithContext(ctx).Order("seq asc").Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		var order models.Order
		if err := json.Unmarshal(rec.Payload, &order); err != nil {
			s.log.Error("sifariş payload-u oxuna bilmədi (satisNo=%s): %v", rec.SatisNo, err)
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// SaveAll kolleksiyanı bütövlükdə əvəz edir. Bir tranzaksiya içində köhnə
// sətirlər silinir və yenilər slice sırası ilə yazılır; Seq monoton artdığı
// üçün sıra qorunur.
func (s *Store) SaveAll(ctx context.Context, orders []models.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&OrderRecord{}).Error; err != nil {
			return err
		}
		for i := range orders {
			payload, err := json.Marshal(&orders[i])
			if err != nil {
				return fmt.Errorf("sifariş %s serialize edilə bilmədi: %w", orders[i].SatisNo, err)
			}
			rec := OrderRecord{
				SatisNo:  orders[i].SatisNo,
				Tourists: pq.StringArray(orders[i].Tourists),
				Payload:  payload,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPermissions istifadəçi adına görə capability map-i qaytarır.
func (s *Store) GetPermissions(ctx context.Context) (map[string]models.PermissionSet, error) {
	var records []PermissionRecord
	if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	permissions := make(map[string]models.PermissionSet, len(records))
	for _, rec := range records {
		var set models.PermissionSet
		if err := json.Unmarshal(rec.Payload, &set); err != nil {
			s.log.Error("icazə payload-u oxuna bilmədi (username=%s): %v", rec.Username, err)
			continue
		}
		permissions[rec.Username] = set
	}
	return permissions, nil
}
