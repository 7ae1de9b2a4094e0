package store

import (
	"context"

	"github.com/Goqerti/yeni/models"
)

// OrderStore is the record-store boundary the order service talks to.
// The contract is deliberately coarse: read the whole collection, replace the
// whole collection. Insertion order must survive a read-modify-write cycle.
// Two concurrent writers race at full-collection granularity (last writer
// wins); callers are expected to live with that.
type OrderStore interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	SaveAll(ctx context.Context, orders []models.Order) error
	GetPermissions(ctx context.Context) (map[string]models.PermissionSet, error)
}
