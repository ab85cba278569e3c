package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Gorm stores the slot as one row of the storage_slots table.
type Gorm struct {
	db  *gorm.DB
	key string
}

func NewGorm(db *gorm.DB, key string) *Gorm {
	return &Gorm{db: db, key: key}
}

func (g *Gorm) Read(ctx context.Context) ([]byte, error) {
	var row models.StorageSlot
	err := g.db.WithContext(ctx).
		Where("key = ?", g.key).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", g.key, err)
	}
	return []byte(row.Value), nil
}

func (g *Gorm) Write(ctx context.Context, data []byte) error {
	row := models.StorageSlot{
		Key:       g.key,
		Value:     string(data),
		UpdatedAt: time.Now(),
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", g.key, err)
	}
	return nil
}

// Close is a no-op. The *gorm.DB is shared with the audit sink and is closed
// by whoever opened it.
func (g *Gorm) Close() error {
	return nil
}
