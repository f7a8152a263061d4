package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Warehouse is a stocking location referenced by inventory rows.
type Warehouse struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name     string    `gorm:"column:name;not null"`
	Location string    `gorm:"column:location;not null"`
	// No gorm default tag on IsActive, same reason as Product.
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// DefaultWarehouses returns the stocking locations the catalog is seeded
// with. The goose seed migration and the testing reset both insert this set.
func DefaultWarehouses() []Warehouse {
	return []Warehouse{
		{Name: "Main Warehouse", Location: "New York, NY", IsActive: true},
		{Name: "West Coast Warehouse", Location: "Los Angeles, CA", IsActive: true},
		{Name: "East Coast Warehouse", Location: "Boston, MA", IsActive: true},
	}
}
