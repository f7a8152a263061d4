package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog listing identified by its unique SKU.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	SKU         string          `gorm:"column:sku;not null;uniqueIndex:idx_products_sku"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Description *string         `gorm:"column:description"`
	// No gorm default tag: a default would make GORM omit false from the
	// INSERT, so inactive rows could never be written through the model.
	IsActive    bool            `gorm:"column:is_active;not null"`
	Inventories []InventoryItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
