package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem tracks on-hand and reserved counts for a product at one
// warehouse. Exactly one row may exist per (product, warehouse) pair.
type InventoryItem struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	ProductID   uuid.UUID  `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_inventory_product_warehouse"`
	WarehouseID uuid.UUID  `gorm:"column:warehouse_id;type:uuid;not null;uniqueIndex:idx_inventory_product_warehouse"`
	Quantity    int        `gorm:"column:quantity;not null;default:0"`
	ReservedQty int        `gorm:"column:reserved_quantity;not null;default:0"`
	Warehouse   *Warehouse `gorm:"foreignKey:WarehouseID"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// AvailableQty is the on-hand quantity minus the reserved quantity.
func (i *InventoryItem) AvailableQty() int {
	return i.Quantity - i.ReservedQty
}
