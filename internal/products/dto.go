package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-backend/pkg/db/models"
)

// ProductDTO represents the catalog product payload returned to clients.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	Inventories []InventoryDTO  `json:"inventories,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InventoryDTO exposes stock counts for a product at one warehouse.
type InventoryDTO struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name,omitempty"`
	Quantity      int       `json:"quantity"`
	ReservedQty   int       `json:"reserved_quantity"`
	AvailableQty  int       `json:"available_quantity"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResult bundles the catalog listing with its total count.
type ProductListResult struct {
	Products []ProductDTO `json:"products"`
	Total    int          `json:"total"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	dto := &ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Price:       product.Price,
		Description: product.Description,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	for i := range product.Inventories {
		dto.Inventories = append(dto.Inventories, NewInventoryDTO(&product.Inventories[i]))
	}
	return dto
}

// NewInventoryDTO maps an inventory row to its response shape.
func NewInventoryDTO(item *models.InventoryItem) InventoryDTO {
	dto := InventoryDTO{
		WarehouseID:  item.WarehouseID,
		Quantity:     item.Quantity,
		ReservedQty:  item.ReservedQty,
		AvailableQty: item.AvailableQty(),
		UpdatedAt:    item.UpdatedAt,
	}
	if item.Warehouse != nil {
		dto.WarehouseName = item.Warehouse.Name
	}
	return dto
}
