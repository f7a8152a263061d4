package warehouse

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-backend/pkg/db/models"
)

// WarehouseDTO represents the warehouse payload returned to clients.
type WarehouseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResult bundles the listing with its total count.
type WarehouseListResult struct {
	Warehouses []WarehouseDTO `json:"warehouses"`
	Total      int            `json:"total"`
}

// NewWarehouseDTO builds a DTO from the persisted model.
func NewWarehouseDTO(warehouse *models.Warehouse) *WarehouseDTO {
	return &WarehouseDTO{
		ID:        warehouse.ID,
		Name:      warehouse.Name,
		Location:  warehouse.Location,
		IsActive:  warehouse.IsActive,
		CreatedAt: warehouse.CreatedAt,
		UpdatedAt: warehouse.UpdatedAt,
	}
}
