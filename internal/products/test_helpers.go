package product

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stockflow/stockflow-backend/pkg/db/models"
)

func mustCreateTestWarehouse(t *testing.T, tx *gorm.DB, active bool) *models.Warehouse {
	t.Helper()
	warehouse := &models.Warehouse{
		ID:       uuid.New(),
		Name:     fmt.Sprintf("Warehouse %s", uuid.NewString()[:8]),
		Location: "Tulsa",
		IsActive: active,
	}
	if err := tx.Create(warehouse).Error; err != nil {
		t.Fatalf("create warehouse: %v", err)
	}
	return warehouse
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, sku string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     "Test Product",
		SKU:      sku,
		Price:    decimal.RequireFromString("19.99"),
		IsActive: active,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
