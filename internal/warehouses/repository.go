package warehouse

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockflow/stockflow-backend/pkg/db/models"
)

// Repository handles warehouse persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindActiveByID loads an active warehouse by id.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := r.db.WithContext(ctx).
		First(&warehouse, "id = ? AND is_active = ?", id, true).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// Create inserts the warehouse row.
func (r *Repository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	return r.db.WithContext(ctx).Create(warehouse).Error
}

// ListActive returns all active warehouses ordered by creation time.
func (r *Repository) ListActive(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}
