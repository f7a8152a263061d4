package warehouse

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/stockflow/stockflow-backend/pkg/db/models"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

const maxFieldLength = 255

// Service exposes warehouse operations.
type Service interface {
	CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error)
	ListWarehouses(ctx context.Context) (*WarehouseListResult, error)
}

// CreateWarehouseInput holds the decoded payload to create a warehouse.
type CreateWarehouseInput struct {
	Name     string
	Location string
}

type service struct {
	repo *Repository
}

// NewService constructs a warehouse service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{repo: repo}, nil
}

// CreateWarehouse validates the payload and inserts the warehouse.
func (s *service) CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*WarehouseDTO, error) {
	name, err := validateField("name", input.Name)
	if err != nil {
		return nil, err
	}
	location, err := validateField("location", input.Location)
	if err != nil {
		return nil, err
	}

	warehouse := &models.Warehouse{
		Name:     name,
		Location: location,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, warehouse); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "persisting warehouse")
	}
	return NewWarehouseDTO(warehouse), nil
}

// ListWarehouses returns all active warehouses.
func (s *service) ListWarehouses(ctx context.Context) (*WarehouseListResult, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "listing warehouses")
	}

	result := &WarehouseListResult{
		Warehouses: make([]WarehouseDTO, 0, len(rows)),
		Total:      len(rows),
	}
	for i := range rows {
		result.Warehouses = append(result.Warehouses, *NewWarehouseDTO(&rows[i]))
	}
	return result, nil
}

func validateField(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeInvalidName,
			fmt.Sprintf("%s cannot be empty", field)).
			WithDetails(map[string]any{"field": field})
	}
	// Character limit, not bytes.
	if utf8.RuneCountInString(value) > maxFieldLength {
		return "", pkgerrors.New(pkgerrors.CodeInvalidName,
			fmt.Sprintf("%s cannot exceed %d characters", field, maxFieldLength)).
			WithDetails(map[string]any{"field": field, "length": utf8.RuneCountInString(value)})
	}
	return value, nil
}
