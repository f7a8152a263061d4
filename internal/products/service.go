package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stockflow/stockflow-backend/pkg/db"
	"github.com/stockflow/stockflow-backend/pkg/db/models"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

// Service exposes catalog product operations.
type Service interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error)
	ListProducts(ctx context.Context) (*ProductListResult, error)
}

// CreateProductInput holds the decoded payload to create a product. The
// warehouse id stays a raw string so an unparseable value surfaces as a
// not-found rather than a decode failure.
type CreateProductInput struct {
	Name            string
	SKU             string
	Price           decimal.Decimal
	WarehouseID     string
	Description     *string
	InitialQuantity *int
}

// CreateProductResult bundles the created product with its initial stock row.
type CreateProductResult struct {
	Product   ProductDTO
	Inventory InventoryDTO
}

type warehouseLoader interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
}

// service implements the product service.
type service struct {
	repo          *Repository
	dbClient      *db.Client
	warehouseRepo warehouseLoader
}

// NewService constructs a product service instance.
func NewService(repo *Repository, dbClient *db.Client, warehouseRepo warehouseLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if warehouseRepo == nil {
		return nil, fmt.Errorf("warehouse repository required")
	}
	return &service{
		repo:          repo,
		dbClient:      dbClient,
		warehouseRepo: warehouseRepo,
	}, nil
}

// CreateProduct validates the payload, then inserts the product and its
// initial inventory row in a single transaction. The unique SKU index is the
// final arbiter under concurrent requests; the read-before-write check only
// exists to surface the conflicting product id.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*CreateProductResult, error) {
	validated, err := ValidateCreateProduct(input)
	if err != nil {
		return nil, err
	}

	warehouse, err := s.resolveWarehouse(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}

	quantity, err := ValidateQuantity(input.InitialQuantity)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindBySKU(ctx, validated.SKU); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDuplicateSku,
			fmt.Sprintf("sku %q already exists", validated.SKU)).
			WithDetails(map[string]any{"sku": validated.SKU, "product_id": existing.ID})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "checking sku uniqueness")
	}

	product := &models.Product{
		Name:        validated.Name,
		SKU:         validated.SKU,
		Price:       validated.Price,
		Description: validated.Description,
		IsActive:    true,
	}
	item := &models.InventoryItem{
		WarehouseID: warehouse.ID,
		Quantity:    quantity,
	}

	txErr := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.CreateProduct(ctx, product); err != nil {
			return err
		}
		item.ProductID = product.ID
		return txRepo.CreateInventory(ctx, item)
	})
	if txErr != nil {
		return nil, translateWriteError(txErr, validated.SKU)
	}

	item.Warehouse = warehouse
	return &CreateProductResult{
		Product:   *NewProductDTO(product),
		Inventory: NewInventoryDTO(item),
	}, nil
}

// ListProducts returns all active products with their stock per warehouse.
func (s *service) ListProducts(ctx context.Context) (*ProductListResult, error) {
	rows, err := s.repo.ListActiveWithInventories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "listing products")
	}

	result := &ProductListResult{
		Products: make([]ProductDTO, 0, len(rows)),
		Total:    len(rows),
	}
	for i := range rows {
		result.Products = append(result.Products, *NewProductDTO(&rows[i]))
	}
	return result, nil
}

func (s *service) resolveWarehouse(ctx context.Context, rawID string) (*models.Warehouse, error) {
	warehouseID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeWarehouseNotFound,
			fmt.Sprintf("warehouse %q not found", rawID)).
			WithDetails(map[string]any{"warehouse_id": rawID})
	}

	warehouse, err := s.warehouseRepo.FindActiveByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeWarehouseNotFound,
				fmt.Sprintf("warehouse %q not found", rawID)).
				WithDetails(map[string]any{"warehouse_id": rawID})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "loading warehouse")
	}
	return warehouse, nil
}

func translateWriteError(err error, sku string) error {
	switch {
	case db.IsUniqueViolation(err, "idx_products_sku"):
		return pkgerrors.Wrap(pkgerrors.CodeDuplicateSku, err,
			fmt.Sprintf("sku %q already exists", sku)).
			WithDetails(map[string]any{"sku": sku})
	case db.IsUniqueViolation(err, "idx_inventory_product_warehouse"):
		return pkgerrors.Wrap(pkgerrors.CodeConstraintViolation, err,
			"inventory row already exists for this product and warehouse")
	case db.IsForeignKeyViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeConstraintViolation, err,
			"inventory references a missing row")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "persisting product")
	}
}
