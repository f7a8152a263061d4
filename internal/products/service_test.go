package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	warehouse "github.com/stockflow/stockflow-backend/internal/warehouses"
	"github.com/stockflow/stockflow-backend/pkg/db"
	"github.com/stockflow/stockflow-backend/pkg/db/models"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()
	client := openTestClient(t)
	svc, err := NewService(
		NewRepository(client.DB()),
		client,
		warehouse.NewRepository(client.DB()),
	)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc, client
}

func TestCreateProduct_Success(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	wh := mustCreateTestWarehouse(t, client.DB(), true)

	qty := 7
	result, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:            "  Widget  ",
		SKU:             "wid-001",
		Price:           decimal.RequireFromString("19.99"),
		WarehouseID:     wh.ID.String(),
		InitialQuantity: &qty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Product.Name != "Widget" {
		t.Fatalf("expected trimmed name, got %q", result.Product.Name)
	}
	if result.Product.SKU != "WID-001" {
		t.Fatalf("expected uppercased sku, got %q", result.Product.SKU)
	}
	if !result.Product.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("expected price 19.99, got %s", result.Product.Price)
	}
	if result.Inventory.WarehouseID != wh.ID {
		t.Fatalf("expected inventory bound to warehouse %s", wh.ID)
	}
	if result.Inventory.WarehouseName != wh.Name {
		t.Fatalf("expected warehouse name %q, got %q", wh.Name, result.Inventory.WarehouseName)
	}
	if result.Inventory.Quantity != 7 || result.Inventory.AvailableQty != 7 {
		t.Fatalf("expected quantity 7, got %+v", result.Inventory)
	}

	var item models.InventoryItem
	if err := client.DB().First(&item, "product_id = ?", result.Product.ID).Error; err != nil {
		t.Fatalf("expected inventory row persisted: %v", err)
	}
	if item.Quantity != 7 {
		t.Fatalf("expected persisted quantity 7, got %d", item.Quantity)
	}
}

func TestCreateProduct_QuantityDefaultsToZero(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	wh := mustCreateTestWarehouse(t, client.DB(), true)

	result, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "Widget",
		SKU:         "WID-002",
		Price:       decimal.RequireFromString("5.00"),
		WarehouseID: wh.ID.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inventory.Quantity != 0 {
		t.Fatalf("expected default quantity 0, got %d", result.Inventory.Quantity)
	}
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	wh := mustCreateTestWarehouse(t, client.DB(), true)
	existing := mustCreateTestProduct(t, client.DB(), "WID-003", true)

	_, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "Widget",
		SKU:         "wid-003",
		Price:       decimal.RequireFromString("5.00"),
		WarehouseID: wh.ID.String(),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDuplicateSku {
		t.Fatalf("expected duplicate sku, got %v", err)
	}

	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["product_id"] != existing.ID {
		t.Fatalf("expected conflicting product id %s, got %v", existing.ID, details["product_id"])
	}
}

func TestCreateProduct_WarehouseNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, rawID := range []string{uuid.NewString(), "not-a-uuid"} {
		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:        "Widget",
			SKU:         "WID-004",
			Price:       decimal.RequireFromString("5.00"),
			WarehouseID: rawID,
		})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeWarehouseNotFound {
			t.Fatalf("expected warehouse not found for %q, got %v", rawID, err)
		}
	}
}

func TestCreateProduct_InactiveWarehouseRejected(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	wh := mustCreateTestWarehouse(t, client.DB(), false)

	_, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "Widget",
		SKU:         "WID-005",
		Price:       decimal.RequireFromString("5.00"),
		WarehouseID: wh.ID.String(),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeWarehouseNotFound {
		t.Fatalf("expected warehouse not found, got %v", err)
	}
}

func TestCreateProduct_ValidationBeforeWarehouseLookup(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:        "",
		SKU:         "WID-006",
		Price:       decimal.RequireFromString("5.00"),
		WarehouseID: "not-a-uuid",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidName {
		t.Fatalf("expected validation failure to win, got %v", err)
	}
}

func TestCreateProduct_WarehouseCheckedBeforeQuantity(t *testing.T) {
	svc, _ := newTestService(t)
	negative := -3

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:            "Widget",
		SKU:             "WID-009",
		Price:           decimal.RequireFromString("5.00"),
		WarehouseID:     uuid.NewString(),
		InitialQuantity: &negative,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeWarehouseNotFound {
		t.Fatalf("expected warehouse lookup to win, got %v", err)
	}
}

func TestCreateProduct_NegativeQuantityRejected(t *testing.T) {
	svc, client := newTestService(t)
	wh := mustCreateTestWarehouse(t, client.DB(), true)
	negative := -3

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:            "Widget",
		SKU:             "WID-010",
		Price:           decimal.RequireFromString("5.00"),
		WarehouseID:     wh.ID.String(),
		InitialQuantity: &negative,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidQuantity {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
}

func TestListProducts(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	wh := mustCreateTestWarehouse(t, client.DB(), true)

	active := mustCreateTestProduct(t, client.DB(), "WID-007", true)
	mustCreateTestProduct(t, client.DB(), "WID-008", false)

	item := &models.InventoryItem{
		ProductID:   active.ID,
		WarehouseID: wh.ID,
		Quantity:    12,
		ReservedQty: 2,
	}
	if err := client.DB().Create(item).Error; err != nil {
		t.Fatalf("create inventory: %v", err)
	}

	result, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || len(result.Products) != 1 {
		t.Fatalf("expected one active product, got total=%d len=%d", result.Total, len(result.Products))
	}

	got := result.Products[0]
	if got.SKU != "WID-007" {
		t.Fatalf("expected active product, got %q", got.SKU)
	}
	if len(got.Inventories) != 1 {
		t.Fatalf("expected one inventory row, got %d", len(got.Inventories))
	}
	inv := got.Inventories[0]
	if inv.WarehouseName != wh.Name {
		t.Fatalf("expected warehouse name preloaded, got %q", inv.WarehouseName)
	}
	if inv.Quantity != 12 || inv.ReservedQty != 2 || inv.AvailableQty != 10 {
		t.Fatalf("unexpected counts: %+v", inv)
	}
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 || len(result.Products) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
