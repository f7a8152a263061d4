package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-backend/pkg/config"
	"github.com/stockflow/stockflow-backend/pkg/db"
	"github.com/stockflow/stockflow-backend/pkg/db/models"
)

func openTestClient(t *testing.T) *db.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := db.New(context.Background(), config.DBConfig{
		Driver: "sqlite",
		DSN:    dsn,
	}, nil)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(
		&models.Warehouse{},
		&models.Product{},
		&models.InventoryItem{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return client
}
