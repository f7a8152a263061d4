package testingreset

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stockflow/stockflow-backend/pkg/config"
	"github.com/stockflow/stockflow-backend/pkg/db"
	"github.com/stockflow/stockflow-backend/pkg/db/models"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

// Service wipes catalog data between test runs. It must never be wired in
// production; the router guards it, and Reset re-checks the environment.
type Service interface {
	Reset(ctx context.Context) error
}

type service struct {
	dbClient *db.Client
	appCfg   config.AppConfig
}

// NewService constructs the reset service.
func NewService(dbClient *db.Client, appCfg config.AppConfig) (Service, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{dbClient: dbClient, appCfg: appCfg}, nil
}

// Reset deletes all inventory, products, and warehouses in one transaction,
// then restores the default warehouses.
func (s *service) Reset(ctx context.Context) error {
	if s.appCfg.IsProd() {
		return pkgerrors.New(pkgerrors.CodeInternal, "reset is disabled in production")
	}

	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		// Child rows first so foreign keys never block the wipe.
		for _, model := range []any{
			&models.InventoryItem{},
			&models.Product{},
			&models.Warehouse{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		seeds := models.DefaultWarehouses()
		return tx.Create(&seeds).Error
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorageFailure, err, "resetting catalog data")
	}
	return nil
}
