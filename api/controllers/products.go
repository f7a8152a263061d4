package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-backend/api/responses"
	"github.com/stockflow/stockflow-backend/api/validators"
	productsvc "github.com/stockflow/stockflow-backend/internal/products"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
	"github.com/stockflow/stockflow-backend/pkg/logger"
)

type createProductRequest struct {
	Name            string           `json:"name" validate:"required"`
	SKU             string           `json:"sku" validate:"required"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	WarehouseID     string           `json:"warehouse_id" validate:"required"`
	InitialQuantity *int             `json:"initial_quantity,omitempty"`
	Description     *string          `json:"description,omitempty"`
}

type createProductResponse struct {
	Message   string                  `json:"message"`
	Product   productsvc.ProductDTO   `json:"product"`
	Inventory productsvc.InventoryDTO `json:"inventory"`
}

// CreateProduct handles POST /api/products.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateProduct(r.Context(), productsvc.CreateProductInput{
			Name:            payload.Name,
			SKU:             payload.SKU,
			Price:           *payload.Price,
			WarehouseID:     payload.WarehouseID,
			InitialQuantity: payload.InitialQuantity,
			Description:     payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createProductResponse{
			Message:   "Product created successfully",
			Product:   result.Product,
			Inventory: result.Inventory,
		})
	}
}

// ListProducts handles GET /api/products.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		result, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
