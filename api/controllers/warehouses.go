package controllers

import (
	"net/http"

	"github.com/stockflow/stockflow-backend/api/responses"
	"github.com/stockflow/stockflow-backend/api/validators"
	warehousesvc "github.com/stockflow/stockflow-backend/internal/warehouses"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
	"github.com/stockflow/stockflow-backend/pkg/logger"
)

type createWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type createWarehouseResponse struct {
	Message   string                    `json:"message"`
	Warehouse warehousesvc.WarehouseDTO `json:"warehouse"`
}

// CreateWarehouse handles POST /api/warehouses.
func CreateWarehouse(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
			return
		}

		var payload createWarehouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.CreateWarehouse(r.Context(), warehousesvc.CreateWarehouseInput{
			Name:     payload.Name,
			Location: payload.Location,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createWarehouseResponse{
			Message:   "Warehouse created successfully",
			Warehouse: *dto,
		})
	}
}

// ListWarehouses handles GET /api/warehouses.
func ListWarehouses(svc warehousesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "warehouse service unavailable"))
			return
		}

		result, err := svc.ListWarehouses(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
