package controllers

import (
	"net/http"

	"github.com/stockflow/stockflow-backend/api/responses"
	"github.com/stockflow/stockflow-backend/internal/testingreset"
	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
	"github.com/stockflow/stockflow-backend/pkg/logger"
)

// ResetCatalog handles POST /api/testing/reset. The route is only mounted
// outside production.
func ResetCatalog(svc testingreset.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reset service unavailable"))
			return
		}

		if err := svc.Reset(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "Catalog reset"})
	}
}
