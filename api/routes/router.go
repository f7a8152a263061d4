package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockflow/stockflow-backend/api/controllers"
	"github.com/stockflow/stockflow-backend/api/middleware"
	"github.com/stockflow/stockflow-backend/api/responses"
	products "github.com/stockflow/stockflow-backend/internal/products"
	"github.com/stockflow/stockflow-backend/internal/testingreset"
	warehouses "github.com/stockflow/stockflow-backend/internal/warehouses"
	"github.com/stockflow/stockflow-backend/pkg/config"
	"github.com/stockflow/stockflow-backend/pkg/logger"
	"github.com/stockflow/stockflow-backend/pkg/metrics"
	"github.com/stockflow/stockflow-backend/pkg/types"
)

// NewRouter assembles the HTTP surface: catalog routes, health, metrics,
// and the non-production reset hook.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	productService products.Service,
	warehouseService warehouses.Service,
	resetService testingreset.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteStatus(w, http.StatusNotFound, types.ErrorResponse{
			Error: "Endpoint not found",
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteStatus(w, http.StatusMethodNotAllowed, types.ErrorResponse{
			Error: "Method not allowed",
		})
	})

	r.Get("/api/health", controllers.Health())

	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", controllers.CreateProduct(productService, logg))
		r.Get("/", controllers.ListProducts(productService, logg))
	})

	r.Route("/api/warehouses", func(r chi.Router) {
		r.Post("/", controllers.CreateWarehouse(warehouseService, logg))
		r.Get("/", controllers.ListWarehouses(warehouseService, logg))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	if cfg != nil && !cfg.App.IsProd() {
		r.Post("/api/testing/reset", controllers.ResetCatalog(resetService, logg))
	}

	return r
}
