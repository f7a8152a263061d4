package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	productsvc "github.com/stockflow/stockflow-backend/internal/products"
	warehousesvc "github.com/stockflow/stockflow-backend/internal/warehouses"
	"github.com/stockflow/stockflow-backend/pkg/config"
	"github.com/stockflow/stockflow-backend/pkg/metrics"
)

type stubProductService struct{}

func (stubProductService) CreateProduct(ctx context.Context, input productsvc.CreateProductInput) (*productsvc.CreateProductResult, error) {
	return &productsvc.CreateProductResult{}, nil
}

func (stubProductService) ListProducts(ctx context.Context) (*productsvc.ProductListResult, error) {
	return &productsvc.ProductListResult{Products: []productsvc.ProductDTO{}}, nil
}

type stubWarehouseService struct{}

func (stubWarehouseService) CreateWarehouse(ctx context.Context, input warehousesvc.CreateWarehouseInput) (*warehousesvc.WarehouseDTO, error) {
	return &warehousesvc.WarehouseDTO{}, nil
}

func (stubWarehouseService) ListWarehouses(ctx context.Context) (*warehousesvc.WarehouseListResult, error) {
	return &warehousesvc.WarehouseListResult{Warehouses: []warehousesvc.WarehouseDTO{}}, nil
}

type stubResetService struct {
	called bool
}

func (s *stubResetService) Reset(ctx context.Context) error {
	s.called = true
	return nil
}

func newTestRouter(env string, reset *stubResetService) http.Handler {
	cfg := &config.Config{App: config.AppConfig{Env: env}}
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return NewRouter(cfg, nil, httpMetrics, handler, stubProductService{}, stubWarehouseService{}, reset)
}

func TestRouter_KnownRoutes(t *testing.T) {
	router := newTestRouter(config.AppEnvDev, &stubResetService{})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/products", http.StatusOK},
		{http.MethodGet, "/api/warehouses", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	router := newTestRouter(config.AppEnvDev, &stubResetService{})

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Endpoint not found" {
		t.Fatalf("unexpected body: %v", payload)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(config.AppEnvDev, &stubResetService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Method not allowed" {
		t.Fatalf("unexpected body: %v", payload)
	}
}

func TestRouter_ResetGatedByEnvironment(t *testing.T) {
	reset := &stubResetService{}
	dev := newTestRouter(config.AppEnvDev, reset)

	req := httptest.NewRequest(http.MethodPost, "/api/testing/reset", nil)
	rec := httptest.NewRecorder()
	dev.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected reset available in dev, got %d", rec.Code)
	}
	if !reset.called {
		t.Fatal("expected reset service to be invoked")
	}

	prod := newTestRouter(config.AppEnvProd, &stubResetService{})
	rec = httptest.NewRecorder()
	prod.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/testing/reset", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected reset hidden in prod, got %d", rec.Code)
	}
}

func TestRouter_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev}}
	router := NewRouter(cfg, nil, httpMetrics, handler, stubProductService{}, stubWarehouseService{}, &stubResetService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "http_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected http_requests_total to be recorded")
	}
}
