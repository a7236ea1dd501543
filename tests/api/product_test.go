package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/zzrilakkuma/sales-activity-management-system/core/auth"
	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"

	productAPI "github.com/zzrilakkuma/sales-activity-management-system/api/product"
)

// Wired like the server entry point: the real auth middleware on the /api
// group. The catalog must not be exempt from it.
func TestProductEndpointRequiresAuth(t *testing.T) {
	t.Setenv("AUTH_TYPE", "")
	t.Setenv("API_USER", testUser)
	t.Setenv("API_PASS", testPass)

	db := apiTestDB(t)
	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware(db))
	productAPI.RegisterProductRoutes(apiGroup, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", basicAuth(testUser, testPass))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with credentials, got %d", rec.Code)
	}
}

func TestProductList(t *testing.T) {
	db := apiTestDB(t)
	f := seedFixture(t, db)

	// an inactive product must not show up
	retired := entity.Product{Model: "Retired", AsusPn: "PN-R", BasePrice: decimal.NewFromInt(1), IsActive: false}
	if err := db.Create(&retired).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	e := newAPIServer(t, db, productAPI.RegisterProductRoutes)
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", basicAuth(testUser, testPass))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var views []struct {
		Model             string `json:"model"`
		AvailableQuantity int    `json:"availableQuantity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected only the active product, got %d rows", len(views))
	}
	if views[0].Model != f.Product.Model {
		t.Errorf("expected model %q, got %q", f.Product.Model, views[0].Model)
	}
	if views[0].AvailableQuantity != f.Inventory.AvailableQuantity {
		t.Errorf("expected %d available, got %d", f.Inventory.AvailableQuantity, views[0].AvailableQuantity)
	}
}

func TestProductCreate(t *testing.T) {
	db := apiTestDB(t)
	e := newAPIServer(t, db, productAPI.RegisterProductRoutes)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Authorization", basicAuth(testUser, testPass))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"model": "Vivobook 15", "asusPn": "X1504", "basePrice": "649.00", "minStockLevel": 5}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created entity.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !created.IsActive {
		t.Error("new products start active")
	}

	if rec := post(`{"asusPn": "X0000"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing model, got %d", rec.Code)
	}
}
