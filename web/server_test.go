package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"pricebook/catalog"
	"pricebook/storage"
)

func newTestServer(t *testing.T) (*Server, *storage.SQLiteStore) {
	t.Helper()
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "pricebook.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(store, zerolog.Nop()), store
}

func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	server.Handler().ServeHTTP(recorder, request)
	return recorder
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	response := get(t, server, "/healthz")
	if response.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.Code)
	}
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	ctx := context.Background()
	for _, name := range []string{"Cimento CP II", "Areia Media"} {
		if _, err := store.CreateProduct(ctx, name); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	response := get(t, server, "/api/products")
	if response.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.Code)
	}

	var products []catalog.Product
	if err := json.Unmarshal(response.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %+v, want two", products)
	}
}

func TestCustomerProducts(t *testing.T) {
	t.Parallel()

	server, store := newTestServer(t)
	ctx := context.Background()

	customerID, err := store.CreateCustomer(ctx, "FERRAGENS SILVA", "12")
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	productID, err := store.CreateProduct(ctx, "Parafuso M8")
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	associations := []catalog.Association{{CustomerID: customerID, ProductID: productID, CustomPrice: 2.5}}
	if err := store.ReplaceCustomerProducts(ctx, customerID, associations); err != nil {
		t.Fatalf("seed associations: %v", err)
	}

	response := get(t, server, fmt.Sprintf("/api/customers/%d/products", customerID))
	if response.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.Code)
	}

	var listed []catalog.Association
	if err := json.Unmarshal(response.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(listed) != 1 || listed[0].ProductID != productID || listed[0].CustomPrice != 2.5 {
		t.Fatalf("associations = %+v", listed)
	}
}

func TestCustomerProductsNotFound(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	if response := get(t, server, "/api/customers/999/products"); response.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", response.Code)
	}
}

func TestCustomerProductsBadID(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	if response := get(t, server, "/api/customers/abc/products"); response.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", response.Code)
	}
}
