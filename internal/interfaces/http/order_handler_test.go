package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommerce-manager/internal/application/orders"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/repository"
	apphttp "github.com/tu-usuario/ecommerce-manager/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: un producto, un cliente, pedidos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type singleProductStore struct {
	product entity.Product
	orders  []*entity.Order
	nextID  int64
}

type spProductRepo struct{ s *singleProductStore }

func (r *spProductRepo) Create(*entity.Product) error { return errors.New("no usado") }
func (r *spProductRepo) Update(*entity.Product) error { return errors.New("no usado") }
func (r *spProductRepo) SetStock(int64, int64) error { return errors.New("no usado") }
func (r *spProductRepo) Delete(int64) error { return errors.New("no usado") }
func (r *spProductRepo) ListAll() ([]*entity.Product, error) { return nil, nil }
func (r *spProductRepo) ListAvailable() ([]*entity.Product, error) { return nil, nil }

func (r *spProductRepo) GetByID(id int64) (*entity.Product, error) {
	if id != r.s.product.ID {
		return nil, nil
	}
	cp := r.s.product
	return &cp, nil
}

func (r *spProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *spProductRepo) DecrementStock(id, amount int64) error {
	if id != r.s.product.ID || r.s.product.Stock < amount {
		return errors.New("sin filas afectadas")
	}
	r.s.product.Stock -= amount
	return nil
}

type spOrderRepo struct{ s *singleProductStore }

func (r *spOrderRepo) Create(o *entity.Order) error {
	r.s.nextID++
	o.ID = r.s.nextID
	cp := *o
	r.s.orders = append(r.s.orders, &cp)
	return nil
}

func (r *spOrderRepo) GetDetail(int64, int64) (*entity.OrderDetail, error) { return nil, nil }
func (r *spOrderRepo) ListByCustomer(int64) ([]*entity.OrderDetail, error) { return nil, nil }
func (r *spOrderRepo) ListAll() ([]*entity.OrderDetail, error) { return nil, nil }

type spTxRunner struct{ s *singleProductStore }

func (r *spTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	// Sin rollback real: suficiente para probar el mapeo de errores HTTP.
	return fn(&spOrderRepo{s: r.s}, &spProductRepo{s: r.s})
}

type spUserRepo struct{}

func (r *spUserRepo) Create(*entity.User) error { return errors.New("no usado") }
func (r *spUserRepo) GetByUsername(string) (*entity.User, error) { return nil, nil }

func (r *spUserRepo) GetByID(id int64) (*entity.User, error) {
	if id != 42 {
		return nil, nil
	}
	return &entity.User{ID: 42, Username: "ana", Role: entity.RoleCustomer}, nil
}

// buildOrderApp monta POST /api/orders con auth real y el store dado.
func buildOrderApp(store *singleProductStore) *fiber.App {
	orderUC := orders.NewOrderUseCase(&spTxRunner{s: store}, &spUserRepo{}, &spOrderRepo{s: store})
	handler := apphttp.NewOrderHandler(orderUC, nil)

	app := fiber.New()
	app.Post("/api/orders",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleCustomer),
		handler.Place,
	)
	return app
}

func placeOrder(t *testing.T, app *fiber.App, productID, quantity int64) *http.Response {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"product_id": productID, "quantity": quantity})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleCustomer))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newLaptopStore(stock int64) *singleProductStore {
	return &singleProductStore{product: entity.Product{
		ID: 100, Name: "Laptop", Price: decimal.RequireFromString("20.00"), Stock: stock,
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de la taxonomía de errores a HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrderHTTP_Creado201(t *testing.T) {
	app := buildOrderApp(newLaptopStore(10))
	resp := placeOrder(t, app, 100, 3)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["order_id"])
	assert.Equal(t, "Laptop", body["product_name"])
	assert.Equal(t, "60", body["total"], "decimal serializa sin ceros a la derecha")
}

func TestPlaceOrderHTTP_StockInsuficiente409ConDisponible(t *testing.T) {
	app := buildOrderApp(newLaptopStore(7))
	resp := placeOrder(t, app, 100, 8)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Code      string `json:"code"`
		Available *int64 `json:"available"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.NotNil(t, body.Available, "la respuesta 409 debe traer la cantidad disponible")
	assert.Equal(t, int64(7), *body.Available)
}

func TestPlaceOrderHTTP_CantidadInvalida400(t *testing.T) {
	app := buildOrderApp(newLaptopStore(10))

	for _, qty := range []int64{0, -3} {
		resp := placeOrder(t, app, 100, qty)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cantidad %d", qty)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_QUANTITY", body["code"])
		resp.Body.Close()
	}
}

func TestPlaceOrderHTTP_ProductoInexistente404(t *testing.T) {
	app := buildOrderApp(newLaptopStore(10))
	resp := placeOrder(t, app, 999, 1)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaceOrderHTTP_AdminRecibe403(t *testing.T) {
	app := buildOrderApp(newLaptopStore(10))

	body, _ := json.Marshal(fiber.Map{"product_id": int64(100), "quantity": int64(1)})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el RBAC corta antes del caso de uso")
}
