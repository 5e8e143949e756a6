package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ecommerce-manager/internal/application/orders"
	"github.com/tu-usuario/ecommerce-manager/internal/domain"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
)

// fakeDetailRepo devuelve un único detalle para (orderID, customerID) fijos.
type fakeDetailRepo struct {
	detail *entity.OrderDetail
	err    error
}

func (r *fakeDetailRepo) Create(*entity.Order) error { return errors.New("no usado") }

func (r *fakeDetailRepo) GetDetail(orderID, customerID int64) (*entity.OrderDetail, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.detail != nil && r.detail.OrderID == orderID && r.detail.CustomerID == customerID {
		return r.detail, nil
	}
	return nil, nil
}

func (r *fakeDetailRepo) ListByCustomer(int64) ([]*entity.OrderDetail, error) { return nil, nil }
func (r *fakeDetailRepo) ListAll() ([]*entity.OrderDetail, error) { return nil, nil }

// fakeGenerator registra el detalle recibido y devuelve bytes fijos.
type fakeGenerator struct {
	got   *entity.OrderDetail
	bytes []byte
	err   error
}

func (g *fakeGenerator) GenerateReceiptPDF(_ context.Context, detail *entity.OrderDetail) ([]byte, error) {
	g.got = detail
	return g.bytes, g.err
}

func sampleDetail() *entity.OrderDetail {
	return &entity.OrderDetail{
		OrderID:      7,
		OrderDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CustomerID:   10,
		CustomerName: "ana",
		ProductID:    100,
		ProductName:  "Laptop",
		Quantity:     2,
		UnitPrice:    decimal.RequireFromString("20.00"),
	}
}

func TestDownloadReceiptPDF_OK(t *testing.T) {
	gen := &fakeGenerator{bytes: []byte("%PDF-stub")}
	uc := orders.NewReceiptUseCase(&fakeDetailRepo{detail: sampleDetail()}, gen)

	pdfBytes, filename, err := uc.DownloadReceiptPDF(context.Background(), 7, 10)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-stub"), pdfBytes)
	assert.Equal(t, "Order_7_10.pdf", filename, "el nombre lleva orderID y customerID")
	require.NotNil(t, gen.got, "el generador debe recibir el detalle del pedido")
	assert.Equal(t, "Laptop", gen.got.ProductName)
	assert.True(t, gen.got.Total().Equal(decimal.RequireFromString("40.00")))
}

func TestDownloadReceiptPDF_PedidoInexistente(t *testing.T) {
	uc := orders.NewReceiptUseCase(&fakeDetailRepo{}, &fakeGenerator{})

	_, _, err := uc.DownloadReceiptPDF(context.Background(), 99, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El pedido existe pero es de otro cliente: para el solicitante es como si no
// existiera.
func TestDownloadReceiptPDF_PedidoDeOtroCliente(t *testing.T) {
	uc := orders.NewReceiptUseCase(&fakeDetailRepo{detail: sampleDetail()}, &fakeGenerator{})

	_, _, err := uc.DownloadReceiptPDF(context.Background(), 7, 11)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadReceiptPDF_FallaDelGenerador(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("sin fuente")}
	uc := orders.NewReceiptUseCase(&fakeDetailRepo{detail: sampleDetail()}, gen)

	_, _, err := uc.DownloadReceiptPDF(context.Background(), 7, 10)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
