// Package pdf implementa la generación del comprobante de compra en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│              ORDER RECEIPT                  │
//	│  ─────────────────────────────────────────  │
//	│  Order ID / Fecha / Cliente                 │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Producto | Precio | Cant | Subtotal │
//	│  ─────────────────────────────────────────  │
//	│                              TOTAL: $xx.xx  │
//	│        Thank you for your order!            │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/ecommerce-manager/internal/application/orders"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
)

var _ orders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante de la orden y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, detail *entity.OrderDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(fmt.Sprintf("Order Receipt #%d", detail.OrderID), true).
		Build()

	m := maroto.New(cfg)

	// Título
	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Datos de la orden
	m.AddRows(orderInfoRow(detail))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de la compra
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(detail))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	// Total y despedida
	m.AddRows(totalRow(detail))
	m.AddRows(line.NewRow(6))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: encabezado centrado del comprobante.
func titleRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ORDER RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

// orderInfoRow: Order ID, fecha y cliente.
func orderInfoRow(detail *entity.OrderDetail) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Order ID: %d", detail.OrderID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
			text.New("Date: "+detail.OrderDate.Format("2006-01-02"), props.Text{
				Size: 10, Top: 8, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Customer: %s (ID %d)", detail.CustomerName, detail.CustomerID), props.Text{
				Size: 10, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de compra.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 5, align.Left),
		h("Price", 3, align.Right),
		h("Qty", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRow: la línea de compra (una orden equivale a un producto).
func tableDetailRow(detail *entity.OrderDetail) core.Row {
	return row.New(8).Add(
		col.New(5).Add(text.New(
			detail.ProductName,
			props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			"$"+detail.UnitPrice.StringFixed(2),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", detail.Quantity),
			props.Text{Size: 9, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			"$"+detail.Total().StringFixed(2),
			props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: el total alineado a la derecha.
func totalRow(detail *entity.OrderDetail) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+detail.Total().StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// footerRow: mensaje de agradecimiento centrado.
func footerRow() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Thank you for your order!", props.Text{
				Style: fontstyle.Italic, Size: 11, Align: align.Center,
				Color: colorGray, Top: 2,
			}),
		),
	)
}
