// Package pdf genera el recibo de venta en PDF.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Nombre de la panadería │ N° + Fecha│
//	│  ───────────────────────────────────────  │
//	│  CLIENTE                                  │
//	│  TABLA: Producto | Peso | R$/kg | Total   │
//	│  ───────────────────────────────────────  │
//	│  PAGO: forma / estado / vencimiento       │
//	│  QR con el ID de la venta                 │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paofresquim-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 80, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas en portugués para el cliente final.
var (
	methodLabels = map[string]string{"cash": "Dinheiro", "card": "Cartão", "pix": "PIX", "credit": "Fiado"}
	statusLabels = map[string]string{"paid": "Pago", "pending": "Pendente"}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator genera recibos de venta con Maroto v2.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator construye el generador. shopName aparece en la cabecera.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateSaleReceipt genera el PDF de una venta ya enriquecida y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateSaleReceipt(_ context.Context, sale *dto.SaleResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venda", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(sale))
	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(paymentRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shop string, sale *dto.SaleResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(shop, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("RECIBO Nº "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(sale.SoldAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func clientRow(sale *dto.SaleResponse) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
		text.New(sale.ClientName, props.Text{Size: 9, Top: 5}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(7).Add(
		h("Produto", 5, align.Left),
		h("Peso (kg)", 2, align.Right),
		h("R$/kg", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRow(sale *dto.SaleResponse) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(7).Add(
		cell(sale.ProductName, 5, align.Left),
		cell(sale.Weight.StringFixed(3), 2, align.Right),
		cell(FormatBRL(sale.PricePerKg), 2, align.Right),
		cell(FormatBRL(sale.Total), 3, align.Right),
	)
}

func paymentRow(sale *dto.SaleResponse) core.Row {
	detail := fmt.Sprintf("Forma: %s   |   Situação: %s",
		label(methodLabels, sale.PaymentMethod), label(statusLabels, sale.PaymentStatus))
	if sale.DueAt != nil {
		detail += "   |   Vencimento: " + sale.DueAt.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(8).Add(text.New(detail, props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New("TOTAL "+FormatBRL(sale.Total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	)
}

func qrRow(sale *dto.SaleResponse) core.Row {
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(text.New("Obrigado pela preferência!", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 12, Left: 3, Color: colorPrimary,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func label(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// FormatBRL formatea un importe como "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + string(buf) + "," + frac
}
