// Package pdf genera el ticket imprimible de una venta con Maroto v2.
//
// Formato de rollo térmico de 80 mm:
//
//	┌──────────────────────────────┐
//	│  Nombre del restaurante      │
//	│  Eslogan / dirección         │
//	│  N° ticket + fecha + cajero  │
//	│  ──────────────────────────  │
//	│  Cant | Producto | Subtotal  │
//	│  ──────────────────────────  │
//	│  TOTAL + método de pago      │
//	│  QR WhatsApp (opcional)      │
//	└──────────────────────────────┘
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
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/sales"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

var _ sales.ReceiptGenerator = (*ReceiptGenerator)(nil)

const (
	ticketWidth = 80.0 // mm
	baseHeight  = 110.0
	itemHeight  = 6.0
	qrHeight    = 34.0
)

var (
	colorPrimary = &props.Color{Red: 192, Green: 57, Blue: 43}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var paymentLabels = map[string]string{
	entity.PaymentCash:   "Efectivo",
	entity.PaymentCard:   "Tarjeta",
	entity.PaymentWallet: "Billetera digital",
	entity.PaymentOther:  "Otro",
}

// ReceiptGenerator implementa sales.ReceiptGenerator.
type ReceiptGenerator struct {
	printer *message.Printer
}

// NewReceiptGenerator construye el generador. lang define separadores de miles y decimales.
func NewReceiptGenerator(lang language.Tag) *ReceiptGenerator {
	return &ReceiptGenerator{printer: message.NewPrinter(lang)}
}

// GenerateReceiptPDF arma el ticket y devuelve los bytes del PDF.
func (g *ReceiptGenerator) GenerateReceiptPDF(_ context.Context, sale *dto.SaleResponse, menu entity.MenuConfig) ([]byte, error) {
	if sale == nil {
		return nil, fmt.Errorf("pdf: venta nula")
	}
	height := baseHeight + itemHeight*float64(len(sale.Items))
	if menu.WhatsApp != "" {
		height += qrHeight
	}

	cfg := config.NewBuilder().
		WithDimensions(ticketWidth, height).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ticket "+shortID(sale.ID), true).
		WithAuthor(menu.RestaurantName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRows(sale, menu)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	for _, it := range sale.Items {
		m.AddRows(g.itemRow(it, menu.CurrencySymbol))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRows(sale, menu.CurrencySymbol)...)
	if menu.WhatsApp != "" {
		m.AddRows(whatsAppRow(menu.WhatsApp))
	}
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("¡Gracias por su visita!", props.Text{Style: fontstyle.Italic, Align: align.Center, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(sale *dto.SaleResponse, menu entity.MenuConfig) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New(menu.RestaurantName, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary,
		}))),
	}
	for _, s := range []string{menu.Slogan, menu.Address} {
		if s == "" {
			continue
		}
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(s, props.Text{Size: 7, Align: align.Center, Color: colorGray}),
		)))
	}

	info := fmt.Sprintf("Ticket N° %s   %s", strings.ToUpper(shortID(sale.ID)), sale.CreatedAt.Format("02/01/2006 15:04"))
	rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(info, props.Text{Top: 2}))))
	if sale.User != nil {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New("Atendió: "+sale.User.Name, props.Text{Size: 7}))))
	}
	if sale.Customer != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(text.New("Cliente: "+sale.Customer, props.Text{Size: 7}))))
	}
	return rows
}

func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Align: a}))
	}
	return row.New(5).Add(
		h("Cant.", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Subtotal", 4, align.Right),
	)
}

func (g *ReceiptGenerator) itemRow(it dto.SaleItemResponse, symbol string) core.Row {
	return row.New(itemHeight).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 7})),
		col.New(6).Add(text.New(it.ProductName, props.Text{Size: 7})),
		col.New(4).Add(text.New(g.money(symbol, it.Subtotal), props.Text{Size: 7, Align: align.Right})),
	)
}

func (g *ReceiptGenerator) totalRows(sale *dto.SaleResponse, symbol string) []core.Row {
	method := paymentLabels[sale.PaymentMethod]
	if method == "" {
		method = sale.PaymentMethod
	}
	rows := []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary})),
			col.New(6).Add(text.New(g.money(symbol, sale.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary,
			})),
		),
		row.New(5).Add(col.New(12).Add(text.New("Pago: "+method, props.Text{Size: 7}))),
	}
	if sale.Notes != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(text.New("Notas: "+sale.Notes, props.Text{Size: 7, Color: colorGray}))))
	}
	return rows
}

func whatsAppRow(number string) core.Row {
	return row.New(qrHeight).Add(
		col.New(5).Add(code.NewQr(whatsAppURL(number), props.Rect{Percent: 90, Center: true})),
		col.New(7).Add(text.New("Pedidos por WhatsApp\n"+number, props.Text{Size: 7, Top: 10, Left: 2})),
	)
}

// money formatea con el símbolo configurado y dos decimales.
func (g *ReceiptGenerator) money(symbol string, v decimal.Decimal) string {
	return strings.TrimSpace(symbol + " " + g.printer.Sprintf("%.2f", v.Round(2).InexactFloat64()))
}

// whatsAppURL deja solo los dígitos del número para el enlace wa.me.
func whatsAppURL(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "https://wa.me/" + b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
