package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pago de una venta.
type PaymentMethod string

// Formas de pago.
const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentPix    PaymentMethod = "pix"
	PaymentCredit PaymentMethod = "credit" // fiado: genera vencimiento si está pendiente
)

// PaymentStatus estado de pago de una venta.
type PaymentStatus string

// Estados de pago.
const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Decimales de peso, precio y total; coinciden con las columnas NUMERIC de sales.
const (
	WeightPlaces int32 = 3
	PricePlaces  int32 = 2
	TotalPlaces  int32 = 2
)

// CreditTerm plazo de las ventas fiadas pendientes.
const CreditTerm = 7 * 24 * time.Hour

// Sale representa una venta de un producto por peso.
// Total = Weight × PricePerKg redondeado a TotalPlaces; se recalcula con SetWeight/SetPricePerKg.
type Sale struct {
	ID            string
	ClientID      string // vacío = venta sin cliente identificado
	ProductID     string
	Weight        decimal.Decimal
	PricePerKg    decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	SoldAt        time.Time
	DueAt         *time.Time
}

// HasClient indica si la venta tiene cliente asociado.
func (s *Sale) HasClient() bool { return s.ClientID != "" }

// SetWeight cambia el peso vendido y recalcula el total.
func (s *Sale) SetWeight(w decimal.Decimal) {
	s.Weight = w
	s.recalculate()
}

// SetPricePerKg cambia el precio por kilo y recalcula el total.
func (s *Sale) SetPricePerKg(p decimal.Decimal) {
	s.PricePerKg = p
	s.recalculate()
}

func (s *Sale) recalculate() {
	s.Total = s.Weight.Mul(s.PricePerKg).Round(TotalPlaces)
}

// RefreshDueDate aplica la regla de vencimiento: fiado + pendiente vence en CreditTerm,
// cualquier otra combinación no tiene vencimiento.
func (s *Sale) RefreshDueDate(now time.Time) {
	if s.PaymentMethod == PaymentCredit && s.PaymentStatus == PaymentPending {
		due := now.Add(CreditTerm)
		s.DueAt = &due
		return
	}
	s.DueAt = nil
}
