package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit unidad de medida por defecto de los ingredientes.
const DefaultUnit = "kg"

// Decimales de cantidades y costos de ingredientes.
const (
	QuantityPlaces int32 = 3
	CostPlaces     int32 = 4
)

// Ingredient representa el stock de un ingrediente.
// UpdatedAt se refresca al cambiar la cantidad o el costo.
type Ingredient struct {
	ID          string
	Name        string // único
	Quantity    decimal.Decimal
	Unit        string
	MinQuantity decimal.Decimal
	AverageCost decimal.Decimal
	UpdatedAt   time.Time
}

// NeedsRestock indica si la cantidad llegó al mínimo configurado.
func (i *Ingredient) NeedsRestock() bool {
	return i.Quantity.LessThanOrEqual(i.MinQuantity)
}

// SetQuantity cambia la cantidad y marca la fecha de actualización.
// Si q es igual a la cantidad actual no toca nada.
func (i *Ingredient) SetQuantity(q decimal.Decimal, now time.Time) {
	if q.Equal(i.Quantity) {
		return
	}
	i.Quantity = q
	i.UpdatedAt = now
}

// SetAverageCost cambia el costo promedio y marca la fecha de actualización.
// Si c es igual al costo actual no toca nada.
func (i *Ingredient) SetAverageCost(c decimal.Decimal, now time.Time) {
	if c.Equal(i.AverageCost) {
		return
	}
	i.AverageCost = c
	i.UpdatedAt = now
}

// Receive registra una entrada de mercadería y recalcula el costo promedio ponderado.
func (i *Ingredient) Receive(qty, unitCost decimal.Decimal, now time.Time) {
	i.AverageCost = WeightedAverageCost(i.Quantity, i.AverageCost, qty, unitCost)
	i.Quantity = i.Quantity.Add(qty)
	i.UpdatedAt = now
}

// WeightedAverageCost = ((stock * costo) + (entrada * costoEntrada)) / (stock + entrada).
// Un stock negativo se trata como cero; sin unidades resultantes devuelve cero.
func WeightedAverageCost(stock, cost, in, inCost decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	sum := stock.Add(in)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return stock.Mul(cost).Add(in.Mul(inCost)).Div(sum).Round(CostPlaces)
}
