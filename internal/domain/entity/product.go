package entity

import "github.com/shopspring/decimal"

// Product representa un producto vendido a granel (precio por kilo).
type Product struct {
	ID         string
	Name       string // único
	PricePerKg decimal.Decimal
}
