package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para crear o actualizar un producto. El precio se valida en dominio (> 0).
type ProductRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}
