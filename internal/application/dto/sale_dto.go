package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoClientLabel nombre mostrado en ventas sin cliente.
const NoClientLabel = "Cliente não informado"

// SaleRequest entrada para registrar o actualizar una venta.
// PricePerKg nil = precio actual del producto; forma y estado vacíos = cash / paid.
type SaleRequest struct {
	ClientID      string           `json:"client_id" validate:"omitempty,uuid"`
	ProductID     string           `json:"product_id" validate:"required,uuid"`
	Weight        decimal.Decimal  `json:"weight"`
	PricePerKg    *decimal.Decimal `json:"price_per_kg"`
	PaymentMethod string           `json:"payment_method"`
	PaymentStatus string           `json:"payment_status"`
}

// SaleResponse salida de una venta con nombres de cliente y producto.
type SaleResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"client_id,omitempty"`
	ClientName    string          `json:"client_name"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Weight        decimal.Decimal `json:"weight"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	SoldAt        time.Time       `json:"sold_at"`
	DueAt         *time.Time      `json:"due_at"`
}
