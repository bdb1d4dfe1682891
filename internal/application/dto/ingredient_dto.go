package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientRequest entrada para crear o actualizar un ingrediente.
// Quantity es obligatoria al crear; en una actualización nil conserva la cantidad guardada.
// Unit vacío = "kg"; MinQuantity y AverageCost nil = 0 en creación.
type IngredientRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Unit        string           `json:"unit" validate:"omitempty,max=20"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	AverageCost *decimal.Decimal `json:"average_cost"`
}

// StockEntryRequest entrada de mercadería: suma cantidad y recalcula el costo promedio.
type StockEntryRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// IngredientResponse salida de un ingrediente con el flag derivado de reposición.
type IngredientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	MinQuantity  decimal.Decimal `json:"min_quantity"`
	AverageCost  decimal.Decimal `json:"average_cost"`
	NeedsRestock bool            `json:"needs_restock"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
