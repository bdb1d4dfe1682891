package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para el stock de ingredientes.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	GetByName(ctx context.Context, name string) (*entity.Ingredient, error)
	List(ctx context.Context) ([]*entity.Ingredient, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Ingredient, error)
	// ListQuantityAtMost devuelve los ingredientes con cantidad <= max.
	ListQuantityAtMost(ctx context.Context, max decimal.Decimal) ([]*entity.Ingredient, error)
	// ListNeedingRestock devuelve los ingredientes con cantidad <= mínimo.
	ListNeedingRestock(ctx context.Context) ([]*entity.Ingredient, error)
	Delete(ctx context.Context, id string) (bool, error)
}
