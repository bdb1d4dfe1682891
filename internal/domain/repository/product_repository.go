package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
