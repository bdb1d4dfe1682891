package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	t *table[entity.Product]
}

// NewProductRepository construye el repositorio.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{t: newTable(func(p *entity.Product) string { return p.ID })}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error { return r.t.insert(p) }
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error { return r.t.update(p) }

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.t.get(id), nil
}

func (r *ProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	return r.t.first(func(p *entity.Product) bool { return p.Name == name }), nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.t.filter(nil), nil
}

func (r *ProductRepo) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool { return containsFold(p.Name, name) }), nil
}

func (r *ProductRepo) ListByPriceRange(_ context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	return r.t.filter(func(p *entity.Product) bool {
		return p.PricePerKg.GreaterThanOrEqual(min) && p.PricePerKg.LessThanOrEqual(max)
	}), nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
