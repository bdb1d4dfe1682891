package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo stock de ingredientes en memoria.
type IngredientRepo struct {
	t *table[entity.Ingredient]
}

// NewIngredientRepository construye el repositorio.
func NewIngredientRepository() *IngredientRepo {
	return &IngredientRepo{t: newTable(func(i *entity.Ingredient) string { return i.ID })}
}

func (r *IngredientRepo) Create(_ context.Context, i *entity.Ingredient) error { return r.t.insert(i) }
func (r *IngredientRepo) Update(_ context.Context, i *entity.Ingredient) error { return r.t.update(i) }

func (r *IngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	return r.t.get(id), nil
}

func (r *IngredientRepo) GetByName(_ context.Context, name string) (*entity.Ingredient, error) {
	return r.t.first(func(i *entity.Ingredient) bool { return i.Name == name }), nil
}

func (r *IngredientRepo) List(_ context.Context) ([]*entity.Ingredient, error) {
	return r.t.filter(nil), nil
}

func (r *IngredientRepo) SearchByName(_ context.Context, name string) ([]*entity.Ingredient, error) {
	return r.t.filter(func(i *entity.Ingredient) bool { return containsFold(i.Name, name) }), nil
}

func (r *IngredientRepo) ListQuantityAtMost(_ context.Context, max decimal.Decimal) ([]*entity.Ingredient, error) {
	return r.t.filter(func(i *entity.Ingredient) bool { return i.Quantity.LessThanOrEqual(max) }), nil
}

func (r *IngredientRepo) ListNeedingRestock(_ context.Context) ([]*entity.Ingredient, error) {
	return r.t.filter(func(i *entity.Ingredient) bool { return i.NeedsRestock() }), nil
}

func (r *IngredientRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
