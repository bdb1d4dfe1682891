package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, name, quantity, unit, min_quantity, average_cost, updated_at`

func scanIngredient(row rowScanner) (*entity.Ingredient, error) {
	var i entity.Ingredient
	if err := row.Scan(&i.ID, &i.Name, &i.Quantity, &i.Unit, &i.MinQuantity, &i.AverageCost, &i.UpdatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, quantity, unit, min_quantity, average_cost, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, i.ID, i.Name, i.Quantity, i.Unit, i.MinQuantity, i.AverageCost, i.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, quantity = $3, unit = $4, min_quantity = $5, average_cost = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, i.ID, i.Name, i.Quantity, i.Unit, i.MinQuantity, i.AverageCost, i.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	i, err := one(r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id), scanIngredient)
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return i, nil
}

func (r *IngredientRepo) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	i, err := one(r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE name = $1`, name), scanIngredient)
	if err != nil {
		return nil, fmt.Errorf("get ingredient by name: %w", err)
	}
	return i, nil
}

func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	return r.list(ctx, `SELECT `+ingredientColumns+` FROM ingredients ORDER BY name`)
}

func (r *IngredientRepo) SearchByName(ctx context.Context, name string) ([]*entity.Ingredient, error) {
	return r.list(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE name ILIKE $1 ORDER BY name`, likePattern(name))
}

// ListQuantityAtMost lista ingredientes con quantity <= max.
func (r *IngredientRepo) ListQuantityAtMost(ctx context.Context, max decimal.Decimal) ([]*entity.Ingredient, error) {
	return r.list(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE quantity <= $1 ORDER BY name`, max)
}

// ListNeedingRestock lista ingredientes con quantity <= min_quantity.
func (r *IngredientRepo) ListNeedingRestock(ctx context.Context) ([]*entity.Ingredient, error) {
	return r.list(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE quantity <= min_quantity ORDER BY name`)
}

func (r *IngredientRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []*entity.Ingredient{}, nil
		}
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return collect(rows, scanIngredient)
}

func (r *IngredientRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete ingredient: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
