package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// IngredientUseCase casos de uso del stock de ingredientes.
type IngredientUseCase struct {
	repo repository.IngredientRepository
	now  Clock
	crud crud[entity.Ingredient, dto.IngredientResponse]
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(repo repository.IngredientRepository, now Clock) *IngredientUseCase {
	return &IngredientUseCase{
		repo: repo,
		now:  now.orDefault(),
		crud: crud[entity.Ingredient, dto.IngredientResponse]{
			kind:   "ingrediente",
			get:    repo.GetByID,
			remove: repo.Delete,
			mapAll: mapEach(toIngredientResponse),
		},
	}
}

func (uc *IngredientUseCase) List(ctx context.Context) ([]dto.IngredientResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *IngredientUseCase) SearchByName(ctx context.Context, name string) ([]dto.IngredientResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Ingredient, error) {
		return uc.repo.SearchByName(ctx, name)
	})
}

// ListOutOfStock lista ingredientes sin stock (cantidad <= 0).
func (uc *IngredientUseCase) ListOutOfStock(ctx context.Context) ([]dto.IngredientResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Ingredient, error) {
		return uc.repo.ListQuantityAtMost(ctx, decimal.Zero)
	})
}

// ListNeedingRestock lista ingredientes con cantidad <= mínimo.
func (uc *IngredientUseCase) ListNeedingRestock(ctx context.Context) ([]dto.IngredientResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.ListNeedingRestock)
}

// Create registra un ingrediente. Unidad por defecto "kg"; mínimo y costo por defecto 0.
func (uc *IngredientUseCase) Create(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	if err := validation.Present("cantidad", in.Quantity); err != nil {
		return nil, err
	}
	i := &entity.Ingredient{
		ID:          uuid.New().String(),
		Quantity:    decimal.Zero,
		Unit:        entity.DefaultUnit,
		MinQuantity: decimal.Zero,
		AverageCost: decimal.Zero,
		UpdatedAt:   uc.now(),
	}
	if err := uc.apply(ctx, i, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("ingredient_id", i.ID).Str("name", i.Name).Msg("ingrediente creado")
	return uc.crud.one(ctx, i)
}

func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	i, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, i, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, i)
}

func (uc *IngredientUseCase) apply(ctx context.Context, i *entity.Ingredient, in dto.IngredientRequest) error {
	name := strings.TrimSpace(in.Name)
	if err := validation.Required("nombre", name); err != nil {
		return err
	}
	if in.Quantity != nil {
		if err := validation.NonNegative("cantidad", *in.Quantity); err != nil {
			return err
		}
		if err := validation.MaxScale("cantidad", *in.Quantity, entity.QuantityPlaces); err != nil {
			return err
		}
	}
	if in.MinQuantity != nil {
		if err := validation.NonNegative("stock mínimo", *in.MinQuantity); err != nil {
			return err
		}
		if err := validation.MaxScale("stock mínimo", *in.MinQuantity, entity.QuantityPlaces); err != nil {
			return err
		}
	}
	if in.AverageCost != nil {
		if err := validation.NonNegative("costo promedio", *in.AverageCost); err != nil {
			return err
		}
		if err := validation.MaxScale("costo promedio", *in.AverageCost, entity.CostPlaces); err != nil {
			return err
		}
	}
	other, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil {
		if err := validation.Unique(other.ID, i.ID, "ingrediente", name); err != nil {
			return err
		}
	}

	now := uc.now()
	i.Name = name
	if unit := strings.TrimSpace(in.Unit); unit != "" {
		i.Unit = unit
	}
	if in.MinQuantity != nil {
		i.MinQuantity = *in.MinQuantity
	}
	if in.Quantity != nil {
		i.SetQuantity(*in.Quantity, now)
	}
	if in.AverageCost != nil {
		i.SetAverageCost(*in.AverageCost, now)
	}
	return nil
}

// UpdateQuantity ajusta la cantidad en stock. No admite valores negativos.
func (uc *IngredientUseCase) UpdateQuantity(ctx context.Context, id string, q decimal.Decimal) (*dto.IngredientResponse, error) {
	if err := validation.NonNegative("cantidad", q); err != nil {
		return nil, err
	}
	if err := validation.MaxScale("cantidad", q, entity.QuantityPlaces); err != nil {
		return nil, err
	}
	return uc.adjust(ctx, id, func(i *entity.Ingredient) { i.SetQuantity(q, uc.now()) })
}

// UpdateCost ajusta el costo promedio. No admite valores negativos.
func (uc *IngredientUseCase) UpdateCost(ctx context.Context, id string, cost decimal.Decimal) (*dto.IngredientResponse, error) {
	if err := validation.NonNegative("costo promedio", cost); err != nil {
		return nil, err
	}
	if err := validation.MaxScale("costo promedio", cost, entity.CostPlaces); err != nil {
		return nil, err
	}
	return uc.adjust(ctx, id, func(i *entity.Ingredient) { i.SetAverageCost(cost, uc.now()) })
}

// Receive registra una entrada: la cantidad debe ser positiva y el costo unitario >= 0.
func (uc *IngredientUseCase) Receive(ctx context.Context, id string, in dto.StockEntryRequest) (*dto.IngredientResponse, error) {
	if err := validation.Positive("cantidad recibida", in.Quantity); err != nil {
		return nil, err
	}
	if err := validation.MaxScale("cantidad recibida", in.Quantity, entity.QuantityPlaces); err != nil {
		return nil, err
	}
	if err := validation.NonNegative("costo unitario", in.UnitCost); err != nil {
		return nil, err
	}
	if err := validation.MaxScale("costo unitario", in.UnitCost, entity.CostPlaces); err != nil {
		return nil, err
	}
	return uc.adjust(ctx, id, func(i *entity.Ingredient) {
		i.Receive(in.Quantity, in.UnitCost, uc.now())
		zerolog.Ctx(ctx).Info().Str("ingredient_id", i.ID).
			Str("received", in.Quantity.String()).Str("average_cost", i.AverageCost.String()).
			Msg("entrada de ingrediente")
	})
}

func (uc *IngredientUseCase) adjust(ctx context.Context, id string, fn func(*entity.Ingredient)) (*dto.IngredientResponse, error) {
	i, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(i)
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	if i.NeedsRestock() {
		zerolog.Ctx(ctx).Warn().Str("ingredient_id", i.ID).Str("name", i.Name).Msg("ingrediente por debajo del mínimo")
	}
	return uc.crud.one(ctx, i)
}

func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, nil)
}

func toIngredientResponse(i *entity.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:           i.ID,
		Name:         i.Name,
		Quantity:     i.Quantity,
		Unit:         i.Unit,
		MinQuantity:  i.MinQuantity,
		AverageCost:  i.AverageCost,
		NeedsRestock: i.NeedsRestock(),
		UpdatedAt:    i.UpdatedAt,
	}
}
