package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo  repository.ProductRepository
	sales repository.SaleRepository
	crud  crud[entity.Product, dto.ProductResponse]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, sales repository.SaleRepository) *ProductUseCase {
	return &ProductUseCase{
		repo:  repo,
		sales: sales,
		crud: crud[entity.Product, dto.ProductResponse]{
			kind:   "producto",
			get:    repo.GetByID,
			remove: repo.Delete,
			mapAll: mapEach(toProductResponse),
		},
	}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *ProductUseCase) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Product, error) {
		return uc.repo.SearchByName(ctx, name)
	})
}

// ListByPriceRange lista productos con precio por kilo en [min, max].
func (uc *ProductUseCase) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]dto.ProductResponse, error) {
	if min.GreaterThan(max) {
		return nil, fmt.Errorf("%w: el precio mínimo no puede ser mayor que el máximo", domain.ErrInvalidInput)
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Product, error) {
		return uc.repo.ListByPriceRange(ctx, min, max)
	})
}

// Create crea un producto con nombre único y precio positivo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p := &entity.Product{ID: uuid.New().String()}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("product_id", p.ID).Str("name", p.Name).Msg("producto creado")
	return uc.crud.one(ctx, p)
}

func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, p)
}

func (uc *ProductUseCase) apply(ctx context.Context, p *entity.Product, in dto.ProductRequest) error {
	name := strings.TrimSpace(in.Name)
	if err := validation.Required("nombre", name); err != nil {
		return err
	}
	if err := validation.Positive("precio por kilo", in.PricePerKg); err != nil {
		return err
	}
	if err := validation.MaxScale("precio por kilo", in.PricePerKg, entity.PricePlaces); err != nil {
		return err
	}
	other, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil {
		if err := validation.Unique(other.ID, p.ID, "producto", name); err != nil {
			return err
		}
	}
	p.Name = name
	p.PricePerKg = in.PricePerKg
	return nil
}

// Delete elimina un producto. Se rechaza si tiene ventas.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, func(p *entity.Product) error {
		exists, err := uc.sales.ExistsByProduct(ctx, p.ID)
		return blockIf(exists, err, "no se puede eliminar un producto con ventas asociadas")
	})
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, PricePerKg: p.PricePerKg}
}
