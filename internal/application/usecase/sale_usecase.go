package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	repo     repository.SaleRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	now      Clock
	crud     crud[entity.Sale, dto.SaleResponse]
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, products repository.ProductRepository,
	clients repository.ClientRepository, now Clock) *SaleUseCase {
	uc := &SaleUseCase{repo: repo, products: products, clients: clients, now: now.orDefault()}
	uc.crud = crud[entity.Sale, dto.SaleResponse]{
		kind:   "venta",
		get:    repo.GetByID,
		remove: repo.Delete,
		mapAll: uc.toResponses,
	}
	return uc
}

func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *SaleUseCase) ListByClient(ctx context.Context, clientID string) ([]dto.SaleResponse, error) {
	if !wellFormedID(clientID) {
		return []dto.SaleResponse{}, nil
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Sale, error) {
		return uc.repo.ListByClient(ctx, clientID)
	})
}

func (uc *SaleUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.SaleResponse, error) {
	if !wellFormedID(productID) {
		return []dto.SaleResponse{}, nil
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Sale, error) {
		return uc.repo.ListByProduct(ctx, productID)
	})
}

// ListBetween lista ventas con fecha en [from, to].
func (uc *SaleUseCase) ListBetween(ctx context.Context, from, to time.Time) ([]dto.SaleResponse, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: la fecha inicial no puede ser posterior a la final", domain.ErrInvalidInput)
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Sale, error) {
		return uc.repo.ListBetween(ctx, from, to)
	})
}

func (uc *SaleUseCase) ListByPaymentStatus(ctx context.Context, status string) ([]dto.SaleResponse, error) {
	st, err := validation.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Sale, error) {
		return uc.repo.ListByPaymentStatus(ctx, st)
	})
}

func (uc *SaleUseCase) ListByPaymentMethod(ctx context.Context, method string) ([]dto.SaleResponse, error) {
	m, err := validation.ParsePaymentMethod(method)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Sale, error) {
		return uc.repo.ListByPaymentMethod(ctx, m)
	})
}

// Create registra una venta. El precio por defecto es el del producto; el total
// y el vencimiento se derivan.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	now := uc.now()
	s := &entity.Sale{ID: uuid.New().String(), SoldAt: now}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	s.RefreshDueDate(now)
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("sale_id", s.ID).Str("total", s.Total.StringFixed(2)).
		Str("payment_method", string(s.PaymentMethod)).Msg("venta registrada")
	return uc.crud.one(ctx, s)
}

// Update reemplaza los datos de la venta y recalcula total y vencimiento.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	s, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	s.RefreshDueDate(uc.now())
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, s)
}

func (uc *SaleUseCase) apply(ctx context.Context, s *entity.Sale, in dto.SaleRequest) error {
	if err := validation.Required("producto", in.ProductID); err != nil {
		return err
	}
	if err := validation.Positive("peso vendido", in.Weight); err != nil {
		return err
	}
	if err := validation.MaxScale("peso vendido", in.Weight, entity.WeightPlaces); err != nil {
		return err
	}
	method, err := validation.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return err
	}
	status, err := validation.ParsePaymentStatus(in.PaymentStatus)
	if err != nil {
		return err
	}

	product, err := find(ctx, uc.products.GetByID, in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	if in.ClientID != "" {
		client, err := find(ctx, uc.clients.GetByID, in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClientID)
		}
	}

	price := product.PricePerKg
	if in.PricePerKg != nil {
		price = *in.PricePerKg
	}
	if err := validation.Positive("precio por kilo", price); err != nil {
		return err
	}
	if err := validation.MaxScale("precio por kilo", price, entity.PricePlaces); err != nil {
		return err
	}

	s.ClientID = in.ClientID
	s.ProductID = product.ID
	s.PaymentMethod = method
	s.PaymentStatus = status
	s.SetWeight(in.Weight)
	s.SetPricePerKg(price)
	return nil
}

// UpdatePaymentStatus cambia el estado de pago (paid | pending).
// Pagar una venta limpia el vencimiento; un fiado que vuelve a pendiente conserva el suyo.
func (uc *SaleUseCase) UpdatePaymentStatus(ctx context.Context, id, status string) (*dto.SaleResponse, error) {
	if err := validation.Required("estado", status); err != nil {
		return nil, err
	}
	st, err := validation.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	s, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	keepDue := st == entity.PaymentPending && s.PaymentStatus == entity.PaymentPending && s.DueAt != nil
	s.PaymentStatus = st
	if !keepDue {
		s.RefreshDueDate(uc.now())
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("sale_id", id).Str("payment_status", string(st)).Msg("estado de pago actualizado")
	return uc.crud.one(ctx, s)
}

func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, nil)
}

// toResponses mapea ventas resolviendo nombres de producto y cliente una vez por ID.
func (uc *SaleUseCase) toResponses(ctx context.Context, sales []*entity.Sale) ([]dto.SaleResponse, error) {
	products := newLookup(uc.products.GetByID)
	clients := newLookup(uc.clients.GetByID)
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		r := dto.SaleResponse{
			ID:            s.ID,
			ClientID:      s.ClientID,
			ClientName:    dto.NoClientLabel,
			ProductID:     s.ProductID,
			Weight:        s.Weight,
			PricePerKg:    s.PricePerKg,
			Total:         s.Total,
			PaymentMethod: string(s.PaymentMethod),
			PaymentStatus: string(s.PaymentStatus),
			SoldAt:        s.SoldAt,
			DueAt:         s.DueAt,
		}
		p, err := products.find(ctx, s.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			r.ProductName = p.Name
		}
		if s.HasClient() {
			c, err := clients.find(ctx, s.ClientID)
			if err != nil {
				return nil, err
			}
			if c != nil {
				r.ClientName = c.Name
			}
		}
		out = append(out, r)
	}
	return out, nil
}
