package memory

import (
	"context"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct {
	t *table[entity.Sale]
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{t: newTable(func(s *entity.Sale) string { return s.ID })}
}

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error { return r.t.insert(s) }
func (r *SaleRepo) Update(_ context.Context, s *entity.Sale) error { return r.t.update(s) }

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.t.get(id), nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	return r.t.filter(nil), nil
}

func (r *SaleRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool { return s.ClientID == clientID }), nil
}

func (r *SaleRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool { return s.ProductID == productID }), nil
}

func (r *SaleRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool {
		return !s.SoldAt.Before(from) && !s.SoldAt.After(to)
	}), nil
}

func (r *SaleRepo) ListByPaymentStatus(_ context.Context, status entity.PaymentStatus) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool { return s.PaymentStatus == status }), nil
}

func (r *SaleRepo) ListByPaymentMethod(_ context.Context, method entity.PaymentMethod) ([]*entity.Sale, error) {
	return r.t.filter(func(s *entity.Sale) bool { return s.PaymentMethod == method }), nil
}

func (r *SaleRepo) ExistsByProduct(_ context.Context, productID string) (bool, error) {
	return r.t.any(func(s *entity.Sale) bool { return s.ProductID == productID }), nil
}

func (r *SaleRepo) ExistsByClient(_ context.Context, clientID string) (bool, error) {
	return r.t.any(func(s *entity.Sale) bool { return s.ClientID == clientID }), nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
