package repository

import (
	"context"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	Update(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error)
	// ListBetween devuelve las ventas con SoldAt en [from, to].
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
	ListByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Sale, error)
	ListByPaymentMethod(ctx context.Context, method entity.PaymentMethod) ([]*entity.Sale, error)
	ExistsByProduct(ctx context.Context, productID string) (bool, error)
	ExistsByClient(ctx context.Context, clientID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
