package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository. client_id NULL = venta sin cliente.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, COALESCE(client_id::text, ''), product_id, weight, price_per_kg, total,
	payment_method, payment_status, sold_at, due_at`

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	var method, status string
	if err := row.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Weight, &s.PricePerKg, &s.Total,
		&method, &status, &s.SoldAt, &s.DueAt); err != nil {
		return nil, err
	}
	s.PaymentMethod = entity.PaymentMethod(method)
	s.PaymentStatus = entity.PaymentStatus(status)
	return &s, nil
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, product_id, weight, price_per_kg, total, payment_method, payment_status, sold_at, due_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, s.ID, s.ClientID, s.ProductID, s.Weight, s.PricePerKg, s.Total,
		string(s.PaymentMethod), string(s.PaymentStatus), s.SoldAt, s.DueAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente o producto inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) Update(ctx context.Context, s *entity.Sale) error {
	query := `
		UPDATE sales SET client_id = NULLIF($2, '')::uuid, product_id = $3, weight = $4, price_per_kg = $5, total = $6,
			payment_method = $7, payment_status = $8, due_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.ClientID, s.ProductID, s.Weight, s.PricePerKg, s.Total,
		string(s.PaymentMethod), string(s.PaymentStatus), s.DueAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cliente o producto inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := one(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id), scanSale)
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// List lista todas las ventas en orden de registro.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sold_at, id`)
}

func (r *SaleRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE client_id = $1 ORDER BY sold_at, id`, clientID)
}

func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE product_id = $1 ORDER BY sold_at, id`, productID)
}

// ListBetween lista las ventas con sold_at en [from, to].
func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE sold_at BETWEEN $1 AND $2 ORDER BY sold_at, id`, from, to)
}

func (r *SaleRepo) ListByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE payment_status = $1 ORDER BY sold_at, id`, string(status))
}

func (r *SaleRepo) ListByPaymentMethod(ctx context.Context, method entity.PaymentMethod) ([]*entity.Sale, error) {
	return r.list(ctx, `SELECT `+saleColumns+` FROM sales WHERE payment_method = $1 ORDER BY sold_at, id`, string(method))
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []*entity.Sale{}, nil
		}
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collect(rows, scanSale)
}

func (r *SaleRepo) ExistsByProduct(ctx context.Context, productID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE product_id = $1)`, productID)
}

func (r *SaleRepo) ExistsByClient(ctx context.Context, clientID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM sales WHERE client_id = $1)`, clientID)
}

func (r *SaleRepo) exists(ctx context.Context, query, id string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists sale: %w", err)
	}
	return ok, nil
}

func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete sale: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
