package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.VacationRepository = (*VacationRepo)(nil)

// VacationRepo implementación de VacationRepository. start_date y end_date son DATE.
type VacationRepo struct {
	q Querier
}

// NewVacationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVacationRepository(q Querier) *VacationRepo {
	return &VacationRepo{q: q}
}

const vacationColumns = `id, employee_id, start_date, end_date, requested_days, status, requested_at, COALESCE(notes, '')`

func scanVacation(row rowScanner) (*entity.Vacation, error) {
	var v entity.Vacation
	var status string
	if err := row.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.RequestedDays, &status, &v.RequestedAt, &v.Notes); err != nil {
		return nil, err
	}
	v.Status = entity.VacationStatus(status)
	return &v, nil
}

func (r *VacationRepo) Create(ctx context.Context, v *entity.Vacation) error {
	query := `
		INSERT INTO vacations (id, employee_id, start_date, end_date, requested_days, status, requested_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))`
	_, err := r.q.Exec(ctx, query, v.ID, v.EmployeeID, v.StartDate, v.EndDate, v.RequestedDays,
		string(v.Status), v.RequestedAt, v.Notes)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: funcionario inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("insert vacation: %w", err)
	}
	return nil
}

func (r *VacationRepo) Update(ctx context.Context, v *entity.Vacation) error {
	query := `
		UPDATE vacations SET employee_id = $2, start_date = $3, end_date = $4, requested_days = $5,
			status = $6, notes = NULLIF($7, '')
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, v.ID, v.EmployeeID, v.StartDate, v.EndDate, v.RequestedDays,
		string(v.Status), v.Notes)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: funcionario inexistente", domain.ErrNotFound)
		}
		return fmt.Errorf("update vacation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VacationRepo) GetByID(ctx context.Context, id string) (*entity.Vacation, error) {
	v, err := one(r.q.QueryRow(ctx, `SELECT `+vacationColumns+` FROM vacations WHERE id = $1`, id), scanVacation)
	if err != nil {
		return nil, fmt.Errorf("get vacation: %w", err)
	}
	return v, nil
}

func (r *VacationRepo) List(ctx context.Context) ([]*entity.Vacation, error) {
	return r.list(ctx, `SELECT `+vacationColumns+` FROM vacations ORDER BY start_date, id`)
}

func (r *VacationRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Vacation, error) {
	return r.list(ctx, `SELECT `+vacationColumns+` FROM vacations WHERE employee_id = $1 ORDER BY start_date`, employeeID)
}

func (r *VacationRepo) ListByStatus(ctx context.Context, status entity.VacationStatus) ([]*entity.Vacation, error) {
	return r.list(ctx, `SELECT `+vacationColumns+` FROM vacations WHERE status = $1 ORDER BY start_date`, string(status))
}

// ListOverlapping lista vacaciones del funcionario con start_date <= end y end_date >= start.
func (r *VacationRepo) ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]*entity.Vacation, error) {
	query := `SELECT ` + vacationColumns + ` FROM vacations
		WHERE employee_id = $1 AND start_date <= $3::date AND end_date >= $2::date ORDER BY start_date`
	return r.list(ctx, query, employeeID, entity.CivilDate(start), entity.CivilDate(end))
}

func (r *VacationRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Vacation, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []*entity.Vacation{}, nil
		}
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	return collect(rows, scanVacation)
}

func (r *VacationRepo) ExistsByEmployee(ctx context.Context, employeeID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vacations WHERE employee_id = $1)`, employeeID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists vacation: %w", err)
	}
	return ok, nil
}

func (r *VacationRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM vacations WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete vacation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
