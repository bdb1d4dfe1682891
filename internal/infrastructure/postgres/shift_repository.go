package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de ShiftRepository. La tabla tiene UNIQUE (employee_id, day).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, employee_id, day, entry_time, exit_time, period`

func scanShift(row rowScanner) (*entity.Shift, error) {
	var s entity.Shift
	var day, period string
	if err := row.Scan(&s.ID, &s.EmployeeID, &day, &s.EntryTime, &s.ExitTime, &period); err != nil {
		return nil, err
	}
	s.Day = entity.Weekday(day)
	s.Period = entity.WorkPeriod(period)
	return &s, nil
}

func (r *ShiftRepo) Create(ctx context.Context, s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employee_id, day, entry_time, exit_time, period)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.EmployeeID, string(s.Day), s.EntryTime, s.ExitTime, string(s.Period))
	return r.writeErr("insert shift", err)
}

func (r *ShiftRepo) Update(ctx context.Context, s *entity.Shift) error {
	query := `
		UPDATE shifts SET employee_id = $2, day = $3, entry_time = $4, exit_time = $5, period = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.EmployeeID, string(s.Day), s.EntryTime, s.ExitTime, string(s.Period))
	if err := r.writeErr("update shift", err); err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ShiftRepo) writeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w: el funcionario ya tiene expediente ese día", domain.ErrConflict)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: funcionario inexistente", domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.Shift, error) {
	s, err := one(r.q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id), scanShift)
	if err != nil {
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

func (r *ShiftRepo) List(ctx context.Context) ([]*entity.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY employee_id, day`)
}

func (r *ShiftRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE employee_id = $1 ORDER BY day`, employeeID)
}

func (r *ShiftRepo) ListByDay(ctx context.Context, day entity.Weekday) ([]*entity.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE day = $1 ORDER BY entry_time`, string(day))
}

func (r *ShiftRepo) ListByPeriod(ctx context.Context, period entity.WorkPeriod) ([]*entity.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE period = $1 ORDER BY day, entry_time`, string(period))
}

func (r *ShiftRepo) ListByEmployeeAndDay(ctx context.Context, employeeID string, day entity.Weekday) ([]*entity.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE employee_id = $1 AND day = $2`, employeeID, string(day))
}

func (r *ShiftRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []*entity.Shift{}, nil
		}
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	return collect(rows, scanShift)
}

func (r *ShiftRepo) ExistsByEmployee(ctx context.Context, employeeID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shifts WHERE employee_id = $1)`, employeeID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists shift: %w", err)
	}
	return ok, nil
}

func (r *ShiftRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete shift: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
