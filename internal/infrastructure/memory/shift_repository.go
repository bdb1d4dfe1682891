package memory

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo expedientes en memoria.
type ShiftRepo struct {
	t *table[entity.Shift]
}

// NewShiftRepository construye el repositorio.
func NewShiftRepository() *ShiftRepo {
	return &ShiftRepo{t: newTable(func(s *entity.Shift) string { return s.ID })}
}

func (r *ShiftRepo) Create(_ context.Context, s *entity.Shift) error { return r.t.insert(s) }
func (r *ShiftRepo) Update(_ context.Context, s *entity.Shift) error { return r.t.update(s) }

func (r *ShiftRepo) GetByID(_ context.Context, id string) (*entity.Shift, error) {
	return r.t.get(id), nil
}

func (r *ShiftRepo) List(_ context.Context) ([]*entity.Shift, error) {
	return r.t.filter(nil), nil
}

func (r *ShiftRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Shift, error) {
	return r.t.filter(func(s *entity.Shift) bool { return s.EmployeeID == employeeID }), nil
}

func (r *ShiftRepo) ListByDay(_ context.Context, day entity.Weekday) ([]*entity.Shift, error) {
	return r.t.filter(func(s *entity.Shift) bool { return s.Day == day }), nil
}

func (r *ShiftRepo) ListByPeriod(_ context.Context, period entity.WorkPeriod) ([]*entity.Shift, error) {
	return r.t.filter(func(s *entity.Shift) bool { return s.Period == period }), nil
}

func (r *ShiftRepo) ListByEmployeeAndDay(_ context.Context, employeeID string, day entity.Weekday) ([]*entity.Shift, error) {
	return r.t.filter(func(s *entity.Shift) bool { return s.EmployeeID == employeeID && s.Day == day }), nil
}

func (r *ShiftRepo) ExistsByEmployee(_ context.Context, employeeID string) (bool, error) {
	return r.t.any(func(s *entity.Shift) bool { return s.EmployeeID == employeeID }), nil
}

func (r *ShiftRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
