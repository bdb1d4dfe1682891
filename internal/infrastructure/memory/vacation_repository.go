package memory

import (
	"context"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.VacationRepository = (*VacationRepo)(nil)

// VacationRepo vacaciones en memoria.
type VacationRepo struct {
	t *table[entity.Vacation]
}

// NewVacationRepository construye el repositorio.
func NewVacationRepository() *VacationRepo {
	return &VacationRepo{t: newTable(func(v *entity.Vacation) string { return v.ID })}
}

func (r *VacationRepo) Create(_ context.Context, v *entity.Vacation) error { return r.t.insert(v) }
func (r *VacationRepo) Update(_ context.Context, v *entity.Vacation) error { return r.t.update(v) }

func (r *VacationRepo) GetByID(_ context.Context, id string) (*entity.Vacation, error) {
	return r.t.get(id), nil
}

func (r *VacationRepo) List(_ context.Context) ([]*entity.Vacation, error) {
	return r.t.filter(nil), nil
}

func (r *VacationRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Vacation, error) {
	return r.t.filter(func(v *entity.Vacation) bool { return v.EmployeeID == employeeID }), nil
}

func (r *VacationRepo) ListByStatus(_ context.Context, status entity.VacationStatus) ([]*entity.Vacation, error) {
	return r.t.filter(func(v *entity.Vacation) bool { return v.Status == status }), nil
}

func (r *VacationRepo) ListOverlapping(_ context.Context, employeeID string, start, end time.Time) ([]*entity.Vacation, error) {
	return r.t.filter(func(v *entity.Vacation) bool {
		return v.EmployeeID == employeeID && v.Overlaps(start, end)
	}), nil
}

func (r *VacationRepo) ExistsByEmployee(_ context.Context, employeeID string) (bool, error) {
	return r.t.any(func(v *entity.Vacation) bool { return v.EmployeeID == employeeID }), nil
}

func (r *VacationRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
