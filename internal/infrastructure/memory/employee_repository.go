package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo funcionarios en memoria.
type EmployeeRepo struct {
	t *table[entity.Employee]
}

// NewEmployeeRepository construye el repositorio.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{t: newTable(func(e *entity.Employee) string { return e.ID })}
}

func (r *EmployeeRepo) Create(_ context.Context, e *entity.Employee) error { return r.t.insert(e) }
func (r *EmployeeRepo) Update(_ context.Context, e *entity.Employee) error { return r.t.update(e) }

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return r.t.get(id), nil
}

func (r *EmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	return r.t.first(func(e *entity.Employee) bool { return strings.EqualFold(e.Email, email) }), nil
}

func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	return r.t.filter(nil), nil
}

func (r *EmployeeRepo) SearchByName(_ context.Context, name string) ([]*entity.Employee, error) {
	return r.t.filter(func(e *entity.Employee) bool { return containsFold(e.Name, name) }), nil
}

func (r *EmployeeRepo) ListByRole(_ context.Context, role entity.Role) ([]*entity.Employee, error) {
	return r.t.filter(func(e *entity.Employee) bool { return e.Role == role }), nil
}

func (r *EmployeeRepo) ListByActive(_ context.Context, active bool) ([]*entity.Employee, error) {
	return r.t.filter(func(e *entity.Employee) bool { return e.Active == active }), nil
}

func (r *EmployeeRepo) Delete(_ context.Context, id string) (bool, error) { return r.t.delete(id), nil }
