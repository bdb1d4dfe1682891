package repository

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Employee, error)
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Employee, error)
	ListByActive(ctx context.Context, active bool) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
