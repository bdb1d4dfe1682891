package repository

import (
	"context"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia para Shift (expediente).
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	Update(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id string) (*entity.Shift, error)
	List(ctx context.Context) ([]*entity.Shift, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Shift, error)
	ListByDay(ctx context.Context, day entity.Weekday) ([]*entity.Shift, error)
	ListByPeriod(ctx context.Context, period entity.WorkPeriod) ([]*entity.Shift, error)
	ListByEmployeeAndDay(ctx context.Context, employeeID string, day entity.Weekday) ([]*entity.Shift, error)
	ExistsByEmployee(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
