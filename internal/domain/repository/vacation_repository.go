package repository

import (
	"context"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// VacationRepository define el puerto de persistencia para Vacation (ferias).
type VacationRepository interface {
	Create(ctx context.Context, vacation *entity.Vacation) error
	Update(ctx context.Context, vacation *entity.Vacation) error
	GetByID(ctx context.Context, id string) (*entity.Vacation, error)
	List(ctx context.Context) ([]*entity.Vacation, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Vacation, error)
	ListByStatus(ctx context.Context, status entity.VacationStatus) ([]*entity.Vacation, error)
	// ListOverlapping devuelve las vacaciones del funcionario con inicio <= end y fin >= start.
	ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]*entity.Vacation, error)
	ExistsByEmployee(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
