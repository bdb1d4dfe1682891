package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// ShiftUseCase casos de uso de expedientes (horario semanal por funcionario).
type ShiftUseCase struct {
	repo      repository.ShiftRepository
	employees repository.EmployeeRepository
	crud      crud[entity.Shift, dto.ShiftResponse]
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository, employees repository.EmployeeRepository) *ShiftUseCase {
	uc := &ShiftUseCase{repo: repo, employees: employees}
	uc.crud = crud[entity.Shift, dto.ShiftResponse]{
		kind:   "expediente",
		get:    repo.GetByID,
		remove: repo.Delete,
		mapAll: uc.toResponses,
	}
	return uc
}

func (uc *ShiftUseCase) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *ShiftUseCase) GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *ShiftUseCase) ListByEmployee(ctx context.Context, employeeID string) ([]dto.ShiftResponse, error) {
	if !wellFormedID(employeeID) {
		return []dto.ShiftResponse{}, nil
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Shift, error) {
		return uc.repo.ListByEmployee(ctx, employeeID)
	})
}

func (uc *ShiftUseCase) ListByDay(ctx context.Context, day string) ([]dto.ShiftResponse, error) {
	d, err := validation.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Shift, error) {
		return uc.repo.ListByDay(ctx, d)
	})
}

func (uc *ShiftUseCase) ListByPeriod(ctx context.Context, period string) ([]dto.ShiftResponse, error) {
	if err := validation.Required("turno", period); err != nil {
		return nil, err
	}
	p, err := validation.ParseWorkPeriod(period)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Shift, error) {
		return uc.repo.ListByPeriod(ctx, p)
	})
}

// Create registra un expediente. Un funcionario tiene como máximo uno por día.
func (uc *ShiftUseCase) Create(ctx context.Context, in dto.ShiftRequest) (*dto.ShiftResponse, error) {
	s := &entity.Shift{ID: uuid.New().String()}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("shift_id", s.ID).Str("employee_id", s.EmployeeID).Str("day", string(s.Day)).Msg("expediente creado")
	return uc.crud.one(ctx, s)
}

func (uc *ShiftUseCase) Update(ctx context.Context, id string, in dto.ShiftRequest) (*dto.ShiftResponse, error) {
	s, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, s, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, s)
}

func (uc *ShiftUseCase) apply(ctx context.Context, s *entity.Shift, in dto.ShiftRequest) error {
	if err := validation.Required("funcionario", in.EmployeeID); err != nil {
		return err
	}
	day, period, entry, exit, err := validation.ValidateShift(validation.ShiftInput{
		Day:       in.Day,
		EntryTime: in.EntryTime,
		ExitTime:  in.ExitTime,
		Period:    in.Period,
	})
	if err != nil {
		return err
	}
	employee, err := find(ctx, uc.employees.GetByID, in.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("%w: funcionario %s", domain.ErrNotFound, in.EmployeeID)
	}
	sameDay, err := uc.repo.ListByEmployeeAndDay(ctx, employee.ID, day)
	if err != nil {
		return err
	}
	if err := validation.ShiftOverlap(sameDay, s.ID, day); err != nil {
		return err
	}
	s.EmployeeID = employee.ID
	s.Day = day
	s.EntryTime = entry
	s.ExitTime = exit
	s.Period = period
	return nil
}

func (uc *ShiftUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, nil)
}

func (uc *ShiftUseCase) toResponses(ctx context.Context, shifts []*entity.Shift) ([]dto.ShiftResponse, error) {
	employees := employeeLookup(uc.employees)
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		name, role, err := employeeLabel(ctx, employees, s.EmployeeID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ShiftResponse{
			ID:           s.ID,
			EmployeeID:   s.EmployeeID,
			EmployeeName: name,
			EmployeeRole: role,
			Day:          string(s.Day),
			EntryTime:    s.EntryTime,
			ExitTime:     s.ExitTime,
			Period:       string(s.Period),
		})
	}
	return out, nil
}
