package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// VacationUseCase casos de uso de vacaciones (ferias).
type VacationUseCase struct {
	repo      repository.VacationRepository
	employees repository.EmployeeRepository
	now       Clock
	crud      crud[entity.Vacation, dto.VacationResponse]
}

// NewVacationUseCase construye el caso de uso.
func NewVacationUseCase(repo repository.VacationRepository, employees repository.EmployeeRepository, now Clock) *VacationUseCase {
	uc := &VacationUseCase{repo: repo, employees: employees, now: now.orDefault()}
	uc.crud = crud[entity.Vacation, dto.VacationResponse]{
		kind:   "vacaciones",
		get:    repo.GetByID,
		remove: repo.Delete,
		mapAll: uc.toResponses,
	}
	return uc
}

func (uc *VacationUseCase) List(ctx context.Context) ([]dto.VacationResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *VacationUseCase) GetByID(ctx context.Context, id string) (*dto.VacationResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *VacationUseCase) ListByEmployee(ctx context.Context, employeeID string) ([]dto.VacationResponse, error) {
	if !wellFormedID(employeeID) {
		return []dto.VacationResponse{}, nil
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Vacation, error) {
		return uc.repo.ListByEmployee(ctx, employeeID)
	})
}

func (uc *VacationUseCase) ListByStatus(ctx context.Context, status string) ([]dto.VacationResponse, error) {
	st, err := validation.ParseVacationStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Vacation, error) {
		return uc.repo.ListByStatus(ctx, st)
	})
}

// Create registra una solicitud de vacaciones en estado requested.
func (uc *VacationUseCase) Create(ctx context.Context, in dto.VacationRequest) (*dto.VacationResponse, error) {
	v := &entity.Vacation{
		ID:          uuid.New().String(),
		Status:      entity.VacationRequested,
		RequestedAt: uc.now(),
	}
	if err := uc.apply(ctx, v, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("vacation_id", v.ID).Str("employee_id", v.EmployeeID).
		Int("days", v.RequestedDays).Msg("vacaciones solicitadas")
	return uc.crud.one(ctx, v)
}

// Update modifica una solicitud; solo se permite mientras está en requested.
func (uc *VacationUseCase) Update(ctx context.Context, id string, in dto.VacationRequest) (*dto.VacationResponse, error) {
	v, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != entity.VacationRequested {
		return nil, fmt.Errorf("%w: solo se pueden modificar vacaciones en estado requested", domain.ErrBusinessRule)
	}
	if err := uc.apply(ctx, v, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, v)
}

func (uc *VacationUseCase) apply(ctx context.Context, v *entity.Vacation, in dto.VacationRequest) error {
	if err := validation.Required("funcionario", in.EmployeeID); err != nil {
		return err
	}
	start, err := parseDate("fecha de inicio", in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("fecha de fin", in.EndDate)
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
	if err := validation.ValidateVacationPeriod(start, end, uc.now()); err != nil {
		return err
	}
	existing, err := uc.repo.ListOverlapping(ctx, employee.ID, start, end)
	if err != nil {
		return err
	}
	if err := validation.VacationOverlap(existing, v.ID, start, end); err != nil {
		return err
	}
	v.EmployeeID = employee.ID
	v.SetPeriod(start, end)
	v.Notes = in.Notes
	return nil
}

// UpdateStatus aplica una transición de estado válida.
func (uc *VacationUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.VacationResponse, error) {
	if err := validation.Required("estado", status); err != nil {
		return nil, err
	}
	to, err := validation.ParseVacationStatus(status)
	if err != nil {
		return nil, err
	}
	v, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validation.VacationTransition(v.Status, to); err != nil {
		return nil, err
	}
	from := v.Status
	v.Status = to
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("vacation_id", id).Str("from", string(from)).Str("to", string(to)).Msg("estado de vacaciones actualizado")
	return uc.crud.one(ctx, v)
}

// Delete elimina una solicitud; solo mientras está en requested.
func (uc *VacationUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, func(v *entity.Vacation) error {
		if v.Status != entity.VacationRequested {
			return fmt.Errorf("%w: solo se pueden eliminar vacaciones en estado requested", domain.ErrBusinessRule)
		}
		return nil
	})
}

func (uc *VacationUseCase) toResponses(ctx context.Context, vacations []*entity.Vacation) ([]dto.VacationResponse, error) {
	employees := employeeLookup(uc.employees)
	out := make([]dto.VacationResponse, 0, len(vacations))
	for _, v := range vacations {
		name, role, err := employeeLabel(ctx, employees, v.EmployeeID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.VacationResponse{
			ID:            v.ID,
			EmployeeID:    v.EmployeeID,
			EmployeeName:  name,
			EmployeeRole:  role,
			StartDate:     v.StartDate.Format(dto.DateLayout),
			EndDate:       v.EndDate.Format(dto.DateLayout),
			RequestedDays: v.RequestedDays,
			Status:        string(v.Status),
			RequestedAt:   v.RequestedAt,
			Notes:         v.Notes,
		})
	}
	return out, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s inválida: %q (use YYYY-MM-DD)", domain.ErrInvalidInput, field, s)
	}
	return t, nil
}
