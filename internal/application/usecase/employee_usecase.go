package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

// EmployeeUseCase casos de uso de funcionarios.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	shifts    repository.ShiftRepository
	vacations repository.VacationRepository
	now       Clock
	crud      crud[entity.Employee, dto.EmployeeResponse]
}

// NewEmployeeUseCase construye el caso de uso. shifts y vacations bloquean el borrado.
func NewEmployeeUseCase(repo repository.EmployeeRepository, shifts repository.ShiftRepository,
	vacations repository.VacationRepository, now Clock) *EmployeeUseCase {
	return &EmployeeUseCase{
		repo:      repo,
		shifts:    shifts,
		vacations: vacations,
		now:       now.orDefault(),
		crud: crud[entity.Employee, dto.EmployeeResponse]{
			kind:   "funcionario",
			get:    repo.GetByID,
			remove: repo.Delete,
			mapAll: mapEach(toEmployeeResponse),
		},
	}
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.crud.listResponse(ctx, uc.repo.List)
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	return uc.crud.getResponse(ctx, id)
}

func (uc *EmployeeUseCase) SearchByName(ctx context.Context, name string) ([]dto.EmployeeResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Employee, error) {
		return uc.repo.SearchByName(ctx, name)
	})
}

// ListByRole lista funcionarios de un cargo.
func (uc *EmployeeUseCase) ListByRole(ctx context.Context, role string) ([]dto.EmployeeResponse, error) {
	r, err := validation.ParseRole(role)
	if err != nil {
		return nil, err
	}
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Employee, error) {
		return uc.repo.ListByRole(ctx, r)
	})
}

// ListByActive lista funcionarios activos o inactivos.
func (uc *EmployeeUseCase) ListByActive(ctx context.Context, active bool) ([]dto.EmployeeResponse, error) {
	return uc.crud.listResponse(ctx, func(ctx context.Context) ([]*entity.Employee, error) {
		return uc.repo.ListByActive(ctx, active)
	})
}

// Create registra un funcionario. Activo por defecto; admisión por defecto ahora.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{ID: uuid.New().String(), AdmittedAt: uc.now(), Active: true}
	if in.AdmittedAt != nil {
		e.AdmittedAt = *in.AdmittedAt
	}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("employee_id", e.ID).Str("role", string(e.Role)).Msg("funcionario creado")
	return uc.crud.one(ctx, e)
}

// Update modifica los datos del funcionario. La fecha de admisión no cambia.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return uc.crud.one(ctx, e)
}

func (uc *EmployeeUseCase) apply(ctx context.Context, e *entity.Employee, in dto.EmployeeRequest) error {
	if err := validation.Required("nombre", in.Name); err != nil {
		return err
	}
	role, err := validation.ParseRole(in.Role)
	if err != nil {
		return err
	}
	if err := validation.Positive("salario base", in.BaseSalary); err != nil {
		return err
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		other, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if other != nil {
			if err := validation.Unique(other.ID, e.ID, "email", email); err != nil {
				return err
			}
		}
	}
	e.Name = strings.TrimSpace(in.Name)
	e.Phone = strings.TrimSpace(in.Phone)
	e.Email = email
	e.Role = role
	e.BaseSalary = in.BaseSalary
	if in.Active != nil {
		e.Active = *in.Active
	}
	return nil
}

// Activate marca al funcionario como activo.
func (uc *EmployeeUseCase) Activate(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	return uc.setActive(ctx, id, true)
}

// Deactivate marca al funcionario como inactivo.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	return uc.setActive(ctx, id, false)
}

func (uc *EmployeeUseCase) setActive(ctx context.Context, id string, active bool) (*dto.EmployeeResponse, error) {
	e, err := uc.crud.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Active = active
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Str("employee_id", id).Bool("active", active).Msg("estado del funcionario actualizado")
	return uc.crud.one(ctx, e)
}

// Delete elimina un funcionario sin expedientes ni vacaciones registradas.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.delete(ctx, id, func(e *entity.Employee) error {
		exists, err := uc.shifts.ExistsByEmployee(ctx, e.ID)
		if err := blockIf(exists, err, "el funcionario tiene expedientes registrados"); err != nil {
			return err
		}
		exists, err = uc.vacations.ExistsByEmployee(ctx, e.ID)
		return blockIf(exists, err, "el funcionario tiene vacaciones registradas")
	})
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Phone:      e.Phone,
		Email:      e.Email,
		Role:       string(e.Role),
		BaseSalary: e.BaseSalary,
		AdmittedAt: e.AdmittedAt,
		Active:     e.Active,
	}
}
