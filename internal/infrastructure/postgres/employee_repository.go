package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, COALESCE(phone, ''), COALESCE(email, ''), role, base_salary, admitted_at, active`

func scanEmployee(row rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	var role string
	if err := row.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &role, &e.BaseSalary, &e.AdmittedAt, &e.Active); err != nil {
		return nil, err
	}
	e.Role = entity.Role(role)
	return &e, nil
}

// Create persiste un nuevo funcionario.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, phone, email, role, base_salary, admitted_at, active)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Phone, e.Email, string(e.Role), e.BaseSalary, e.AdmittedAt, e.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update actualiza un funcionario (incluido el flag active).
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, phone = NULLIF($3, ''), email = NULLIF($4, ''), role = $5,
			base_salary = $6, active = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.Name, e.Phone, e.Email, string(e.Role), e.BaseSalary, e.Active)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un funcionario por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e, err := one(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id), scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// GetByEmail obtiene un funcionario por email (sin distinguir mayúsculas).
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	e, err := one(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE lower(email) = lower($1)`, email), scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("get employee by email: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
}

func (r *EmployeeRepo) SearchByName(ctx context.Context, name string) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE name ILIKE $1 ORDER BY name`, likePattern(name))
}

func (r *EmployeeRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE role = $1 ORDER BY name`, string(role))
}

func (r *EmployeeRepo) ListByActive(ctx context.Context, active bool) ([]*entity.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees WHERE active = $1 ORDER BY name`, active)
}

func (r *EmployeeRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isInvalidText(err) {
			return []*entity.Employee{}, nil
		}
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return collect(rows, scanEmployee)
}

// Delete elimina un funcionario por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		if isInvalidText(err) {
			return false, nil
		}
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: el funcionario tiene expedientes o vacaciones", domain.ErrBusinessRule)
		}
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
