package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRequest entrada para crear o actualizar un funcionario.
// AdmittedAt nil = ahora (solo en creación); Active nil = true en creación, sin cambio en actualización.
type EmployeeRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Phone      string          `json:"phone" validate:"omitempty,max=20"`
	Email      string          `json:"email" validate:"omitempty,email,max=150"`
	Role       string          `json:"role" validate:"required"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	AdmittedAt *time.Time      `json:"admitted_at"`
	Active     *bool           `json:"active"`
}

// EmployeeResponse salida de un funcionario.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	Role       string          `json:"role"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	AdmittedAt time.Time       `json:"admitted_at"`
	Active     bool            `json:"active"`
}
