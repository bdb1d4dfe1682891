package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role cargo del funcionario.
type Role string

// Cargos válidos.
const (
	RoleBaker     Role = "baker"
	RoleAttendant Role = "attendant"
	RoleManager   Role = "manager"
	RoleHelper    Role = "helper"
)

// Roles devuelve los cargos válidos en orden de presentación.
func Roles() []Role {
	return []Role{RoleBaker, RoleAttendant, RoleManager, RoleHelper}
}

// Employee representa un funcionario. Active es true por defecto.
type Employee struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	Role       Role
	BaseSalary decimal.Decimal
	AdmittedAt time.Time
	Active     bool
}
