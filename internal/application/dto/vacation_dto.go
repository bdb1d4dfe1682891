package dto

import "time"

// DateLayout formato de las fechas de vacaciones.
const DateLayout = "2006-01-02"

// VacationRequest entrada para solicitar o modificar vacaciones. Fechas "YYYY-MM-DD".
type VacationRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

// VacationResponse salida de unas vacaciones.
type VacationResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeRole  string    `json:"employee_role"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	RequestedDays int       `json:"requested_days"`
	Status        string    `json:"status"`
	RequestedAt   time.Time `json:"requested_at"`
	Notes         string    `json:"notes,omitempty"`
}
