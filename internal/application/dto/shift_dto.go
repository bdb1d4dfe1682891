package dto

// ShiftRequest entrada para crear o actualizar un expediente. Horarios "HH:MM".
type ShiftRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid"`
	Day        string `json:"day" validate:"required"`
	EntryTime  string `json:"entry_time" validate:"required"`
	ExitTime   string `json:"exit_time" validate:"required"`
	Period     string `json:"period"`
}

// ShiftResponse salida de un expediente con nombre y cargo del funcionario.
type ShiftResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeRole string `json:"employee_role"`
	Day          string `json:"day"`
	EntryTime    string `json:"entry_time"`
	ExitTime     string `json:"exit_time"`
	Period       string `json:"period"`
}
