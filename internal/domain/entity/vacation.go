package entity

import "time"

// VacationStatus estado de una solicitud de vacaciones.
type VacationStatus string

// Estados: requested → approved → in_progress → completed; cancelled antes de completar.
const (
	VacationRequested  VacationStatus = "requested"
	VacationApproved   VacationStatus = "approved"
	VacationInProgress VacationStatus = "in_progress"
	VacationCompleted  VacationStatus = "completed"
	VacationCancelled  VacationStatus = "cancelled"
)

// VacationStatuses devuelve los estados válidos.
func VacationStatuses() []VacationStatus {
	return []VacationStatus{VacationRequested, VacationApproved, VacationInProgress, VacationCompleted, VacationCancelled}
}

// Vacation (ferias) período de vacaciones de un funcionario.
// StartDate y EndDate son fechas a medianoche; RequestedDays es inclusivo.
type Vacation struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	RequestedDays int
	Status        VacationStatus
	RequestedAt   time.Time
	Notes         string
}

// SetPeriod cambia las fechas y recalcula los días solicitados.
func (v *Vacation) SetPeriod(start, end time.Time) {
	v.StartDate = CivilDate(start)
	v.EndDate = CivilDate(end)
	v.RequestedDays = InclusiveDays(start, end)
}

// Overlaps indica si [start, end] se cruza con el período de v (start <= fin y end >= inicio).
func (v *Vacation) Overlaps(start, end time.Time) bool {
	return !CivilDate(start).After(CivilDate(v.EndDate)) && !CivilDate(end).Before(CivilDate(v.StartDate))
}

// CivilDate reduce t a su fecha de calendario (medianoche UTC), sin importar la zona.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays cuenta los días de calendario entre start y end, ambos incluidos.
func InclusiveDays(start, end time.Time) int {
	return int(CivilDate(end).Sub(CivilDate(start)).Hours()/24) + 1
}
