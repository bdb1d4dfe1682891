package entity

import "time"

// Weekday día de la semana en minúsculas ASCII.
type Weekday string

// Días válidos.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays devuelve los días en orden ISO (lunes = 1).
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekdayOf traduce el día de la semana de t al token correspondiente.
func WeekdayOf(t time.Time) Weekday {
	// time.Sunday == 0; ISO usa 1..7 con domingo = 7.
	iso := int(t.Weekday())
	if iso == 0 {
		iso = 7
	}
	return Weekdays()[iso-1]
}

// WorkPeriod turno de trabajo.
type WorkPeriod string

// Turnos válidos.
const (
	PeriodMorning   WorkPeriod = "morning"
	PeriodAfternoon WorkPeriod = "afternoon"
	PeriodEvening   WorkPeriod = "evening"
	PeriodFullDay   WorkPeriod = "full_day"
)

// WorkPeriods devuelve los turnos válidos.
func WorkPeriods() []WorkPeriod {
	return []WorkPeriod{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodFullDay}
}

// Shift (expediente) horario de un funcionario en un día de la semana.
// Como máximo un Shift por (EmployeeID, Day). Los horarios son "HH:MM".
type Shift struct {
	ID         string
	EmployeeID string
	Day        Weekday
	EntryTime  string
	ExitTime   string
	Period     WorkPeriod
}
