package validation

import (
	"fmt"
	"regexp"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// NormalizeClock valida "H:MM"/"HH:MM" (24h) y devuelve siempre "HH:MM".
// Con ancho fijo y ceros a la izquierda la comparación de strings equivale a la de horas.
func NormalizeClock(field, s string) (string, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return "", invalid("formato de %s inválido: %q (use HH:MM)", field, s)
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + m[2], nil
}

// ShiftInput datos crudos de un expediente.
type ShiftInput struct {
	Day       string
	EntryTime string
	ExitTime  string
	Period    string
}

// ValidateShift valida día, turno, formato de horas y que la salida sea posterior a la entrada.
// Devuelve los valores normalizados listos para persistir.
func ValidateShift(in ShiftInput) (entity.Weekday, entity.WorkPeriod, string, string, error) {
	day, err := ParseWeekday(in.Day)
	if err != nil {
		return "", "", "", "", err
	}
	period, err := ParseWorkPeriod(in.Period)
	if err != nil {
		return "", "", "", "", err
	}
	entry, err := NormalizeClock("hora de entrada", in.EntryTime)
	if err != nil {
		return "", "", "", "", err
	}
	exit, err := NormalizeClock("hora de salida", in.ExitTime)
	if err != nil {
		return "", "", "", "", err
	}
	if exit <= entry {
		return "", "", "", "", invalid("la hora de salida (%s) debe ser posterior a la de entrada (%s)", exit, entry)
	}
	return day, period, entry, exit, nil
}

// ShiftOverlap falla con ErrConflict si alguno de los expedientes del mismo funcionario y día
// no es el que se está actualizando (selfID).
func ShiftOverlap(sameDay []*entity.Shift, selfID string, day entity.Weekday) error {
	for _, s := range sameDay {
		if s.ID != selfID {
			return fmt.Errorf("%w: ya existe expediente para este funcionario el día %s", domain.ErrConflict, day)
		}
	}
	return nil
}
