package validation

import (
	"fmt"
	"time"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// Límites del período de vacaciones (días inclusivos).
const (
	MinVacationDays = 5
	MaxVacationDays = 30
)

// ValidateVacationPeriod valida que start no esté en el pasado respecto a today,
// que end no sea anterior a start y que el período tenga entre 5 y 30 días.
func ValidateVacationPeriod(start, end, today time.Time) error {
	if dateOnly(start).Before(dateOnly(today)) {
		return invalid("la fecha de inicio no puede estar en el pasado")
	}
	if dateOnly(end).Before(dateOnly(start)) {
		return invalid("la fecha de fin no puede ser anterior a la de inicio")
	}
	days := entity.InclusiveDays(start, end)
	if days < MinVacationDays {
		return invalid("el período mínimo de vacaciones es de %d días", MinVacationDays)
	}
	if days > MaxVacationDays {
		return invalid("el período máximo de vacaciones es de %d días", MaxVacationDays)
	}
	return nil
}

// VacationOverlap falla con ErrConflict si otra solicitud del funcionario se cruza con [start, end].
func VacationOverlap(existing []*entity.Vacation, selfID string, start, end time.Time) error {
	for _, v := range existing {
		if v.ID == selfID {
			continue
		}
		if v.Overlaps(start, end) {
			return fmt.Errorf("%w: conflicto de fechas con otras vacaciones ya registradas", domain.ErrConflict)
		}
	}
	return nil
}

// VacationTransition valida el cambio de estado:
// approved solo desde requested, in_progress solo desde approved, completed solo desde
// in_progress y cancelled desde cualquier estado anterior a completed.
func VacationTransition(from, to entity.VacationStatus) error {
	var ok bool
	switch to {
	case entity.VacationApproved:
		ok = from == entity.VacationRequested
	case entity.VacationInProgress:
		ok = from == entity.VacationApproved
	case entity.VacationCompleted:
		ok = from == entity.VacationInProgress
	case entity.VacationCancelled:
		ok = from == entity.VacationRequested || from == entity.VacationApproved || from == entity.VacationInProgress
	}
	if !ok {
		return fmt.Errorf("%w: no es posible pasar de %q a %q", domain.ErrBusinessRule, from, to)
	}
	return nil
}

func dateOnly(t time.Time) time.Time { return entity.CivilDate(t) }
