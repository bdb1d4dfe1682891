package validation

import (
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

// ParseRole valida el cargo del funcionario.
func ParseRole(s string) (entity.Role, error) {
	r := entity.Role(normalizeToken(s))
	for _, v := range entity.Roles() {
		if r == v {
			return r, nil
		}
	}
	return "", invalid("cargo inválido: %q (válidos: baker, attendant, manager, helper)", s)
}

// ParseWeekday valida el día de la semana.
func ParseWeekday(s string) (entity.Weekday, error) {
	d := entity.Weekday(normalizeToken(s))
	for _, v := range entity.Weekdays() {
		if d == v {
			return d, nil
		}
	}
	return "", invalid("día de la semana inválido: %q (válidos: monday..sunday)", s)
}

// ParseWorkPeriod valida el turno. Vacío equivale a morning.
func ParseWorkPeriod(s string) (entity.WorkPeriod, error) {
	if normalizeToken(s) == "" {
		return entity.PeriodMorning, nil
	}
	p := entity.WorkPeriod(normalizeToken(s))
	for _, v := range entity.WorkPeriods() {
		if p == v {
			return p, nil
		}
	}
	return "", invalid("turno inválido: %q (válidos: morning, afternoon, evening, full_day)", s)
}

// ParseVacationStatus valida el estado de vacaciones.
func ParseVacationStatus(s string) (entity.VacationStatus, error) {
	st := entity.VacationStatus(normalizeToken(s))
	for _, v := range entity.VacationStatuses() {
		if st == v {
			return st, nil
		}
	}
	return "", invalid("estado inválido: %q (válidos: requested, approved, in_progress, completed, cancelled)", s)
}

// ParsePaymentMethod valida la forma de pago. Vacío equivale a cash.
func ParsePaymentMethod(s string) (entity.PaymentMethod, error) {
	switch m := entity.PaymentMethod(normalizeToken(s)); m {
	case "":
		return entity.PaymentCash, nil
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentPix, entity.PaymentCredit:
		return m, nil
	}
	return "", invalid("forma de pago inválida: %q", s)
}

// ParsePaymentStatus valida el estado de pago. Vacío equivale a paid.
func ParsePaymentStatus(s string) (entity.PaymentStatus, error) {
	switch st := entity.PaymentStatus(normalizeToken(s)); st {
	case "":
		return entity.PaymentPaid, nil
	case entity.PaymentPaid, entity.PaymentPending:
		return st, nil
	}
	return "", invalid("estado de pago inválido: %q (válidos: paid, pending)", s)
}
