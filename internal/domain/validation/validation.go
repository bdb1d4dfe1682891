// Package validation contiene las reglas puras de validación de las entidades de la
// panadería: formatos, enumerados, rangos de fechas, unicidad y solapamientos.
// Ninguna función accede a la persistencia; los casos de uso les pasan los datos.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain"
)

// aliases traduce los tokens en portugués que envían el frontend y los CSV de carga inicial.
var aliases = map[string]string{
	// cargos
	"padeiro": "baker", "atendente": "attendant", "gerente": "manager", "auxiliar": "helper",
	// días
	"segunda": "monday", "terca": "tuesday", "terça": "tuesday", "quarta": "wednesday",
	"quinta": "thursday", "sexta": "friday", "sabado": "saturday", "sábado": "saturday", "domingo": "sunday",
	// turnos
	"manha": "morning", "manhã": "morning", "tarde": "afternoon", "noite": "evening", "integral": "full_day",
	// vacaciones
	"solicitado": "requested", "aprovado": "approved", "em_andamento": "in_progress",
	"concluido": "completed", "concluído": "completed", "cancelado": "cancelled",
	// pagos
	"dinheiro": "cash", "cartao": "card", "cartão": "card", "fiado": "credit",
	"pago": "paid", "pendente": "pending",
}

// normalizeToken pasa a minúsculas, acepta guiones como separador ("full-day" → "full_day")
// y resuelve los alias en portugués.
func normalizeToken(s string) string {
	t := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if canon, ok := aliases[t]; ok {
		return canon
	}
	return t
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Required falla si value está vacío.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s es obligatorio", field)
	}
	return nil
}

// Present falla si falta un valor obligatorio que no es texto.
func Present[T any](field string, v *T) error {
	if v == nil {
		return invalid("%s es obligatorio", field)
	}
	return nil
}

// MaxScale falla si v tiene más de places decimales significativos.
func MaxScale(field string, v decimal.Decimal, places int32) error {
	if !v.Equal(v.Truncate(places)) {
		return invalid("%s admite como máximo %d decimales", field, places)
	}
	return nil
}

// Positive falla si v <= 0.
func Positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return invalid("%s debe ser positivo", field)
	}
	return nil
}

// NonNegative falla si v < 0.
func NonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return invalid("%s no puede ser negativo", field)
	}
	return nil
}

// Unique falla con ErrConflict si otro registro (ID distinto de selfID) ya tiene el valor.
// foundID vacío significa que nadie lo tiene.
func Unique(foundID, selfID, what, value string) error {
	if foundID != "" && foundID != selfID {
		return fmt.Errorf("%w: %s ya registrado: %s", domain.ErrConflict, what, value)
	}
	return nil
}
