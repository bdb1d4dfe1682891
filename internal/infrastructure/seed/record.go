package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// record fila de un CSV con su número de línea (1 = cabecera).
type record struct {
	line int
	cols []string
}

// dateLayouts formatos de fecha aceptados en los CSV, del más al menos específico.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

func (r record) str(i int) string {
	if i >= len(r.cols) {
		return ""
	}
	return strings.TrimSpace(r.cols[i])
}

func (r record) decimal(i int, name string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(r.str(i))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s inválido: %q", name, r.str(i))
	}
	return v, nil
}

func (r record) time(i int, name string) (time.Time, error) {
	raw := r.str(i)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s inválida: %q", name, raw)
}

// optionalTime devuelve nil si la columna falta o está vacía.
func (r record) optionalTime(i int, name string) (*time.Time, error) {
	if r.str(i) == "" {
		return nil, nil
	}
	t, err := r.time(i, name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// bool acepta 1/0, true/false, sim/não.
func (r record) bool(i int, name string) (bool, error) {
	switch strings.ToLower(r.str(i)) {
	case "1", "true", "t", "sim", "s":
		return true, nil
	case "0", "false", "f", "nao", "não", "n":
		return false, nil
	}
	if n, err := strconv.Atoi(r.str(i)); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("%s inválido: %q", name, r.str(i))
}

// ref traduce un ID legado con el mapa de la tabla referenciada.
func (r record) ref(i int, ids map[string]string, what string) (string, error) {
	id, ok := ids[r.str(i)]
	if !ok {
		return "", fmt.Errorf("%s %q no cargado", what, r.str(i))
	}
	return id, nil
}
