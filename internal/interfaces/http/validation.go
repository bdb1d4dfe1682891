package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldsError error de validación con la lista de campos que fallaron.
type fieldsError struct {
	fields []string
}

func (e *fieldsError) Error() string {
	return fmt.Sprintf("%s: campos inválidos: %s", domain.ErrInvalidInput, strings.Join(e.fields, ", "))
}

func (e *fieldsError) Unwrap() error { return domain.ErrInvalidInput }

// parseBody decodifica el JSON y aplica las etiquetas validate del DTO.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return &fieldsError{fields: fields}
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func requiredQuery(c *fiber.Ctx, name string) (string, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return "", fmt.Errorf("%w: parámetro %q requerido", domain.ErrInvalidInput, name)
	}
	return v, nil
}

func queryDecimal(c *fiber.Ctx, name string) (decimal.Decimal, error) {
	raw, err := requiredQuery(c, name)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s no es un número: %q", domain.ErrInvalidInput, name, raw)
	}
	return v, nil
}

// periodLayouts formatos aceptados para los filtros de fecha/hora.
var periodLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func queryTime(c *fiber.Ctx, name string) (time.Time, error) {
	raw, err := requiredQuery(c, name)
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range periodLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s con formato inválido: %q", domain.ErrInvalidInput, name, raw)
}
