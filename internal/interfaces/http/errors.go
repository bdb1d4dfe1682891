package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain"
)

// errorMapping traduce un error de dominio a código HTTP y código estable.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrDuplicate, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrBusinessRule, fiber.StatusUnprocessableEntity, "BUSINESS_RULE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError responde {code, message, path, status}. Los errores no clasificados
// se registran y se devuelven como 500 INTERNAL sin exponer el detalle.
func writeError(c *fiber.Ctx, err error) error {
	body := dto.ErrorResponse{Path: c.Path()}
	var fe *fieldsError
	if errors.As(err, &fe) {
		body.Fields = fe.fields
	}
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			body.Status, body.Code, body.Message = m.status, m.code, err.Error()
			return c.Status(m.status).JSON(body)
		}
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		body.Status, body.Code, body.Message = ferr.Code, fiberCode(ferr.Code), ferr.Message
		return c.Status(ferr.Code).JSON(body)
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	body.Status, body.Code, body.Message = fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "VALIDATION"
	}
	return "INTERNAL"
}

// ErrorHandler handler de errores de la app Fiber (rutas inexistentes, pánicos recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
