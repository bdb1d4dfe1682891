package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/jhoicas/paofresquim-api/pkg/logger"
	"github.com/jhoicas/paofresquim-api/pkg/metrics"
)

// TraceHeader cabecera de correlación.
const TraceHeader = "X-Trace-Id"

// TraceMiddleware asigna un trace id (o respeta el entrante si es válido), guarda en el contexto de
// usuario un sublogger con trace_id y registra la petición al terminar.
func TraceMiddleware(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceHeader)
		if !logger.ValidTraceID(traceID) {
			traceID = logger.NewTraceID()
		}
		c.Set(TraceHeader, traceID)
		c.SetUserContext(logger.WithTraceID(c.UserContext(), base, traceID))

		start := time.Now()
		err := c.Next()
		zerolog.Ctx(c.UserContext()).Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// MetricsMiddleware registra conteo y duración por ruta (plantilla, no la URL concreta).
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		metrics.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
