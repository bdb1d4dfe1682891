package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// ShiftHandler maneja /api/expediente.
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler construye el handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

func (h *ShiftHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

func (h *ShiftHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *ShiftHandler) ByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployee(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// ByDay GET /api/expediente/dia/:dia (monday..sunday o segunda..domingo)
func (h *ShiftHandler) ByDay(c *fiber.Ctx) error {
	out, err := h.uc.ListByDay(c.UserContext(), c.Params("dia"))
	return ok(c, out, err)
}

// ByPeriod GET /api/expediente/turno/:turno
func (h *ShiftHandler) ByPeriod(c *fiber.Ctx) error {
	out, err := h.uc.ListByPeriod(c.UserContext(), c.Params("turno"))
	return ok(c, out, err)
}

// Create godoc
// @Summary      Crear expediente
// @Description  Un funcionario tiene como máximo un expediente por día. Horarios HH:MM.
// @Tags         expediente
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShiftRequest  true  "Datos del expediente"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expediente [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.ShiftRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.ShiftRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
