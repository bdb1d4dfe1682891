package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// VacationHandler maneja /api/ferias.
type VacationHandler struct {
	uc *usecase.VacationUseCase
}

// NewVacationHandler construye el handler.
func NewVacationHandler(uc *usecase.VacationUseCase) *VacationHandler {
	return &VacationHandler{uc: uc}
}

func (h *VacationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

func (h *VacationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *VacationHandler) ByEmployee(c *fiber.Ctx) error {
	out, err := h.uc.ListByEmployee(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *VacationHandler) ByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), c.Params("status"))
	return ok(c, out, err)
}

// Create godoc
// @Summary      Solicitar vacaciones
// @Description  Entre 5 y 30 días inclusivos, sin inicio en el pasado ni solapamiento.
// @Tags         ferias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VacationRequest  true  "Período solicitado"
// @Success      201   {object}  dto.VacationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ferias [post]
func (h *VacationHandler) Create(c *fiber.Ctx) error {
	var in dto.VacationRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *VacationHandler) Update(c *fiber.Ctx) error {
	var in dto.VacationRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de vacaciones
// @Tags         ferias
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID"
// @Param        status  query  string  true  "approved | in_progress | completed | cancelled"
// @Success      200     {object}  dto.VacationResponse
// @Failure      422     {object}  dto.ErrorResponse
// @Router       /api/ferias/{id}/status [patch]
func (h *VacationHandler) UpdateStatus(c *fiber.Ctx) error {
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), c.Query("status"))
	return ok(c, out, err)
}

func (h *VacationHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
