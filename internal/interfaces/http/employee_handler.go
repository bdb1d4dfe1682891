package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
	"github.com/jhoicas/paofresquim-api/internal/domain"
)

// EmployeeHandler maneja /api/funcionarios.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar funcionarios
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/funcionarios [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("nome"))
	return ok(c, out, err)
}

// ByRole godoc
// @Summary      Funcionarios por cargo
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        cargo  query  string  true  "baker | attendant | manager | helper"
// @Success      200    {array}  dto.EmployeeResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/funcionarios/cargo [get]
func (h *EmployeeHandler) ByRole(c *fiber.Ctx) error {
	role, err := requiredQuery(c, "cargo")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByRole(c.UserContext(), role)
	return ok(c, out, err)
}

// ByStatus godoc
// @Summary      Funcionarios activos o inactivos
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        ativo  query  bool  true  "true | false"
// @Success      200    {array}  dto.EmployeeResponse
// @Router       /api/funcionarios/status [get]
func (h *EmployeeHandler) ByStatus(c *fiber.Ctx) error {
	raw, err := requiredQuery(c, "ativo")
	if err != nil {
		return writeError(c, err)
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		return writeError(c, fmt.Errorf("%w: ativo debe ser true o false", domain.ErrInvalidInput))
	}
	out, err := h.uc.ListByActive(c.UserContext(), active)
	return ok(c, out, err)
}

// Create godoc
// @Summary      Crear funcionario
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Datos del funcionario"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// Activate PATCH /api/funcionarios/:id/ativar
func (h *EmployeeHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// Deactivate PATCH /api/funcionarios/:id/inativar
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
