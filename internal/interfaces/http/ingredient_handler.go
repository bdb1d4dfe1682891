package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// IngredientHandler maneja /api/estoque-ingredientes.
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         estoque-ingredientes
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/estoque-ingredientes [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *IngredientHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("nome"))
	return ok(c, out, err)
}

// OutOfStock godoc
// @Summary      Ingredientes sin stock (cantidad <= 0)
// @Tags         estoque-ingredientes
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/estoque-ingredientes/estoque-minimo [get]
func (h *IngredientHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.ListOutOfStock(c.UserContext())
	return ok(c, out, err)
}

// NeedingRestock godoc
// @Summary      Ingredientes en o por debajo del mínimo
// @Tags         estoque-ingredientes
// @Produce      json
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/estoque-ingredientes/alerta-reposicao [get]
func (h *IngredientHandler) NeedingRestock(c *fiber.Ctx) error {
	out, err := h.uc.ListNeedingRestock(c.UserContext())
	return ok(c, out, err)
}

// Create godoc
// @Summary      Crear ingrediente
// @Tags         estoque-ingredientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IngredientRequest  true  "Datos del ingrediente"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estoque-ingredientes [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.IngredientRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// UpdateQuantity godoc
// @Summary      Ajustar cantidad en stock
// @Tags         estoque-ingredientes
// @Produce      json
// @Param        id              path   string  true  "ID del ingrediente"
// @Param        novaQuantidade  query  number  true  "Nueva cantidad (>= 0)"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque-ingredientes/{id}/quantidade [patch]
func (h *IngredientHandler) UpdateQuantity(c *fiber.Ctx) error {
	q, err := queryDecimal(c, "novaQuantidade")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), c.Params("id"), q)
	return ok(c, out, err)
}

// UpdateCost godoc
// @Summary      Ajustar costo promedio
// @Tags         estoque-ingredientes
// @Produce      json
// @Param        id         path   string  true  "ID del ingrediente"
// @Param        novoCusto  query  number  true  "Nuevo costo (>= 0)"
// @Success      200  {object}  dto.IngredientResponse
// @Router       /api/estoque-ingredientes/{id}/custo [patch]
func (h *IngredientHandler) UpdateCost(c *fiber.Ctx) error {
	cost, err := queryDecimal(c, "novoCusto")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateCost(c.UserContext(), c.Params("id"), cost)
	return ok(c, out, err)
}

// Receive godoc
// @Summary      Registrar entrada de mercadería
// @Tags         estoque-ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ingrediente"
// @Param        body  body  dto.StockEntryRequest  true  "Cantidad y costo unitario"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estoque-ingredientes/{id}/entrada [patch]
func (h *IngredientHandler) Receive(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Receive(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
