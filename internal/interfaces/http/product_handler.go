package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// ProductHandler maneja /api/produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         produtos
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         produtos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Tags         produtos
// @Produce      json
// @Param        nome  query  string  true  "Parte del nombre"
// @Success      200   {array}  dto.ProductResponse
// @Router       /api/produtos/busca [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("nome"))
	return ok(c, out, err)
}

// PriceRange godoc
// @Summary      Productos en un rango de precio por kilo
// @Tags         produtos
// @Produce      json
// @Param        precoMin  query  number  true  "Precio mínimo"
// @Param        precoMax  query  number  true  "Precio máximo"
// @Success      200       {array}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/produtos/faixa-preco [get]
func (h *ProductHandler) PriceRange(c *fiber.Ctx) error {
	minPrice, err := queryDecimal(c, "precoMin")
	if err != nil {
		return writeError(c, err)
	}
	maxPrice, err := queryDecimal(c, "precoMax")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByPriceRange(c.UserContext(), minPrice, maxPrice)
	return ok(c, out, err)
}

// Create godoc
// @Summary      Crear producto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/produtos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         produtos
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}
