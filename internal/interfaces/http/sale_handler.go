package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// ReceiptGenerator genera el recibo PDF de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *dto.SaleResponse) ([]byte, error)
}

// SaleHandler maneja /api/vendas.
type SaleHandler struct {
	uc       *usecase.SaleUseCase
	receipts ReceiptGenerator
}

// NewSaleHandler construye el handler. receipts nil deshabilita el recibo PDF.
func NewSaleHandler(uc *usecase.SaleUseCase, receipts ReceiptGenerator) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: receipts}
}

// List godoc
// @Summary      Listar ventas
// @Tags         vendas
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/vendas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         vendas
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *SaleHandler) ByClient(c *fiber.Ctx) error {
	out, err := h.uc.ListByClient(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *SaleHandler) ByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// Period godoc
// @Summary      Ventas en un período
// @Tags         vendas
// @Produce      json
// @Param        inicio  query  string  true  "RFC3339 o 2006-01-02T15:04:05"
// @Param        fim     query  string  true  "RFC3339 o 2006-01-02T15:04:05"
// @Success      200     {array}  dto.SaleResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/vendas/periodo [get]
func (h *SaleHandler) Period(c *fiber.Ctx) error {
	from, err := queryTime(c, "inicio")
	if err != nil {
		return writeError(c, err)
	}
	to, err := queryTime(c, "fim")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListBetween(c.UserContext(), from, to)
	return ok(c, out, err)
}

func (h *SaleHandler) ByPaymentStatus(c *fiber.Ctx) error {
	status, err := requiredQuery(c, "status")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByPaymentStatus(c.UserContext(), status)
	return ok(c, out, err)
}

func (h *SaleHandler) ByPaymentMethod(c *fiber.Ctx) error {
	method, err := requiredQuery(c, "forma")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByPaymentMethod(c.UserContext(), method)
	return ok(c, out, err)
}

// Create godoc
// @Summary      Registrar venta
// @Description  El total es peso × precio por kilo. Sin precio se usa el del producto.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// UpdatePaymentStatus godoc
// @Summary      Cambiar estado de pago
// @Tags         vendas
// @Produce      json
// @Param        id      path   string  true  "ID de la venta"
// @Param        status  query  string  true  "paid | pending"
// @Success      200     {object}  dto.SaleResponse
// @Router       /api/vendas/{id}/status-pagamento [patch]
func (h *SaleHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	out, err := h.uc.UpdatePaymentStatus(c.UserContext(), c.Params("id"), c.Query("status"))
	return ok(c, out, err)
}

func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	return noContent(c, h.uc.Delete(c.UserContext(), c.Params("id")))
}

// Receipt godoc
// @Summary      Recibo de venta en PDF
// @Tags         vendas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/recibo [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	if h.receipts == nil {
		return writeError(c, fiber.ErrNotFound)
	}
	sale, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.receipts.GenerateSaleReceipt(c.UserContext(), sale)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+sale.ID+`.pdf"`)
	return c.Send(doc)
}
