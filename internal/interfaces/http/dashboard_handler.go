package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/paofresquim-api/internal/application/analytics"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
)

// DashboardHandler maneja /api/dashboard. Nunca responde error: las secciones
// que fallan vuelven con su valor por defecto.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Dashboard completo
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.UserContext()))
}

// TodaySales GET /api/dashboard/vendas-hoje
func (h *DashboardHandler) TodaySales(c *fiber.Ctx) error {
	return c.JSON(dto.AmountResponse{Value: h.uc.TodaySales(c.UserContext())})
}

// MonthSales GET /api/dashboard/vendas-mes
func (h *DashboardHandler) MonthSales(c *fiber.Ctx) error {
	return c.JSON(dto.AmountResponse{Value: h.uc.MonthSales(c.UserContext())})
}

func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.TopProducts(c.UserContext()))
}

func (h *DashboardHandler) TopClients(c *fiber.Ctx) error {
	return c.JSON(h.uc.TopClients(c.UserContext()))
}

func (h *DashboardHandler) EmployeeMetrics(c *fiber.Ctx) error {
	return c.JSON(h.uc.EmployeeMetrics(c.UserContext()))
}

func (h *DashboardHandler) StockAlerts(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockAlerts(c.UserContext()))
}
