package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	appanalytics "github.com/jhoicas/paofresquim-api/internal/application/analytics"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Services    *usecase.Services
	DashboardUC *appanalytics.DashboardUseCase
	Receipts    ReceiptGenerator
	// JWTSecret vacío deshabilita la autenticación (desarrollo).
	JWTSecret string
	// StoreDriver y Ping alimentan /health. Ping nil = siempre sano.
	StoreDriver string
	Ping        func(ctx context.Context) error
}

// Router registra /health, /metrics y las rutas de la API.
// Las rutas fijas (/busca, /periodo, ...) se registran antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	auth, manager := fiber.Handler(passThrough), fiber.Handler(passThrough)
	if deps.JWTSecret != "" {
		auth = AuthMiddleware(deps.JWTSecret)
		manager = RequireRole(RoleManager)
	}
	api := app.Group("/api", auth)
	svc := deps.Services

	clients := api.Group("/clientes")
	clientHandler := NewClientHandler(svc.Clients)
	clients.Get("/", clientHandler.List)
	clients.Get("/busca", clientHandler.Search)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	products := api.Group("/produtos")
	productHandler := NewProductHandler(svc.Products)
	products.Get("/", productHandler.List)
	products.Get("/busca", productHandler.Search)
	products.Get("/faixa-preco", productHandler.PriceRange)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	ingredients := api.Group("/estoque-ingredientes")
	ingredientHandler := NewIngredientHandler(svc.Ingredients)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/busca", ingredientHandler.Search)
	ingredients.Get("/estoque-minimo", ingredientHandler.OutOfStock)
	ingredients.Get("/alerta-reposicao", ingredientHandler.NeedingRestock)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Patch("/:id/quantidade", ingredientHandler.UpdateQuantity)
	ingredients.Patch("/:id/custo", ingredientHandler.UpdateCost)
	ingredients.Patch("/:id/entrada", ingredientHandler.Receive)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Personal: lectura para todos, cambios solo manager
	employees := api.Group("/funcionarios")
	employeeHandler := NewEmployeeHandler(svc.Employees)
	employees.Get("/", employeeHandler.List)
	employees.Get("/busca", employeeHandler.Search)
	employees.Get("/cargo", employeeHandler.ByRole)
	employees.Get("/status", employeeHandler.ByStatus)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", manager, employeeHandler.Create)
	employees.Put("/:id", manager, employeeHandler.Update)
	employees.Patch("/:id/ativar", manager, employeeHandler.Activate)
	employees.Patch("/:id/inativar", manager, employeeHandler.Deactivate)
	employees.Delete("/:id", manager, employeeHandler.Delete)

	sales := api.Group("/vendas")
	saleHandler := NewSaleHandler(svc.Sales, deps.Receipts)
	sales.Get("/", saleHandler.List)
	sales.Get("/periodo", saleHandler.Period)
	sales.Get("/status-pagamento", saleHandler.ByPaymentStatus)
	sales.Get("/forma-pagamento", saleHandler.ByPaymentMethod)
	sales.Get("/cliente/:id", saleHandler.ByClient)
	sales.Get("/produto/:id", saleHandler.ByProduct)
	sales.Get("/:id/recibo", saleHandler.Receipt)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/", saleHandler.Create)
	sales.Put("/:id", saleHandler.Update)
	sales.Patch("/:id/status-pagamento", saleHandler.UpdatePaymentStatus)
	sales.Delete("/:id", saleHandler.Delete)

	shifts := api.Group("/expediente")
	shiftHandler := NewShiftHandler(svc.Shifts)
	shifts.Get("/", shiftHandler.List)
	shifts.Get("/funcionario/:id", shiftHandler.ByEmployee)
	shifts.Get("/dia/:dia", shiftHandler.ByDay)
	shifts.Get("/turno/:turno", shiftHandler.ByPeriod)
	shifts.Get("/:id", shiftHandler.GetByID)
	shifts.Post("/", manager, shiftHandler.Create)
	shifts.Put("/:id", manager, shiftHandler.Update)
	shifts.Delete("/:id", manager, shiftHandler.Delete)

	// Cualquier funcionario solicita vacaciones; aprobar/cancelar es de manager
	vacations := api.Group("/ferias")
	vacationHandler := NewVacationHandler(svc.Vacations)
	vacations.Get("/", vacationHandler.List)
	vacations.Get("/funcionario/:id", vacationHandler.ByEmployee)
	vacations.Get("/status/:status", vacationHandler.ByStatus)
	vacations.Get("/:id", vacationHandler.GetByID)
	vacations.Post("/", vacationHandler.Create)
	vacations.Put("/:id", vacationHandler.Update)
	vacations.Patch("/:id/status", manager, vacationHandler.UpdateStatus)
	vacations.Delete("/:id", vacationHandler.Delete)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.GetSummary)
	dashboard.Get("/vendas-hoje", dashboardHandler.TodaySales)
	dashboard.Get("/vendas-mes", dashboardHandler.MonthSales)
	dashboard.Get("/produtos-mais-vendidos", dashboardHandler.TopProducts)
	dashboard.Get("/clientes-top", dashboardHandler.TopClients)
	dashboard.Get("/metricas-funcionarios", dashboardHandler.EmployeeMetrics)
	dashboard.Get("/alertas-estoque", dashboardHandler.StockAlerts)
}

// healthHandler GET /health
func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.Ping != nil {
			if err := deps.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "down", Store: deps.StoreDriver})
			}
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Store: deps.StoreDriver})
	}
}
