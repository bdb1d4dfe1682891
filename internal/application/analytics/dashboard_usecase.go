// Package analytics contiene el Dashboard: métricas de ventas, rankings de productos
// y clientes, métricas de personal y alertas de stock.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/pkg/metrics"
)

// TopLimit tamaño máximo de los rankings.
const TopLimit = 10

// Nombres de sección (logs y métricas).
const (
	SectionSales       = "sales"
	SectionTopProducts = "top_products"
	SectionTopClients  = "top_clients"
	SectionEmployees   = "employees"
	SectionStockAlerts = "stock_alerts"
)

// DashboardUseCase recalcula el dashboard en cada petición a partir del Store.
// Una sección que falla se devuelve con su valor por defecto; nunca falla el conjunto.
type DashboardUseCase struct {
	store *repository.Store
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil = time.Now.
func NewDashboardUseCase(store *repository.Store, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{store: store, now: now}
}

// GetSummary calcula las cinco secciones en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardResponse {
	now := uc.now()

	salesCh := make(chan dto.SalesMetrics, 1)
	productsCh := make(chan []dto.TopProduct, 1)
	clientsCh := make(chan []dto.TopClient, 1)
	employeesCh := make(chan dto.EmployeeMetrics, 1)
	stockCh := make(chan dto.StockAlerts, 1)

	go func() { salesCh <- uc.salesSection(ctx, now) }()
	go func() { productsCh <- uc.topProductsSection(ctx) }()
	go func() { clientsCh <- uc.topClientsSection(ctx) }()
	go func() { employeesCh <- uc.employeesSection(ctx, now) }()
	go func() { stockCh <- uc.stockSection(ctx) }()

	return &dto.DashboardResponse{
		Sales:       <-salesCh,
		TopProducts: <-productsCh,
		TopClients:  <-clientsCh,
		Employees:   <-employeesCh,
		StockAlerts: <-stockCh,
	}
}

// TodaySales total vendido hoy.
func (uc *DashboardUseCase) TodaySales(ctx context.Context) decimal.Decimal {
	return uc.salesSection(ctx, uc.now()).TodayTotal
}

// MonthSales total vendido en el mes en curso.
func (uc *DashboardUseCase) MonthSales(ctx context.Context) decimal.Decimal {
	return uc.salesSection(ctx, uc.now()).MonthTotal
}

// TopProducts ranking de productos por total vendido.
func (uc *DashboardUseCase) TopProducts(ctx context.Context) []dto.TopProduct {
	return uc.topProductsSection(ctx)
}

// TopClients ranking de clientes por total comprado.
func (uc *DashboardUseCase) TopClients(ctx context.Context) []dto.TopClient {
	return uc.topClientsSection(ctx)
}

// EmployeeMetrics conteos de personal.
func (uc *DashboardUseCase) EmployeeMetrics(ctx context.Context) dto.EmployeeMetrics {
	return uc.employeesSection(ctx, uc.now())
}

// StockAlerts alertas de reposición.
func (uc *DashboardUseCase) StockAlerts(ctx context.Context) dto.StockAlerts {
	return uc.stockSection(ctx)
}

// ── Secciones con degradación ────────────────────────────────────────────────

func (uc *DashboardUseCase) salesSection(ctx context.Context, now time.Time) dto.SalesMetrics {
	m, err := uc.salesMetrics(ctx, now)
	if err != nil {
		degrade(ctx, SectionSales, err)
		return emptySalesMetrics()
	}
	return m
}

func (uc *DashboardUseCase) topProductsSection(ctx context.Context) []dto.TopProduct {
	top, err := uc.topProducts(ctx)
	if err != nil {
		degrade(ctx, SectionTopProducts, err)
		return []dto.TopProduct{}
	}
	return top
}

func (uc *DashboardUseCase) topClientsSection(ctx context.Context) []dto.TopClient {
	top, err := uc.topClients(ctx)
	if err != nil {
		degrade(ctx, SectionTopClients, err)
		return []dto.TopClient{}
	}
	return top
}

func (uc *DashboardUseCase) employeesSection(ctx context.Context, now time.Time) dto.EmployeeMetrics {
	m, err := uc.employeeMetrics(ctx, now)
	if err != nil {
		degrade(ctx, SectionEmployees, err)
		return dto.EmployeeMetrics{}
	}
	return m
}

func (uc *DashboardUseCase) stockSection(ctx context.Context) dto.StockAlerts {
	a, err := uc.stockAlerts(ctx)
	if err != nil {
		degrade(ctx, SectionStockAlerts, err)
		return dto.StockAlerts{Alerts: []string{}}
	}
	return a
}

func degrade(ctx context.Context, section string, err error) {
	zerolog.Ctx(ctx).Warn().Err(err).Str("section", section).Msg("dashboard: sección degradada a valor por defecto")
	metrics.DashboardSectionFailed(section)
}

func emptySalesMetrics() dto.SalesMetrics {
	return dto.SalesMetrics{
		TodayTotal:    decimal.Zero,
		MonthTotal:    decimal.Zero,
		AverageTicket: decimal.Zero,
		GrowthPercent: decimal.Zero,
	}
}

// ── Cálculos ─────────────────────────────────────────────────────────────────

func (uc *DashboardUseCase) salesMetrics(ctx context.Context, now time.Time) (dto.SalesMetrics, error) {
	// Hoy: 00:00:00 – 23:59:59.999999999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	// Mes en curso: día 1 a las 00:00 – ahora
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.store.Sales.ListBetween(ctx, todayStart, todayEnd)
	if err != nil {
		return dto.SalesMetrics{}, fmt.Errorf("ventas de hoy: %w", err)
	}
	month, err := uc.store.Sales.ListBetween(ctx, monthStart, now)
	if err != nil {
		return dto.SalesMetrics{}, fmt.Errorf("ventas del mes: %w", err)
	}
	return summarizeSales(today, month), nil
}

// summarizeSales suma y cuenta ambas ventanas. El ticket medio es el del mes (0 sin ventas).
func summarizeSales(today, month []*entity.Sale) dto.SalesMetrics {
	m := emptySalesMetrics()
	m.TodayTotal = sumTotals(today)
	m.MonthTotal = sumTotals(month)
	m.TodayCount = len(today)
	m.MonthCount = len(month)
	if m.MonthCount > 0 {
		m.AverageTicket = m.MonthTotal.Div(decimal.NewFromInt(int64(m.MonthCount))).Round(2)
	}
	return m
}

func sumTotals(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

func (uc *DashboardUseCase) topProducts(ctx context.Context) ([]dto.TopProduct, error) {
	sales, err := uc.store.Sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}
	top := RankProducts(sales, TopLimit)
	for i := range top {
		p, err := uc.store.Products.GetByID(ctx, top[i].ProductID)
		if err != nil {
			return nil, fmt.Errorf("producto %s: %w", top[i].ProductID, err)
		}
		if p != nil {
			top[i].ProductName = p.Name
		}
	}
	return top, nil
}

func (uc *DashboardUseCase) topClients(ctx context.Context) ([]dto.TopClient, error) {
	sales, err := uc.store.Sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}
	top := RankClients(sales, TopLimit)
	for i := range top {
		c, err := uc.store.Clients.GetByID(ctx, top[i].ClientID)
		if err != nil {
			return nil, fmt.Errorf("cliente %s: %w", top[i].ClientID, err)
		}
		if c != nil {
			top[i].ClientName = c.Name
		}
	}
	return top, nil
}

// RankProducts agrupa las ventas por producto (peso, total y cantidad), ordena por total
// descendente y trunca a limit. Los empates conservan el orden de primera aparición.
func RankProducts(sales []*entity.Sale, limit int) []dto.TopProduct {
	index := make(map[string]int)
	out := make([]dto.TopProduct, 0)
	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(out)
			index[s.ProductID] = i
			out = append(out, dto.TopProduct{ProductID: s.ProductID, WeightSold: decimal.Zero, Total: decimal.Zero})
		}
		out[i].WeightSold = out[i].WeightSold.Add(s.Weight)
		out[i].Total = out[i].Total.Add(s.Total)
		out[i].SalesCount++
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Total.GreaterThan(out[b].Total) })
	return truncate(out, limit)
}

// RankClients igual que RankProducts agrupando por cliente; ignora ventas sin cliente.
func RankClients(sales []*entity.Sale, limit int) []dto.TopClient {
	index := make(map[string]int)
	out := make([]dto.TopClient, 0)
	for _, s := range sales {
		if !s.HasClient() {
			continue
		}
		i, ok := index[s.ClientID]
		if !ok {
			i = len(out)
			index[s.ClientID] = i
			out = append(out, dto.TopClient{ClientID: s.ClientID, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(s.Total)
		out[i].PurchaseCount++
	}
	for i := range out {
		out[i].AverageTicket = out[i].Total.Div(decimal.NewFromInt(int64(out[i].PurchaseCount))).Round(2)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Total.GreaterThan(out[b].Total) })
	return truncate(out, limit)
}

func truncate[T any](s []T, limit int) []T {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func (uc *DashboardUseCase) employeeMetrics(ctx context.Context, now time.Time) (dto.EmployeeMetrics, error) {
	all, err := uc.store.Employees.List(ctx)
	if err != nil {
		return dto.EmployeeMetrics{}, fmt.Errorf("funcionarios: %w", err)
	}
	m := dto.EmployeeMetrics{Total: len(all)}
	for _, e := range all {
		if e.Active {
			m.Active++
		}
	}

	onVacation := make(map[string]struct{})
	for _, st := range []entity.VacationStatus{entity.VacationApproved, entity.VacationInProgress} {
		vs, err := uc.store.Vacations.ListByStatus(ctx, st)
		if err != nil {
			return dto.EmployeeMetrics{}, fmt.Errorf("vacaciones %s: %w", st, err)
		}
		for _, v := range vs {
			onVacation[v.EmployeeID] = struct{}{}
		}
	}
	m.OnVacation = len(onVacation)

	shifts, err := uc.store.Shifts.ListByDay(ctx, entity.WeekdayOf(now))
	if err != nil {
		return dto.EmployeeMetrics{}, fmt.Errorf("expedientes de hoy: %w", err)
	}
	m.ScheduledToday = len(shifts)
	return m, nil
}

func (uc *DashboardUseCase) stockAlerts(ctx context.Context) (dto.StockAlerts, error) {
	restock, err := uc.store.Ingredients.ListNeedingRestock(ctx)
	if err != nil {
		return dto.StockAlerts{}, fmt.Errorf("ingredientes a reponer: %w", err)
	}
	empty, err := uc.store.Ingredients.ListQuantityAtMost(ctx, decimal.Zero)
	if err != nil {
		return dto.StockAlerts{}, fmt.Errorf("ingredientes sin stock: %w", err)
	}
	a := dto.StockAlerts{
		RestockCount:    len(restock),
		OutOfStockCount: len(empty),
		Alerts:          make([]string, 0, len(restock)),
	}
	for _, i := range restock {
		a.Alerts = append(a.Alerts, AlertLine(i))
	}
	return a, nil
}

// AlertLine formatea la alerta de reposición de un ingrediente.
func AlertLine(i *entity.Ingredient) string {
	return fmt.Sprintf("%s - Stock: %s %s (Minimum: %s)",
		i.Name, i.Quantity.StringFixed(2), i.Unit, i.MinQuantity.StringFixed(2))
}
