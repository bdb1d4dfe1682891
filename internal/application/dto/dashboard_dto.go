package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas consolidadas. Cada sección se calcula por separado;
// si una falla se devuelve su valor por defecto.
type DashboardResponse struct {
	Sales       SalesMetrics    `json:"sales"`
	TopProducts []TopProduct    `json:"top_products"`
	TopClients  []TopClient     `json:"top_clients"`
	Employees   EmployeeMetrics `json:"employees"`
	StockAlerts StockAlerts     `json:"stock_alerts"`
}

// SalesMetrics ventas del día y del mes. GrowthPercent no se calcula (siempre 0).
type SalesMetrics struct {
	TodayTotal    decimal.Decimal `json:"today_total"`
	MonthTotal    decimal.Decimal `json:"month_total"`
	TodayCount    int             `json:"today_count"`
	MonthCount    int             `json:"month_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	GrowthPercent decimal.Decimal `json:"growth_percent"`
}

// TopProduct acumulado de ventas de un producto.
type TopProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	WeightSold  decimal.Decimal `json:"weight_sold"`
	Total       decimal.Decimal `json:"total"`
	SalesCount  int             `json:"sales_count"`
}

// TopClient acumulado de compras de un cliente.
type TopClient struct {
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Total         decimal.Decimal `json:"total"`
	PurchaseCount int             `json:"purchase_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}

// EmployeeMetrics conteos de personal.
type EmployeeMetrics struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	OnVacation     int `json:"on_vacation"`
	ScheduledToday int `json:"scheduled_today"`
}

// StockAlerts ingredientes a reponer y sin stock, con una línea de texto por alerta.
type StockAlerts struct {
	RestockCount    int      `json:"restock_count"`
	OutOfStockCount int      `json:"out_of_stock_count"`
	Alerts          []string `json:"alerts"`
}

// AmountResponse envoltorio para endpoints que devuelven un solo importe.
type AmountResponse struct {
	Value decimal.Decimal `json:"value"`
}
