package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/paofresquim-api/internal/application/analytics"
	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/paofresquim-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type fakeReceipts struct{}

func (fakeReceipts) GenerateSaleReceipt(_ context.Context, sale *dto.SaleResponse) ([]byte, error) {
	return []byte("%PDF-fake " + sale.ID), nil
}

// newAPI monta la API completa sobre el almacenamiento en memoria.
func newAPI(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	clock := func() time.Time { return fixedNow }
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.TraceMiddleware(zerolog.Nop()))
	app.Use(apphttp.MetricsMiddleware())
	apphttp.Router(app, apphttp.RouterDeps{
		Services:    usecase.NewServices(store, clock),
		DashboardUC: appanalytics.NewDashboardUseCase(store, clock),
		Receipts:    fakeReceipts{},
		JWTSecret:   jwtSecret,
		StoreDriver: "memory",
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createProduct(t *testing.T, app *fiber.App, name, price string) dto.ProductResponse {
	t.Helper()
	resp := send(t, app, http.MethodPost, "/api/produtos", map[string]any{"name": name, "price_per_kg": price})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func createEmployee(t *testing.T, app *fiber.App, name string) dto.EmployeeResponse {
	t.Helper()
	resp := send(t, app, http.MethodPost, "/api/funcionarios", map[string]any{"name": name, "role": "baker", "base_salary": "2500"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.EmployeeResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_CrearYRecibo(t *testing.T) {
	app := newAPI(t, "")
	p := createProduct(t, app, "Pão francês", "12.50")

	resp := send(t, app, http.MethodPost, "/api/vendas", map[string]any{"product_id": p.ID, "weight": "2"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sale := decode[dto.SaleResponse](t, resp)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, dto.NoClientLabel, sale.ClientName)

	resp = send(t, app, http.MethodGet, "/api/vendas/"+sale.ID+"/recibo", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp = send(t, app, http.MethodDelete, "/api/produtos/"+p.ID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BUSINESS_RULE", body.Code)
}

func TestErrores_FormatoDelCuerpo(t *testing.T) {
	app := newAPI(t, "")

	resp := send(t, app, http.MethodGet, "/api/clientes/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "/api/clientes/no-existe", body.Path)
	assert.Equal(t, http.StatusNotFound, body.Status)

	resp = send(t, app, http.MethodPost, "/api/clientes", map[string]any{"name": "Ana", "email": "no-es-email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	require.Len(t, body.Fields, 1)
	assert.Contains(t, body.Fields[0], "Email")

	resp = send(t, app, http.MethodGet, "/api/vendas/periodo?inicio=2026-10-01T00:00:00", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestErrores_IDQueNoEsUUIDEs404(t *testing.T) {
	app := newAPI(t, "")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/vendas/abc"},
		{http.MethodGet, "/api/vendas/abc/recibo"},
		{http.MethodDelete, "/api/produtos/1"},
		{http.MethodPut, "/api/clientes/42"},
		{http.MethodPatch, "/api/estoque-ingredientes/x/quantidade?novaQuantidade=1"},
		{http.MethodGet, "/api/ferias/urn:uuid:00000000-0000-0000-0000-000000000001"},
	} {
		var body any
		if tc.method == http.MethodPut {
			body = map[string]any{"name": "Ana", "email": "ana@mail.com"}
		}
		resp := send(t, app, tc.method, tc.path, body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.path)
		assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code, tc.path)
	}

	resp := send(t, app, http.MethodGet, "/api/vendas/cliente/abc", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.SaleResponse](t, resp))
}

func TestExpediente_SegundoDelDiaEsConflicto(t *testing.T) {
	app := newAPI(t, "")
	e := createEmployee(t, app, "Eva")
	shift := map[string]any{"employee_id": e.ID, "day": "monday", "entry_time": "06:00", "exit_time": "14:00"}

	resp := send(t, app, http.MethodPost, "/api/expediente", shift)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodPost, "/api/expediente", shift)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, resp).Code)

	resp = send(t, app, http.MethodGet, "/api/expediente/dia/segunda", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ShiftResponse](t, resp), 1)
}

func TestIngredientes_AjusteDeCantidadPorQuery(t *testing.T) {
	app := newAPI(t, "")
	resp := send(t, app, http.MethodPost, "/api/estoque-ingredientes", map[string]any{"name": "Farinha", "quantity": "20", "min_quantity": "5"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ing := decode[dto.IngredientResponse](t, resp)

	resp = send(t, app, http.MethodPatch, "/api/estoque-ingredientes/"+ing.ID+"/quantidade?novaQuantidade=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.IngredientResponse](t, resp).NeedsRestock)

	resp = send(t, app, http.MethodGet, "/api/dashboard/alertas-estoque", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	alerts := decode[dto.StockAlerts](t, resp)
	assert.Equal(t, []string{"Farinha - Stock: 3.00 kg (Minimum: 5.00)"}, alerts.Alerts)
}

func TestIngredientes_EntradaDeMercaderia(t *testing.T) {
	app := newAPI(t, "")
	resp := send(t, app, http.MethodPost, "/api/estoque-ingredientes", map[string]any{"name": "Açúcar", "quantity": "10", "average_cost": "4"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ing := decode[dto.IngredientResponse](t, resp)

	resp = send(t, app, http.MethodPatch, "/api/estoque-ingredientes/"+ing.ID+"/entrada", map[string]any{"quantity": "30", "unit_cost": "6"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.IngredientResponse](t, resp)
	assert.Equal(t, "40", out.Quantity.String())
	assert.Equal(t, "5.5", out.AverageCost.String())

	resp = send(t, app, http.MethodPatch, "/api/estoque-ingredientes/"+ing.ID+"/entrada", map[string]any{"quantity": "-1", "unit_cost": "6"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Transversales
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthYTraceID(t *testing.T) {
	app := newAPI(t, "")
	resp := send(t, app, http.MethodGet, "/health", nil, apphttp.TraceHeader, "abc12345")
	assert.Equal(t, "abc12345", resp.Header.Get(apphttp.TraceHeader))
	h := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, "memory", h.Store)

	resp = send(t, app, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get(apphttp.TraceHeader), 8)
	resp.Body.Close()

	for _, bad := range []string{strings.Repeat("x", 65), "abc", "abc 12345", "<script>12345"} {
		resp = send(t, app, http.MethodGet, "/health", nil, apphttp.TraceHeader, bad)
		got := resp.Header.Get(apphttp.TraceHeader)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 8, "se genera uno nuevo")
		resp.Body.Close()
	}
}

func TestAuth_GestionDePersonalSoloManager(t *testing.T) {
	app := newAPI(t, testJWTSecret)
	employee := map[string]any{"name": "Rui", "role": "helper", "base_salary": "1800"}

	resp := send(t, app, http.MethodGet, "/api/funcionarios", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodGet, "/api/funcionarios", nil, "Authorization", tokenForRole(t, "attendant"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodPost, "/api/funcionarios", employee, "Authorization", tokenForRole(t, "attendant"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, app, http.MethodPost, "/api/funcionarios", employee, "Authorization", tokenForRole(t, "manager"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}
