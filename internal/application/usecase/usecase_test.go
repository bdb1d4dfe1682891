package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/repository"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newServices(t *testing.T) *usecase.Services {
	t.Helper()
	return usecase.NewServices(memory.NewStore(), clock)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func mustProduct(t *testing.T, svc *usecase.Services, name, price string) *dto.ProductResponse {
	t.Helper()
	p, err := svc.Products.Create(context.Background(), dto.ProductRequest{Name: name, PricePerKg: dec(price)})
	require.NoError(t, err)
	return p
}

func mustEmployee(t *testing.T, svc *usecase.Services, name, role string) *dto.EmployeeResponse {
	t.Helper()
	e, err := svc.Employees.Create(context.Background(), dto.EmployeeRequest{Name: name, Role: role, BaseSalary: dec("2000")})
	require.NoError(t, err)
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_EmailDuplicadoEsConflicto(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()

	first, err := svc.Clients.Create(ctx, dto.ClientRequest{Name: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, first.RegisteredAt)

	_, err = svc.Clients.Create(ctx, dto.ClientRequest{Name: "Otra Ana", Email: "ANA@mail.com"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Actualizarse a sí mismo con el mismo email es válido
	_, err = svc.Clients.Update(ctx, first.ID, dto.ClientRequest{Name: "Ana Maria", Email: "ana@mail.com"})
	assert.NoError(t, err)
}

func TestClient_NoSeBorraConVentas(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	c, err := svc.Clients.Create(ctx, dto.ClientRequest{Name: "Bruno"})
	require.NoError(t, err)
	p := mustProduct(t, svc, "Pão francês", "12.50")

	_, err = svc.Sales.Create(ctx, dto.SaleRequest{ClientID: c.ID, ProductID: p.ID, Weight: dec("1")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Clients.Delete(ctx, c.ID), domain.ErrBusinessRule)
}

func TestClient_GetInexistente(t *testing.T) {
	svc := newServices(t)
	_, err := svc.Clients.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_PrecioDebeSerPositivo(t *testing.T) {
	svc := newServices(t)
	_, err := svc.Products.Create(context.Background(), dto.ProductRequest{Name: "Bolo", PricePerKg: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_NoSeBorraConVentas(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	p := mustProduct(t, svc, "Pão de queijo", "30")
	_, err := svc.Sales.Create(ctx, dto.SaleRequest{ProductID: p.ID, Weight: dec("0.5")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Products.Delete(ctx, p.ID), domain.ErrBusinessRule)

	other := mustProduct(t, svc, "Sonho", "20")
	assert.NoError(t, svc.Products.Delete(ctx, other.ID))
}

func TestProduct_RangoDePrecio(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	mustProduct(t, svc, "Barato", "5")
	mustProduct(t, svc, "Medio", "15")
	mustProduct(t, svc, "Caro", "40")

	got, err := svc.Products.ListByPriceRange(ctx, dec("10"), dec("40"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = svc.Products.ListByPriceRange(ctx, dec("50"), dec("10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_TotalConValoresPorDefecto(t *testing.T) {
	svc := newServices(t)
	p := mustProduct(t, svc, "Pão francês", "12.50")

	s, err := svc.Sales.Create(context.Background(), dto.SaleRequest{ProductID: p.ID, Weight: dec("2")})
	require.NoError(t, err)

	assert.True(t, s.Total.Equal(dec("25.00")), "total=%s", s.Total)
	assert.Equal(t, "cash", s.PaymentMethod)
	assert.Equal(t, "paid", s.PaymentStatus)
	assert.Equal(t, dto.NoClientLabel, s.ClientName)
	assert.Equal(t, "Pão francês", s.ProductName)
	assert.Nil(t, s.DueAt)
	assert.Equal(t, fixedNow, s.SoldAt)
}

func TestSale_FiadoPendienteVenceEnSieteDias(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	p := mustProduct(t, svc, "Broa", "18")

	s, err := svc.Sales.Create(ctx, dto.SaleRequest{
		ProductID: p.ID, Weight: dec("1"), PaymentMethod: "fiado", PaymentStatus: "pendente",
	})
	require.NoError(t, err)
	require.NotNil(t, s.DueAt)
	assert.Equal(t, fixedNow.AddDate(0, 0, 7), *s.DueAt)

	paid, err := svc.Sales.UpdatePaymentStatus(ctx, s.ID, "paid")
	require.NoError(t, err)
	assert.Nil(t, paid.DueAt)

	_, err = svc.Sales.UpdatePaymentStatus(ctx, s.ID, "unknown")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_ProductoInexistente(t *testing.T) {
	svc := newServices(t)
	_, err := svc.Sales.Create(context.Background(), dto.SaleRequest{
		ProductID: "00000000-0000-0000-0000-000000000099", Weight: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// uuidSales rechaza los IDs que no son UUID igual que la columna uuid de PostgreSQL.
type uuidSales struct{ repository.SaleRepository }

func (r uuidSales) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New(`invalid input syntax for type uuid: "` + id + `"`)
	}
	return r.SaleRepository.GetByID(ctx, id)
}

func (r uuidSales) ListByClient(ctx context.Context, clientID string) ([]*entity.Sale, error) {
	if _, err := uuid.Parse(clientID); err != nil {
		return nil, errors.New(`invalid input syntax for type uuid: "` + clientID + `"`)
	}
	return r.SaleRepository.ListByClient(ctx, clientID)
}

func TestSale_IDMalFormadoEsNoEncontrado(t *testing.T) {
	store := memory.NewStore()
	store.Sales = uuidSales{store.Sales}
	svc := usecase.NewServices(store, clock)
	ctx := context.Background()

	_, err := svc.Sales.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Sales.Delete(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Sales.UpdatePaymentStatus(ctx, "abc", "paid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := svc.Sales.ListByClient(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSale_PesoDebeSerPositivo(t *testing.T) {
	svc := newServices(t)
	p := mustProduct(t, svc, "Rosca", "22")
	_, err := svc.Sales.Create(context.Background(), dto.SaleRequest{ProductID: p.ID, Weight: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_EscalaDePesoYPrecio(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	p := mustProduct(t, svc, "Broa", "10.55")

	s, err := svc.Sales.Create(ctx, dto.SaleRequest{ProductID: p.ID, Weight: dec("2.335")})
	require.NoError(t, err)
	assert.True(t, s.Total.Equal(dec("24.63")), "total = %s", s.Total)

	_, err = svc.Sales.Create(ctx, dto.SaleRequest{ProductID: p.ID, Weight: dec("1.2345")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Sales.Create(ctx, dto.SaleRequest{ProductID: p.ID, Weight: dec("1"), PricePerKg: decp("10.555")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Products.Create(ctx, dto.ProductRequest{Name: "Sonho", PricePerKg: dec("9.999")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingredientes
// ──────────────────────────────────────────────────────────────────────────────

func TestIngredient_ReposicionYStockCero(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	minQty := dec("10")
	flour, err := svc.Ingredients.Create(ctx, dto.IngredientRequest{Name: "Farinha", Quantity: decp("50"), MinQuantity: &minQty})
	require.NoError(t, err)
	assert.Equal(t, "kg", flour.Unit)
	assert.False(t, flour.NeedsRestock)

	updated, err := svc.Ingredients.UpdateQuantity(ctx, flour.ID, dec("10"))
	require.NoError(t, err)
	assert.True(t, updated.NeedsRestock)

	_, err = svc.Ingredients.UpdateQuantity(ctx, flour.ID, dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Ingredients.UpdateQuantity(ctx, flour.ID, decimal.Zero)
	require.NoError(t, err)
	empty, err := svc.Ingredients.ListOutOfStock(ctx)
	require.NoError(t, err)
	require.Len(t, empty, 1)
	assert.Equal(t, flour.ID, empty[0].ID)
}

func TestIngredient_CantidadObligatoriaAlCrear(t *testing.T) {
	svc := newServices(t)
	_, err := svc.Ingredients.Create(context.Background(), dto.IngredientRequest{Name: "Sal"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Ingredients.Create(context.Background(), dto.IngredientRequest{Name: "Sal", Quantity: decp("0")})
	assert.NoError(t, err)
}

func TestIngredient_RenombrarConservaCantidadYFecha(t *testing.T) {
	now := fixedNow
	svc := usecase.NewServices(memory.NewStore(), func() time.Time { return now })
	ctx := context.Background()

	flour, err := svc.Ingredients.Create(ctx, dto.IngredientRequest{Name: "Farinha", Quantity: decp("20"), AverageCost: decp("4")})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, flour.UpdatedAt)

	now = fixedNow.Add(time.Hour)
	renamed, err := svc.Ingredients.Update(ctx, flour.ID, dto.IngredientRequest{Name: "Farinha de trigo"})
	require.NoError(t, err)
	assert.Equal(t, "Farinha de trigo", renamed.Name)
	assert.True(t, renamed.Quantity.Equal(dec("20")), "cantidad = %s", renamed.Quantity)
	assert.True(t, renamed.AverageCost.Equal(dec("4")))
	assert.False(t, renamed.NeedsRestock)
	assert.Equal(t, fixedNow, renamed.UpdatedAt, "sin cambio de cantidad ni costo")

	same, err := svc.Ingredients.Update(ctx, flour.ID, dto.IngredientRequest{Name: "Farinha de trigo", Quantity: decp("20.00"), AverageCost: decp("4.0")})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, same.UpdatedAt)

	changed, err := svc.Ingredients.Update(ctx, flour.ID, dto.IngredientRequest{Name: "Farinha de trigo", Quantity: decp("15")})
	require.NoError(t, err)
	assert.True(t, changed.Quantity.Equal(dec("15")))
	assert.Equal(t, now, changed.UpdatedAt)
}

func TestIngredient_EntradaRecalculaCostoPromedio(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	cost := dec("4")
	flour, err := svc.Ingredients.Create(ctx, dto.IngredientRequest{Name: "Farinha", Quantity: decp("10"), AverageCost: &cost})
	require.NoError(t, err)

	out, err := svc.Ingredients.Receive(ctx, flour.ID, dto.StockEntryRequest{Quantity: dec("30"), UnitCost: dec("6")})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(dec("40")))
	assert.True(t, out.AverageCost.Equal(dec("5.5")), "costo = %s", out.AverageCost)
	assert.Equal(t, fixedNow, out.UpdatedAt)

	_, err = svc.Ingredients.Receive(ctx, flour.ID, dto.StockEntryRequest{Quantity: decimal.Zero, UnitCost: dec("6")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Ingredients.Receive(ctx, "no-existe", dto.StockEntryRequest{Quantity: dec("1"), UnitCost: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Funcionarios
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployee_CargoEnPortuguesYActivacion(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "Carlos", "padeiro")
	assert.Equal(t, "baker", e.Role)
	assert.True(t, e.Active)
	assert.Equal(t, fixedNow, e.AdmittedAt)

	off, err := svc.Employees.Deactivate(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	inactive, err := svc.Employees.ListByActive(ctx, false)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)

	_, err = svc.Employees.Create(ctx, dto.EmployeeRequest{Name: "X", Role: "chef", BaseSalary: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployee_NoSeBorraConExpedientes(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "Diana", "attendant")
	_, err := svc.Shifts.Create(ctx, dto.ShiftRequest{EmployeeID: e.ID, Day: "monday", EntryTime: "06:00", ExitTime: "14:00"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Employees.Delete(ctx, e.ID), domain.ErrBusinessRule)
}

// ──────────────────────────────────────────────────────────────────────────────
// Expedientes
// ──────────────────────────────────────────────────────────────────────────────

func TestShift_SegundoExpedienteMismoDiaEsConflicto(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "Eva", "baker")

	s, err := svc.Shifts.Create(ctx, dto.ShiftRequest{EmployeeID: e.ID, Day: "segunda", EntryTime: "5:30", ExitTime: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, "monday", s.Day)
	assert.Equal(t, "05:30", s.EntryTime)
	assert.Equal(t, "morning", s.Period)
	assert.Equal(t, "Eva", s.EmployeeName)
	assert.Equal(t, "baker", s.EmployeeRole)

	_, err = svc.Shifts.Create(ctx, dto.ShiftRequest{EmployeeID: e.ID, Day: "monday", EntryTime: "14:00", ExitTime: "18:00"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Actualizar el propio expediente no choca consigo mismo
	_, err = svc.Shifts.Update(ctx, s.ID, dto.ShiftRequest{EmployeeID: e.ID, Day: "monday", EntryTime: "06:00", ExitTime: "12:00"})
	assert.NoError(t, err)
}

func TestShift_SalidaAnteriorAEntrada(t *testing.T) {
	svc := newServices(t)
	e := mustEmployee(t, svc, "Fabio", "helper")
	_, err := svc.Shifts.Create(context.Background(), dto.ShiftRequest{EmployeeID: e.ID, Day: "friday", EntryTime: "14:00", ExitTime: "08:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShift_FuncionarioInexistente(t *testing.T) {
	svc := newServices(t)
	_, err := svc.Shifts.Create(context.Background(), dto.ShiftRequest{
		EmployeeID: "00000000-0000-0000-0000-000000000099", Day: "friday", EntryTime: "08:00", ExitTime: "12:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vacaciones
// ──────────────────────────────────────────────────────────────────────────────

func dateFromNow(days int) string { return fixedNow.AddDate(0, 0, days).Format(dto.DateLayout) }

func TestVacation_CincoDiasSeAceptanCuatroNo(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "Gabi", "manager")

	v, err := svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(10), EndDate: dateFromNow(14)})
	require.NoError(t, err)
	assert.Equal(t, 5, v.RequestedDays)
	assert.Equal(t, "requested", v.Status)
	assert.Equal(t, fixedNow, v.RequestedAt)

	_, err = svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(40), EndDate: dateFromNow(43)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVacation_SolapamientoEsConflicto(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "Hugo", "baker")

	_, err := svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(10), EndDate: dateFromNow(20)})
	require.NoError(t, err)

	_, err = svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(20), EndDate: dateFromNow(25)})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Otro funcionario en las mismas fechas no choca
	other := mustEmployee(t, svc, "Iris", "helper")
	_, err = svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: other.ID, StartDate: dateFromNow(10), EndDate: dateFromNow(20)})
	assert.NoError(t, err)
}

func TestVacation_TransicionesDeEstado(t *testing.T) {
	svc := newServices(t)
	ctx := context.Background()
	e := mustEmployee(t, svc, "João", "attendant")
	v, err := svc.Vacations.Create(ctx, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(1), EndDate: dateFromNow(7)})
	require.NoError(t, err)

	_, err = svc.Vacations.UpdateStatus(ctx, v.ID, "completed")
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	approved, err := svc.Vacations.UpdateStatus(ctx, v.ID, "aprovado")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// Aprobadas ya no se modifican ni se borran
	_, err = svc.Vacations.Update(ctx, v.ID, dto.VacationRequest{EmployeeID: e.ID, StartDate: dateFromNow(2), EndDate: dateFromNow(8)})
	assert.ErrorIs(t, err, domain.ErrBusinessRule)
	assert.ErrorIs(t, svc.Vacations.Delete(ctx, v.ID), domain.ErrBusinessRule)

	inProgress, err := svc.Vacations.UpdateStatus(ctx, v.ID, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", inProgress.Status)
}

func TestVacation_FechaMalFormada(t *testing.T) {
	svc := newServices(t)
	e := mustEmployee(t, svc, "Karla", "helper")
	_, err := svc.Vacations.Create(context.Background(), dto.VacationRequest{EmployeeID: e.ID, StartDate: "16/10/2026", EndDate: dateFromNow(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
