package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
)

func TestSale_TotalSeRecalcula(t *testing.T) {
	s := &entity.Sale{}
	s.SetPricePerKg(decimal.RequireFromString("10.00"))
	s.SetWeight(decimal.RequireFromString("2.5"))
	assert.True(t, s.Total.Equal(decimal.RequireFromString("25")), "total = %s", s.Total)

	s.SetPricePerKg(decimal.RequireFromString("12"))
	assert.True(t, s.Total.Equal(decimal.NewFromInt(30)))
}

func TestSale_TotalSeRedondeaACentavos(t *testing.T) {
	s := &entity.Sale{}
	s.SetWeight(decimal.RequireFromString("2.335"))
	s.SetPricePerKg(decimal.RequireFromString("10.55"))
	assert.Equal(t, "24.63", s.Total.StringFixed(2))
	assert.True(t, s.Total.Equal(decimal.RequireFromString("24.63")), "total = %s", s.Total)

	// La mitad se redondea hacia arriba, igual que NUMERIC en PostgreSQL.
	s.SetWeight(decimal.RequireFromString("0.5"))
	s.SetPricePerKg(decimal.RequireFromString("0.05"))
	assert.True(t, s.Total.Equal(decimal.RequireFromString("0.03")), "total = %s", s.Total)
}

func TestSale_RefreshDueDate(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s := &entity.Sale{PaymentMethod: entity.PaymentCredit, PaymentStatus: entity.PaymentPending}
	s.RefreshDueDate(now)
	require.NotNil(t, s.DueAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *s.DueAt)

	s.PaymentStatus = entity.PaymentPaid
	s.RefreshDueDate(now)
	assert.Nil(t, s.DueAt, "pagada no tiene vencimiento")

	s = &entity.Sale{PaymentMethod: entity.PaymentPix, PaymentStatus: entity.PaymentPending}
	s.RefreshDueDate(now)
	assert.Nil(t, s.DueAt, "solo el fiado vence")
}

func TestIngredient_NeedsRestock(t *testing.T) {
	i := &entity.Ingredient{Quantity: decimal.NewFromInt(2), MinQuantity: decimal.NewFromInt(5)}
	assert.True(t, i.NeedsRestock())

	i.SetQuantity(decimal.NewFromInt(5), time.Now())
	assert.True(t, i.NeedsRestock(), "igual al mínimo también requiere reposición")

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	i.SetQuantity(decimal.NewFromInt(6), at)
	assert.False(t, i.NeedsRestock())
	assert.Equal(t, at, i.UpdatedAt)

	i.SetQuantity(decimal.RequireFromString("6.000"), at.Add(time.Hour))
	i.SetAverageCost(decimal.Zero, at.Add(time.Hour))
	assert.Equal(t, at, i.UpdatedAt, "sin cambios no se refresca la fecha")

	i.SetAverageCost(decimal.NewFromInt(3), at.Add(time.Hour))
	assert.Equal(t, at.Add(time.Hour), i.UpdatedAt)
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-09 es lunes.
	monday := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, entity.Monday, entity.WeekdayOf(monday))
	assert.Equal(t, entity.Saturday, entity.WeekdayOf(monday.AddDate(0, 0, 5)))
	assert.Equal(t, entity.Sunday, entity.WeekdayOf(monday.AddDate(0, 0, 6)))
}

func TestVacation_SetPeriod(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	v := &entity.Vacation{}
	v.SetPeriod(time.Date(2026, 7, 1, 22, 0, 0, 0, loc), time.Date(2026, 7, 10, 1, 0, 0, 0, loc))
	assert.Equal(t, 10, v.RequestedDays)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), v.StartDate)
	assert.True(t, v.Overlaps(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, v.Overlaps(time.Date(2026, 7, 11, 0, 0, 0, 0, time.UTC), time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)))
}

func TestIngredient_ReceivePromedioPonderado(t *testing.T) {
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	i := &entity.Ingredient{Quantity: decimal.NewFromInt(10), AverageCost: decimal.NewFromInt(4)}

	i.Receive(decimal.NewFromInt(30), decimal.NewFromInt(6), at)

	assert.True(t, i.Quantity.Equal(decimal.NewFromInt(40)))
	assert.True(t, i.AverageCost.Equal(decimal.RequireFromString("5.5")), "costo = %s", i.AverageCost)
	assert.Equal(t, at, i.UpdatedAt)
}

func TestWeightedAverageCost_Bordes(t *testing.T) {
	d := decimal.RequireFromString
	assert.True(t, entity.WeightedAverageCost(d("0"), d("9"), d("5"), d("3")).Equal(d("3")), "sin stock previo toma el costo de entrada")
	assert.True(t, entity.WeightedAverageCost(d("-2"), d("9"), d("4"), d("2")).Equal(d("2")), "stock negativo cuenta como cero")
	assert.True(t, entity.WeightedAverageCost(d("0"), d("9"), d("0"), d("2")).IsZero())
	assert.True(t, entity.WeightedAverageCost(d("3"), d("1"), d("0"), d("7")).Equal(d("1")))
}
