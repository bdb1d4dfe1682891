package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/domain"
	"github.com/jhoicas/paofresquim-api/internal/domain/entity"
	"github.com/jhoicas/paofresquim-api/internal/domain/validation"
)

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time { return today.AddDate(0, 0, offset) }

// ──────────────────────────────────────────────────────────────────────────────
// Vacaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateVacationPeriod(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		ok         bool
	}{
		{"cinco días desde hoy", day(0), day(4), true},
		{"cuatro días", day(0), day(3), false},
		{"treinta días", day(1), day(30), true},
		{"treinta y un días", day(1), day(31), false},
		{"inicio en el pasado", day(-1), day(5), false},
		{"fin antes del inicio", day(10), day(5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateVacationPeriod(tc.start, tc.end, today)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInclusiveDays_CuentaAmbosExtremos(t *testing.T) {
	assert.Equal(t, 5, entity.InclusiveDays(day(0), day(4)))
	assert.Equal(t, 1, entity.InclusiveDays(day(2), day(2)))
	// La hora del día no influye.
	start := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, entity.InclusiveDays(start, end))
}

func TestVacationOverlap(t *testing.T) {
	existing := &entity.Vacation{ID: "v1", EmployeeID: "e1"}
	existing.SetPeriod(day(10), day(20))

	err := validation.VacationOverlap([]*entity.Vacation{existing}, "", day(20), day(25))
	assert.ErrorIs(t, err, domain.ErrConflict, "compartir un extremo es solapamiento")

	err = validation.VacationOverlap([]*entity.Vacation{existing}, "", day(21), day(25))
	assert.NoError(t, err)

	err = validation.VacationOverlap([]*entity.Vacation{existing}, "v1", day(12), day(18))
	assert.NoError(t, err, "la propia solicitud se excluye al actualizar")
}

func TestVacationTransition(t *testing.T) {
	allowed := [][2]entity.VacationStatus{
		{entity.VacationRequested, entity.VacationApproved},
		{entity.VacationApproved, entity.VacationInProgress},
		{entity.VacationInProgress, entity.VacationCompleted},
		{entity.VacationRequested, entity.VacationCancelled},
		{entity.VacationApproved, entity.VacationCancelled},
		{entity.VacationInProgress, entity.VacationCancelled},
	}
	for _, p := range allowed {
		assert.NoError(t, validation.VacationTransition(p[0], p[1]), "%s → %s", p[0], p[1])
	}

	rejected := [][2]entity.VacationStatus{
		{entity.VacationRequested, entity.VacationInProgress},
		{entity.VacationApproved, entity.VacationApproved},
		{entity.VacationRequested, entity.VacationCompleted},
		{entity.VacationCompleted, entity.VacationCancelled},
		{entity.VacationCancelled, entity.VacationApproved},
		{entity.VacationApproved, entity.VacationRequested},
	}
	for _, p := range rejected {
		err := validation.VacationTransition(p[0], p[1])
		assert.ErrorIs(t, err, domain.ErrBusinessRule, "%s → %s", p[0], p[1])
		assert.False(t, errors.Is(err, domain.ErrInvalidInput))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Expedientes
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeClock(t *testing.T) {
	got, err := validation.NormalizeClock("entrada", "9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	got, err = validation.NormalizeClock("entrada", "23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)

	for _, bad := range []string{"24:00", "12:60", "7", "ab:cd", "12:5", ""} {
		_, err := validation.NormalizeClock("entrada", bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestValidateShift(t *testing.T) {
	d, p, entry, exit, err := validation.ValidateShift(validation.ShiftInput{
		Day: "Monday", EntryTime: "6:00", ExitTime: "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.Monday, d)
	assert.Equal(t, entity.PeriodMorning, p, "turno vacío = morning")
	assert.Equal(t, "06:00", entry)
	assert.Equal(t, "14:00", exit)

	// "9:00" < "10:00" solo tras normalizar; sin ceros la comparación de strings fallaría.
	_, _, _, _, err = validation.ValidateShift(validation.ShiftInput{Day: "friday", EntryTime: "9:00", ExitTime: "10:00"})
	assert.NoError(t, err)

	_, _, _, _, err = validation.ValidateShift(validation.ShiftInput{Day: "friday", EntryTime: "10:00", ExitTime: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "salida igual a entrada")

	_, _, _, _, err = validation.ValidateShift(validation.ShiftInput{Day: "funday", EntryTime: "08:00", ExitTime: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, _, _, err = validation.ValidateShift(validation.ShiftInput{Day: "friday", EntryTime: "08:00", ExitTime: "10:00", Period: "night"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, p, _, _, err = validation.ValidateShift(validation.ShiftInput{Day: "sábado", EntryTime: "08:00", ExitTime: "18:00", Period: "full-day"})
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodFullDay, p)
}

func TestShiftOverlap(t *testing.T) {
	same := []*entity.Shift{{ID: "s1", EmployeeID: "e1", Day: entity.Monday}}
	assert.ErrorIs(t, validation.ShiftOverlap(same, "", entity.Monday), domain.ErrConflict)
	assert.NoError(t, validation.ShiftOverlap(same, "s1", entity.Monday))
	assert.NoError(t, validation.ShiftOverlap(nil, "", entity.Monday))
}

// ──────────────────────────────────────────────────────────────────────────────
// Enumerados y campos
// ──────────────────────────────────────────────────────────────────────────────

func TestParseRole(t *testing.T) {
	r, err := validation.ParseRole(" Manager ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, r)

	r, err = validation.ParseRole("padeiro")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBaker, r)

	_, err = validation.ParseRole("chef")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParsePayment_Defaults(t *testing.T) {
	m, err := validation.ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCash, m)

	s, err := validation.ParsePaymentStatus("")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, s)

	m, err = validation.ParsePaymentMethod("fiado")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCredit, m)

	_, err = validation.ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseVacationStatus_Guiones(t *testing.T) {
	s, err := validation.ParseVacationStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, entity.VacationInProgress, s)
}

func TestCamposNumericos(t *testing.T) {
	assert.ErrorIs(t, validation.Positive("precio", decimal.Zero), domain.ErrInvalidInput)
	assert.NoError(t, validation.Positive("precio", decimal.RequireFromString("0.01")))
	assert.NoError(t, validation.NonNegative("cantidad", decimal.Zero))
	assert.ErrorIs(t, validation.NonNegative("cantidad", decimal.NewFromInt(-1)), domain.ErrInvalidInput)
	assert.ErrorIs(t, validation.Required("nombre", "   "), domain.ErrInvalidInput)

	qty := decimal.NewFromInt(3)
	assert.NoError(t, validation.Present("cantidad", &qty))
	assert.ErrorIs(t, validation.Present[decimal.Decimal]("cantidad", nil), domain.ErrInvalidInput)

	assert.NoError(t, validation.MaxScale("peso", decimal.RequireFromString("2.335"), 3))
	assert.NoError(t, validation.MaxScale("peso", decimal.RequireFromString("2.5000"), 3))
	assert.ErrorIs(t, validation.MaxScale("peso", decimal.RequireFromString("2.3351"), 3), domain.ErrInvalidInput)
}

func TestUnique(t *testing.T) {
	assert.NoError(t, validation.Unique("", "x", "email", "a@b.c"))
	assert.NoError(t, validation.Unique("x", "x", "email", "a@b.c"))
	assert.ErrorIs(t, validation.Unique("y", "x", "email", "a@b.c"), domain.ErrConflict)
}
