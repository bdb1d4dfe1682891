package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paofresquim-api/internal/application/dto"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/pdf"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":       "R$ 0,00",
		"25":      "R$ 25,00",
		"1234.5":  "R$ 1.234,50",
		"1000000": "R$ 1.000.000,00",
		"-12.345": "R$ -12,35",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateSaleReceipt(t *testing.T) {
	due := time.Date(2026, 10, 23, 10, 0, 0, 0, time.UTC)
	sale := &dto.SaleResponse{
		ID:            "5f1c2a9e-0000-4000-8000-000000000001",
		ClientName:    dto.NoClientLabel,
		ProductName:   "Pão francês",
		Weight:        decimal.RequireFromString("2"),
		PricePerKg:    decimal.RequireFromString("12.50"),
		Total:         decimal.RequireFromString("25"),
		PaymentMethod: "credit",
		PaymentStatus: "pending",
		SoldAt:        time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
		DueAt:         &due,
	}
	out, err := pdf.NewReceiptGenerator("Pão Fresquim").GenerateSaleReceipt(context.Background(), sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}
