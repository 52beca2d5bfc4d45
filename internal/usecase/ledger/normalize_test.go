package usecase

import (
	"testing"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSepaRecord(t *testing.T) {
	record := &domain.RawSepaRecord{
		ID:            5,
		UserID:        77,
		Amount:        "84",
		CommissionFee: "16",
		Status:        "Successful",
		CreatedAt:     "2026-03-01T10:00:00Z",
	}

	tx := NormalizeSepaRecord(record)

	assert.Equal(t, "sepa-5", tx.ID)
	assert.Equal(t, domain.TypeDeposit, tx.Type)
	assert.Equal(t, 84.0, tx.Amount)
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, "successful", tx.Status)
	assert.Equal(t, 100.0, tx.InitialAmount)
	assert.Equal(t, 16.0, tx.CommissionAmount)
	assert.Equal(t, 84.0, tx.TotalAmount)
	assert.Equal(t, "DEP-5", tx.Reference)
	assert.Empty(t, tx.TxHash)

	expectedAt, err := time.Parse(time.RFC3339, "2026-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, tx.CreatedAt.Equal(expectedAt))
}

func TestNormalizeSepaRecordIsPure(t *testing.T) {
	record := &domain.RawSepaRecord{
		ID:            5,
		Amount:        "84",
		CommissionFee: "16",
		Status:        "completed",
		CreatedAt:     "2026-03-01T10:00:00Z",
	}

	first := NormalizeSepaRecord(record)
	second := NormalizeSepaRecord(record)
	assert.Equal(t, first, second)
}

func TestNormalizeSepaRecordCommissionInvariant(t *testing.T) {
	testCases := []struct {
		name          string
		amount        string
		commissionFee string
	}{
		{name: "integer amounts", amount: "84", commissionFee: "16"},
		{name: "fractional amounts", amount: "83.79", commissionFee: "15.96"},
		{name: "zero commission", amount: "250", commissionFee: "0"},
		{name: "garbage commission falls to zero", amount: "100", commissionFee: "sixteen"},
		{name: "negative amount falls to zero", amount: "-5", commissionFee: "16"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := NormalizeSepaRecord(&domain.RawSepaRecord{
				ID:            1,
				Amount:        tc.amount,
				CommissionFee: tc.commissionFee,
			})
			assert.InDelta(t, tx.InitialAmount, tx.TotalAmount+tx.CommissionAmount, 1e-9)
			assert.GreaterOrEqual(t, tx.Amount, 0.0)
			assert.GreaterOrEqual(t, tx.CommissionAmount, 0.0)
		})
	}
}

func TestNormalizeUsdcRecord(t *testing.T) {
	record := &domain.RawUsdcRecord{
		ID:        9,
		UserID:    3,
		AmountUsd: "250.5",
		Status:    "pending",
		CreatedAt: "2026-03-02T08:30:00Z",
	}

	tx := NormalizeUsdcRecord(record)

	assert.Equal(t, "usdc-9", tx.ID)
	assert.Equal(t, domain.TypeUsdc, tx.Type)
	assert.Equal(t, 250.5, tx.Amount)
	assert.Equal(t, "USDC", tx.Currency)
	assert.Equal(t, 250.5, tx.InitialAmount)
	assert.Equal(t, 0.0, tx.CommissionAmount)
	assert.Equal(t, 250.5, tx.TotalAmount)
	assert.Equal(t, "USDC-9", tx.Reference)
	assert.Empty(t, tx.TxHash)
}

func TestNormalizeUsdtRecordZeroCommission(t *testing.T) {
	tx := NormalizeUsdtRecord(&domain.RawUsdtRecord{
		ID:        12,
		AmountUsd: "1000",
		TxHash:    "0xabc",
	})

	assert.Equal(t, "usdt-12", tx.ID)
	assert.Equal(t, "USDT", tx.Currency)
	assert.Equal(t, 0.0, tx.CommissionAmount)
	assert.Equal(t, tx.Amount, tx.InitialAmount)
	assert.Equal(t, tx.Amount, tx.TotalAmount)
	assert.Equal(t, "USDT-12", tx.Reference)
	assert.Equal(t, "0xabc", tx.TxHash)
}

func TestNormalizeDefensiveDefaults(t *testing.T) {
	tx := NormalizeSepaRecord(&domain.RawSepaRecord{ID: 3})

	assert.Equal(t, 0.0, tx.Amount)
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, "pending", tx.Status)
	assert.Equal(t, "DEP-3", tx.Reference)
	// Unparseable timestamps fall back to now, not to the zero time.
	assert.WithinDuration(t, time.Now().UTC(), tx.CreatedAt, time.Minute)
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain integer", raw: "100", expected: 100},
		{name: "fractional", raw: "250.5", expected: 250.5},
		{name: "padded", raw: " 42 ", expected: 42},
		{name: "empty", raw: "", expected: 0},
		{name: "words", raw: "one hundred", expected: 0},
		{name: "negative", raw: "-10", expected: 0},
		{name: "nan", raw: "NaN", expected: 0},
		{name: "infinity", raw: "Inf", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseAmount(tc.raw))
		})
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "rfc3339", raw: "2026-01-15T09:00:00Z"},
		{name: "rfc3339 nano", raw: "2026-01-15T09:00:00.123456789Z"},
		{name: "sql datetime", raw: "2026-01-15 09:00:00"},
		{name: "date only", raw: "2026-01-15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := parseTimestamp(tc.raw)
			assert.Equal(t, 2026, parsed.Year())
			assert.Equal(t, time.January, parsed.Month())
			assert.Equal(t, 15, parsed.Day())
		})
	}
}
