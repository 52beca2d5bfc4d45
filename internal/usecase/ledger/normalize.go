package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
)

// Normalization is total: malformed fields fall back to safe defaults
// instead of surfacing errors. Availability over strict validation.

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseAmount accepts whatever the source stored for an amount. Anything
// that does not parse to a finite non-negative number becomes 0.
func parseAmount(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// parseTimestamp sorts unparseable timestamps as "now" rather than failing.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

func normalizeStatus(raw string) string {
	status := strings.ToLower(strings.TrimSpace(raw))
	if status == "" {
		return "pending"
	}
	return status
}

// NormalizeSepaRecord converts a raw SEPA deposit into the canonical shape.
// The stored amount is already post-fee, so the pre-fee amount the client
// sent is recovered as amount + commissionFee.
func NormalizeSepaRecord(record *domain.RawSepaRecord) *domain.Transaction {
	amount := parseAmount(record.Amount)
	commissionFee := parseAmount(record.CommissionFee)

	currency := strings.TrimSpace(record.Currency)
	if currency == "" {
		currency = "EUR"
	}

	reference := strings.TrimSpace(record.Reference)
	if reference == "" {
		reference = fmt.Sprintf("DEP-%d", record.ID)
	}

	return &domain.Transaction{
		ID:               domain.TransactionID{Kind: domain.KindSepa, NumericID: record.ID}.String(),
		Type:             domain.TypeDeposit,
		Amount:           amount,
		Currency:         currency,
		Status:           normalizeStatus(record.Status),
		CreatedAt:        parseTimestamp(record.CreatedAt),
		InitialAmount:    amount + commissionFee,
		CommissionAmount: commissionFee,
		TotalAmount:      amount,
		Reference:        reference,
		TxHash:           "",
		User:             record.User,
	}
}

// NormalizeUsdtRecord converts a raw USDT order. No commission is modeled
// for crypto orders, so all three amount fields carry the face amount.
func NormalizeUsdtRecord(record *domain.RawUsdtRecord) *domain.Transaction {
	amount := parseAmount(record.AmountUsd)

	reference := strings.TrimSpace(record.Reference)
	if reference == "" {
		reference = fmt.Sprintf("USDT-%d", record.ID)
	}

	return &domain.Transaction{
		ID:               domain.TransactionID{Kind: domain.KindUsdt, NumericID: record.ID}.String(),
		Type:             domain.TypeUsdt,
		Amount:           amount,
		Currency:         "USDT",
		Status:           normalizeStatus(record.Status),
		CreatedAt:        parseTimestamp(record.CreatedAt),
		InitialAmount:    amount,
		CommissionAmount: 0,
		TotalAmount:      amount,
		Reference:        reference,
		TxHash:           record.TxHash,
		User:             record.User,
	}
}

// NormalizeUsdcRecord converts a raw USDC order; same rules as USDT.
func NormalizeUsdcRecord(record *domain.RawUsdcRecord) *domain.Transaction {
	amount := parseAmount(record.AmountUsd)

	reference := strings.TrimSpace(record.Reference)
	if reference == "" {
		reference = fmt.Sprintf("USDC-%d", record.ID)
	}

	return &domain.Transaction{
		ID:               domain.TransactionID{Kind: domain.KindUsdc, NumericID: record.ID}.String(),
		Type:             domain.TypeUsdc,
		Amount:           amount,
		Currency:         "USDC",
		Status:           normalizeStatus(record.Status),
		CreatedAt:        parseTimestamp(record.CreatedAt),
		InitialAmount:    amount,
		CommissionAmount: 0,
		TotalAmount:      amount,
		Reference:        reference,
		TxHash:           record.TxHash,
		User:             record.User,
	}
}
