package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SourceKind tags which of the three source stores a transaction row lives in.
type SourceKind string

const (
	KindSepa SourceKind = "sepa"
	KindUsdt SourceKind = "usdt"
	KindUsdc SourceKind = "usdc"
)

// TransactionType is the client-facing type token. SEPA rows are exposed
// as "deposit" even though their id prefix stays "sepa".
type TransactionType string

const (
	TypeDeposit TransactionType = "deposit"
	TypeUsdt    TransactionType = "usdt"
	TypeUsdc    TransactionType = "usdc"
)

func (k SourceKind) TransactionType() TransactionType {
	switch k {
	case KindSepa:
		return TypeDeposit
	case KindUsdt:
		return TypeUsdt
	default:
		return TypeUsdc
	}
}

func ParseSourceKind(s string) (SourceKind, error) {
	switch SourceKind(strings.ToLower(s)) {
	case KindSepa:
		return KindSepa, nil
	case KindUsdt:
		return KindUsdt, nil
	case KindUsdc:
		return KindUsdc, nil
	default:
		return "", ErrUnknownSourceKind
	}
}

// TransactionID is the typed form of the wire composite id "{kind}-{numericId}".
// It is parsed once at ingress and serialized back only at the wire boundary.
type TransactionID struct {
	Kind      SourceKind
	NumericID uint64
}

func (id TransactionID) String() string {
	return fmt.Sprintf("%s-%d", id.Kind, id.NumericID)
}

func ParseTransactionID(composite string) (TransactionID, error) {
	prefix, rawID, found := strings.Cut(composite, "-")
	if !found {
		return TransactionID{}, ErrInvalidTransactionID
	}
	kind, err := ParseSourceKind(prefix)
	if err != nil {
		return TransactionID{}, ErrInvalidTransactionID
	}
	numericID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return TransactionID{}, ErrInvalidTransactionID
	}
	return TransactionID{Kind: kind, NumericID: numericID}, nil
}

// TransactionUser is the owner attached to platform-wide ledger rows.
type TransactionUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Transaction is the canonical normalized ledger row. It is a read-only
// projection of a source-store row, recomputed on every request.
//
// For deposits InitialAmount = CommissionAmount + TotalAmount holds; for
// crypto orders CommissionAmount is 0 and InitialAmount = TotalAmount = Amount.
type Transaction struct {
	ID               string           `json:"id"`
	Type             TransactionType  `json:"type"`
	Amount           float64          `json:"amount"`
	Currency         string           `json:"currency"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	InitialAmount    float64          `json:"initialAmount"`
	CommissionAmount float64          `json:"commissionAmount"`
	TotalAmount      float64          `json:"totalAmount"`
	Reference        string           `json:"reference"`
	TxHash           string           `json:"txHash"`
	User             *TransactionUser `json:"user,omitempty"`
}
