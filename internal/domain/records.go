package domain

// Raw source records mirror the upstream store rows before normalization.
// Amounts and timestamps stay strings: the legacy importer wrote PSP payloads
// verbatim, so any of these fields may be empty or non-numeric. The
// normalizer owns the defensive parsing.

type RawSepaRecord struct {
	ID            uint64
	UserID        uint64
	Amount        string // post-commission amount as stored
	CommissionFee string
	Currency      string
	Status        string
	Reference     string
	CreatedAt     string
	User          *TransactionUser
}

type RawUsdtRecord struct {
	ID        uint64
	UserID    uint64
	AmountUsd string
	Status    string
	TxHash    string
	Reference string
	CreatedAt string
	User      *TransactionUser
}

type RawUsdcRecord struct {
	ID        uint64
	UserID    uint64
	AmountUsd string
	Status    string
	TxHash    string
	Reference string
	CreatedAt string
	User      *TransactionUser
}
