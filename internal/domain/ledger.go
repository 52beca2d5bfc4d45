package domain

// SourceError records a degraded source inside a partial ledger result.
type SourceError struct {
	Source SourceKind
	Err    error
}

// LedgerResult is the merged ledger view. A failed source contributes an
// empty set and shows up in SourceErrors; callers decide whether to surface
// the degradation. Transactions are sorted by CreatedAt descending, id as
// the stable tie-break.
type LedgerResult struct {
	Transactions []*Transaction
	SourceErrors []SourceError
}

type LedgerUsecase interface {
	GetTransactionsForUser(userID uint64) (*LedgerResult, error)
	GetTransactionsPlatformWide(page, limit int) (*LedgerResult, error)
	UpdateStatus(id TransactionID, status string) error
	AttachTxHash(id TransactionID, hash string) error
	DeleteTransaction(id TransactionID) error
}
