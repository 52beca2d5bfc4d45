package usecase

import (
	"log/slog"
	"sort"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
)

// GetTransactionsForUser merges all three sources for one client. A failed
// source contributes an empty set and a SourceErrors entry; the other
// sources must still be served.
func (uc *DefaultLedgerUsecase) GetTransactionsForUser(userID uint64) (*domain.LedgerResult, error) {
	uc.recordLedgerRequest("user")
	result := &domain.LedgerResult{}

	sepaRecords, err := uc.SepaRepo.FindByUserID(userID)
	if err != nil {
		uc.degradeSource(result, domain.KindSepa, err)
	} else {
		for _, record := range sepaRecords {
			result.Transactions = append(result.Transactions, NormalizeSepaRecord(record))
		}
		uc.recordLedgerTransactions(domain.KindSepa, len(sepaRecords))
	}

	usdtRecords, err := uc.UsdtRepo.FindByUserID(userID)
	if err != nil {
		uc.degradeSource(result, domain.KindUsdt, err)
	} else {
		for _, record := range usdtRecords {
			result.Transactions = append(result.Transactions, NormalizeUsdtRecord(record))
		}
		uc.recordLedgerTransactions(domain.KindUsdt, len(usdtRecords))
	}

	usdcRecords, err := uc.UsdcRepo.FindByUserID(userID)
	if err != nil {
		uc.degradeSource(result, domain.KindUsdc, err)
	} else {
		for _, record := range usdcRecords {
			result.Transactions = append(result.Transactions, NormalizeUsdcRecord(record))
		}
		uc.recordLedgerTransactions(domain.KindUsdc, len(usdcRecords))
	}

	sortTransactions(result.Transactions)
	return result, nil
}

// GetTransactionsPlatformWide pages each source independently before the
// merge, so the combined page can hold up to limit rows per source. A coarse
// approximation, kept for wire compatibility with existing consumers.
func (uc *DefaultLedgerUsecase) GetTransactionsPlatformWide(page, limit int) (*domain.LedgerResult, error) {
	uc.recordLedgerRequest("platform")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := (page - 1) * limit

	result := &domain.LedgerResult{}

	sepaRecords, err := uc.SepaRepo.FindPage(limit, offset)
	if err != nil {
		uc.degradeSource(result, domain.KindSepa, err)
	} else {
		for _, record := range sepaRecords {
			tx := NormalizeSepaRecord(record)
			attachFallbackUser(tx, record.UserID)
			result.Transactions = append(result.Transactions, tx)
		}
		uc.recordLedgerTransactions(domain.KindSepa, len(sepaRecords))
	}

	usdtRecords, err := uc.UsdtRepo.FindPage(limit, offset)
	if err != nil {
		uc.degradeSource(result, domain.KindUsdt, err)
	} else {
		for _, record := range usdtRecords {
			tx := NormalizeUsdtRecord(record)
			attachFallbackUser(tx, record.UserID)
			result.Transactions = append(result.Transactions, tx)
		}
		uc.recordLedgerTransactions(domain.KindUsdt, len(usdtRecords))
	}

	usdcRecords, err := uc.UsdcRepo.FindPage(limit, offset)
	if err != nil {
		uc.degradeSource(result, domain.KindUsdc, err)
	} else {
		for _, record := range usdcRecords {
			tx := NormalizeUsdcRecord(record)
			attachFallbackUser(tx, record.UserID)
			result.Transactions = append(result.Transactions, tx)
		}
		uc.recordLedgerTransactions(domain.KindUsdc, len(usdcRecords))
	}

	sortTransactions(result.Transactions)
	return result, nil
}

func (uc *DefaultLedgerUsecase) degradeSource(result *domain.LedgerResult, kind domain.SourceKind, err error) {
	slog.Warn("transaction source degraded", "source", string(kind), "error", err.Error())
	uc.recordSourceFailure(kind)
	result.SourceErrors = append(result.SourceErrors, domain.SourceError{Source: kind, Err: err})
}

// attachFallbackUser fills the owner when the source-level join came back
// empty, so platform-wide rows always carry a user block.
func attachFallbackUser(tx *domain.Transaction, userID uint64) {
	if tx.User != nil {
		return
	}
	tx.User = &domain.TransactionUser{ID: userID, Username: "Unknown", Email: ""}
}

// sortTransactions orders most recent first; composite id breaks timestamp
// ties so the merged order is deterministic.
func sortTransactions(transactions []*domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
		}
		return transactions[i].ID < transactions[j].ID
	})
}
