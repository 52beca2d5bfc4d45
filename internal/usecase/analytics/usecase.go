package usecase

import (
	"log/slog"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/metrics"
	ledger "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/usecase/ledger"
)

type DefaultAnalyticsUsecase struct {
	SepaRepo       domain.SepaDepositRepository
	UsdtRepo       domain.UsdtOrderRepository
	UsdcRepo       domain.UsdcOrderRepository
	UserRepo       domain.UserRepository
	ContractorRepo domain.ContractorRepository

	// Nominal platform deposit commission rate, surfaced on yearToDate for
	// dashboard estimation. The authoritative commission total is summed
	// from each deposit's stored fee.
	PlatformCommissionRate float64

	Metrics *metrics.TransactionMetrics
}

func NewDefaultAnalyticsUsecase(
	sepaRepo domain.SepaDepositRepository,
	usdtRepo domain.UsdtOrderRepository,
	usdcRepo domain.UsdcOrderRepository,
	userRepo domain.UserRepository,
	contractorRepo domain.ContractorRepository,
	platformCommissionRate float64,
	m *metrics.TransactionMetrics,
) *DefaultAnalyticsUsecase {
	return &DefaultAnalyticsUsecase{
		SepaRepo:               sepaRepo,
		UsdtRepo:               usdtRepo,
		UsdcRepo:               usdcRepo,
		UserRepo:               userRepo,
		ContractorRepo:         contractorRepo,
		PlatformCommissionRate: platformCommissionRate,
		Metrics:                m,
	}
}

// windowTx keeps the owning user id next to the normalized transaction for
// unique/active user counting.
type windowTx struct {
	tx     *domain.Transaction
	userID uint64
}

// fetchWindow queries all three source stores with a date-range filter,
// unbounded in row count. Degraded sources contribute nothing, same policy
// as the ledger view.
func (uc *DefaultAnalyticsUsecase) fetchWindow(from, to time.Time) []windowTx {
	var transactions []windowTx

	sepaRecords, err := uc.SepaRepo.FindByWindow(from, to)
	if err != nil {
		uc.degradeSource(domain.KindSepa, err)
	} else {
		for _, record := range sepaRecords {
			transactions = append(transactions, windowTx{tx: ledger.NormalizeSepaRecord(record), userID: record.UserID})
		}
	}

	usdtRecords, err := uc.UsdtRepo.FindByWindow(from, to)
	if err != nil {
		uc.degradeSource(domain.KindUsdt, err)
	} else {
		for _, record := range usdtRecords {
			transactions = append(transactions, windowTx{tx: ledger.NormalizeUsdtRecord(record), userID: record.UserID})
		}
	}

	usdcRecords, err := uc.UsdcRepo.FindByWindow(from, to)
	if err != nil {
		uc.degradeSource(domain.KindUsdc, err)
	} else {
		for _, record := range usdcRecords {
			transactions = append(transactions, windowTx{tx: ledger.NormalizeUsdcRecord(record), userID: record.UserID})
		}
	}

	return transactions
}

func (uc *DefaultAnalyticsUsecase) degradeSource(kind domain.SourceKind, err error) {
	slog.Warn("analytics source degraded", "source", string(kind), "error", err.Error())
	if uc.Metrics != nil {
		uc.Metrics.RecordSourceFailure(string(kind))
	}
}

// ComputePeriodStats aggregates one window with a window-complete timeline:
// a bucket with zero transactions still appears with zero counts.
func (uc *DefaultAnalyticsUsecase) ComputePeriodStats(from, to time.Time, granularity domain.BucketGranularity) (*domain.PeriodStats, error) {
	started := time.Now()

	transactions := uc.fetchWindow(from, to)
	stats := accumulateTotals(transactions)
	stats.Timeline = buildTimeline(transactions, from, to, granularity)

	if uc.Metrics != nil {
		uc.Metrics.RecordAnalyticsDuration(string(granularity), time.Since(started).Seconds())
	}
	return stats, nil
}

// ComputeYearToDateStats aggregates the unbounded-start, now-end window used
// for top-level dashboard totals. No timeline at this scope.
func (uc *DefaultAnalyticsUsecase) ComputeYearToDateStats() (*domain.YearToDateStats, error) {
	started := time.Now()

	transactions := uc.fetchWindow(time.Time{}, time.Now().UTC())
	stats := accumulateTotals(transactions)

	if uc.Metrics != nil {
		uc.Metrics.RecordAnalyticsDuration("ytd", time.Since(started).Seconds())
	}
	return &domain.YearToDateStats{
		PeriodStats:    *stats,
		CommissionRate: uc.PlatformCommissionRate,
	}, nil
}

func accumulateTotals(transactions []windowTx) *domain.PeriodStats {
	stats := &domain.PeriodStats{}
	users := make(map[uint64]struct{})

	for _, wtx := range transactions {
		tx := wtx.tx
		stats.TotalTransactions++
		stats.TotalAmount += tx.TotalAmount
		if wtx.userID != 0 {
			users[wtx.userID] = struct{}{}
		}

		if tx.Type == domain.TypeDeposit {
			stats.DepositCount++
			stats.DepositAmount += tx.TotalAmount
			stats.DepositCommissionAmount += tx.CommissionAmount
		} else {
			stats.OrderCount++
			stats.OrderAmount += tx.TotalAmount
		}
	}

	stats.UniqueUsers = len(users)
	// Inherited semantics: the ratio of recognized deposit/order rows to all
	// rows, not a terminal-status success ratio. Kept for wire compatibility.
	if stats.TotalTransactions > 0 {
		stats.SuccessRate = float64(stats.DepositCount+stats.OrderCount) / float64(stats.TotalTransactions)
	}
	return stats
}

func buildTimeline(transactions []windowTx, from, to time.Time, granularity domain.BucketGranularity) []domain.TimeBucket {
	step := granularity.Step()
	if !to.After(from) {
		return []domain.TimeBucket{}
	}

	span := to.Sub(from)
	bucketCount := int(span / step)
	if span%step != 0 {
		bucketCount++
	}

	buckets := make([]domain.TimeBucket, bucketCount)
	bucketUsers := make([]map[uint64]struct{}, bucketCount)
	for i := range buckets {
		buckets[i] = domain.TimeBucket{Timestamp: from.Add(time.Duration(i) * step)}
		bucketUsers[i] = make(map[uint64]struct{})
	}

	for _, wtx := range transactions {
		tx := wtx.tx
		if tx.CreatedAt.Before(from) || !tx.CreatedAt.Before(to) {
			continue
		}
		i := int(tx.CreatedAt.Sub(from) / step)
		if i >= bucketCount {
			i = bucketCount - 1
		}

		if tx.Type == domain.TypeDeposit {
			buckets[i].Deposits++
		} else {
			buckets[i].Orders++
		}
		buckets[i].Amount += tx.TotalAmount
		if wtx.userID != 0 {
			bucketUsers[i][wtx.userID] = struct{}{}
		}
	}

	for i := range buckets {
		buckets[i].ActiveUsers = len(bucketUsers[i])
	}
	return buckets
}
