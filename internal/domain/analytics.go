package domain

import "time"

type BucketGranularity string

const (
	BucketHour BucketGranularity = "hour"
	BucketDay  BucketGranularity = "day"
	BucketWeek BucketGranularity = "week"
)

// Step is the timeline stride for the granularity.
func (g BucketGranularity) Step() time.Duration {
	switch g {
	case BucketHour:
		return time.Hour
	case BucketWeek:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// TimeBucket is one timeline entry. Buckets with zero transactions are still
// emitted so timeline coverage is window-complete, not sparse.
type TimeBucket struct {
	Timestamp   time.Time `json:"timestamp"`
	Deposits    int       `json:"deposits"`
	Orders      int       `json:"orders"`
	Amount      float64   `json:"amount"`
	ActiveUsers int       `json:"activeUsers"`
}

// PeriodStats aggregates one analytics window. DepositCommissionAmount is
// summed from each deposit's stored commission, never recomputed from a rate.
type PeriodStats struct {
	TotalTransactions       int          `json:"totalTransactions"`
	TotalAmount             float64      `json:"totalAmount"`
	UniqueUsers             int          `json:"uniqueUsers"`
	DepositCount            int          `json:"depositCount"`
	DepositAmount           float64      `json:"depositAmount"`
	DepositCommissionAmount float64      `json:"depositCommissionAmount"`
	OrderCount              int          `json:"orderCount"`
	OrderAmount             float64      `json:"orderAmount"`
	SuccessRate             float64      `json:"successRate"`
	Timeline                []TimeBucket `json:"timeline,omitempty"`
}

// YearToDateStats carries the nominal platform commission rate alongside the
// unbounded-start window totals. The rate is informational, used by the
// dashboard for secondary estimation only.
type YearToDateStats struct {
	PeriodStats
	CommissionRate float64 `json:"commissionRate"`
}

// ContractorAttribution is the per-contractor referral aggregate, computed at
// the contractor's individual rate rather than the platform rate.
type ContractorAttribution struct {
	ContractorID          uint64  `json:"contractorId"`
	Name                  string  `json:"name"`
	ReferralCode          string  `json:"referralCode"`
	ReferredDepositsCount int     `json:"referredDepositsCount"`
	ReferredAmount        float64 `json:"referredAmount"`
	CommissionAmount      float64 `json:"commissionAmount"`
}

type AnalyticsUsecase interface {
	ComputePeriodStats(from, to time.Time, granularity BucketGranularity) (*PeriodStats, error)
	ComputeYearToDateStats() (*YearToDateStats, error)
	ComputeContractorAttribution() ([]*ContractorAttribution, error)
}
