package domain

import "time"

// DefaultContractorCommissionRate applies when a contractor is created
// without an explicit individual rate.
const DefaultContractorCommissionRate = 0.0085

// Contractor is a referral partner earning commission on deposits made by
// clients they referred, tracked via a referral code.
type Contractor struct {
	ID             uint64
	Name           string
	Email          string
	ReferralCode   string
	CommissionRate float64
	IsActive       bool
	CreatedAt      time.Time
}

type ContractorRepository interface {
	Create(contractor *Contractor) error
	List() ([]*Contractor, error)
	FindActive() ([]*Contractor, error)
}

type ContractorUsecase interface {
	CreateContractor(name, email string, commissionRate float64) (*Contractor, error)
	GetContractors() ([]*Contractor, error)
}
