package models

import "time"

type ContractorModel struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	Name           string
	Email          string
	ReferralCode   string `gorm:"uniqueIndex"`
	CommissionRate float64
	IsActive       bool `gorm:"index:idx_contractor_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
