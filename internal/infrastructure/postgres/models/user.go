package models

import "time"

type UserModel struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"uniqueIndex"`
	Email        string
	ContractorID *uint64 `gorm:"index:idx_user_contractor"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
