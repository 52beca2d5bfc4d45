package models

import "time"

// DepositModel is a SEPA deposit row. Amount fields are stored as text
// because the legacy importer wrote PSP payload values verbatim; the
// normalizer parses them defensively on read.
type DepositModel struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"index:idx_deposit_user"`
	User          UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Amount        string    // post-commission amount as stored
	CommissionFee string
	Currency      string
	Status        string    `gorm:"index:idx_deposit_status"`
	Reference     string
	CreatedAt     time.Time `gorm:"index:idx_deposit_created_at"`
	UpdatedAt     time.Time
}
