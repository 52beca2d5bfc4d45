package models

import "time"

type UsdcOrderModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"index:idx_usdc_user"`
	User      UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	AmountUsd string
	Status    string    `gorm:"index:idx_usdc_status"`
	TxHash    string
	Reference string
	CreatedAt time.Time `gorm:"index:idx_usdc_created_at"`
	UpdatedAt time.Time
}
