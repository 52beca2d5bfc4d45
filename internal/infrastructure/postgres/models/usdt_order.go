package models

import "time"

type UsdtOrderModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"index:idx_usdt_user"`
	User      UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	AmountUsd string
	Status    string    `gorm:"index:idx_usdt_status"`
	TxHash    string
	Reference string
	CreatedAt time.Time `gorm:"index:idx_usdt_created_at"`
	UpdatedAt time.Time
}
