package mappers

import (
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
)

// Timestamps cross the repository boundary as ISO-8601 text, matching the
// payloads the upstream stores were seeded from. The normalizer re-parses
// them with a now-fallback.

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toTransactionUser(user *models.UserModel) *domain.TransactionUser {
	if user == nil || user.ID == 0 {
		return nil
	}
	return &domain.TransactionUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func ToRawSepaRecord(model *models.DepositModel, withUser bool) *domain.RawSepaRecord {
	record := &domain.RawSepaRecord{
		ID:            model.ID,
		UserID:        model.UserID,
		Amount:        model.Amount,
		CommissionFee: model.CommissionFee,
		Currency:      model.Currency,
		Status:        model.Status,
		Reference:     model.Reference,
		CreatedAt:     formatTimestamp(model.CreatedAt),
	}
	if withUser {
		record.User = toTransactionUser(&model.User)
	}
	return record
}

func ToRawUsdtRecord(model *models.UsdtOrderModel, withUser bool) *domain.RawUsdtRecord {
	record := &domain.RawUsdtRecord{
		ID:        model.ID,
		UserID:    model.UserID,
		AmountUsd: model.AmountUsd,
		Status:    model.Status,
		TxHash:    model.TxHash,
		Reference: model.Reference,
		CreatedAt: formatTimestamp(model.CreatedAt),
	}
	if withUser {
		record.User = toTransactionUser(&model.User)
	}
	return record
}

func ToRawUsdcRecord(model *models.UsdcOrderModel, withUser bool) *domain.RawUsdcRecord {
	record := &domain.RawUsdcRecord{
		ID:        model.ID,
		UserID:    model.UserID,
		AmountUsd: model.AmountUsd,
		Status:    model.Status,
		TxHash:    model.TxHash,
		Reference: model.Reference,
		CreatedAt: formatTimestamp(model.CreatedAt),
	}
	if withUser {
		record.User = toTransactionUser(&model.User)
	}
	return record
}
