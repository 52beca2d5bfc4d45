package repository

import (
	"fmt"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/mappers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUsdcOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultUsdcOrderRepository(db *gorm.DB) *DefaultUsdcOrderRepository {
	return &DefaultUsdcOrderRepository{DB: db}
}

func (r *DefaultUsdcOrderRepository) FindByUserID(userID uint64) ([]*domain.RawUsdcRecord, error) {
	var orderModels []models.UsdcOrderModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find usdc orders by user: %w", err)
	}

	records := make([]*domain.RawUsdcRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdcRecord(&orderModels[i], false)
	}
	return records, nil
}

func (r *DefaultUsdcOrderRepository) FindPage(limit, offset int) ([]*domain.RawUsdcRecord, error) {
	var orderModels []models.UsdcOrderModel
	err := r.DB.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find usdc order page: %w", err)
	}

	records := make([]*domain.RawUsdcRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdcRecord(&orderModels[i], true)
	}
	return records, nil
}

func (r *DefaultUsdcOrderRepository) FindByWindow(from, to time.Time) ([]*domain.RawUsdcRecord, error) {
	var orderModels []models.UsdcOrderModel
	query := r.DB.Model(&models.UsdcOrderModel{})
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find usdc orders by window: %w", err)
	}

	records := make([]*domain.RawUsdcRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdcRecord(&orderModels[i], false)
	}
	return records, nil
}

func (r *DefaultUsdcOrderRepository) UpdateStatus(id uint64, status string) error {
	result := r.DB.Model(&models.UsdcOrderModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// AttachTxHash stores the hash and moves the order to "successful" in one
// update. Hash presence is treated as completion proof.
func (r *DefaultUsdcOrderRepository) AttachTxHash(id uint64, hash string) error {
	result := r.DB.Model(&models.UsdcOrderModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tx_hash": hash,
			"status":  "successful",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *DefaultUsdcOrderRepository) Delete(id uint64) error {
	result := r.DB.Delete(&models.UsdcOrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
