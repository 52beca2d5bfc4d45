package repository

import (
	"fmt"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/mappers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUsdtOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultUsdtOrderRepository(db *gorm.DB) *DefaultUsdtOrderRepository {
	return &DefaultUsdtOrderRepository{DB: db}
}

func (r *DefaultUsdtOrderRepository) FindByUserID(userID uint64) ([]*domain.RawUsdtRecord, error) {
	var orderModels []models.UsdtOrderModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find usdt orders by user: %w", err)
	}

	records := make([]*domain.RawUsdtRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdtRecord(&orderModels[i], false)
	}
	return records, nil
}

func (r *DefaultUsdtOrderRepository) FindPage(limit, offset int) ([]*domain.RawUsdtRecord, error) {
	var orderModels []models.UsdtOrderModel
	err := r.DB.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find usdt order page: %w", err)
	}

	records := make([]*domain.RawUsdtRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdtRecord(&orderModels[i], true)
	}
	return records, nil
}

func (r *DefaultUsdtOrderRepository) FindByWindow(from, to time.Time) ([]*domain.RawUsdtRecord, error) {
	var orderModels []models.UsdtOrderModel
	query := r.DB.Model(&models.UsdtOrderModel{})
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find usdt orders by window: %w", err)
	}

	records := make([]*domain.RawUsdtRecord, len(orderModels))
	for i := range orderModels {
		records[i] = mappers.ToRawUsdtRecord(&orderModels[i], false)
	}
	return records, nil
}

func (r *DefaultUsdtOrderRepository) UpdateStatus(id uint64, status string) error {
	result := r.DB.Model(&models.UsdtOrderModel{}).
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

func (r *DefaultUsdtOrderRepository) Delete(id uint64) error {
	result := r.DB.Delete(&models.UsdtOrderModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
