package repository

import (
	"fmt"
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/mappers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSepaDepositRepository struct {
	DB *gorm.DB
}

func NewDefaultSepaDepositRepository(db *gorm.DB) *DefaultSepaDepositRepository {
	return &DefaultSepaDepositRepository{DB: db}
}

func (r *DefaultSepaDepositRepository) FindByUserID(userID uint64) ([]*domain.RawSepaRecord, error) {
	var depositModels []models.DepositModel
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&depositModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deposits by user: %w", err)
	}

	records := make([]*domain.RawSepaRecord, len(depositModels))
	for i := range depositModels {
		records[i] = mappers.ToRawSepaRecord(&depositModels[i], false)
	}
	return records, nil
}

func (r *DefaultSepaDepositRepository) FindPage(limit, offset int) ([]*domain.RawSepaRecord, error) {
	var depositModels []models.DepositModel
	err := r.DB.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&depositModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deposit page: %w", err)
	}

	records := make([]*domain.RawSepaRecord, len(depositModels))
	for i := range depositModels {
		records[i] = mappers.ToRawSepaRecord(&depositModels[i], true)
	}
	return records, nil
}

func (r *DefaultSepaDepositRepository) FindByWindow(from, to time.Time) ([]*domain.RawSepaRecord, error) {
	var depositModels []models.DepositModel
	query := r.DB.Model(&models.DepositModel{})
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}
	if err := query.Find(&depositModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find deposits by window: %w", err)
	}

	records := make([]*domain.RawSepaRecord, len(depositModels))
	for i := range depositModels {
		records[i] = mappers.ToRawSepaRecord(&depositModels[i], false)
	}
	return records, nil
}

func (r *DefaultSepaDepositRepository) UpdateStatus(id uint64, status string) error {
	result := r.DB.Model(&models.DepositModel{}).
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

func (r *DefaultSepaDepositRepository) Delete(id uint64) error {
	result := r.DB.Delete(&models.DepositModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
