package postgres

import (
	"log"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/config"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BrokerageConfig) *gorm.DB {
	dsn := cfg.BrokerageDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.ContractorModel{}, &models.UserModel{}, &models.DepositModel{}, &models.UsdtOrderModel{}, &models.UsdcOrderModel{})

	return db
}
