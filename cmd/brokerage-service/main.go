package main

import (
	"fmt"
	"log"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/config"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/handlers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/middleware"
	publisher "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/kafka"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/logger"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/metrics"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/migrate"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/postgres/repository"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/session"
	analyticsUsecase "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/usecase/analytics"
	contractorUsecase "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/usecase/contractor"
	ledgerUsecase "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/usecase/ledger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	logger.Setup(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka event publisher
	eventPublisherConfig := publisher.KafkaConfig{
		Brokers:    []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		Topic:      cfg.KafkaService.Topic,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	}
	eventPublisher, err := publisher.NewKafkaPublisher(eventPublisherConfig)
	if err != nil {
		log.Fatalf("failed to init kafka transaction publisher: %v", err)
	}

	// Init metrics
	transactionMetrics := metrics.NewTransactionMetrics()

	// Init source repos
	sepaRepo := repository.NewDefaultSepaDepositRepository(db)
	usdtRepo := repository.NewDefaultUsdtOrderRepository(db)
	usdcRepo := repository.NewDefaultUsdcOrderRepository(db)
	userRepo := repository.NewDefaultUserRepository(db)
	contractorRepo := repository.NewDefaultContractorRepository(db)

	// Init session verifier
	sessionVerifier, err := session.NewHTTPSessionVerifier(fmt.Sprintf("%s:%s", cfg.AuthService.Host, cfg.AuthService.Port))
	if err != nil {
		log.Fatalf("failed to init session verifier")
	}

	// Init usecases
	ledgerUc := ledgerUsecase.NewDefaultLedgerUsecase(sepaRepo, usdtRepo, usdcRepo, eventPublisher, transactionMetrics)
	analyticsUc := analyticsUsecase.NewDefaultAnalyticsUsecase(
		sepaRepo,
		usdtRepo,
		usdcRepo,
		userRepo,
		contractorRepo,
		cfg.Analytics.PlatformCommissionRate,
		transactionMetrics,
	)
	contractorUc := contractorUsecase.NewDefaultContractorUsecase(contractorRepo)

	// HTTP delivery
	authMiddleware := middleware.NewAuthMiddleware(sessionVerifier)
	transactionHandler := handlers.NewTransactionHandler(ledgerUc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUc)
	contractorHandler := handlers.NewContractorHandler(contractorUc)

	router := httpapi.NewRouter(authMiddleware, transactionHandler, analyticsHandler, contractorHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
