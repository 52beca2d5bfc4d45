package usecase

import (
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	publisher "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/kafka"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/metrics"
)

// EventPublisher is the mutation event port; nil disables publishing.
type EventPublisher interface {
	PublishTransaction(event publisher.TransactionEvent) error
}

type DefaultLedgerUsecase struct {
	SepaRepo  domain.SepaDepositRepository
	UsdtRepo  domain.UsdtOrderRepository
	UsdcRepo  domain.UsdcOrderRepository
	Publisher EventPublisher
	Metrics   *metrics.TransactionMetrics
}

func NewDefaultLedgerUsecase(
	sepaRepo domain.SepaDepositRepository,
	usdtRepo domain.UsdtOrderRepository,
	usdcRepo domain.UsdcOrderRepository,
	pub EventPublisher,
	m *metrics.TransactionMetrics,
) *DefaultLedgerUsecase {
	return &DefaultLedgerUsecase{
		SepaRepo:  sepaRepo,
		UsdtRepo:  usdtRepo,
		UsdcRepo:  usdcRepo,
		Publisher: pub,
		Metrics:   m,
	}
}

func (uc *DefaultLedgerUsecase) recordSourceFailure(kind domain.SourceKind) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSourceFailure(string(kind))
}

func (uc *DefaultLedgerUsecase) recordLedgerRequest(scope string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordLedgerRequest(scope)
}

func (uc *DefaultLedgerUsecase) recordLedgerTransactions(kind domain.SourceKind, count int) {
	if uc.Metrics == nil || count == 0 {
		return
	}
	uc.Metrics.RecordLedgerTransactions(string(kind), count)
}

func (uc *DefaultLedgerUsecase) recordMutation(kind domain.SourceKind, action, outcome string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordMutation(string(kind), action, outcome)
}
