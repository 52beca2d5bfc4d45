package usecase

import (
	"log/slog"
	"strings"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	publisher "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/infrastructure/kafka"
)

// Mutations touch exactly one source store per call; there is no cross-store
// transaction. Errors propagate typed so the delivery layer can tell bad
// input from not-found.

func (uc *DefaultLedgerUsecase) UpdateStatus(id domain.TransactionID, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))

	var err error
	switch id.Kind {
	case domain.KindSepa:
		err = uc.SepaRepo.UpdateStatus(id.NumericID, status)
	case domain.KindUsdt:
		err = uc.UsdtRepo.UpdateStatus(id.NumericID, status)
	case domain.KindUsdc:
		err = uc.UsdcRepo.UpdateStatus(id.NumericID, status)
	default:
		return domain.ErrUnknownSourceKind
	}
	if err != nil {
		uc.recordMutation(id.Kind, publisher.ActionStatusUpdated, "error")
		return err
	}

	uc.recordMutation(id.Kind, publisher.ActionStatusUpdated, "ok")
	uc.publishEvent(publisher.TransactionEvent{
		TransactionID: id.String(),
		Source:        string(id.Kind),
		Action:        publisher.ActionStatusUpdated,
		Status:        status,
	})
	return nil
}

// AttachTxHash is restricted to USDC orders. Setting a hash implicitly moves
// the order to "successful" (hash presence is completion proof).
func (uc *DefaultLedgerUsecase) AttachTxHash(id domain.TransactionID, hash string) error {
	if id.Kind != domain.KindUsdc {
		return domain.ErrHashNotSupported
	}

	if err := uc.UsdcRepo.AttachTxHash(id.NumericID, hash); err != nil {
		uc.recordMutation(id.Kind, publisher.ActionHashAttached, "error")
		return err
	}

	uc.recordMutation(id.Kind, publisher.ActionHashAttached, "ok")
	uc.publishEvent(publisher.TransactionEvent{
		TransactionID: id.String(),
		Source:        string(id.Kind),
		Action:        publisher.ActionHashAttached,
		Status:        "successful",
		TxHash:        hash,
	})
	return nil
}

func (uc *DefaultLedgerUsecase) DeleteTransaction(id domain.TransactionID) error {
	var err error
	switch id.Kind {
	case domain.KindSepa:
		err = uc.SepaRepo.Delete(id.NumericID)
	case domain.KindUsdt:
		err = uc.UsdtRepo.Delete(id.NumericID)
	case domain.KindUsdc:
		err = uc.UsdcRepo.Delete(id.NumericID)
	default:
		return domain.ErrUnknownSourceKind
	}
	if err != nil {
		uc.recordMutation(id.Kind, publisher.ActionDeleted, "error")
		return err
	}

	uc.recordMutation(id.Kind, publisher.ActionDeleted, "ok")
	uc.publishEvent(publisher.TransactionEvent{
		TransactionID: id.String(),
		Source:        string(id.Kind),
		Action:        publisher.ActionDeleted,
	})
	return nil
}

func (uc *DefaultLedgerUsecase) publishEvent(event publisher.TransactionEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.TransactionEvent) {
		if err := uc.Publisher.PublishTransaction(event); err != nil {
			slog.Error("failed to publish kafka TransactionEvent", "action", event.Action, "error", err.Error())
		}
	}(event)
}
