package usecase

import (
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	ledger "github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/usecase/ledger"
)

// ComputeContractorAttribution joins deposits to the referring contractor of
// the depositing user and accumulates at the contractor's individual rate.
// Active contractors with no referred deposits still appear zeroed.
func (uc *DefaultAnalyticsUsecase) ComputeContractorAttribution() ([]*domain.ContractorAttribution, error) {
	contractors, err := uc.ContractorRepo.FindActive()
	if err != nil {
		return nil, err
	}

	referredUsers, err := uc.UserRepo.FindReferred()
	if err != nil {
		return nil, err
	}
	contractorByUser := make(map[uint64]uint64, len(referredUsers))
	for _, user := range referredUsers {
		if user.ContractorID != nil {
			contractorByUser[user.ID] = *user.ContractorID
		}
	}

	attributions := make([]*domain.ContractorAttribution, 0, len(contractors))
	byContractor := make(map[uint64]*domain.ContractorAttribution, len(contractors))
	rates := make(map[uint64]float64, len(contractors))
	for _, contractor := range contractors {
		attribution := &domain.ContractorAttribution{
			ContractorID: contractor.ID,
			Name:         contractor.Name,
			ReferralCode: contractor.ReferralCode,
		}
		attributions = append(attributions, attribution)
		byContractor[contractor.ID] = attribution
		rates[contractor.ID] = contractor.CommissionRate
	}

	sepaRecords, err := uc.SepaRepo.FindByWindow(time.Time{}, time.Now().UTC())
	if err != nil {
		uc.degradeSource(domain.KindSepa, err)
		return attributions, nil
	}

	for _, record := range sepaRecords {
		contractorID, referred := contractorByUser[record.UserID]
		if !referred {
			continue
		}
		attribution, active := byContractor[contractorID]
		if !active {
			continue
		}

		tx := ledger.NormalizeSepaRecord(record)
		attribution.ReferredDepositsCount++
		attribution.ReferredAmount += tx.TotalAmount
		attribution.CommissionAmount += tx.TotalAmount * rates[contractorID]
	}

	return attributions, nil
}
