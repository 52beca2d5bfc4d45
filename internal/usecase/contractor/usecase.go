package usecase

import (
	"log"
	"strings"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/jaevor/go-nanoid"
)

const referralCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

type DefaultContractorUsecase struct {
	ContractorRepo  domain.ContractorRepository
	newReferralCode func() string
}

func NewDefaultContractorUsecase(contractorRepo domain.ContractorRepository) *DefaultContractorUsecase {
	generate, err := nanoid.CustomASCII(referralCodeAlphabet, 8)
	if err != nil {
		log.Fatalf("failed to init referral code generator: %v", err)
	}
	return &DefaultContractorUsecase{
		ContractorRepo:  contractorRepo,
		newReferralCode: generate,
	}
}

func (uc *DefaultContractorUsecase) CreateContractor(name, email string, commissionRate float64) (*domain.Contractor, error) {
	if commissionRate <= 0 {
		commissionRate = domain.DefaultContractorCommissionRate
	}

	contractor := &domain.Contractor{
		Name:           strings.TrimSpace(name),
		Email:          strings.TrimSpace(email),
		ReferralCode:   uc.newReferralCode(),
		CommissionRate: commissionRate,
		IsActive:       true,
	}
	if err := uc.ContractorRepo.Create(contractor); err != nil {
		return nil, err
	}
	return contractor, nil
}

func (uc *DefaultContractorUsecase) GetContractors() ([]*domain.Contractor, error) {
	return uc.ContractorRepo.List()
}
