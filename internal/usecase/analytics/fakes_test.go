package usecase

import (
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
)

type fakeSepaRepo struct {
	records []*domain.RawSepaRecord
	err     error
}

func (f *fakeSepaRepo) FindByUserID(userID uint64) ([]*domain.RawSepaRecord, error) {
	return f.records, f.err
}

func (f *fakeSepaRepo) FindPage(limit, offset int) ([]*domain.RawSepaRecord, error) {
	return f.records, f.err
}

func (f *fakeSepaRepo) FindByWindow(from, to time.Time) ([]*domain.RawSepaRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeSepaRepo) UpdateStatus(id uint64, status string) error { return f.err }
func (f *fakeSepaRepo) Delete(id uint64) error                      { return f.err }

type fakeUsdtRepo struct {
	records []*domain.RawUsdtRecord
	err     error
}

func (f *fakeUsdtRepo) FindByUserID(userID uint64) ([]*domain.RawUsdtRecord, error) {
	return f.records, f.err
}

func (f *fakeUsdtRepo) FindPage(limit, offset int) ([]*domain.RawUsdtRecord, error) {
	return f.records, f.err
}

func (f *fakeUsdtRepo) FindByWindow(from, to time.Time) ([]*domain.RawUsdtRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeUsdtRepo) UpdateStatus(id uint64, status string) error { return f.err }
func (f *fakeUsdtRepo) Delete(id uint64) error                      { return f.err }

type fakeUsdcRepo struct {
	records []*domain.RawUsdcRecord
	err     error
}

func (f *fakeUsdcRepo) FindByUserID(userID uint64) ([]*domain.RawUsdcRecord, error) {
	return f.records, f.err
}

func (f *fakeUsdcRepo) FindPage(limit, offset int) ([]*domain.RawUsdcRecord, error) {
	return f.records, f.err
}

func (f *fakeUsdcRepo) FindByWindow(from, to time.Time) ([]*domain.RawUsdcRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeUsdcRepo) UpdateStatus(id uint64, status string) error { return f.err }
func (f *fakeUsdcRepo) AttachTxHash(id uint64, hash string) error   { return f.err }
func (f *fakeUsdcRepo) Delete(id uint64) error                      { return f.err }

type fakeUserRepo struct {
	users []*domain.User
	err   error
}

func (f *fakeUserRepo) FindReferred() ([]*domain.User, error) {
	return f.users, f.err
}

type fakeContractorRepo struct {
	contractors []*domain.Contractor
	err         error
}

func (f *fakeContractorRepo) Create(contractor *domain.Contractor) error { return f.err }

func (f *fakeContractorRepo) List() ([]*domain.Contractor, error) {
	return f.contractors, f.err
}

func (f *fakeContractorRepo) FindActive() ([]*domain.Contractor, error) {
	if f.err != nil {
		return nil, f.err
	}
	var active []*domain.Contractor
	for _, c := range f.contractors {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}
