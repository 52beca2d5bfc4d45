package usecase

import (
	"time"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
)

// In-memory repository fakes. Each fake records which mutation it received so
// routing tests can assert exactly one store was touched.

type fakeSepaRepo struct {
	records []*domain.RawSepaRecord
	err     error

	statusUpdates map[uint64]string
	deleted       []uint64
}

func newFakeSepaRepo(records ...*domain.RawSepaRecord) *fakeSepaRepo {
	return &fakeSepaRepo{records: records, statusUpdates: make(map[uint64]string)}
}

func (f *fakeSepaRepo) FindByUserID(userID uint64) ([]*domain.RawSepaRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.RawSepaRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSepaRepo) FindPage(limit, offset int) ([]*domain.RawSepaRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeSepaRepo) FindByWindow(from, to time.Time) ([]*domain.RawSepaRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeSepaRepo) UpdateStatus(id uint64, status string) error {
	if f.err != nil {
		return f.err
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeSepaRepo) Delete(id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUsdtRepo struct {
	records []*domain.RawUsdtRecord
	err     error

	statusUpdates map[uint64]string
	deleted       []uint64
}

func newFakeUsdtRepo(records ...*domain.RawUsdtRecord) *fakeUsdtRepo {
	return &fakeUsdtRepo{records: records, statusUpdates: make(map[uint64]string)}
}

func (f *fakeUsdtRepo) FindByUserID(userID uint64) ([]*domain.RawUsdtRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.RawUsdtRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUsdtRepo) FindPage(limit, offset int) ([]*domain.RawUsdtRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeUsdtRepo) FindByWindow(from, to time.Time) ([]*domain.RawUsdtRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeUsdtRepo) UpdateStatus(id uint64, status string) error {
	if f.err != nil {
		return f.err
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeUsdtRepo) Delete(id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUsdcRepo struct {
	records []*domain.RawUsdcRecord
	err     error

	statusUpdates  map[uint64]string
	attachedHashes map[uint64]string
	deleted        []uint64
}

func newFakeUsdcRepo(records ...*domain.RawUsdcRecord) *fakeUsdcRepo {
	return &fakeUsdcRepo{
		records:        records,
		statusUpdates:  make(map[uint64]string),
		attachedHashes: make(map[uint64]string),
	}
}

func (f *fakeUsdcRepo) FindByUserID(userID uint64) ([]*domain.RawUsdcRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.RawUsdcRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUsdcRepo) FindPage(limit, offset int) ([]*domain.RawUsdcRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if offset >= len(f.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return f.records[offset:end], nil
}

func (f *fakeUsdcRepo) FindByWindow(from, to time.Time) ([]*domain.RawUsdcRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeUsdcRepo) UpdateStatus(id uint64, status string) error {
	if f.err != nil {
		return f.err
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeUsdcRepo) AttachTxHash(id uint64, hash string) error {
	if f.err != nil {
		return f.err
	}
	f.attachedHashes[id] = hash
	f.statusUpdates[id] = "successful"
	return nil
}

func (f *fakeUsdcRepo) Delete(id uint64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}
