package domain

import "time"

// The three source stores are independently owned; there is no cross-store
// transaction. Platform-wide finders attach the owning user via a join,
// window finders feed the analytics engine unbounded.

type SepaDepositRepository interface {
	FindByUserID(userID uint64) ([]*RawSepaRecord, error)
	FindPage(limit, offset int) ([]*RawSepaRecord, error)
	FindByWindow(from, to time.Time) ([]*RawSepaRecord, error)
	UpdateStatus(id uint64, status string) error
	Delete(id uint64) error
}

type UsdtOrderRepository interface {
	FindByUserID(userID uint64) ([]*RawUsdtRecord, error)
	FindPage(limit, offset int) ([]*RawUsdtRecord, error)
	FindByWindow(from, to time.Time) ([]*RawUsdtRecord, error)
	UpdateStatus(id uint64, status string) error
	Delete(id uint64) error
}

type UsdcOrderRepository interface {
	FindByUserID(userID uint64) ([]*RawUsdcRecord, error)
	FindPage(limit, offset int) ([]*RawUsdcRecord, error)
	FindByWindow(from, to time.Time) ([]*RawUsdcRecord, error)
	UpdateStatus(id uint64, status string) error
	// AttachTxHash stores the hash and moves the order to its terminal
	// successful status in one update. Hash presence is completion proof.
	AttachTxHash(id uint64, hash string) error
	Delete(id uint64) error
}
