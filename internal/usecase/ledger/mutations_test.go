package usecase

import (
	"testing"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusRoutesToSingleStore(t *testing.T) {
	testCases := []struct {
		name string
		id   domain.TransactionID
	}{
		{name: "sepa deposit", id: domain.TransactionID{Kind: domain.KindSepa, NumericID: 7}},
		{name: "usdt order", id: domain.TransactionID{Kind: domain.KindUsdt, NumericID: 3}},
		{name: "usdc order", id: domain.TransactionID{Kind: domain.KindUsdc, NumericID: 42}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sepa := newFakeSepaRepo()
			usdt := newFakeUsdtRepo()
			usdc := newFakeUsdcRepo()
			uc := newLedgerUsecase(sepa, usdt, usdc)

			require.NoError(t, uc.UpdateStatus(tc.id, "Successful"))

			touched := len(sepa.statusUpdates) + len(usdt.statusUpdates) + len(usdc.statusUpdates)
			assert.Equal(t, 1, touched)

			switch tc.id.Kind {
			case domain.KindSepa:
				assert.Equal(t, "successful", sepa.statusUpdates[tc.id.NumericID])
			case domain.KindUsdt:
				assert.Equal(t, "successful", usdt.statusUpdates[tc.id.NumericID])
			case domain.KindUsdc:
				assert.Equal(t, "successful", usdc.statusUpdates[tc.id.NumericID])
			}
		})
	}
}

func TestUpdateStatusUnknownKind(t *testing.T) {
	sepa := newFakeSepaRepo()
	uc := newLedgerUsecase(sepa, newFakeUsdtRepo(), newFakeUsdcRepo())

	err := uc.UpdateStatus(domain.TransactionID{Kind: "wire", NumericID: 1}, "successful")
	assert.ErrorIs(t, err, domain.ErrUnknownSourceKind)
	assert.Empty(t, sepa.statusUpdates)
}

func TestUpdateStatusPropagatesStoreError(t *testing.T) {
	sepa := newFakeSepaRepo()
	sepa.err = domain.ErrTransactionNotFound
	uc := newLedgerUsecase(sepa, newFakeUsdtRepo(), newFakeUsdcRepo())

	err := uc.UpdateStatus(domain.TransactionID{Kind: domain.KindSepa, NumericID: 99}, "failed")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestAttachTxHash(t *testing.T) {
	usdc := newFakeUsdcRepo()
	uc := newLedgerUsecase(newFakeSepaRepo(), newFakeUsdtRepo(), usdc)

	require.NoError(t, uc.AttachTxHash(domain.TransactionID{Kind: domain.KindUsdc, NumericID: 9}, "0xdeadbeef"))

	assert.Equal(t, "0xdeadbeef", usdc.attachedHashes[9])
	// Hash attachment implies the terminal successful status.
	assert.Equal(t, "successful", usdc.statusUpdates[9])
}

func TestAttachTxHashRejectedForNonUsdc(t *testing.T) {
	sepa := newFakeSepaRepo()
	usdt := newFakeUsdtRepo()
	usdc := newFakeUsdcRepo()
	uc := newLedgerUsecase(sepa, usdt, usdc)

	for _, kind := range []domain.SourceKind{domain.KindSepa, domain.KindUsdt} {
		err := uc.AttachTxHash(domain.TransactionID{Kind: kind, NumericID: 1}, "0xabc")
		assert.ErrorIs(t, err, domain.ErrHashNotSupported)
	}

	// No store may be touched on rejection.
	assert.Empty(t, sepa.statusUpdates)
	assert.Empty(t, usdt.statusUpdates)
	assert.Empty(t, usdc.attachedHashes)
}

func TestDeleteTransactionRouting(t *testing.T) {
	sepa := newFakeSepaRepo()
	usdt := newFakeUsdtRepo()
	usdc := newFakeUsdcRepo()
	uc := newLedgerUsecase(sepa, usdt, usdc)

	require.NoError(t, uc.DeleteTransaction(domain.TransactionID{Kind: domain.KindUsdc, NumericID: 42}))

	assert.Equal(t, []uint64{42}, usdc.deleted)
	assert.Empty(t, sepa.deleted)
	assert.Empty(t, usdt.deleted)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	usdt := newFakeUsdtRepo()
	usdt.err = domain.ErrTransactionNotFound
	uc := newLedgerUsecase(newFakeSepaRepo(), usdt, newFakeUsdcRepo())

	err := uc.DeleteTransaction(domain.TransactionID{Kind: domain.KindUsdt, NumericID: 5})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestMutationsWorkWithoutPublisher(t *testing.T) {
	// Publisher is nil throughout this suite; mutations must not depend on it.
	uc := newLedgerUsecase(newFakeSepaRepo(), newFakeUsdtRepo(), newFakeUsdcRepo())
	assert.NoError(t, uc.UpdateStatus(domain.TransactionID{Kind: domain.KindSepa, NumericID: 1}, "failed"))
}
