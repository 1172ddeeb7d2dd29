package lockvault

import (
	"context"
	"testing"
	"time"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/store"
	"github.com/solaris-one/bondsale/x/cash"
)

func TestLockAndWithdraw(t *testing.T) {
	owner := bondsaletest.NewCondition()
	funder := bondsaletest.NewCondition().Address()

	db := store.MemStore()
	bank := cash.NewController()

	_, err := cash.NewWalletBucket().Put(db, funder, &cash.Wallet{Coins: []*coin.Coin{
		{Ticker: "SOL", Amount: 50},
	}})
	assert.Nil(t, err)

	now := time.Now()
	release := bondsale.AsUnixTime(now.Add(time.Hour))

	ctrl := NewController(bank)
	lockID, err := ctrl.Lock(db, funder, owner.Address(), coin.NewCoin(50, "SOL"), release)
	assert.Nil(t, err)
	assert.Equal(t, bondsaletest.SequenceID(1), lockID)

	vaulted, err := bank.Balance(db, VaultAddress(), "SOL")
	assert.Nil(t, err)
	assert.Equal(t, int64(50), vaulted.Amount)

	h := WithdrawHandler{
		auth:  &bondsaletest.Auth{Signer: owner},
		locks: NewLockBucket(),
		bank:  bank,
	}
	tx := &bondsaletest.Tx{Msg: &WithdrawMsg{LockId: lockID}}

	// Before the release time nothing can be withdrawn.
	early := bondsale.WithBlockTime(context.Background(), now.Add(30*time.Minute))
	_, err = h.Deliver(early, db, tx)
	assert.IsErr(t, errors.ErrState, err)

	// A stranger cannot withdraw even after expiry.
	late := bondsale.WithBlockTime(context.Background(), now.Add(2*time.Hour))
	strangerH := h
	strangerH.auth = &bondsaletest.Auth{Signer: bondsaletest.NewCondition()}
	_, err = strangerH.Deliver(late, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	_, err = h.Deliver(late, db, tx)
	assert.Nil(t, err)

	got, err := bank.Balance(db, owner.Address(), "SOL")
	assert.Nil(t, err)
	assert.Equal(t, int64(50), got.Amount)

	// The lock is gone and cannot be withdrawn twice.
	_, err = h.Deliver(late, db, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestLockRequiresFunds(t *testing.T) {
	owner := bondsaletest.NewCondition().Address()
	funder := bondsaletest.NewCondition().Address()

	db := store.MemStore()
	ctrl := NewController(cash.NewController())

	release := bondsale.AsUnixTime(time.Now().Add(time.Hour))
	_, err := ctrl.Lock(db, funder, owner, coin.NewCoin(10, "SOL"), release)
	assert.IsErr(t, errors.ErrAmount, err)
}
