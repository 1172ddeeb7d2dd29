package lockvault

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
	"github.com/solaris-one/bondsale/x"
	"github.com/solaris-one/bondsale/x/cash"
)

const withdrawCost int64 = 100

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bondsale.Registry, auth x.Authenticator, bank cash.Controller) {
	r.Handle(&WithdrawMsg{}, WithdrawHandler{
		auth:  auth,
		locks: NewLockBucket(),
		bank:  bank,
	})
}

// WithdrawHandler pays an expired lock out to its owner and removes the
// lock.
type WithdrawHandler struct {
	auth  x.Authenticator
	locks orm.ModelBucket
	bank  cash.Controller
}

var _ bondsale.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, lock, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.locks.Delete(db, msg.LockId); err != nil {
		return nil, errors.Wrap(err, "delete lock")
	}
	if err := h.bank.MoveCoins(db, VaultAddress(), lock.Owner, *lock.Amount); err != nil {
		return nil, errors.Wrap(err, "release funds")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("lockvault:action"), Value: []byte("withdraw")},
			{Key: []byte("lockvault:owner"), Value: []byte(lock.Owner.String())},
		},
	}
	return res, nil
}

func (h WithdrawHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*WithdrawMsg, *Lock, error) {
	var msg WithdrawMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var lock Lock
	if err := h.locks.One(db, msg.LockId, &lock); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load lock from the store")
	}

	if !h.auth.HasAddress(ctx, lock.Owner) {
		return nil, nil, errors.ErrUnauthorized
	}
	if !bondsale.IsExpired(ctx, lock.Release) {
		return nil, nil, errors.Wrapf(errors.ErrState, "locked until %s", lock.Release)
	}
	return &msg, &lock, nil
}
