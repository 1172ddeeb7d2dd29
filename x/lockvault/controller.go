package lockvault

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
	"github.com/solaris-one/bondsale/x/cash"
)

// Controller is the interface other modules use to lock funds.
type Controller interface {
	// Lock moves funds from the source account into the vault and
	// records a lock releasing them to the owner at the given time.
	// The id of the new lock is returned.
	Lock(db bondsale.KVStore, source, owner bondsale.Address, amount coin.Coin, release bondsale.UnixTime) ([]byte, error)
}

// BaseController implements Controller on top of the lock bucket and
// the token ledger.
type BaseController struct {
	locks orm.ModelBucket
	bank  cash.Controller
}

var _ Controller = BaseController{}

// NewController returns a Controller moving funds through given ledger.
func NewController(bank cash.Controller) BaseController {
	return BaseController{
		locks: NewLockBucket(),
		bank:  bank,
	}
}

func (c BaseController) Lock(db bondsale.KVStore, source, owner bondsale.Address, amount coin.Coin, release bondsale.UnixTime) ([]byte, error) {
	lock := &Lock{
		Owner:   owner,
		Amount:  &amount,
		Release: release,
	}
	if err := lock.Validate(); err != nil {
		return nil, err
	}
	key, err := c.locks.Put(db, nil, lock)
	if err != nil {
		return nil, errors.Wrap(err, "save lock")
	}
	if err := c.bank.MoveCoins(db, source, VaultAddress(), amount); err != nil {
		return nil, errors.Wrap(err, "fund vault")
	}
	return key, nil
}
