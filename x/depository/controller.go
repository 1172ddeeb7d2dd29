package depository

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/orm"
	"github.com/solaris-one/bondsale/x/bond"
	"github.com/solaris-one/bondsale/x/cash"
)

// Controller provisions freshly minted reward asset to authorized
// tellers. It implements bond.RewardProvisioner.
type Controller struct {
	licenses orm.ModelBucket
	bank     cash.Controller
}

var _ bond.RewardProvisioner = Controller{}

// NewController returns a Controller minting through given ledger.
func NewController(bank cash.Controller) Controller {
	return Controller{
		licenses: NewLicenseBucket(),
		bank:     bank,
	}
}

// IsAuthorized returns nil when the teller account is in the
// authorized set.
func (c Controller) IsAuthorized(db bondsale.ReadOnlyKVStore, teller bondsale.Address) error {
	switch err := c.licenses.Has(db, teller); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrNotAuthorized, "teller %s", teller)
	default:
		return err
	}
}

// PullReward mints the payout amount of the reward asset into the
// teller account. The teller must be authorized and the depository
// must hold the minting authority of the reward ticker.
func (c Controller) PullReward(db bondsale.KVStore, teller bondsale.Address, amount int64) (coin.Coin, error) {
	if err := c.IsAuthorized(db, teller); err != nil {
		return coin.Coin{}, err
	}
	var conf Configuration
	if err := gconf.Load(db, "depository", &conf); err != nil {
		return coin.Coin{}, errors.Wrap(err, "configuration")
	}
	reward := coin.NewCoin(amount, conf.RewardTicker)
	if err := c.bank.IssueCoins(db, Address(), teller, reward); err != nil {
		return coin.Coin{}, err
	}
	return reward, nil
}
