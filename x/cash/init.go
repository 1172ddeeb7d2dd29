package cash

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
)

// Initializer fulfils the Initializer interface to load token state
// from the genesis file.
type Initializer struct{}

var _ bondsale.Initializer = (*Initializer)(nil)

// FromGenesis initializes wallets, minters and the module configuration
// from the genesis options. Expected format:
//
//   "cash": [{"address": "<addr>", "coins": [{"ticker": "DAI", "whole": 100}]}],
//   "minter": [{"ticker": "SOL", "authority": "<addr>"}],
//   "conf": {"cash": {"governor": "<addr>"}}
func (Initializer) FromGenesis(opts bondsale.Options, db bondsale.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, "cash", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	type fund struct {
		Ticker string `json:"ticker"`
		Whole  int64  `json:"whole"`
	}
	var accounts []struct {
		Address bondsale.Address `json:"address"`
		Coins   []fund           `json:"coins"`
	}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return errors.Wrap(err, "read accounts")
	}

	wallets := NewWalletBucket()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d address", i)
		}
		var w Wallet
		for _, f := range acc.Coins {
			if err := w.Add(coin.NewCoin(f.Whole, f.Ticker)); err != nil {
				return errors.Wrapf(err, "account %d coins", i)
			}
		}
		if _, err := wallets.Put(db, acc.Address, &w); err != nil {
			return errors.Wrapf(err, "save account %d", i)
		}
	}

	var minters []struct {
		Ticker    string           `json:"ticker"`
		Authority bondsale.Address `json:"authority"`
	}
	if err := opts.ReadOptions("minter", &minters); err != nil {
		return errors.Wrap(err, "read minters")
	}
	ctrl := NewController()
	for i, m := range minters {
		if err := m.Authority.Validate(); err != nil {
			return errors.Wrapf(err, "minter %d authority", i)
		}
		if err := ctrl.SetMinter(db, m.Ticker, m.Authority); err != nil {
			return errors.Wrapf(err, "minter %d", i)
		}
	}
	return nil
}
