package depository

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
)

// Initializer fulfils the Initializer interface to load the depository
// configuration from the genesis file.
type Initializer struct{}

var _ bondsale.Initializer = (*Initializer)(nil)

// FromGenesis initializes the configuration singleton. Expected format:
//
//   "conf": {"depository": {
//       "owners": {"governor": "<addr>"},
//       "reward_ticker": "SOL"
//   }}
func (Initializer) FromGenesis(opts bondsale.Options, db bondsale.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, "depository", &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
