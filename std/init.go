package std

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/x/cash"
	"github.com/solaris-one/bondsale/x/depository"
)

// Initializers returns the genesis initializers of every module, in the
// order they must run.
func Initializers() []bondsale.Initializer {
	return []bondsale.Initializer{
		cash.Initializer{},
		depository.Initializer{},
	}
}

// InitGenesis runs every module initializer against the given genesis
// options.
func InitGenesis(opts bondsale.Options, db bondsale.KVStore) error {
	for _, ini := range Initializers() {
		if err := ini.FromGenesis(opts, db); err != nil {
			return errors.Wrapf(err, "initializer %T", ini)
		}
	}
	return nil
}
