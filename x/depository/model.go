package depository

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/orm"
)

// NewLicenseBucket returns the bucket of reward licenses keyed by the
// teller account address.
func NewLicenseBucket() orm.ModelBucket {
	return orm.NewModelBucket("lcnse", &License{})
}

// Address returns the depository's own account. It holds the minting
// authority of the reward asset.
func Address() bondsale.Address {
	return bondsale.NewCondition("deposit", "pool", []byte("reward")).Address()
}
