package cash

import (
	"github.com/solaris-one/bondsale/orm"
)

// NewWalletBucket returns a bucket of wallets keyed by the account
// address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("wllt", &Wallet{})
}

// NewMinterBucket returns a bucket of minting authorities keyed by
// ticker.
func NewMinterBucket() orm.ModelBucket {
	return orm.NewModelBucket("mint", &Minter{})
}
