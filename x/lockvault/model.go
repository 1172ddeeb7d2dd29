package lockvault

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
)

var lockSeq = orm.NewSequence("lockvault", "id")

// NewLockBucket returns a bucket of locks with sequential ids, indexed
// by the owner address.
func NewLockBucket() orm.ModelBucket {
	return orm.NewModelBucket("lock", &Lock{},
		orm.WithIDSequence(lockSeq),
		orm.WithIndex("owner", lockOwner, false),
	)
}

func lockOwner(obj orm.Model) ([]byte, error) {
	l, ok := obj.(*Lock)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj)
	}
	return l.Owner, nil
}

// VaultAddress returns the account all locked funds are held by.
func VaultAddress() bondsale.Address {
	return bondsale.NewCondition("lockvlt", "pool", []byte("global")).Address()
}
