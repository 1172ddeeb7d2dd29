package bond

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
)

var tellerSeq = orm.NewSequence("bond", "teller")

// NewTellerBucket returns a bucket of teller configurations with
// sequential ids, uniquely indexed by the teller account address.
func NewTellerBucket() orm.ModelBucket {
	return orm.NewModelBucket("btllr", &Teller{},
		orm.WithIDSequence(tellerSeq),
		orm.WithIndex("address", tellerAddress, true),
	)
}

func tellerAddress(obj orm.Model) ([]byte, error) {
	t, ok := obj.(*Teller)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj)
	}
	return t.Address, nil
}

// NewTermsBucket returns a bucket of sale terms keyed by the teller id.
func NewTermsBucket() orm.ModelBucket {
	return orm.NewModelBucket("terms", &Terms{})
}

var bondSeq = orm.NewSequence("bond", "id")

// NewBondBucket returns a bucket of bonds with sequential ids, indexed
// by the owner address so holdings can be enumerated.
func NewBondBucket() orm.ModelBucket {
	return orm.NewModelBucket("bond", &Bond{},
		orm.WithIDSequence(bondSeq),
		orm.WithIndex("owner", bondOwner, false),
	)
}

func bondOwner(obj orm.Model) ([]byte, error) {
	b, ok := obj.(*Bond)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj)
	}
	return b.Owner, nil
}

// NewPermitSignerBucket returns a bucket of permit replay counters
// keyed by the signer address.
func NewPermitSignerBucket() orm.ModelBucket {
	return orm.NewModelBucket("prmsg", &PermitSigner{})
}

// TellerCondition returns the condition of a teller account derived
// from the creation salt. The address is computable before the teller
// exists.
func TellerCondition(salt []byte) bondsale.Condition {
	return bondsale.NewCondition("bondtell", "salt", salt)
}
