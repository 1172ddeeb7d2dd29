package lockvault

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
)

// Lock is a single locked position. The funds are held by the vault
// account and released to the owner after the release time.
type Lock struct {
	// Owner is the only account that can withdraw.
	Owner bondsale.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"owner,omitempty"`
	// Amount held by this lock.
	Amount *coin.Coin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	// Release is the first moment the owner may withdraw.
	Release bondsale.UnixTime `protobuf:"varint,3,opt,name=release,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"release,omitempty"`
}

var _ proto.Message = (*Lock)(nil)

func (l *Lock) Reset()         { *l = Lock{} }
func (l *Lock) String() string { return proto.CompactTextString(l) }
func (*Lock) ProtoMessage()    {}

type rawLock Lock

func (l *rawLock) Reset()         { *l = rawLock{} }
func (l *rawLock) String() string { return proto.CompactTextString(l) }
func (*rawLock) ProtoMessage()    {}

func (l *Lock) Marshal() ([]byte, error) {
	return proto.Marshal((*rawLock)(l))
}

func (l *Lock) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawLock)(l))
}

func (l *Lock) Validate() error {
	if l == nil {
		return errors.Wrap(errors.ErrEmpty, "lock")
	}
	var errs error
	errs = errors.AppendField(errs, "Owner", l.Owner.Validate())
	if l.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Amount", l.Amount.Validate())
		if !l.Amount.IsPositive() {
			errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	errs = errors.AppendField(errs, "Release", l.Release.Validate())
	return errs
}
