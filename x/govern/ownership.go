package govern

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/x"
)

// Ownership tracks the governor of a record together with an optional
// pending candidate. It is embedded by modules that gate privileged
// operations on a single account.
type Ownership struct {
	// Governor is the account allowed to run privileged operations.
	Governor bondsale.Address `protobuf:"bytes,1,opt,name=governor,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"governor,omitempty"`
	// Pending is the proposed replacement. It has no power until it
	// accepts the transfer.
	Pending bondsale.Address `protobuf:"bytes,2,opt,name=pending,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"pending,omitempty"`
}

var _ proto.Message = (*Ownership)(nil)

func (o *Ownership) Reset()         { *o = Ownership{} }
func (o *Ownership) String() string { return proto.CompactTextString(o) }
func (*Ownership) ProtoMessage()    {}

type rawOwnership Ownership

func (o *rawOwnership) Reset()         { *o = rawOwnership{} }
func (o *rawOwnership) String() string { return proto.CompactTextString(o) }
func (*rawOwnership) ProtoMessage()    {}

func (o *Ownership) Marshal() ([]byte, error) {
	return proto.Marshal((*rawOwnership)(o))
}

func (o *Ownership) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawOwnership)(o))
}

// Validate ensures a governor is set. A pending candidate is optional.
func (o *Ownership) Validate() error {
	if o == nil {
		return errors.Wrap(errors.ErrEmpty, "ownership")
	}
	var errs error
	errs = errors.AppendField(errs, "Governor", o.Governor.Validate())
	if len(o.Pending) != 0 {
		errs = errors.AppendField(errs, "Pending", o.Pending.Validate())
	}
	return errs
}

// Authorize returns an error unless the current governor signed this
// transaction.
func (o *Ownership) Authorize(ctx bondsale.Context, auth x.Authenticator) error {
	if !auth.HasAddress(ctx, o.Governor) {
		return errors.Wrap(errors.ErrUnauthorized, "not the governor")
	}
	return nil
}

// Propose records a candidate for the governor role. Only the current
// governor may propose. Proposing overwrites any earlier candidate and
// an empty candidate cancels a pending transfer.
func (o *Ownership) Propose(ctx bondsale.Context, auth x.Authenticator, candidate bondsale.Address) error {
	if err := o.Authorize(ctx, auth); err != nil {
		return err
	}
	if len(candidate) != 0 {
		if err := candidate.Validate(); err != nil {
			return errors.Wrap(err, "candidate")
		}
	}
	o.Pending = candidate
	return nil
}

// Accept completes a transfer. The pending candidate must sign. On
// success the candidate becomes governor and the pending slot is
// cleared.
func (o *Ownership) Accept(ctx bondsale.Context, auth x.Authenticator) error {
	if len(o.Pending) == 0 {
		return errors.Wrap(errors.ErrState, "no pending governor")
	}
	if !auth.HasAddress(ctx, o.Pending) {
		return errors.Wrap(errors.ErrUnauthorized, "not the pending governor")
	}
	o.Governor = o.Pending
	o.Pending = nil
	return nil
}
