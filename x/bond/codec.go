package bond

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/x/govern"
)

// Teller is the per instance configuration of a sale. One teller sells
// the reward asset against exactly one principal ticker.
type Teller struct {
	// Name is a human readable label, unique only by convention.
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// Address is the teller's own account, derived from the creation
	// salt. Minted rewards are parked here until claimed.
	Address bondsale.Address `protobuf:"bytes,2,opt,name=address,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"address,omitempty"`
	// PrincipalTicker is the asset this teller sells against.
	PrincipalTicker string `protobuf:"bytes,3,opt,name=principal_ticker,json=principalTicker,proto3" json:"principal_ticker,omitempty"`
	// SupportsPermit marks the principal asset as accepting off band
	// signed deposit authorizations.
	SupportsPermit bool `protobuf:"varint,4,opt,name=supports_permit,json=supportsPermit,proto3" json:"supports_permit,omitempty"`
	// Dao receives the protocol fee cut of every deposit.
	Dao bondsale.Address `protobuf:"bytes,5,opt,name=dao,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"dao,omitempty"`
	// UnderwritingPool receives the principal net of fees.
	UnderwritingPool bondsale.Address `protobuf:"bytes,6,opt,name=underwriting_pool,json=underwritingPool,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"underwriting_pool,omitempty"`
	// FeeBps is the protocol fee in basis points taken from the
	// principal side of each deposit.
	FeeBps uint32 `protobuf:"varint,7,opt,name=fee_bps,json=feeBps,proto3" json:"fee_bps,omitempty"`
	// Paused stops new deposits. Claims stay open.
	Paused bool `protobuf:"varint,8,opt,name=paused,proto3" json:"paused,omitempty"`
	// Owners guards every administrative operation of this teller.
	Owners *govern.Ownership `protobuf:"bytes,9,opt,name=owners,proto3" json:"owners,omitempty"`
}

var _ proto.Message = (*Teller)(nil)

func (t *Teller) Reset()         { *t = Teller{} }
func (t *Teller) String() string { return proto.CompactTextString(t) }
func (*Teller) ProtoMessage()    {}

// rawTeller is the same shape without the Marshaler methods. Encoding
// must go through it, so gogo runs its tag driven codec instead of
// calling back into the methods below.
type rawTeller Teller

func (t *rawTeller) Reset()         { *t = rawTeller{} }
func (t *rawTeller) String() string { return proto.CompactTextString(t) }
func (*rawTeller) ProtoMessage()    {}

func (t *Teller) Marshal() ([]byte, error) {
	return proto.Marshal((*rawTeller)(t))
}

func (t *Teller) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawTeller)(t))
}

func (t *Teller) Validate() error {
	if t == nil {
		return errors.Wrap(errors.ErrEmpty, "teller")
	}
	var errs error
	if t.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Address", t.Address.Validate())
	if !coin.IsCC(t.PrincipalTicker) {
		errs = errors.AppendField(errs, "PrincipalTicker", errors.Wrapf(errors.ErrInput, "invalid ticker %s", t.PrincipalTicker))
	}
	errs = errors.AppendField(errs, "Dao", t.Dao.Validate())
	errs = errors.AppendField(errs, "UnderwritingPool", t.UnderwritingPool.Validate())
	if t.FeeBps > 10000 {
		errs = errors.AppendField(errs, "FeeBps", errors.Wrap(errors.ErrInput, "above 10000 basis points"))
	}
	if t.Owners == nil {
		errs = errors.AppendField(errs, "Owners", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Owners", t.Owners.Validate())
	}
	return errs
}

// Terms is the active sale configuration of one teller. The governor
// replaces the whole set at once. Prices are unit prices of the reward
// asset in principal units, carrying the fixed point PriceScale.
type Terms struct {
	// StartPrice is the anchor price installed when the terms are set.
	StartPrice uint64 `protobuf:"varint,1,opt,name=start_price,json=startPrice,proto3" json:"start_price,omitempty"`
	// MinimumPrice is the floor that decay approaches. The posted
	// price never falls below it.
	MinimumPrice uint64 `protobuf:"varint,2,opt,name=minimum_price,json=minimumPrice,proto3" json:"minimum_price,omitempty"`
	// PriceAdjustment scales how much each purchase pushes the next
	// posted price upward.
	PriceAdjustment *bondsale.Fraction `protobuf:"bytes,3,opt,name=price_adjustment,json=priceAdjustment,proto3" json:"price_adjustment,omitempty"`
	// MaxPayout caps the reward paid by a single deposit.
	MaxPayout int64 `protobuf:"varint,4,opt,name=max_payout,json=maxPayout,proto3" json:"max_payout,omitempty"`
	// Capacity is the remaining sale volume. It only ever decreases.
	Capacity int64 `protobuf:"varint,5,opt,name=capacity,proto3" json:"capacity,omitempty"`
	// CapacityIsPayout switches the capacity denomination between
	// reward units (true) and principal units (false).
	CapacityIsPayout bool `protobuf:"varint,6,opt,name=capacity_is_payout,json=capacityIsPayout,proto3" json:"capacity_is_payout,omitempty"`
	// StartTime and EndTime bound the sale window, inclusive of both
	// ends.
	StartTime bondsale.UnixTime `protobuf:"varint,7,opt,name=start_time,json=startTime,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"start_time,omitempty"`
	EndTime   bondsale.UnixTime `protobuf:"varint,8,opt,name=end_time,json=endTime,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"end_time,omitempty"`
	// VestingTerm is assigned to new bonds at creation.
	VestingTerm bondsale.UnixDuration `protobuf:"varint,9,opt,name=vesting_term,json=vestingTerm,proto3,casttype=github.com/solaris-one/bondsale.UnixDuration" json:"vesting_term,omitempty"`
	// HalfLife is the decay interval. Once per half life the distance
	// between the posted price and the floor halves.
	HalfLife bondsale.UnixDuration `protobuf:"varint,10,opt,name=half_life,json=halfLife,proto3,casttype=github.com/solaris-one/bondsale.UnixDuration" json:"half_life,omitempty"`
	// LastPriceUpdate and NextPrice form the decay anchor. They are
	// rewritten by every successful deposit.
	LastPriceUpdate bondsale.UnixTime `protobuf:"varint,11,opt,name=last_price_update,json=lastPriceUpdate,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"last_price_update,omitempty"`
	NextPrice       uint64            `protobuf:"varint,12,opt,name=next_price,json=nextPrice,proto3" json:"next_price,omitempty"`
}

var _ proto.Message = (*Terms)(nil)

func (t *Terms) Reset()         { *t = Terms{} }
func (t *Terms) String() string { return proto.CompactTextString(t) }
func (*Terms) ProtoMessage()    {}

type rawTerms Terms

func (t *rawTerms) Reset()         { *t = rawTerms{} }
func (t *rawTerms) String() string { return proto.CompactTextString(t) }
func (*rawTerms) ProtoMessage()    {}

func (t *Terms) Marshal() ([]byte, error) {
	return proto.Marshal((*rawTerms)(t))
}

func (t *Terms) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawTerms)(t))
}

// Validate rejects misconfigured terms at the setter instead of
// clamping them later.
func (t *Terms) Validate() error {
	if t == nil {
		return errors.Wrap(errors.ErrEmpty, "terms")
	}
	var errs error
	if t.PriceAdjustment == nil {
		errs = errors.AppendField(errs, "PriceAdjustment", errors.ErrEmpty)
	} else if t.PriceAdjustment.Denominator == 0 {
		errs = errors.AppendField(errs, "PriceAdjustment", errors.Wrap(errors.ErrInput, "zero denominator"))
	}
	if t.MaxPayout <= 0 {
		errs = errors.AppendField(errs, "MaxPayout", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	// Deposits drain the capacity all the way to zero, so only a
	// negative value is corrupt. Posting fresh terms with nothing to
	// sell is rejected at the message boundary instead.
	if t.Capacity < 0 {
		errs = errors.AppendField(errs, "Capacity", errors.Wrap(errors.ErrAmount, "negative"))
	}
	errs = errors.AppendField(errs, "StartTime", t.StartTime.Validate())
	errs = errors.AppendField(errs, "EndTime", t.EndTime.Validate())
	if t.StartTime >= t.EndTime {
		errs = errors.AppendField(errs, "EndTime", errors.Wrap(errors.ErrInput, "window inverted"))
	}
	if t.VestingTerm < 0 {
		errs = errors.AppendField(errs, "VestingTerm", errors.Wrap(errors.ErrInput, "negative"))
	}
	if t.HalfLife <= 0 {
		errs = errors.AppendField(errs, "HalfLife", errors.Wrap(errors.ErrInput, "must be positive"))
	}
	return errs
}

// Bond is a transferable claim on a vesting payout. The bucket key is
// the bond id.
type Bond struct {
	// TellerId names the teller that sold this bond.
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	// Owner may claim, transfer and approve. Transfers do not reset
	// the vesting clock.
	Owner bondsale.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"owner,omitempty"`
	// Approved is an optional delegate allowed to claim and transfer.
	// Cleared on every transfer.
	Approved bondsale.Address `protobuf:"bytes,3,opt,name=approved,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"approved,omitempty"`
	// PrincipalPaid is what the depositor paid, for the record.
	PrincipalPaid int64 `protobuf:"varint,4,opt,name=principal_paid,json=principalPaid,proto3" json:"principal_paid,omitempty"`
	// Payout is the total reward owed. Ticker names its asset.
	Payout int64  `protobuf:"varint,5,opt,name=payout,proto3" json:"payout,omitempty"`
	Ticker string `protobuf:"bytes,6,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// Claimed grows monotonically from zero to Payout.
	Claimed int64 `protobuf:"varint,7,opt,name=claimed,proto3" json:"claimed,omitempty"`
	// VestingStart and VestingTerm fix the linear release schedule.
	// Immutable after creation.
	VestingStart bondsale.UnixTime     `protobuf:"varint,8,opt,name=vesting_start,json=vestingStart,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"vesting_start,omitempty"`
	VestingTerm  bondsale.UnixDuration `protobuf:"varint,9,opt,name=vesting_term,json=vestingTerm,proto3,casttype=github.com/solaris-one/bondsale.UnixDuration" json:"vesting_term,omitempty"`
}

var _ proto.Message = (*Bond)(nil)

func (b *Bond) Reset()         { *b = Bond{} }
func (b *Bond) String() string { return proto.CompactTextString(b) }
func (*Bond) ProtoMessage()    {}

type rawBond Bond

func (b *rawBond) Reset()         { *b = rawBond{} }
func (b *rawBond) String() string { return proto.CompactTextString(b) }
func (*rawBond) ProtoMessage()    {}

func (b *Bond) Marshal() ([]byte, error) {
	return proto.Marshal((*rawBond)(b))
}

func (b *Bond) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawBond)(b))
}

func (b *Bond) Validate() error {
	if b == nil {
		return errors.Wrap(errors.ErrEmpty, "bond")
	}
	var errs error
	if len(b.TellerId) != 8 {
		errs = errors.AppendField(errs, "TellerId", errors.Wrap(errors.ErrInput, "must be 8 bytes"))
	}
	errs = errors.AppendField(errs, "Owner", b.Owner.Validate())
	if len(b.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", b.Approved.Validate())
	}
	if b.PrincipalPaid <= 0 {
		errs = errors.AppendField(errs, "PrincipalPaid", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if b.Payout <= 0 {
		errs = errors.AppendField(errs, "Payout", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if !coin.IsCC(b.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrInput, "invalid ticker %s", b.Ticker))
	}
	if b.Claimed < 0 || b.Claimed > b.Payout {
		errs = errors.AppendField(errs, "Claimed", errors.Wrap(errors.ErrAmount, "outside [0, payout]"))
	}
	errs = errors.AppendField(errs, "VestingStart", b.VestingStart.Validate())
	if b.VestingTerm < 0 {
		errs = errors.AppendField(errs, "VestingTerm", errors.Wrap(errors.ErrInput, "negative"))
	}
	return errs
}

// PermitSigner is the replay state of one permit signing key, keyed by
// the signer address. Every accepted permit must carry the stored
// sequence and bumps it by one.
type PermitSigner struct {
	Sequence int64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ proto.Message = (*PermitSigner)(nil)

func (p *PermitSigner) Reset()         { *p = PermitSigner{} }
func (p *PermitSigner) String() string { return proto.CompactTextString(p) }
func (*PermitSigner) ProtoMessage()    {}

type rawPermitSigner PermitSigner

func (p *rawPermitSigner) Reset()         { *p = rawPermitSigner{} }
func (p *rawPermitSigner) String() string { return proto.CompactTextString(p) }
func (*rawPermitSigner) ProtoMessage()    {}

func (p *PermitSigner) Marshal() ([]byte, error) {
	return proto.Marshal((*rawPermitSigner)(p))
}

func (p *PermitSigner) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawPermitSigner)(p))
}

func (p *PermitSigner) Validate() error {
	if p.Sequence < 0 {
		return errors.AppendField(nil, "Sequence", errors.Wrap(errors.ErrInput, "negative"))
	}
	return nil
}
