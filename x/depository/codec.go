package depository

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/x/govern"
)

// Configuration is the depository wide configuration singleton. The
// governor runs the factory and curates the authorized teller set.
type Configuration struct {
	Owners *govern.Ownership `protobuf:"bytes,1,opt,name=owners,proto3" json:"owners,omitempty"`
	// RewardTicker is the asset minted for every payout.
	RewardTicker string `protobuf:"bytes,2,opt,name=reward_ticker,json=rewardTicker,proto3" json:"reward_ticker,omitempty"`
}

var _ proto.Message = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

type rawConfiguration Configuration

func (c *rawConfiguration) Reset()         { *c = rawConfiguration{} }
func (c *rawConfiguration) String() string { return proto.CompactTextString(c) }
func (*rawConfiguration) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*rawConfiguration)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawConfiguration)(c))
}

func (c *Configuration) Validate() error {
	var errs error
	if c.Owners == nil {
		errs = errors.AppendField(errs, "Owners", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Owners", c.Owners.Validate())
	}
	if !coin.IsCC(c.RewardTicker) {
		errs = errors.AppendField(errs, "RewardTicker", errors.Wrapf(errors.ErrInput, "invalid ticker %s", c.RewardTicker))
	}
	return errs
}

// License marks a teller account as authorized to draw rewards. The
// teller address is the record key.
type License struct {
	// TellerId back references the teller configuration.
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
}

var _ proto.Message = (*License)(nil)

func (l *License) Reset()         { *l = License{} }
func (l *License) String() string { return proto.CompactTextString(l) }
func (*License) ProtoMessage()    {}

type rawLicense License

func (l *rawLicense) Reset()         { *l = rawLicense{} }
func (l *rawLicense) String() string { return proto.CompactTextString(l) }
func (*rawLicense) ProtoMessage()    {}

func (l *License) Marshal() ([]byte, error) {
	return proto.Marshal((*rawLicense)(l))
}

func (l *License) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawLicense)(l))
}

func (l *License) Validate() error {
	if len(l.TellerId) != 8 {
		return errors.Wrap(errors.ErrInput, "teller id must be 8 bytes")
	}
	return nil
}
