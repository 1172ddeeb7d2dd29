package cash

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
)

// SendMsg transfers funds between two accounts. When the source is not
// set it defaults to the main signer of the transaction.
type SendMsg struct {
	Source      bondsale.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"source,omitempty"`
	Destination bondsale.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"destination,omitempty"`
	Amount      *coin.Coin       `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	// Memo is a human readable note attached to the transfer.
	Memo string `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ bondsale.Msg = (*SendMsg)(nil)

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

type rawSendMsg SendMsg

func (m *rawSendMsg) Reset()         { *m = rawSendMsg{} }
func (m *rawSendMsg) String() string { return proto.CompactTextString(m) }
func (*rawSendMsg) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawSendMsg)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawSendMsg)(m))
}

func (SendMsg) Path() string {
	return "cash/send"
}

func (m *SendMsg) Validate() error {
	var errs error
	if len(m.Source) != 0 {
		errs = errors.AppendField(errs, "Source", m.Source.Validate())
	}
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
		if !m.Amount.IsPositive() {
			errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	if len(m.Memo) > 128 {
		errs = errors.AppendField(errs, "Memo", errors.Wrap(errors.ErrInput, "memo too long"))
	}
	return errs
}

// SetMinterMsg registers or replaces the minting authority of a ticker.
// Only the configuration governor may issue it.
type SetMinterMsg struct {
	Ticker    string           `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Authority bondsale.Address `protobuf:"bytes,2,opt,name=authority,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"authority,omitempty"`
}

var _ bondsale.Msg = (*SetMinterMsg)(nil)

func (m *SetMinterMsg) Reset()         { *m = SetMinterMsg{} }
func (m *SetMinterMsg) String() string { return proto.CompactTextString(m) }
func (*SetMinterMsg) ProtoMessage()    {}

type rawSetMinterMsg SetMinterMsg

func (m *rawSetMinterMsg) Reset()         { *m = rawSetMinterMsg{} }
func (m *rawSetMinterMsg) String() string { return proto.CompactTextString(m) }
func (*rawSetMinterMsg) ProtoMessage()    {}

func (m *SetMinterMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawSetMinterMsg)(m))
}

func (m *SetMinterMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawSetMinterMsg)(m))
}

func (SetMinterMsg) Path() string {
	return "cash/set_minter"
}

func (m *SetMinterMsg) Validate() error {
	var errs error
	if !coin.IsCC(m.Ticker) {
		errs = errors.AppendField(errs, "Ticker", errors.Wrapf(errors.ErrInput, "invalid ticker %s", m.Ticker))
	}
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	return errs
}
