package lockvault

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// WithdrawMsg releases an expired lock to its owner.
type WithdrawMsg struct {
	LockId []byte `protobuf:"bytes,1,opt,name=lock_id,json=lockId,proto3" json:"lock_id,omitempty"`
}

var _ bondsale.Msg = (*WithdrawMsg)(nil)

func (m *WithdrawMsg) Reset()         { *m = WithdrawMsg{} }
func (m *WithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*WithdrawMsg) ProtoMessage()    {}

type rawWithdrawMsg WithdrawMsg

func (m *rawWithdrawMsg) Reset()         { *m = rawWithdrawMsg{} }
func (m *rawWithdrawMsg) String() string { return proto.CompactTextString(m) }
func (*rawWithdrawMsg) ProtoMessage()    {}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawWithdrawMsg)(m))
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawWithdrawMsg)(m))
}

func (WithdrawMsg) Path() string {
	return "lockvault/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	if len(m.LockId) != 8 {
		return errors.Wrap(errors.ErrInput, "lock id must be 8 bytes")
	}
	return nil
}
