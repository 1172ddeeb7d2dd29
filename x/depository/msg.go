package depository

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
)

// CreateTellerMsg deploys a new teller instance as a configuration
// record over the shared sale logic. The teller account address is
// derived from the salt, so it is predictable before creation. The new
// teller is authorized to draw rewards right away.
type CreateTellerMsg struct {
	// Salt makes the teller account address deterministic.
	Salt []byte `protobuf:"bytes,1,opt,name=salt,proto3" json:"salt,omitempty"`
	Name string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	// PrincipalTicker is the one asset the new teller sells against.
	PrincipalTicker string `protobuf:"bytes,3,opt,name=principal_ticker,json=principalTicker,proto3" json:"principal_ticker,omitempty"`
	SupportsPermit  bool   `protobuf:"varint,4,opt,name=supports_permit,json=supportsPermit,proto3" json:"supports_permit,omitempty"`
	// Governor administers the new teller instance.
	Governor         bondsale.Address `protobuf:"bytes,5,opt,name=governor,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"governor,omitempty"`
	Dao              bondsale.Address `protobuf:"bytes,6,opt,name=dao,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"dao,omitempty"`
	UnderwritingPool bondsale.Address `protobuf:"bytes,7,opt,name=underwriting_pool,json=underwritingPool,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"underwriting_pool,omitempty"`
	FeeBps           uint32           `protobuf:"varint,8,opt,name=fee_bps,json=feeBps,proto3" json:"fee_bps,omitempty"`
}

var _ bondsale.Msg = (*CreateTellerMsg)(nil)

func (m *CreateTellerMsg) Reset()         { *m = CreateTellerMsg{} }
func (m *CreateTellerMsg) String() string { return proto.CompactTextString(m) }
func (*CreateTellerMsg) ProtoMessage()    {}

type rawCreateTellerMsg CreateTellerMsg

func (m *rawCreateTellerMsg) Reset()         { *m = rawCreateTellerMsg{} }
func (m *rawCreateTellerMsg) String() string { return proto.CompactTextString(m) }
func (*rawCreateTellerMsg) ProtoMessage()    {}

func (m *CreateTellerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawCreateTellerMsg)(m))
}

func (m *CreateTellerMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawCreateTellerMsg)(m))
}

func (CreateTellerMsg) Path() string {
	return "depository/create_teller"
}

func (m *CreateTellerMsg) Validate() error {
	var errs error
	if len(m.Salt) == 0 {
		errs = errors.AppendField(errs, "Salt", errors.ErrEmpty)
	}
	if len(m.Salt) > 128 {
		errs = errors.AppendField(errs, "Salt", errors.Wrap(errors.ErrInput, "longer than 128 bytes"))
	}
	if m.Name == "" {
		errs = errors.AppendField(errs, "Name", errors.ErrEmpty)
	}
	if !coin.IsCC(m.PrincipalTicker) {
		errs = errors.AppendField(errs, "PrincipalTicker", errors.Wrapf(errors.ErrInput, "invalid ticker %s", m.PrincipalTicker))
	}
	errs = errors.AppendField(errs, "Governor", m.Governor.Validate())
	errs = errors.AppendField(errs, "Dao", m.Dao.Validate())
	errs = errors.AppendField(errs, "UnderwritingPool", m.UnderwritingPool.Validate())
	if m.FeeBps > 10000 {
		errs = errors.AppendField(errs, "FeeBps", errors.Wrap(errors.ErrInput, "above 10000 basis points"))
	}
	return errs
}

// AuthorizeTellerMsg puts a teller back into the authorized set.
// Authorizing an already authorized teller is a no-op.
type AuthorizeTellerMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
}

var _ bondsale.Msg = (*AuthorizeTellerMsg)(nil)

func (m *AuthorizeTellerMsg) Reset()         { *m = AuthorizeTellerMsg{} }
func (m *AuthorizeTellerMsg) String() string { return proto.CompactTextString(m) }
func (*AuthorizeTellerMsg) ProtoMessage()    {}

type rawAuthorizeTellerMsg AuthorizeTellerMsg

func (m *rawAuthorizeTellerMsg) Reset()         { *m = rawAuthorizeTellerMsg{} }
func (m *rawAuthorizeTellerMsg) String() string { return proto.CompactTextString(m) }
func (*rawAuthorizeTellerMsg) ProtoMessage()    {}

func (m *AuthorizeTellerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawAuthorizeTellerMsg)(m))
}

func (m *AuthorizeTellerMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawAuthorizeTellerMsg)(m))
}

func (AuthorizeTellerMsg) Path() string {
	return "depository/authorize_teller"
}

func (m *AuthorizeTellerMsg) Validate() error {
	if len(m.TellerId) != 8 {
		return errors.Wrap(errors.ErrInput, "teller id must be 8 bytes")
	}
	return nil
}

// DeauthorizeTellerMsg removes a teller from the authorized set.
// Removing a teller that is not in the set is a no-op.
type DeauthorizeTellerMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
}

var _ bondsale.Msg = (*DeauthorizeTellerMsg)(nil)

func (m *DeauthorizeTellerMsg) Reset()         { *m = DeauthorizeTellerMsg{} }
func (m *DeauthorizeTellerMsg) String() string { return proto.CompactTextString(m) }
func (*DeauthorizeTellerMsg) ProtoMessage()    {}

type rawDeauthorizeTellerMsg DeauthorizeTellerMsg

func (m *rawDeauthorizeTellerMsg) Reset()         { *m = rawDeauthorizeTellerMsg{} }
func (m *rawDeauthorizeTellerMsg) String() string { return proto.CompactTextString(m) }
func (*rawDeauthorizeTellerMsg) ProtoMessage()    {}

func (m *DeauthorizeTellerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawDeauthorizeTellerMsg)(m))
}

func (m *DeauthorizeTellerMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawDeauthorizeTellerMsg)(m))
}

func (DeauthorizeTellerMsg) Path() string {
	return "depository/deauthorize_teller"
}

func (m *DeauthorizeTellerMsg) Validate() error {
	if len(m.TellerId) != 8 {
		return errors.Wrap(errors.ErrInput, "teller id must be 8 bytes")
	}
	return nil
}

// UpdateConfigMsg replaces the reward ticker. Governance is unchanged.
type UpdateConfigMsg struct {
	RewardTicker string `protobuf:"bytes,1,opt,name=reward_ticker,json=rewardTicker,proto3" json:"reward_ticker,omitempty"`
}

var _ bondsale.Msg = (*UpdateConfigMsg)(nil)

func (m *UpdateConfigMsg) Reset()         { *m = UpdateConfigMsg{} }
func (m *UpdateConfigMsg) String() string { return proto.CompactTextString(m) }
func (*UpdateConfigMsg) ProtoMessage()    {}

type rawUpdateConfigMsg UpdateConfigMsg

func (m *rawUpdateConfigMsg) Reset()         { *m = rawUpdateConfigMsg{} }
func (m *rawUpdateConfigMsg) String() string { return proto.CompactTextString(m) }
func (*rawUpdateConfigMsg) ProtoMessage()    {}

func (m *UpdateConfigMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawUpdateConfigMsg)(m))
}

func (m *UpdateConfigMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawUpdateConfigMsg)(m))
}

func (UpdateConfigMsg) Path() string {
	return "depository/update_config"
}

func (m *UpdateConfigMsg) Validate() error {
	if !coin.IsCC(m.RewardTicker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %s", m.RewardTicker)
	}
	return nil
}

// ProposeGovernorMsg starts a two phase transfer of the depository
// governance. An empty candidate cancels a pending proposal.
type ProposeGovernorMsg struct {
	Candidate bondsale.Address `protobuf:"bytes,1,opt,name=candidate,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"candidate,omitempty"`
}

var _ bondsale.Msg = (*ProposeGovernorMsg)(nil)

func (m *ProposeGovernorMsg) Reset()         { *m = ProposeGovernorMsg{} }
func (m *ProposeGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*ProposeGovernorMsg) ProtoMessage()    {}

type rawProposeGovernorMsg ProposeGovernorMsg

func (m *rawProposeGovernorMsg) Reset()         { *m = rawProposeGovernorMsg{} }
func (m *rawProposeGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*rawProposeGovernorMsg) ProtoMessage()    {}

func (m *ProposeGovernorMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawProposeGovernorMsg)(m))
}

func (m *ProposeGovernorMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawProposeGovernorMsg)(m))
}

func (ProposeGovernorMsg) Path() string {
	return "depository/propose_governor"
}

func (m *ProposeGovernorMsg) Validate() error {
	if len(m.Candidate) != 0 {
		return errors.AppendField(nil, "Candidate", m.Candidate.Validate())
	}
	return nil
}

// AcceptGovernorMsg completes a pending depository governance transfer.
type AcceptGovernorMsg struct {
}

var _ bondsale.Msg = (*AcceptGovernorMsg)(nil)

func (m *AcceptGovernorMsg) Reset()         { *m = AcceptGovernorMsg{} }
func (m *AcceptGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*AcceptGovernorMsg) ProtoMessage()    {}

type rawAcceptGovernorMsg AcceptGovernorMsg

func (m *rawAcceptGovernorMsg) Reset()         { *m = rawAcceptGovernorMsg{} }
func (m *rawAcceptGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*rawAcceptGovernorMsg) ProtoMessage()    {}

func (m *AcceptGovernorMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawAcceptGovernorMsg)(m))
}

func (m *AcceptGovernorMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawAcceptGovernorMsg)(m))
}

func (AcceptGovernorMsg) Path() string {
	return "depository/accept_governor"
}

func (m *AcceptGovernorMsg) Validate() error {
	return nil
}
