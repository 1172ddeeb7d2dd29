package bond

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/crypto"
	"github.com/solaris-one/bondsale/errors"
)

// DepositMsg buys a bond from a teller. The depositor pays the amount
// of principal and the recipient becomes the bond owner, or the lock
// owner when stake is set.
type DepositMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	// Depositor pays the principal. Defaults to the main signer.
	Depositor bondsale.Address `protobuf:"bytes,2,opt,name=depositor,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"depositor,omitempty"`
	// Recipient owns the resulting bond or lock.
	Recipient bondsale.Address `protobuf:"bytes,3,opt,name=recipient,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"recipient,omitempty"`
	// Amount of principal paid.
	Amount int64 `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// MinAmountOut rejects the deposit when the quoted payout falls
	// below it.
	MinAmountOut int64 `protobuf:"varint,5,opt,name=min_amount_out,json=minAmountOut,proto3" json:"min_amount_out,omitempty"`
	// Stake forwards the payout straight into the lock vault instead
	// of minting a bond.
	Stake bool `protobuf:"varint,6,opt,name=stake,proto3" json:"stake,omitempty"`
}

var _ bondsale.Msg = (*DepositMsg)(nil)

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

type rawDepositMsg DepositMsg

func (m *rawDepositMsg) Reset()         { *m = rawDepositMsg{} }
func (m *rawDepositMsg) String() string { return proto.CompactTextString(m) }
func (*rawDepositMsg) ProtoMessage()    {}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawDepositMsg)(m))
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawDepositMsg)(m))
}

func (DepositMsg) Path() string {
	return "bond/deposit"
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	if len(m.Depositor) != 0 {
		errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	}
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount <= 0 {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if m.MinAmountOut < 0 {
		errs = errors.AppendField(errs, "MinAmountOut", errors.Wrap(errors.ErrAmount, "negative"))
	}
	return errs
}

// Permit is an off band authorization to spend a depositor's principal.
// The key owner signed the deposit parameters, so the transaction
// submitter does not need to be the payer.
type Permit struct {
	PublicKey *crypto.PublicKey `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	// Deadline expires the permit. Delivery at or after this moment is
	// rejected.
	Deadline  bondsale.UnixTime `protobuf:"varint,2,opt,name=deadline,proto3,casttype=github.com/solaris-one/bondsale.UnixTime" json:"deadline,omitempty"`
	Signature []byte            `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	// Sequence is the signer's replay counter. It must equal the
	// stored counter of the signing key, starting at zero, and using
	// the permit increments it.
	Sequence int64 `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ proto.Message = (*Permit)(nil)

func (p *Permit) Reset()         { *p = Permit{} }
func (p *Permit) String() string { return proto.CompactTextString(p) }
func (*Permit) ProtoMessage()    {}

type rawPermit Permit

func (p *rawPermit) Reset()         { *p = rawPermit{} }
func (p *rawPermit) String() string { return proto.CompactTextString(p) }
func (*rawPermit) ProtoMessage()    {}

func (p *Permit) Marshal() ([]byte, error) {
	return proto.Marshal((*rawPermit)(p))
}

func (p *Permit) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawPermit)(p))
}

func (p *Permit) Validate() error {
	if p == nil {
		return errors.Wrap(errors.ErrEmpty, "permit")
	}
	var errs error
	if p.PublicKey == nil {
		errs = errors.AppendField(errs, "PublicKey", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "PublicKey", p.PublicKey.Validate())
	}
	errs = errors.AppendField(errs, "Deadline", p.Deadline.Validate())
	if p.Deadline == 0 {
		errs = errors.AppendField(errs, "Deadline", errors.ErrEmpty)
	}
	if len(p.Signature) == 0 {
		errs = errors.AppendField(errs, "Signature", errors.ErrEmpty)
	}
	if p.Sequence < 0 {
		errs = errors.AppendField(errs, "Sequence", errors.Wrap(errors.ErrInput, "negative"))
	}
	return errs
}

// PermitDepositMsg is a deposit paid from the permit signer's account.
// Valid only on tellers whose principal asset supports permits.
type PermitDepositMsg struct {
	TellerId     []byte           `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Recipient    bondsale.Address `protobuf:"bytes,2,opt,name=recipient,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"recipient,omitempty"`
	Amount       int64            `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	MinAmountOut int64            `protobuf:"varint,4,opt,name=min_amount_out,json=minAmountOut,proto3" json:"min_amount_out,omitempty"`
	Stake        bool             `protobuf:"varint,5,opt,name=stake,proto3" json:"stake,omitempty"`
	Permit       *Permit          `protobuf:"bytes,6,opt,name=permit,proto3" json:"permit,omitempty"`
}

var _ bondsale.Msg = (*PermitDepositMsg)(nil)

func (m *PermitDepositMsg) Reset()         { *m = PermitDepositMsg{} }
func (m *PermitDepositMsg) String() string { return proto.CompactTextString(m) }
func (*PermitDepositMsg) ProtoMessage()    {}

type rawPermitDepositMsg PermitDepositMsg

func (m *rawPermitDepositMsg) Reset()         { *m = rawPermitDepositMsg{} }
func (m *rawPermitDepositMsg) String() string { return proto.CompactTextString(m) }
func (*rawPermitDepositMsg) ProtoMessage()    {}

func (m *PermitDepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawPermitDepositMsg)(m))
}

func (m *PermitDepositMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawPermitDepositMsg)(m))
}

func (PermitDepositMsg) Path() string {
	return "bond/deposit_permit"
}

func (m *PermitDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount <= 0 {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	if m.MinAmountOut < 0 {
		errs = errors.AppendField(errs, "MinAmountOut", errors.Wrap(errors.ErrAmount, "negative"))
	}
	if m.Permit == nil {
		errs = errors.AppendField(errs, "Permit", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Permit", m.Permit.Validate())
	}
	return errs
}

// SigningBytes returns the canonical byte string the permit signature
// must cover. It binds the permit to every deposit parameter, the
// deadline and the signer's replay counter, so a relayer cannot alter
// any of them and a used permit cannot be delivered again.
func (m *PermitDepositMsg) SigningBytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, []byte("bond/permit|")...)
	out = append(out, m.TellerId...)
	out = appendUint64(out, uint64(m.Amount))
	out = append(out, m.Recipient...)
	out = appendUint64(out, uint64(m.MinAmountOut))
	out = appendUint64(out, uint64(m.Permit.Deadline))
	out = appendUint64(out, uint64(m.Permit.Sequence))
	if m.Stake {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	return out
}

func appendUint64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}

// NativeDepositMsg is the fallback entry point for a bare transfer of
// the principal asset. The signer deposits for themselves with no
// slippage protection and no staking.
type NativeDepositMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Amount   int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ bondsale.Msg = (*NativeDepositMsg)(nil)

func (m *NativeDepositMsg) Reset()         { *m = NativeDepositMsg{} }
func (m *NativeDepositMsg) String() string { return proto.CompactTextString(m) }
func (*NativeDepositMsg) ProtoMessage()    {}

type rawNativeDepositMsg NativeDepositMsg

func (m *rawNativeDepositMsg) Reset()         { *m = rawNativeDepositMsg{} }
func (m *rawNativeDepositMsg) String() string { return proto.CompactTextString(m) }
func (*rawNativeDepositMsg) ProtoMessage()    {}

func (m *NativeDepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawNativeDepositMsg)(m))
}

func (m *NativeDepositMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawNativeDepositMsg)(m))
}

func (NativeDepositMsg) Path() string {
	return "bond/deposit_native"
}

func (m *NativeDepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	if m.Amount <= 0 {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
	}
	return errs
}

// ClaimPayoutMsg releases the vested part of a bond to its owner.
type ClaimPayoutMsg struct {
	BondId []byte `protobuf:"bytes,1,opt,name=bond_id,json=bondId,proto3" json:"bond_id,omitempty"`
}

var _ bondsale.Msg = (*ClaimPayoutMsg)(nil)

func (m *ClaimPayoutMsg) Reset()         { *m = ClaimPayoutMsg{} }
func (m *ClaimPayoutMsg) String() string { return proto.CompactTextString(m) }
func (*ClaimPayoutMsg) ProtoMessage()    {}

type rawClaimPayoutMsg ClaimPayoutMsg

func (m *rawClaimPayoutMsg) Reset()         { *m = rawClaimPayoutMsg{} }
func (m *rawClaimPayoutMsg) String() string { return proto.CompactTextString(m) }
func (*rawClaimPayoutMsg) ProtoMessage()    {}

func (m *ClaimPayoutMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawClaimPayoutMsg)(m))
}

func (m *ClaimPayoutMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawClaimPayoutMsg)(m))
}

func (ClaimPayoutMsg) Path() string {
	return "bond/claim"
}

func (m *ClaimPayoutMsg) Validate() error {
	return errors.AppendField(nil, "BondId", validateID(m.BondId))
}

// TransferBondMsg hands a bond to a new owner. The vesting clock does
// not reset and any approved delegate is cleared.
type TransferBondMsg struct {
	BondId   []byte           `protobuf:"bytes,1,opt,name=bond_id,json=bondId,proto3" json:"bond_id,omitempty"`
	NewOwner bondsale.Address `protobuf:"bytes,2,opt,name=new_owner,json=newOwner,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"new_owner,omitempty"`
}

var _ bondsale.Msg = (*TransferBondMsg)(nil)

func (m *TransferBondMsg) Reset()         { *m = TransferBondMsg{} }
func (m *TransferBondMsg) String() string { return proto.CompactTextString(m) }
func (*TransferBondMsg) ProtoMessage()    {}

type rawTransferBondMsg TransferBondMsg

func (m *rawTransferBondMsg) Reset()         { *m = rawTransferBondMsg{} }
func (m *rawTransferBondMsg) String() string { return proto.CompactTextString(m) }
func (*rawTransferBondMsg) ProtoMessage()    {}

func (m *TransferBondMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawTransferBondMsg)(m))
}

func (m *TransferBondMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawTransferBondMsg)(m))
}

func (TransferBondMsg) Path() string {
	return "bond/transfer"
}

func (m *TransferBondMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "BondId", validateID(m.BondId))
	errs = errors.AppendField(errs, "NewOwner", m.NewOwner.Validate())
	return errs
}

// ApproveBondMsg names a delegate allowed to claim and transfer the
// bond. An empty delegate clears the approval.
type ApproveBondMsg struct {
	BondId   []byte           `protobuf:"bytes,1,opt,name=bond_id,json=bondId,proto3" json:"bond_id,omitempty"`
	Delegate bondsale.Address `protobuf:"bytes,2,opt,name=delegate,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"delegate,omitempty"`
}

var _ bondsale.Msg = (*ApproveBondMsg)(nil)

func (m *ApproveBondMsg) Reset()         { *m = ApproveBondMsg{} }
func (m *ApproveBondMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveBondMsg) ProtoMessage()    {}

type rawApproveBondMsg ApproveBondMsg

func (m *rawApproveBondMsg) Reset()         { *m = rawApproveBondMsg{} }
func (m *rawApproveBondMsg) String() string { return proto.CompactTextString(m) }
func (*rawApproveBondMsg) ProtoMessage()    {}

func (m *ApproveBondMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawApproveBondMsg)(m))
}

func (m *ApproveBondMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawApproveBondMsg)(m))
}

func (ApproveBondMsg) Path() string {
	return "bond/approve"
}

func (m *ApproveBondMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "BondId", validateID(m.BondId))
	if len(m.Delegate) != 0 {
		errs = errors.AppendField(errs, "Delegate", m.Delegate.Validate())
	}
	return errs
}

// SetTermsMsg replaces the active sale terms of a teller. Only the
// teller governor may post terms. Anchor fields of the terms are
// overwritten by the handler.
type SetTermsMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Terms    *Terms `protobuf:"bytes,2,opt,name=terms,proto3" json:"terms,omitempty"`
}

var _ bondsale.Msg = (*SetTermsMsg)(nil)

func (m *SetTermsMsg) Reset()         { *m = SetTermsMsg{} }
func (m *SetTermsMsg) String() string { return proto.CompactTextString(m) }
func (*SetTermsMsg) ProtoMessage()    {}

type rawSetTermsMsg SetTermsMsg

func (m *rawSetTermsMsg) Reset()         { *m = rawSetTermsMsg{} }
func (m *rawSetTermsMsg) String() string { return proto.CompactTextString(m) }
func (*rawSetTermsMsg) ProtoMessage()    {}

func (m *SetTermsMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawSetTermsMsg)(m))
}

func (m *SetTermsMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawSetTermsMsg)(m))
}

func (SetTermsMsg) Path() string {
	return "bond/set_terms"
}

func (m *SetTermsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	if m.Terms == nil {
		errs = errors.AppendField(errs, "Terms", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Terms", m.Terms.Validate())
		if m.Terms.Capacity <= 0 {
			errs = errors.AppendField(errs, "Capacity", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

// SetFeesMsg updates the protocol fee of a teller.
type SetFeesMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	FeeBps   uint32 `protobuf:"varint,2,opt,name=fee_bps,json=feeBps,proto3" json:"fee_bps,omitempty"`
}

var _ bondsale.Msg = (*SetFeesMsg)(nil)

func (m *SetFeesMsg) Reset()         { *m = SetFeesMsg{} }
func (m *SetFeesMsg) String() string { return proto.CompactTextString(m) }
func (*SetFeesMsg) ProtoMessage()    {}

type rawSetFeesMsg SetFeesMsg

func (m *rawSetFeesMsg) Reset()         { *m = rawSetFeesMsg{} }
func (m *rawSetFeesMsg) String() string { return proto.CompactTextString(m) }
func (*rawSetFeesMsg) ProtoMessage()    {}

func (m *SetFeesMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawSetFeesMsg)(m))
}

func (m *SetFeesMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawSetFeesMsg)(m))
}

func (SetFeesMsg) Path() string {
	return "bond/set_fees"
}

func (m *SetFeesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	if m.FeeBps > 10000 {
		errs = errors.AppendField(errs, "FeeBps", errors.Wrap(errors.ErrInput, "above 10000 basis points"))
	}
	return errs
}

// SetAddressesMsg rewires the fee destinations of a teller.
type SetAddressesMsg struct {
	TellerId         []byte           `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Dao              bondsale.Address `protobuf:"bytes,2,opt,name=dao,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"dao,omitempty"`
	UnderwritingPool bondsale.Address `protobuf:"bytes,3,opt,name=underwriting_pool,json=underwritingPool,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"underwriting_pool,omitempty"`
}

var _ bondsale.Msg = (*SetAddressesMsg)(nil)

func (m *SetAddressesMsg) Reset()         { *m = SetAddressesMsg{} }
func (m *SetAddressesMsg) String() string { return proto.CompactTextString(m) }
func (*SetAddressesMsg) ProtoMessage()    {}

type rawSetAddressesMsg SetAddressesMsg

func (m *rawSetAddressesMsg) Reset()         { *m = rawSetAddressesMsg{} }
func (m *rawSetAddressesMsg) String() string { return proto.CompactTextString(m) }
func (*rawSetAddressesMsg) ProtoMessage()    {}

func (m *SetAddressesMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawSetAddressesMsg)(m))
}

func (m *SetAddressesMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawSetAddressesMsg)(m))
}

func (SetAddressesMsg) Path() string {
	return "bond/set_addresses"
}

func (m *SetAddressesMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	errs = errors.AppendField(errs, "Dao", m.Dao.Validate())
	errs = errors.AppendField(errs, "UnderwritingPool", m.UnderwritingPool.Validate())
	return errs
}

// PauseTellerMsg stops or resumes deposits. Claims are unaffected.
type PauseTellerMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Paused   bool   `protobuf:"varint,2,opt,name=paused,proto3" json:"paused,omitempty"`
}

var _ bondsale.Msg = (*PauseTellerMsg)(nil)

func (m *PauseTellerMsg) Reset()         { *m = PauseTellerMsg{} }
func (m *PauseTellerMsg) String() string { return proto.CompactTextString(m) }
func (*PauseTellerMsg) ProtoMessage()    {}

type rawPauseTellerMsg PauseTellerMsg

func (m *rawPauseTellerMsg) Reset()         { *m = rawPauseTellerMsg{} }
func (m *rawPauseTellerMsg) String() string { return proto.CompactTextString(m) }
func (*rawPauseTellerMsg) ProtoMessage()    {}

func (m *PauseTellerMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawPauseTellerMsg)(m))
}

func (m *PauseTellerMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawPauseTellerMsg)(m))
}

func (PauseTellerMsg) Path() string {
	return "bond/pause"
}

func (m *PauseTellerMsg) Validate() error {
	return errors.AppendField(nil, "TellerId", validateID(m.TellerId))
}

// ProposeTellerGovernorMsg starts a two phase governance transfer of a
// teller. An empty candidate cancels a pending proposal.
type ProposeTellerGovernorMsg struct {
	TellerId  []byte           `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
	Candidate bondsale.Address `protobuf:"bytes,2,opt,name=candidate,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"candidate,omitempty"`
}

var _ bondsale.Msg = (*ProposeTellerGovernorMsg)(nil)

func (m *ProposeTellerGovernorMsg) Reset()         { *m = ProposeTellerGovernorMsg{} }
func (m *ProposeTellerGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*ProposeTellerGovernorMsg) ProtoMessage()    {}

type rawProposeTellerGovernorMsg ProposeTellerGovernorMsg

func (m *rawProposeTellerGovernorMsg) Reset()         { *m = rawProposeTellerGovernorMsg{} }
func (m *rawProposeTellerGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*rawProposeTellerGovernorMsg) ProtoMessage()    {}

func (m *ProposeTellerGovernorMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawProposeTellerGovernorMsg)(m))
}

func (m *ProposeTellerGovernorMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawProposeTellerGovernorMsg)(m))
}

func (ProposeTellerGovernorMsg) Path() string {
	return "bond/propose_governor"
}

func (m *ProposeTellerGovernorMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TellerId", validateID(m.TellerId))
	if len(m.Candidate) != 0 {
		errs = errors.AppendField(errs, "Candidate", m.Candidate.Validate())
	}
	return errs
}

// AcceptTellerGovernorMsg completes a pending governance transfer. The
// proposed candidate must sign.
type AcceptTellerGovernorMsg struct {
	TellerId []byte `protobuf:"bytes,1,opt,name=teller_id,json=tellerId,proto3" json:"teller_id,omitempty"`
}

var _ bondsale.Msg = (*AcceptTellerGovernorMsg)(nil)

func (m *AcceptTellerGovernorMsg) Reset()         { *m = AcceptTellerGovernorMsg{} }
func (m *AcceptTellerGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*AcceptTellerGovernorMsg) ProtoMessage()    {}

type rawAcceptTellerGovernorMsg AcceptTellerGovernorMsg

func (m *rawAcceptTellerGovernorMsg) Reset()         { *m = rawAcceptTellerGovernorMsg{} }
func (m *rawAcceptTellerGovernorMsg) String() string { return proto.CompactTextString(m) }
func (*rawAcceptTellerGovernorMsg) ProtoMessage()    {}

func (m *AcceptTellerGovernorMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*rawAcceptTellerGovernorMsg)(m))
}

func (m *AcceptTellerGovernorMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawAcceptTellerGovernorMsg)(m))
}

func (AcceptTellerGovernorMsg) Path() string {
	return "bond/accept_governor"
}

func (m *AcceptTellerGovernorMsg) Validate() error {
	return errors.AppendField(nil, "TellerId", validateID(m.TellerId))
}

func validateID(id []byte) error {
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "must be 8 bytes")
	}
	return nil
}
