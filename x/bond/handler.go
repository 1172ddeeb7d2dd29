package bond

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
	"github.com/solaris-one/bondsale/x"
	"github.com/solaris-one/bondsale/x/cash"
	"github.com/solaris-one/bondsale/x/lockvault"
)

const (
	depositCost  int64 = 300
	claimCost    int64 = 100
	transferCost int64 = 50
	adminCost    int64 = 0
)

// RewardProvisioner mints the reward asset into a teller's account. It
// must refuse tellers that are not authorized and fail when the minting
// authority is missing.
type RewardProvisioner interface {
	PullReward(db bondsale.KVStore, teller bondsale.Address, amount int64) (coin.Coin, error)
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bondsale.Registry, auth x.Authenticator, bank cash.Controller, vault lockvault.Controller, prov RewardProvisioner) {
	tellers := NewTellerBucket()
	terms := NewTermsBucket()
	bonds := NewBondBucket()

	dep := depositExecutor{
		auth:    auth,
		tellers: tellers,
		terms:   terms,
		bonds:   bonds,
		bank:    bank,
		vault:   vault,
		prov:    prov,
	}
	r.Handle(&DepositMsg{}, DepositHandler{dep})
	r.Handle(&PermitDepositMsg{}, PermitDepositHandler{depositExecutor: dep, signers: NewPermitSignerBucket()})
	r.Handle(&NativeDepositMsg{}, NativeDepositHandler{dep})

	r.Handle(&ClaimPayoutMsg{}, ClaimHandler{auth: auth, tellers: tellers, bonds: bonds, bank: bank})
	r.Handle(&TransferBondMsg{}, TransferHandler{auth: auth, bonds: bonds})
	r.Handle(&ApproveBondMsg{}, ApproveHandler{auth: auth, bonds: bonds})

	admin := adminBase{auth: auth, tellers: tellers}
	r.Handle(&SetTermsMsg{}, SetTermsHandler{adminBase: admin, terms: terms})
	r.Handle(&SetFeesMsg{}, SetFeesHandler{admin})
	r.Handle(&SetAddressesMsg{}, SetAddressesHandler{admin})
	r.Handle(&PauseTellerMsg{}, PauseHandler{admin})
	r.Handle(&ProposeTellerGovernorMsg{}, ProposeGovernorHandler{admin})
	r.Handle(&AcceptTellerGovernorMsg{}, AcceptGovernorHandler{admin})
}

// depositRequest is the normal form every entry point reduces to.
type depositRequest struct {
	tellerID     []byte
	source       bondsale.Address
	recipient    bondsale.Address
	amount       int64
	minAmountOut int64
	stake        bool
}

// depositExecutor is the single internal deposit routine shared by all
// three entry points.
type depositExecutor struct {
	auth    x.Authenticator
	tellers orm.ModelBucket
	terms   orm.ModelBucket
	bonds   orm.ModelBucket
	bank    cash.Controller
	vault   lockvault.Controller
	prov    RewardProvisioner
}

func (h depositExecutor) loadTeller(db bondsale.ReadOnlyKVStore, tellerID []byte) (*Teller, error) {
	var teller Teller
	if err := h.tellers.One(db, tellerID, &teller); err != nil {
		return nil, errors.Wrap(err, "teller")
	}
	return &teller, nil
}

func (h depositExecutor) deposit(ctx bondsale.Context, db bondsale.KVStore, req depositRequest) (*bondsale.DeliverResult, error) {
	teller, err := h.loadTeller(db, req.tellerID)
	if err != nil {
		return nil, err
	}
	if teller.Paused {
		return nil, ErrPaused
	}
	t, err := loadTerms(db, req.tellerID)
	if err != nil {
		return nil, err
	}

	now := bondsale.BlockUnixTime(ctx)
	if now < t.StartTime {
		return nil, errors.Wrapf(errors.ErrState, "sale starts %s", t.StartTime)
	}
	if now > t.EndTime {
		return nil, errors.Wrapf(errors.ErrExpired, "sale ended %s", t.EndTime)
	}

	price, payout, err := quote(t, now, req.amount)
	if err != nil {
		return nil, err
	}
	if payout < req.minAmountOut {
		return nil, errors.Wrapf(ErrSlippage, "payout %d below minimum %d", payout, req.minAmountOut)
	}
	if len(req.recipient) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "recipient")
	}

	// Internal bookkeeping is settled before any funds move.
	if t.CapacityIsPayout {
		t.Capacity -= payout
	} else {
		t.Capacity -= req.amount
	}
	t.NextPrice = adjustedAnchor(price, payout, t.PriceAdjustment)
	t.LastPriceUpdate = now
	if _, err := h.terms.Put(db, req.tellerID, t); err != nil {
		return nil, errors.Wrap(err, "save terms")
	}

	// Principal splits into the protocol fee and the underwriting
	// remainder.
	fee := int64(mulDiv(uint64(req.amount), uint64(teller.FeeBps), 10000))
	if fee > 0 {
		if err := h.bank.MoveCoins(db, req.source, teller.Dao, coin.NewCoin(fee, teller.PrincipalTicker)); err != nil {
			return nil, errors.Wrap(err, "fee transfer")
		}
	}
	if rest := req.amount - fee; rest > 0 {
		if err := h.bank.MoveCoins(db, req.source, teller.UnderwritingPool, coin.NewCoin(rest, teller.PrincipalTicker)); err != nil {
			return nil, errors.Wrap(err, "principal transfer")
		}
	}

	reward, err := h.prov.PullReward(db, teller.Address, payout)
	if err != nil {
		return nil, errors.Wrap(err, "provision reward")
	}

	if req.stake {
		release := now + bondsale.UnixTime(t.VestingTerm)
		lockID, err := h.vault.Lock(db, teller.Address, req.recipient, reward, release)
		if err != nil {
			return nil, errors.Wrap(err, "open lock")
		}
		res := &bondsale.DeliverResult{
			Data: lockID,
			Tags: []common.KVPair{
				{Key: []byte("bond:action"), Value: []byte("stake")},
				{Key: []byte("bond:principal"), Value: amountTag(req.amount)},
				{Key: []byte("bond:payout"), Value: amountTag(payout)},
			},
		}
		return res, nil
	}

	b := &Bond{
		TellerId:      req.tellerID,
		Owner:         req.recipient,
		PrincipalPaid: req.amount,
		Payout:        payout,
		Ticker:        reward.Ticker,
		VestingStart:  now,
		VestingTerm:   t.VestingTerm,
	}
	key, err := h.bonds.Put(db, nil, b)
	if err != nil {
		return nil, errors.Wrap(err, "save bond")
	}
	res := &bondsale.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte("create")},
			{Key: []byte("bond:id"), Value: []byte(bondsale.Address(key).String())},
			{Key: []byte("bond:principal"), Value: amountTag(req.amount)},
			{Key: []byte("bond:payout"), Value: amountTag(payout)},
			{Key: []byte("bond:vesting_start"), Value: amountTag(int64(now))},
			{Key: []byte("bond:vesting_term"), Value: amountTag(int64(t.VestingTerm))},
		},
	}
	return res, nil
}

func amountTag(v int64) []byte {
	return []byte(strconv.FormatInt(v, 10))
}

// DepositHandler is the direct entry point. The depositor defaults to
// the main signer and must have signed when stated explicitly.
type DepositHandler struct {
	depositExecutor
}

var _ bondsale.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	source := msg.Depositor
	if source == nil {
		source = x.MainSigner(ctx, h.auth).Address()
	}
	return h.deposit(ctx, db, depositRequest{
		tellerID:     msg.TellerId,
		source:       source,
		recipient:    msg.Recipient,
		amount:       msg.Amount,
		minAmountOut: msg.MinAmountOut,
		stake:        msg.Stake,
	})
}

func (h DepositHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg.Depositor != nil {
		if !h.auth.HasAddress(ctx, msg.Depositor) {
			return nil, errors.ErrUnauthorized
		}
	}
	return &msg, nil
}

// PermitDepositHandler spends the permit signer's principal. The
// transaction submitter does not need any balance of their own.
type PermitDepositHandler struct {
	depositExecutor
	signers orm.ModelBucket
}

var _ bondsale.Handler = PermitDepositHandler{}

func (h PermitDepositHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: depositCost}, nil
}

func (h PermitDepositHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, source, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Consume the permit before anything else. A failed deposit rolls
	// the counter back together with the rest of the transaction.
	next := &PermitSigner{Sequence: msg.Permit.Sequence + 1}
	if _, err := h.signers.Put(db, source, next); err != nil {
		return nil, errors.Wrap(err, "save permit sequence")
	}
	return h.deposit(ctx, db, depositRequest{
		tellerID:     msg.TellerId,
		source:       source,
		recipient:    msg.Recipient,
		amount:       msg.Amount,
		minAmountOut: msg.MinAmountOut,
		stake:        msg.Stake,
	})
}

func (h PermitDepositHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*PermitDepositMsg, bondsale.Address, error) {
	var msg PermitDepositMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	teller, err := h.loadTeller(db, msg.TellerId)
	if err != nil {
		return nil, nil, err
	}
	if !teller.SupportsPermit {
		return nil, nil, ErrNoPermit
	}
	if bondsale.IsExpired(ctx, msg.Permit.Deadline) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "permit deadline %s", msg.Permit.Deadline)
	}
	if !msg.Permit.PublicKey.Verify(msg.SigningBytes(), msg.Permit.Signature) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "invalid permit signature")
	}

	source := msg.Permit.PublicKey.Address()
	var signer PermitSigner
	switch err := h.signers.One(db, source, &signer); {
	case err == nil, errors.ErrNotFound.Is(err):
		// A key never seen before starts at sequence zero.
	default:
		return nil, nil, errors.Wrap(err, "permit signer")
	}
	if msg.Permit.Sequence != signer.Sequence {
		return nil, nil, errors.Wrapf(ErrPermitSequence, "want %d, got %d", signer.Sequence, msg.Permit.Sequence)
	}
	return &msg, source, nil
}

// NativeDepositHandler is the bare transfer fallback. The signer
// deposits for themselves with default slippage and no staking.
type NativeDepositHandler struct {
	depositExecutor
}

var _ bondsale.Handler = NativeDepositHandler{}

func (h NativeDepositHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	var msg NativeDepositMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &bondsale.CheckResult{GasAllocated: depositCost}, nil
}

func (h NativeDepositHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	var msg NativeDepositMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth).Address()
	return h.deposit(ctx, db, depositRequest{
		tellerID:  msg.TellerId,
		source:    signer,
		recipient: signer,
		amount:    msg.Amount,
	})
}

// ClaimHandler releases the vested part of a bond. The bond is deleted
// by the claim that exhausts it.
type ClaimHandler struct {
	auth    x.Authenticator
	tellers orm.ModelBucket
	bonds   orm.ModelBucket
	bank    cash.Controller
}

var _ bondsale.Handler = ClaimHandler{}

func (h ClaimHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: claimCost}, nil
}

func (h ClaimHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, b, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	var teller Teller
	if err := h.tellers.One(db, b.TellerId, &teller); err != nil {
		return nil, errors.Wrap(err, "teller")
	}

	now := bondsale.BlockUnixTime(ctx)
	vested := vestedAmount(b, now)
	claimable := vested - b.Claimed
	owner := b.Owner

	// Bookkeeping first, funds after.
	b.Claimed += claimable
	done := vested == b.Payout
	if done {
		if err := h.bonds.Delete(db, msg.BondId); err != nil {
			return nil, errors.Wrap(err, "delete bond")
		}
	} else {
		if _, err := h.bonds.Put(db, msg.BondId, b); err != nil {
			return nil, errors.Wrap(err, "save bond")
		}
	}

	if claimable > 0 {
		if err := h.bank.MoveCoins(db, teller.Address, owner, coin.NewCoin(claimable, b.Ticker)); err != nil {
			return nil, errors.Wrap(err, "payout transfer")
		}
	}

	action := "claim"
	if done {
		action = "redeem"
	}
	res := &bondsale.DeliverResult{
		Data: msg.BondId,
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte(action)},
			{Key: []byte("bond:id"), Value: []byte(bondsale.Address(msg.BondId).String())},
			{Key: []byte("bond:amount"), Value: amountTag(claimable)},
		},
	}
	return res, nil
}

func (h ClaimHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*ClaimPayoutMsg, *Bond, error) {
	var msg ClaimPayoutMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var b Bond
	if err := h.bonds.One(db, msg.BondId, &b); err != nil {
		return nil, nil, errors.Wrap(err, "bond")
	}
	if !h.auth.HasAddress(ctx, b.Owner) && !h.auth.HasAddress(ctx, b.Approved) {
		return nil, nil, errors.ErrUnauthorized
	}
	return &msg, &b, nil
}

// TransferHandler moves a bond to a new owner. The vesting clock keeps
// running and the approval slot is cleared.
type TransferHandler struct {
	auth  x.Authenticator
	bonds orm.ModelBucket
}

var _ bondsale.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, b, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	b.Owner = msg.NewOwner
	b.Approved = nil
	if _, err := h.bonds.Put(db, msg.BondId, b); err != nil {
		return nil, errors.Wrap(err, "save bond")
	}
	res := &bondsale.DeliverResult{
		Data: msg.BondId,
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte("transfer")},
			{Key: []byte("bond:id"), Value: []byte(bondsale.Address(msg.BondId).String())},
		},
	}
	return res, nil
}

func (h TransferHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*TransferBondMsg, *Bond, error) {
	var msg TransferBondMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var b Bond
	if err := h.bonds.One(db, msg.BondId, &b); err != nil {
		return nil, nil, errors.Wrap(err, "bond")
	}
	if !h.auth.HasAddress(ctx, b.Owner) && !h.auth.HasAddress(ctx, b.Approved) {
		return nil, nil, errors.ErrUnauthorized
	}
	return &msg, &b, nil
}

// ApproveHandler names or clears the delegate of a bond. Owner only.
type ApproveHandler struct {
	auth  x.Authenticator
	bonds orm.ModelBucket
}

var _ bondsale.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: transferCost}, nil
}

func (h ApproveHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, b, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	b.Approved = msg.Delegate
	if _, err := h.bonds.Put(db, msg.BondId, b); err != nil {
		return nil, errors.Wrap(err, "save bond")
	}
	return &bondsale.DeliverResult{Data: msg.BondId}, nil
}

func (h ApproveHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*ApproveBondMsg, *Bond, error) {
	var msg ApproveBondMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var b Bond
	if err := h.bonds.One(db, msg.BondId, &b); err != nil {
		return nil, nil, errors.Wrap(err, "bond")
	}
	if !h.auth.HasAddress(ctx, b.Owner) {
		return nil, nil, errors.ErrUnauthorized
	}
	return &msg, &b, nil
}

// adminBase carries what every administrative handler needs: loading a
// teller and checking the governor signed.
type adminBase struct {
	auth    x.Authenticator
	tellers orm.ModelBucket
}

func (a adminBase) loadTeller(db bondsale.ReadOnlyKVStore, tellerID []byte) (*Teller, error) {
	var teller Teller
	if err := a.tellers.One(db, tellerID, &teller); err != nil {
		return nil, errors.Wrap(err, "teller")
	}
	return &teller, nil
}

func (a adminBase) authTeller(ctx bondsale.Context, db bondsale.ReadOnlyKVStore, tellerID []byte) (*Teller, error) {
	teller, err := a.loadTeller(db, tellerID)
	if err != nil {
		return nil, err
	}
	if err := teller.Owners.Authorize(ctx, a.auth); err != nil {
		return nil, err
	}
	return teller, nil
}

// SetTermsHandler posts a fresh set of sale terms, resetting the decay
// anchor to the start price at the current block time.
type SetTermsHandler struct {
	adminBase
	terms orm.ModelBucket
}

var _ bondsale.Handler = SetTermsHandler{}

func (h SetTermsHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetTermsHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	t := *msg.Terms
	t.NextPrice = t.StartPrice
	t.LastPriceUpdate = bondsale.BlockUnixTime(ctx)
	if _, err := h.terms.Put(db, msg.TellerId, &t); err != nil {
		return nil, errors.Wrap(err, "save terms")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte("set_terms")},
		},
	}
	return res, nil
}

func (h SetTermsHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*SetTermsMsg, error) {
	var msg SetTermsMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.authTeller(ctx, db, msg.TellerId); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetFeesHandler updates the protocol fee of a teller.
type SetFeesHandler struct {
	adminBase
}

var _ bondsale.Handler = SetFeesHandler{}

func (h SetFeesHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetFeesHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, teller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	teller.FeeBps = msg.FeeBps
	if _, err := h.tellers.Put(db, msg.TellerId, teller); err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte("set_fees")},
		},
	}
	return res, nil
}

func (h SetFeesHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*SetFeesMsg, *Teller, error) {
	var msg SetFeesMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	teller, err := h.authTeller(ctx, db, msg.TellerId)
	if err != nil {
		return nil, nil, err
	}
	return &msg, teller, nil
}

// SetAddressesHandler rewires the fee destinations of a teller.
type SetAddressesHandler struct {
	adminBase
}

var _ bondsale.Handler = SetAddressesHandler{}

func (h SetAddressesHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetAddressesHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, teller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	teller.Dao = msg.Dao
	teller.UnderwritingPool = msg.UnderwritingPool
	if _, err := h.tellers.Put(db, msg.TellerId, teller); err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("bond:action"), Value: []byte("set_addresses")},
		},
	}
	return res, nil
}

func (h SetAddressesHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*SetAddressesMsg, *Teller, error) {
	var msg SetAddressesMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	teller, err := h.authTeller(ctx, db, msg.TellerId)
	if err != nil {
		return nil, nil, err
	}
	return &msg, teller, nil
}

// PauseHandler flips the deposit gate of a teller.
type PauseHandler struct {
	adminBase
}

var _ bondsale.Handler = PauseHandler{}

func (h PauseHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h PauseHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, teller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	teller.Paused = msg.Paused
	if _, err := h.tellers.Put(db, msg.TellerId, teller); err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	return &bondsale.DeliverResult{}, nil
}

func (h PauseHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*PauseTellerMsg, *Teller, error) {
	var msg PauseTellerMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	teller, err := h.authTeller(ctx, db, msg.TellerId)
	if err != nil {
		return nil, nil, err
	}
	return &msg, teller, nil
}

// ProposeGovernorHandler starts a two phase governance transfer of a
// teller.
type ProposeGovernorHandler struct {
	adminBase
}

var _ bondsale.Handler = ProposeGovernorHandler{}

func (h ProposeGovernorHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	var msg ProposeTellerGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h ProposeGovernorHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	var msg ProposeTellerGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	teller, err := h.loadTeller(db, msg.TellerId)
	if err != nil {
		return nil, err
	}
	if err := teller.Owners.Propose(ctx, h.auth, msg.Candidate); err != nil {
		return nil, err
	}
	if _, err := h.tellers.Put(db, msg.TellerId, teller); err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	return &bondsale.DeliverResult{}, nil
}

// AcceptGovernorHandler completes a pending governance transfer.
type AcceptGovernorHandler struct {
	adminBase
}

var _ bondsale.Handler = AcceptGovernorHandler{}

func (h AcceptGovernorHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	var msg AcceptTellerGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h AcceptGovernorHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	var msg AcceptTellerGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	teller, err := h.loadTeller(db, msg.TellerId)
	if err != nil {
		return nil, err
	}
	if err := teller.Owners.Accept(ctx, h.auth); err != nil {
		return nil, err
	}
	if _, err := h.tellers.Put(db, msg.TellerId, teller); err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	return &bondsale.DeliverResult{}, nil
}
