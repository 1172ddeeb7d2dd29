package bond_test

import (
	"context"
	"testing"
	"time"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/app"
	"github.com/solaris-one/bondsale/bondsaletest"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/crypto"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/store"
	"github.com/solaris-one/bondsale/x/bond"
	"github.com/solaris-one/bondsale/x/cash"
	"github.com/solaris-one/bondsale/x/depository"
	"github.com/solaris-one/bondsale/x/govern"
	"github.com/solaris-one/bondsale/x/lockvault"
)

// engine wires the full message surface together the way the
// application does: one router, one authenticator, a shared ledger.
type engine struct {
	db   bondsale.KVStore
	rt   *app.Router
	auth *bondsaletest.CtxAuth
	bank cash.BaseController

	depGov    bondsale.Condition
	tellerGov bondsale.Condition
	faucet    bondsale.Condition

	tellerID   []byte
	tellerAddr bondsale.Address
	dao        bondsale.Address
	pool       bondsale.Address
}

func newEngine(t testing.TB) *engine {
	t.Helper()

	e := &engine{
		db:        store.MemStore(),
		rt:        app.NewRouter(),
		auth:      &bondsaletest.CtxAuth{Key: "auth"},
		bank:      cash.NewController(),
		depGov:    bondsaletest.NewCondition(),
		tellerGov: bondsaletest.NewCondition(),
		faucet:    bondsaletest.NewCondition(),
		dao:       bondsaletest.NewCondition().Address(),
		pool:      bondsaletest.NewCondition().Address(),
	}

	conf := depository.Configuration{
		Owners:       &govern.Ownership{Governor: e.depGov.Address()},
		RewardTicker: "SOL",
	}
	assert.Nil(t, gconf.Save(e.db, "depository", &conf))
	assert.Nil(t, e.bank.SetMinter(e.db, "SOL", depository.Address()))
	assert.Nil(t, e.bank.SetMinter(e.db, "DAI", e.faucet.Address()))

	vault := lockvault.NewController(e.bank)
	prov := depository.NewController(e.bank)
	bond.RegisterRoutes(e.rt, e.auth, e.bank, vault, prov)
	depository.RegisterRoutes(e.rt, e.auth)
	lockvault.RegisterRoutes(e.rt, e.auth, e.bank)

	res := e.deliverAt(t, 50, e.depGov, &depository.CreateTellerMsg{
		Salt:             []byte("dai-v1"),
		Name:             "DAI Teller",
		PrincipalTicker:  "DAI",
		SupportsPermit:   true,
		Governor:         e.tellerGov.Address(),
		Dao:              e.dao,
		UnderwritingPool: e.pool,
		FeeBps:           100,
	})
	e.tellerID = res.Data
	e.tellerAddr = bond.TellerCondition([]byte("dai-v1")).Address()
	return e
}

// openSale posts a flat price sale: two principal per reward unit, no
// decay movement within the tests that use it, no anchor bump.
func (e *engine) openSale(t testing.TB) {
	t.Helper()
	e.deliverAt(t, 100, e.tellerGov, &bond.SetTermsMsg{
		TellerId: e.tellerID,
		Terms: &bond.Terms{
			StartPrice:      2 * bond.PriceScale,
			MinimumPrice:    2 * bond.PriceScale,
			PriceAdjustment: &bondsale.Fraction{Numerator: 0, Denominator: 1},
			MaxPayout:       5000,
			Capacity:        10000,
			StartTime:       100,
			EndTime:         1000,
			VestingTerm:     100,
			HalfLife:        100,
		},
	})
}

func (e *engine) fund(t testing.TB, dest bondsale.Address, amount int64) {
	t.Helper()
	assert.Nil(t, e.bank.IssueCoins(e.db, e.faucet.Address(), dest, coin.NewCoin(amount, "DAI")))
}

func (e *engine) balance(t testing.TB, account bondsale.Address, ticker string) int64 {
	t.Helper()
	c, err := e.bank.Balance(e.db, account, ticker)
	assert.Nil(t, err)
	return c.Amount
}

func (e *engine) ctxAt(now bondsale.UnixTime, signers ...bondsale.Condition) bondsale.Context {
	ctx := bondsale.WithBlockTime(context.Background(), time.Unix(int64(now), 0))
	return e.auth.SetConditions(ctx, signers...)
}

func (e *engine) deliver(now bondsale.UnixTime, signer bondsale.Condition, msg bondsale.Msg) (*bondsale.DeliverResult, error) {
	return e.rt.Deliver(e.ctxAt(now, signer), e.db, &bondsaletest.Tx{Msg: msg})
}

func (e *engine) deliverAt(t testing.TB, now bondsale.UnixTime, signer bondsale.Condition, msg bondsale.Msg) *bondsale.DeliverResult {
	t.Helper()
	res, err := e.deliver(now, signer, msg)
	assert.Nil(t, err)
	return res
}

func (e *engine) terms(t testing.TB) *bond.Terms {
	t.Helper()
	var tr bond.Terms
	assert.Nil(t, bond.NewTermsBucket().One(e.db, e.tellerID, &tr))
	return &tr
}

func TestDepositCreatesBond(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:     e.tellerID,
		Recipient:    alice.Address(),
		Amount:       3000,
		MinAmountOut: 1500,
	})

	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, res.Data, &b))
	assert.Equal(t, alice.Address(), b.Owner)
	assert.Equal(t, int64(3000), b.PrincipalPaid)
	assert.Equal(t, int64(1500), b.Payout)
	assert.Equal(t, "SOL", b.Ticker)
	assert.Equal(t, int64(0), b.Claimed)
	assert.Equal(t, bondsale.UnixTime(100), b.VestingStart)
	assert.Equal(t, bondsale.UnixDuration(100), b.VestingTerm)

	// One percent of the principal lands in the dao, the rest in the
	// underwriting pool, and the payout sits escrowed at the teller.
	assert.Equal(t, int64(0), e.balance(t, alice.Address(), "DAI"))
	assert.Equal(t, int64(30), e.balance(t, e.dao, "DAI"))
	assert.Equal(t, int64(2970), e.balance(t, e.pool, "DAI"))
	assert.Equal(t, int64(1500), e.balance(t, e.tellerAddr, "SOL"))

	assert.Equal(t, int64(7000), e.terms(t).Capacity)
}

func TestDepositNeedsTerms(t *testing.T) {
	e := newEngine(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 100)

	_, err := e.deliver(100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    100,
	})
	assert.IsErr(t, bond.ErrTermsNotSet, err)
}

func TestDepositWindow(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 100)

	msg := &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    100,
	}
	_, err := e.deliver(99, alice, msg)
	assert.IsErr(t, errors.ErrState, err)

	_, err = e.deliver(1001, alice, msg)
	assert.IsErr(t, errors.ErrExpired, err)

	_, err = e.deliver(1000, alice, msg)
	assert.Nil(t, err)
}

func TestSlippageGuard(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	_, err := e.deliver(100, alice, &bond.DepositMsg{
		TellerId:     e.tellerID,
		Recipient:    alice.Address(),
		Amount:       3000,
		MinAmountOut: 1501,
	})
	assert.IsErr(t, bond.ErrSlippage, err)

	// A rejected deposit leaves no trace.
	assert.Equal(t, int64(3000), e.balance(t, alice.Address(), "DAI"))
	assert.Equal(t, int64(10000), e.terms(t).Capacity)
	var b bond.Bond
	err = bond.NewBondBucket().One(e.db, bondsaletest.SequenceID(1), &b)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCapacityRejectsWholeDeposit(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 20002)

	// Over principal capacity, the whole deposit bounces instead of a
	// partial fill.
	_, err := e.deliver(100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    10001,
	})
	assert.IsErr(t, bond.ErrAtCapacity, err)
	assert.Equal(t, int64(20002), e.balance(t, alice.Address(), "DAI"))

	// Exactly the remaining capacity still fills.
	e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    10000,
	})
	assert.Equal(t, int64(0), e.terms(t).Capacity)

	_, err = e.deliver(100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    1,
	})
	assert.IsErr(t, bond.ErrAtCapacity, err)
}

func TestMaxPayoutGuard(t *testing.T) {
	e := newEngine(t)
	e.deliverAt(t, 100, e.tellerGov, &bond.SetTermsMsg{
		TellerId: e.tellerID,
		Terms: &bond.Terms{
			StartPrice:      2 * bond.PriceScale,
			MinimumPrice:    2 * bond.PriceScale,
			PriceAdjustment: &bondsale.Fraction{Numerator: 0, Denominator: 1},
			MaxPayout:       100,
			Capacity:        100000,
			StartTime:       100,
			EndTime:         1000,
			VestingTerm:     100,
			HalfLife:        100,
		},
	})
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 300)

	_, err := e.deliver(100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    300,
	})
	assert.IsErr(t, bond.ErrBondTooLarge, err)
}

func TestPurchaseBumpsAnchor(t *testing.T) {
	e := newEngine(t)
	// Every reward unit sold raises the price by 1/1500 of itself.
	e.deliverAt(t, 100, e.tellerGov, &bond.SetTermsMsg{
		TellerId: e.tellerID,
		Terms: &bond.Terms{
			StartPrice:      2 * bond.PriceScale,
			MinimumPrice:    bond.PriceScale,
			PriceAdjustment: &bondsale.Fraction{Numerator: 1, Denominator: 1500},
			MaxPayout:       5000,
			Capacity:        100000,
			StartTime:       100,
			EndTime:         1000,
			VestingTerm:     100,
			HalfLife:        100,
		},
	})
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})

	// 1500 units sold doubled the anchor, so the same block quotes a
	// quarter of the reward for the same principal.
	tr := e.terms(t)
	assert.Equal(t, 4*bond.PriceScale, tr.NextPrice)
	assert.Equal(t, bondsale.UnixTime(100), tr.LastPriceUpdate)

	out, err := bond.CalculateAmountOut(e.db, e.tellerID, 100, 3000)
	assert.Nil(t, err)
	assert.Equal(t, int64(750), out)

	in, err := bond.CalculateAmountIn(e.db, e.tellerID, 100, 750)
	assert.Nil(t, err)
	assert.Equal(t, int64(3000), in)
}

func TestClaimVestsLinearly(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	bondID := res.Data

	// Half the term passed, half the payout is released.
	e.deliverAt(t, 150, alice, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(750), e.balance(t, alice.Address(), "SOL"))

	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, bondID, &b))
	assert.Equal(t, int64(750), b.Claimed)

	// A claim in the same block releases nothing and keeps the bond.
	e.deliverAt(t, 150, alice, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(750), e.balance(t, alice.Address(), "SOL"))

	// The claim past the full term drains the rest and removes the
	// bond.
	e.deliverAt(t, 300, alice, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(1500), e.balance(t, alice.Address(), "SOL"))
	assert.Equal(t, int64(0), e.balance(t, e.tellerAddr, "SOL"))

	_, err := e.deliver(301, alice, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestClaimAuthorization(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	mallory := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})

	_, err := e.deliver(150, mallory, &bond.ClaimPayoutMsg{BondId: res.Data})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestTransferKeepsVestingClock(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	carol := bondsaletest.NewCondition()
	mallory := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	bondID := res.Data

	_, err := e.deliver(120, mallory, &bond.TransferBondMsg{BondId: bondID, NewOwner: mallory.Address()})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	e.deliverAt(t, 120, alice, &bond.TransferBondMsg{BondId: bondID, NewOwner: carol.Address()})

	// The new owner claims against the original schedule.
	e.deliverAt(t, 150, carol, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(750), e.balance(t, carol.Address(), "SOL"))
	assert.Equal(t, int64(0), e.balance(t, alice.Address(), "SOL"))
}

func TestApprovedDelegate(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	carol := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	bondID := res.Data

	// Only the owner can name a delegate.
	_, err := e.deliver(110, carol, &bond.ApproveBondMsg{BondId: bondID, Delegate: carol.Address()})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	e.deliverAt(t, 110, alice, &bond.ApproveBondMsg{BondId: bondID, Delegate: carol.Address()})

	// The delegate claims; the payout still goes to the owner.
	e.deliverAt(t, 150, carol, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(750), e.balance(t, alice.Address(), "SOL"))
	assert.Equal(t, int64(0), e.balance(t, carol.Address(), "SOL"))

	// Transfer by the delegate clears the approval.
	e.deliverAt(t, 160, carol, &bond.TransferBondMsg{BondId: bondID, NewOwner: carol.Address()})
	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, bondID, &b))
	assert.Equal(t, carol.Address(), b.Owner)
	assert.Equal(t, 0, len(b.Approved))
}

func TestExplicitDepositorMustSign(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	bob := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	// Naming someone else as the payer without their signature fails.
	_, err := e.deliver(100, bob, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Depositor: alice.Address(),
		Recipient: bob.Address(),
		Amount:    3000,
	})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// With the payer signing, the recipient may differ.
	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Depositor: alice.Address(),
		Recipient: bob.Address(),
		Amount:    3000,
	})
	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, res.Data, &b))
	assert.Equal(t, bob.Address(), b.Owner)
}

func TestPermitDeposit(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)

	key := crypto.GenPrivKeyEd25519()
	pub := key.PublicKey()
	payer := pub.Address()
	bob := bondsaletest.NewCondition()
	relayer := bondsaletest.NewCondition()
	e.fund(t, payer, 3000)

	msg := &bond.PermitDepositMsg{
		TellerId:     e.tellerID,
		Recipient:    bob.Address(),
		Amount:       3000,
		MinAmountOut: 1500,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  500,
		},
	}
	sig, err := key.Sign(msg.SigningBytes())
	assert.Nil(t, err)
	msg.Permit.Signature = sig

	// Anyone can relay; the permit signer pays.
	res := e.deliverAt(t, 100, relayer, msg)
	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, res.Data, &b))
	assert.Equal(t, bob.Address(), b.Owner)
	assert.Equal(t, int64(0), e.balance(t, payer, "DAI"))
	assert.Equal(t, int64(0), e.balance(t, relayer.Address(), "DAI"))
}

func TestPermitReplayRejected(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)

	key := crypto.GenPrivKeyEd25519()
	pub := key.PublicKey()
	payer := pub.Address()
	relayer := bondsaletest.NewCondition()
	e.fund(t, payer, 6000)

	msg := &bond.PermitDepositMsg{
		TellerId:  e.tellerID,
		Recipient: payer,
		Amount:    3000,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  500,
		},
	}
	sig, err := key.Sign(msg.SigningBytes())
	assert.Nil(t, err)
	msg.Permit.Signature = sig

	e.deliverAt(t, 100, relayer, msg)
	assert.Equal(t, int64(3000), e.balance(t, payer, "DAI"))

	// Delivering the same signed authorization a second time fails
	// and moves no funds.
	_, err = e.deliver(110, relayer, msg)
	assert.IsErr(t, bond.ErrPermitSequence, err)
	assert.Equal(t, int64(3000), e.balance(t, payer, "DAI"))

	// A fresh permit at the next counter value works.
	next := &bond.PermitDepositMsg{
		TellerId:  e.tellerID,
		Recipient: payer,
		Amount:    3000,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  500,
			Sequence:  1,
		},
	}
	sig, err = key.Sign(next.SigningBytes())
	assert.Nil(t, err)
	next.Permit.Signature = sig

	e.deliverAt(t, 120, relayer, next)
	assert.Equal(t, int64(0), e.balance(t, payer, "DAI"))
}

func TestPermitDepositExpired(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)

	key := crypto.GenPrivKeyEd25519()
	pub := key.PublicKey()
	e.fund(t, pub.Address(), 3000)
	relayer := bondsaletest.NewCondition()

	msg := &bond.PermitDepositMsg{
		TellerId:  e.tellerID,
		Recipient: pub.Address(),
		Amount:    3000,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  150,
		},
	}
	sig, err := key.Sign(msg.SigningBytes())
	assert.Nil(t, err)
	msg.Permit.Signature = sig

	_, err = e.deliver(150, relayer, msg)
	assert.IsErr(t, errors.ErrExpired, err)
}

func TestPermitDepositTampered(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)

	key := crypto.GenPrivKeyEd25519()
	pub := key.PublicKey()
	e.fund(t, pub.Address(), 3000)
	relayer := bondsaletest.NewCondition()

	msg := &bond.PermitDepositMsg{
		TellerId:  e.tellerID,
		Recipient: pub.Address(),
		Amount:    30,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  500,
		},
	}
	sig, err := key.Sign(msg.SigningBytes())
	assert.Nil(t, err)
	msg.Permit.Signature = sig

	// The signature covers the amount, so raising it breaks the
	// permit.
	msg.Amount = 3000
	_, err = e.deliver(100, relayer, msg)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestPermitDepositUnsupported(t *testing.T) {
	e := newEngine(t)

	// A second teller whose principal asset has no permit scheme.
	res := e.deliverAt(t, 50, e.depGov, &depository.CreateTellerMsg{
		Salt:             []byte("usdt-v1"),
		Name:             "USDT Teller",
		PrincipalTicker:  "USDT",
		Governor:         e.tellerGov.Address(),
		Dao:              e.dao,
		UnderwritingPool: e.pool,
	})
	tellerID := res.Data

	key := crypto.GenPrivKeyEd25519()
	pub := key.PublicKey()
	msg := &bond.PermitDepositMsg{
		TellerId:  tellerID,
		Recipient: pub.Address(),
		Amount:    100,
		Permit: &bond.Permit{
			PublicKey: &pub,
			Deadline:  500,
		},
	}
	sig, err := key.Sign(msg.SigningBytes())
	assert.Nil(t, err)
	msg.Permit.Signature = sig

	_, err = e.deliver(100, bondsaletest.NewCondition(), msg)
	assert.IsErr(t, bond.ErrNoPermit, err)
}

func TestNativeDeposit(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 100)

	res := e.deliverAt(t, 100, alice, &bond.NativeDepositMsg{
		TellerId: e.tellerID,
		Amount:   100,
	})

	// The signer is both payer and owner.
	var b bond.Bond
	assert.Nil(t, bond.NewBondBucket().One(e.db, res.Data, &b))
	assert.Equal(t, alice.Address(), b.Owner)
	assert.Equal(t, int64(50), b.Payout)
	assert.Equal(t, int64(0), e.balance(t, alice.Address(), "DAI"))
}

func TestStakeDeposit(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
		Stake:     true,
	})
	lockID := res.Data

	// No bond was minted, the payout sits in the vault instead.
	var b bond.Bond
	err := bond.NewBondBucket().One(e.db, bondsaletest.SequenceID(1), &b)
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Equal(t, int64(1500), e.balance(t, lockvault.VaultAddress(), "SOL"))

	var lock lockvault.Lock
	assert.Nil(t, lockvault.NewLockBucket().One(e.db, lockID, &lock))
	assert.Equal(t, alice.Address(), lock.Owner)
	assert.Equal(t, bondsale.UnixTime(200), lock.Release)

	// Locked funds are all or nothing, no linear release.
	_, err = e.deliver(150, alice, &lockvault.WithdrawMsg{LockId: lockID})
	assert.IsErr(t, errors.ErrState, err)

	e.deliverAt(t, 200, alice, &lockvault.WithdrawMsg{LockId: lockID})
	assert.Equal(t, int64(1500), e.balance(t, alice.Address(), "SOL"))
	assert.Equal(t, int64(0), e.balance(t, lockvault.VaultAddress(), "SOL"))
}

func TestPauseBlocksDepositsNotClaims(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 6000)

	res := e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	bondID := res.Data

	// Pausing is governor only.
	_, err := e.deliver(110, alice, &bond.PauseTellerMsg{TellerId: e.tellerID, Paused: true})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	e.deliverAt(t, 110, e.tellerGov, &bond.PauseTellerMsg{TellerId: e.tellerID, Paused: true})

	_, err = e.deliver(120, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	assert.IsErr(t, bond.ErrPaused, err)

	// Already sold bonds keep vesting and claiming.
	e.deliverAt(t, 150, alice, &bond.ClaimPayoutMsg{BondId: bondID})
	assert.Equal(t, int64(750), e.balance(t, alice.Address(), "SOL"))

	e.deliverAt(t, 160, e.tellerGov, &bond.PauseTellerMsg{TellerId: e.tellerID, Paused: false})
	_, err = e.deliver(170, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})
	assert.Nil(t, err)
}

func TestTellerAdministration(t *testing.T) {
	e := newEngine(t)
	stranger := bondsaletest.NewCondition()

	_, err := e.deliver(100, stranger, &bond.SetFeesMsg{TellerId: e.tellerID, FeeBps: 0})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	e.deliverAt(t, 100, e.tellerGov, &bond.SetFeesMsg{TellerId: e.tellerID, FeeBps: 250})

	dao := bondsaletest.NewCondition().Address()
	pool := bondsaletest.NewCondition().Address()
	e.deliverAt(t, 100, e.tellerGov, &bond.SetAddressesMsg{
		TellerId:         e.tellerID,
		Dao:              dao,
		UnderwritingPool: pool,
	})

	var teller bond.Teller
	assert.Nil(t, bond.NewTellerBucket().One(e.db, e.tellerID, &teller))
	assert.Equal(t, uint32(250), teller.FeeBps)
	assert.Equal(t, dao, teller.Dao)
	assert.Equal(t, pool, teller.UnderwritingPool)
}

func TestTellerGovernanceTransfer(t *testing.T) {
	e := newEngine(t)
	next := bondsaletest.NewCondition()

	e.deliverAt(t, 100, e.tellerGov, &bond.ProposeTellerGovernorMsg{
		TellerId:  e.tellerID,
		Candidate: next.Address(),
	})

	// Until acceptance the old governor stays in charge.
	_, err := e.deliver(110, next, &bond.SetFeesMsg{TellerId: e.tellerID, FeeBps: 0})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	e.deliverAt(t, 120, next, &bond.AcceptTellerGovernorMsg{TellerId: e.tellerID})

	_, err = e.deliver(130, next, &bond.SetFeesMsg{TellerId: e.tellerID, FeeBps: 0})
	assert.Nil(t, err)
	_, err = e.deliver(140, e.tellerGov, &bond.SetFeesMsg{TellerId: e.tellerID, FeeBps: 0})
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestSetTermsResetsAnchor(t *testing.T) {
	e := newEngine(t)
	e.openSale(t)
	alice := bondsaletest.NewCondition()
	e.fund(t, alice.Address(), 3000)

	e.deliverAt(t, 100, alice, &bond.DepositMsg{
		TellerId:  e.tellerID,
		Recipient: alice.Address(),
		Amount:    3000,
	})

	// Fresh terms discard the old anchor state entirely.
	e.deliverAt(t, 500, e.tellerGov, &bond.SetTermsMsg{
		TellerId: e.tellerID,
		Terms: &bond.Terms{
			StartPrice:      3 * bond.PriceScale,
			MinimumPrice:    bond.PriceScale,
			PriceAdjustment: &bondsale.Fraction{Numerator: 0, Denominator: 1},
			MaxPayout:       5000,
			Capacity:        10000,
			StartTime:       500,
			EndTime:         2000,
			VestingTerm:     100,
			HalfLife:        100,
		},
	})

	tr := e.terms(t)
	assert.Equal(t, 3*bond.PriceScale, tr.NextPrice)
	assert.Equal(t, bondsale.UnixTime(500), tr.LastPriceUpdate)
	assert.Equal(t, int64(10000), tr.Capacity)
}
