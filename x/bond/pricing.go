package bond

import (
	"math"
	"math/big"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// PriceScale is the fixed point scale all unit prices carry. A price of
// one reward unit per principal unit is stored as PriceScale.
const PriceScale uint64 = 1000000000

// CurrentPrice returns the decayed unit price at the given moment. The
// distance between the anchor price and the floor halves once per full
// half life and shrinks linearly within the open interval, so the
// result is deterministic integer arithmetic with no exponentials.
func CurrentPrice(t *Terms, now bondsale.UnixTime) uint64 {
	floor := t.MinimumPrice
	if t.NextPrice <= floor {
		return floor
	}
	diff := t.NextPrice - floor

	if now <= t.LastPriceUpdate {
		return floor + diff
	}
	half := int64(t.HalfLife)
	if half <= 0 {
		return floor + diff
	}
	elapsed := int64(now - t.LastPriceUpdate)

	full := elapsed / half
	if full >= 64 {
		return floor
	}
	diff >>= uint(full)

	// Linear interpolation stands in for the fractional half life:
	// diff loses rem/(2*half) of itself, which matches the halving at
	// both ends of the interval.
	rem := uint64(elapsed % half)
	diff -= mulDiv(diff, rem, uint64(2*half))

	return floor + diff
}

// adjustedAnchor returns the next anchor price after a purchase of
// payout reward units at the given decayed price. Purchases are the
// only thing that moves the price up.
func adjustedAnchor(decayed uint64, payout int64, f *bondsale.Fraction) uint64 {
	if f == nil || f.Denominator == 0 || payout <= 0 {
		return decayed
	}
	bump := new(big.Int).SetUint64(decayed)
	bump.Mul(bump, big.NewInt(payout))
	bump.Mul(bump, new(big.Int).SetUint64(uint64(f.Numerator)))
	bump.Div(bump, new(big.Int).SetUint64(uint64(f.Denominator)))

	next := new(big.Int).Add(new(big.Int).SetUint64(decayed), bump)
	if !next.IsUint64() {
		return math.MaxUint64
	}
	return next.Uint64()
}

// payoutFor converts a principal amount into reward units at the given
// price, truncating towards zero.
func payoutFor(amountIn int64, price uint64) (int64, error) {
	if price == 0 {
		return 0, ErrZeroPrice
	}
	out := new(big.Int).SetInt64(amountIn)
	out.Mul(out, new(big.Int).SetUint64(PriceScale))
	out.Div(out, new(big.Int).SetUint64(price))
	if !out.IsInt64() {
		return 0, errors.Wrap(errors.ErrOverflow, "payout")
	}
	return out.Int64(), nil
}

// principalFor converts a reward amount into principal units at the
// given price, truncating towards zero. Inverse of payoutFor under the
// same rounding rule.
func principalFor(amountOut int64, price uint64) (int64, error) {
	if price == 0 {
		return 0, ErrZeroPrice
	}
	in := new(big.Int).SetInt64(amountOut)
	in.Mul(in, new(big.Int).SetUint64(price))
	in.Div(in, new(big.Int).SetUint64(PriceScale))
	if !in.IsInt64() {
		return 0, errors.Wrap(errors.ErrOverflow, "principal")
	}
	return in.Int64(), nil
}

// vestedAmount returns how much of the payout is released at the given
// moment. The release is linear over the vesting term and a term of
// zero vests immediately.
func vestedAmount(b *Bond, now bondsale.UnixTime) int64 {
	if now <= b.VestingStart {
		if b.VestingTerm <= 0 {
			return b.Payout
		}
		return 0
	}
	elapsed := int64(now - b.VestingStart)
	term := int64(b.VestingTerm)
	if term <= 0 || elapsed >= term {
		return b.Payout
	}
	return int64(mulDiv(uint64(b.Payout), uint64(elapsed), uint64(term)))
}

// mulDiv computes a*b/d without intermediate overflow, saturating at
// the uint64 maximum.
func mulDiv(a, b, d uint64) uint64 {
	if d == 0 {
		return 0
	}
	x := new(big.Int).SetUint64(a)
	x.Mul(x, new(big.Int).SetUint64(b))
	x.Div(x, new(big.Int).SetUint64(d))
	if !x.IsUint64() {
		return math.MaxUint64
	}
	return x.Uint64()
}
