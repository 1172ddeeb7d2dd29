package bond

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// quote prices a principal amount against the current terms, applying
// the same guards in the same order as the deposit path.
func quote(t *Terms, now bondsale.UnixTime, amountIn int64) (price uint64, payout int64, err error) {
	price = CurrentPrice(t, now)
	if price == 0 {
		return 0, 0, ErrZeroPrice
	}
	payout, err = payoutFor(amountIn, price)
	if err != nil {
		return 0, 0, err
	}
	if payout == 0 {
		return 0, 0, errors.Wrapf(errors.ErrAmount, "%d buys no payout at price %d", amountIn, price)
	}

	used := amountIn
	if t.CapacityIsPayout {
		used = payout
	}
	if used > t.Capacity {
		return 0, 0, errors.Wrapf(ErrAtCapacity, "%d over %d remaining", used, t.Capacity)
	}
	if payout > t.MaxPayout {
		return 0, 0, errors.Wrapf(ErrBondTooLarge, "payout %d over %d", payout, t.MaxPayout)
	}
	return price, payout, nil
}

// loadTerms returns the active sale terms of a teller, or ErrTermsNotSet
// when the governor never posted any.
func loadTerms(db bondsale.ReadOnlyKVStore, tellerID []byte) (*Terms, error) {
	var t Terms
	switch err := NewTermsBucket().One(db, tellerID, &t); {
	case errors.ErrNotFound.Is(err):
		return nil, ErrTermsNotSet
	case err != nil:
		return nil, errors.Wrap(err, "terms")
	}
	return &t, nil
}

// CalculateAmountOut quotes the payout a principal deposit would buy
// right now. Read only, shares the deposit path's computation and
// guards.
func CalculateAmountOut(db bondsale.ReadOnlyKVStore, tellerID []byte, now bondsale.UnixTime, amountIn int64) (int64, error) {
	if amountIn <= 0 {
		return 0, errors.Wrap(errors.ErrAmount, "must be positive")
	}
	t, err := loadTerms(db, tellerID)
	if err != nil {
		return 0, err
	}
	_, payout, err := quote(t, now, amountIn)
	return payout, err
}

// CalculateAmountIn quotes the principal needed to buy a given payout
// right now. Inverse of CalculateAmountOut under the same truncation
// rule, so a round trip can only lose value.
func CalculateAmountIn(db bondsale.ReadOnlyKVStore, tellerID []byte, now bondsale.UnixTime, amountOut int64) (int64, error) {
	if amountOut <= 0 {
		return 0, errors.Wrap(errors.ErrAmount, "must be positive")
	}
	t, err := loadTerms(db, tellerID)
	if err != nil {
		return 0, err
	}
	price := CurrentPrice(t, now)
	if price == 0 {
		return 0, ErrZeroPrice
	}
	principal, err := principalFor(amountOut, price)
	if err != nil {
		return 0, err
	}

	used := principal
	if t.CapacityIsPayout {
		used = amountOut
	}
	if used > t.Capacity {
		return 0, errors.Wrapf(ErrAtCapacity, "%d over %d remaining", used, t.Capacity)
	}
	if amountOut > t.MaxPayout {
		return 0, errors.Wrapf(ErrBondTooLarge, "payout %d over %d", amountOut, t.MaxPayout)
	}
	return principal, nil
}
