package bond

import "github.com/solaris-one/bondsale/errors"

var (
	// ErrZeroPrice is returned when the decayed price reaches exactly
	// zero. Quotes and deposits must fail instead of dividing by zero.
	ErrZeroPrice = errors.Register(1030, "price decayed to zero")

	// ErrAtCapacity is returned when a deposit would exceed the
	// remaining sale capacity. Deposits are rejected whole, never
	// partially filled.
	ErrAtCapacity = errors.Register(1031, "bond at capacity")

	// ErrBondTooLarge is returned when a single deposit would be paid
	// more than the per transaction payout ceiling.
	ErrBondTooLarge = errors.Register(1032, "bond too large")

	// ErrSlippage is returned when the computed payout falls below the
	// minimum the depositor asked for.
	ErrSlippage = errors.Register(1033, "payout below minimum")

	// ErrPaused is returned on deposits into a paused teller.
	ErrPaused = errors.Register(1034, "teller is paused")

	// ErrNoPermit is returned when a permit deposit targets a teller
	// whose principal asset does not support permits.
	ErrNoPermit = errors.Register(1035, "principal does not support permits")

	// ErrTermsNotSet is returned on operations that need sale terms
	// before the governor posted any.
	ErrTermsNotSet = errors.Register(1036, "sale terms not set")

	// ErrPermitSequence is returned when a permit does not carry the
	// signer's current replay counter, including permits that were
	// already used once.
	ErrPermitSequence = errors.Register(1037, "invalid permit sequence")
)
