package utils

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// Recovery is a decorator to recover from panics in transactions, so we
// can log them as errors.
type Recovery struct{}

var _ bondsale.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors.
func (r Recovery) Check(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx, next bondsale.Checker) (_ *bondsale.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors.
func (r Recovery) Deliver(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx, next bondsale.Deliverer) (_ *bondsale.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
