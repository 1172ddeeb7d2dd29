package x

import (
	"github.com/solaris-one/bondsale"
)

// Authenticator is an interface we can use to extract authentication
// information from the context. This should be passed in the constructor
// of handlers, so we can plug in another authentication system rather
// than hardcoding x/sigs for all extensions.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled by this call,
	// you may want GetAddresses.
	GetConditions(bondsale.Context) []bondsale.Condition

	// HasAddress checks if any condition matches this address.
	HasAddress(bondsale.Context, bondsale.Address) bool
}

// MultiAuth chains together many authenticators into one.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of authenticators.
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all conditions from all chained authenticators.
func (m MultiAuth) GetConditions(ctx bondsale.Context) []bondsale.Condition {
	var res []bondsale.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	return res
}

// HasAddress returns true iff any chained authenticator has it.
func (m MultiAuth) HasAddress(ctx bondsale.Context, addr bondsale.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition in the first authenticator that
// returns any. This is the entity paying, and the default entity a
// deposit is credited to when no other is named.
func MainSigner(ctx bondsale.Context, auth Authenticator) bondsale.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all given addresses are authenticated
// in the current context.
func HasAllAddresses(ctx bondsale.Context, auth Authenticator, required ...bondsale.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}
