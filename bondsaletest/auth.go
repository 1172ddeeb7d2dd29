package bondsaletest

import (
	"context"
	"fmt"

	"github.com/solaris-one/bondsale"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced conditions. You can
// use either Signer or Signers (or both) attributes to reference
// conditions. This is for convenience and each time all signers
// (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer bondsale.Condition

	// Signers represents an authentication of multiple signers.
	Signers []bondsale.Condition
}

func (a *Auth) GetConditions(bondsale.Context) []bondsale.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx bondsale.Context, addr bondsale.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve
// permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetConditions(ctx bondsale.Context, permissions ...bondsale.Condition) bondsale.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), permissions)
}

func (a *CtxAuth) GetConditions(ctx bondsale.Context) []bondsale.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]bondsale.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []bondsale.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx bondsale.Context, addr bondsale.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

type ctxAuthKey string
