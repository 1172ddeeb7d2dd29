package app

import (
	"github.com/solaris-one/bondsale"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler.
type Decorators struct {
	chain []bondsale.Decorator
}

// ChainDecorators takes a variable number of decorators and turns them
// into one chain that can be bonded with a Handler.
func ChainDecorators(decorators ...bondsale.Decorator) Decorators {
	return Decorators{chain: decorators}
}

// Chain appends decorators to the existing chain.
func (d Decorators) Chain(decorators ...bondsale.Decorator) Decorators {
	return Decorators{chain: append(d.chain, decorators...)}
}

// WithHandler resolves the stack and returns a Handler that passes each
// call through every decorator in order before reaching the final
// handler.
func (d Decorators) WithHandler(h bondsale.Handler) bondsale.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decoratedHandler{d: d.chain[i], next: h}
	}
	return h
}

type decoratedHandler struct {
	d    bondsale.Decorator
	next bondsale.Handler
}

var _ bondsale.Handler = decoratedHandler{}

func (h decoratedHandler) Check(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	return h.d.Check(ctx, store, tx, h.next)
}

func (h decoratedHandler) Deliver(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	return h.d.Deliver(ctx, store, tx, h.next)
}
