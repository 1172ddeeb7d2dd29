package app

import (
	"context"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
)

// tagging appends its name to the result log on the way out, so the
// test can observe the order decorators resolved in.
type tagging struct {
	name string
}

func (d tagging) Check(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx, next bondsale.Checker) (*bondsale.CheckResult, error) {
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res.Log = d.name + res.Log
	return res, nil
}

func (d tagging) Deliver(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx, next bondsale.Deliverer) (*bondsale.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res.Log = d.name + res.Log
	return res, nil
}

type terminal struct{}

func (terminal) Check(bondsale.Context, bondsale.KVStore, bondsale.Tx) (*bondsale.CheckResult, error) {
	return &bondsale.CheckResult{Log: "|"}, nil
}

func (terminal) Deliver(bondsale.Context, bondsale.KVStore, bondsale.Tx) (*bondsale.DeliverResult, error) {
	return &bondsale.DeliverResult{Log: "|"}, nil
}

func TestChainResolvesInOrder(t *testing.T) {
	stack := ChainDecorators(
		tagging{name: "a"},
		tagging{name: "b"},
	).Chain(
		tagging{name: "c"},
	).WithHandler(terminal{})

	ctx := context.Background()
	cres, err := stack.Check(ctx, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "abc|", cres.Log)

	dres, err := stack.Deliver(ctx, nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "abc|", dres.Log)
}
