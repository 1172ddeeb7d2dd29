package govern

import (
	"context"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/errors"
)

func TestTwoPhaseTransfer(t *testing.T) {
	current := bondsaletest.NewCondition()
	next := bondsaletest.NewCondition()
	stranger := bondsaletest.NewCondition()

	o := &Ownership{Governor: current.Address()}
	assert.Nil(t, o.Validate())

	ctx := context.Background()

	// A stranger cannot propose.
	err := o.Propose(ctx, &bondsaletest.Auth{Signer: stranger}, next.Address())
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// The governor can.
	assert.Nil(t, o.Propose(ctx, &bondsaletest.Auth{Signer: current}, next.Address()))
	assert.Equal(t, next.Address(), o.Pending)

	// The proposal alone changes nothing.
	assert.Nil(t, o.Authorize(ctx, &bondsaletest.Auth{Signer: current}))
	assert.IsErr(t, errors.ErrUnauthorized, o.Authorize(ctx, &bondsaletest.Auth{Signer: next}))

	// Only the candidate can accept.
	assert.IsErr(t, errors.ErrUnauthorized, o.Accept(ctx, &bondsaletest.Auth{Signer: current}))
	assert.Nil(t, o.Accept(ctx, &bondsaletest.Auth{Signer: next}))

	assert.Equal(t, next.Address(), o.Governor)
	assert.Equal(t, 0, len(o.Pending))
	assert.Nil(t, o.Authorize(ctx, &bondsaletest.Auth{Signer: next}))
}

func TestProposalCanBeCancelled(t *testing.T) {
	current := bondsaletest.NewCondition()
	next := bondsaletest.NewCondition()

	o := &Ownership{Governor: current.Address()}
	ctx := context.Background()
	auth := &bondsaletest.Auth{Signer: current}

	assert.Nil(t, o.Propose(ctx, auth, next.Address()))
	assert.Nil(t, o.Propose(ctx, auth, nil))
	assert.IsErr(t, errors.ErrState, o.Accept(ctx, &bondsaletest.Auth{Signer: next}))
}

func TestAcceptWithoutProposal(t *testing.T) {
	current := bondsaletest.NewCondition()
	o := &Ownership{Governor: current.Address()}
	err := o.Accept(context.Background(), &bondsaletest.Auth{Signer: current})
	assert.IsErr(t, errors.ErrState, err)
}

func TestValidateRequiresGovernor(t *testing.T) {
	o := &Ownership{}
	if err := o.Validate(); err == nil {
		t.Fatal("expected validation to fail without a governor")
	}
	o.Governor = bondsale.Address("too short")
	if err := o.Validate(); err == nil {
		t.Fatal("expected validation to fail for a malformed governor")
	}
}
