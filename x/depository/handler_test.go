package depository

import (
	"context"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/store"
	"github.com/solaris-one/bondsale/x/bond"
	"github.com/solaris-one/bondsale/x/cash"
	"github.com/solaris-one/bondsale/x/govern"
)

func newConfiguredStore(t testing.TB, governor bondsale.Address) bondsale.KVStore {
	t.Helper()
	db := store.MemStore()
	conf := Configuration{
		Owners:       &govern.Ownership{Governor: governor},
		RewardTicker: "SOL",
	}
	assert.Nil(t, gconf.Save(db, "depository", &conf))
	// The depository account holds the minting authority.
	assert.Nil(t, cash.NewController().SetMinter(db, "SOL", Address()))
	return db
}

func createTellerMsg(governor bondsale.Address) *CreateTellerMsg {
	return &CreateTellerMsg{
		Salt:             []byte("dai-v1"),
		Name:             "DAI Teller",
		PrincipalTicker:  "DAI",
		Governor:         governor,
		Dao:              bondsaletest.NewCondition().Address(),
		UnderwritingPool: bondsaletest.NewCondition().Address(),
		FeeBps:           50,
	}
}

func TestCreateTeller(t *testing.T) {
	governor := bondsaletest.NewCondition()
	db := newConfiguredStore(t, governor.Address())
	ctx := context.Background()

	h := CreateTellerHandler{
		auth:     &bondsaletest.Auth{Signer: governor},
		tellers:  bond.NewTellerBucket(),
		licenses: NewLicenseBucket(),
	}
	tx := &bondsaletest.Tx{Msg: createTellerMsg(governor.Address())}

	res, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, bondsaletest.SequenceID(1), res.Data)

	// The teller account address is derived from the salt and was
	// known before creation.
	var teller bond.Teller
	assert.Nil(t, bond.NewTellerBucket().One(db, res.Data, &teller))
	assert.Equal(t, bond.TellerCondition([]byte("dai-v1")).Address(), teller.Address)

	// Fresh tellers are licensed right away.
	ctrl := NewController(cash.NewController())
	assert.Nil(t, ctrl.IsAuthorized(db, teller.Address))

	// Only the depository governor can run the factory.
	h.auth = &bondsaletest.Auth{Signer: bondsaletest.NewCondition()}
	_, err = h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestPullReward(t *testing.T) {
	governor := bondsaletest.NewCondition()
	db := newConfiguredStore(t, governor.Address())
	ctx := context.Background()

	bank := cash.NewController()
	create := CreateTellerHandler{
		auth:     &bondsaletest.Auth{Signer: governor},
		tellers:  bond.NewTellerBucket(),
		licenses: NewLicenseBucket(),
	}
	res, err := create.Deliver(ctx, db, &bondsaletest.Tx{Msg: createTellerMsg(governor.Address())})
	assert.Nil(t, err)
	tellerID := res.Data
	tellerAddr := bond.TellerCondition([]byte("dai-v1")).Address()

	ctrl := NewController(bank)
	reward, err := ctrl.PullReward(db, tellerAddr, 1000)
	assert.Nil(t, err)
	assert.Equal(t, "SOL", reward.Ticker)
	assert.Equal(t, int64(1000), reward.Amount)

	got, err := bank.Balance(db, tellerAddr, "SOL")
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), got.Amount)

	// A deauthorized teller cannot draw anymore.
	deauth := DeauthorizeTellerHandler{
		auth:     &bondsaletest.Auth{Signer: governor},
		tellers:  bond.NewTellerBucket(),
		licenses: NewLicenseBucket(),
	}
	_, err = deauth.Deliver(ctx, db, &bondsaletest.Tx{Msg: &DeauthorizeTellerMsg{TellerId: tellerID}})
	assert.Nil(t, err)
	_, err = ctrl.PullReward(db, tellerAddr, 1)
	assert.IsErr(t, ErrNotAuthorized, err)

	// Removing twice is a no-op.
	_, err = deauth.Deliver(ctx, db, &bondsaletest.Tx{Msg: &DeauthorizeTellerMsg{TellerId: tellerID}})
	assert.Nil(t, err)

	// Authorizing again restores the draw.
	auth := AuthorizeTellerHandler{
		auth:     &bondsaletest.Auth{Signer: governor},
		tellers:  bond.NewTellerBucket(),
		licenses: NewLicenseBucket(),
	}
	_, err = auth.Deliver(ctx, db, &bondsaletest.Tx{Msg: &AuthorizeTellerMsg{TellerId: tellerID}})
	assert.Nil(t, err)
	_, err = ctrl.PullReward(db, tellerAddr, 1)
	assert.Nil(t, err)
}

func TestPullRewardNeedsMintAuthority(t *testing.T) {
	governor := bondsaletest.NewCondition()

	// Configuration without registering the depository as minter.
	db := store.MemStore()
	conf := Configuration{
		Owners:       &govern.Ownership{Governor: governor.Address()},
		RewardTicker: "SOL",
	}
	assert.Nil(t, gconf.Save(db, "depository", &conf))

	bank := cash.NewController()
	create := CreateTellerHandler{
		auth:     &bondsaletest.Auth{Signer: governor},
		tellers:  bond.NewTellerBucket(),
		licenses: NewLicenseBucket(),
	}
	_, err := create.Deliver(context.Background(), db, &bondsaletest.Tx{Msg: createTellerMsg(governor.Address())})
	assert.Nil(t, err)

	ctrl := NewController(bank)
	_, err = ctrl.PullReward(db, bond.TellerCondition([]byte("dai-v1")).Address(), 5)
	assert.IsErr(t, cash.ErrMintAuthority, err)
}

func TestGovernanceTransfer(t *testing.T) {
	governor := bondsaletest.NewCondition()
	next := bondsaletest.NewCondition()
	db := newConfiguredStore(t, governor.Address())
	ctx := context.Background()

	propose := ProposeGovernorHandler{auth: &bondsaletest.Auth{Signer: governor}}
	_, err := propose.Deliver(ctx, db, &bondsaletest.Tx{Msg: &ProposeGovernorMsg{Candidate: next.Address()}})
	assert.Nil(t, err)

	// Until acceptance the old governor stays in charge.
	update := UpdateConfigHandler{auth: &bondsaletest.Auth{Signer: next}}
	_, err = update.Deliver(ctx, db, &bondsaletest.Tx{Msg: &UpdateConfigMsg{RewardTicker: "ABC"}})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	accept := AcceptGovernorHandler{auth: &bondsaletest.Auth{Signer: next}}
	_, err = accept.Deliver(ctx, db, &bondsaletest.Tx{Msg: &AcceptGovernorMsg{}})
	assert.Nil(t, err)

	_, err = update.Deliver(ctx, db, &bondsaletest.Tx{Msg: &UpdateConfigMsg{RewardTicker: "ABC"}})
	assert.Nil(t, err)

	var conf Configuration
	assert.Nil(t, gconf.Load(db, "depository", &conf))
	assert.Equal(t, "ABC", conf.RewardTicker)
	assert.Equal(t, next.Address(), conf.Owners.Governor)
}
