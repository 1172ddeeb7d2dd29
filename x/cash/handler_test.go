package cash

import (
	"context"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/store"
)

func TestSendHandler(t *testing.T) {
	alice := bondsaletest.NewCondition()
	bob := bondsaletest.NewCondition()
	stranger := bondsaletest.NewCondition()

	cases := map[string]struct {
		msg     *SendMsg
		signer  bondsale.Condition
		wantErr *errors.Error
	}{
		"explicit source can send": {
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      &coin.Coin{Ticker: "DAI", Amount: 10},
			},
			signer: alice,
		},
		"main signer is the default source": {
			msg: &SendMsg{
				Destination: bob.Address(),
				Amount:      &coin.Coin{Ticker: "DAI", Amount: 10},
			},
			signer: alice,
		},
		"source must sign": {
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      &coin.Coin{Ticker: "DAI", Amount: 10},
			},
			signer:  stranger,
			wantErr: errors.ErrUnauthorized,
		},
		"amount is required": {
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
			},
			signer:  alice,
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			wallets := NewWalletBucket()
			_, err := wallets.Put(db, alice.Address(), &Wallet{Coins: []*coin.Coin{
				{Ticker: "DAI", Amount: 100},
			}})
			assert.Nil(t, err)

			h := SendHandler{
				auth: &bondsaletest.Auth{Signer: tc.signer},
				ctrl: NewController(),
			}
			tx := &bondsaletest.Tx{Msg: tc.msg}
			ctx := context.Background()

			if _, err := h.Check(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("check: want %v, got %+v", tc.wantErr, err)
			}
			if _, err := h.Deliver(ctx, db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("deliver: want %v, got %+v", tc.wantErr, err)
			}

			if tc.wantErr == nil {
				got, err := NewController().Balance(db, bob.Address(), "DAI")
				assert.Nil(t, err)
				assert.Equal(t, int64(10), got.Amount)
			}
		})
	}
}

func TestSetMinterHandler(t *testing.T) {
	governor := bondsaletest.NewCondition()
	authority := bondsaletest.NewCondition()
	stranger := bondsaletest.NewCondition()

	db := store.MemStore()
	assert.Nil(t, gconf.Save(db, "cash", &Configuration{Governor: governor.Address()}))

	msg := &SetMinterMsg{Ticker: "SOL", Authority: authority.Address()}
	tx := &bondsaletest.Tx{Msg: msg}
	ctx := context.Background()

	h := SetMinterHandler{
		auth: &bondsaletest.Auth{Signer: stranger},
		ctrl: NewController(),
	}
	_, err := h.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	h.auth = &bondsaletest.Auth{Signer: governor}
	_, err = h.Deliver(ctx, db, tx)
	assert.Nil(t, err)

	// The new authority can mint now.
	dest := bondsaletest.NewCondition().Address()
	ctrl := NewController()
	assert.Nil(t, ctrl.IssueCoins(db, authority.Address(), dest, coin.NewCoin(7, "SOL")))
}

func TestGenesisInitializer(t *testing.T) {
	db := store.MemStore()
	opts := bondsale.Options{
		"conf": []byte(`{"cash": {"governor": "0102030405060708090a0b0c0d0e0f1011121314"}}`),
		"cash": []byte(`[
			{"address": "1111111111111111111111111111111111111111",
			 "coins": [{"ticker": "DAI", "whole": 500}]}
		]`),
		"minter": []byte(`[
			{"ticker": "SOL", "authority": "2222222222222222222222222222222222222222"}
		]`),
	}
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController()
	addr, err := bondsale.ParseAddress("1111111111111111111111111111111111111111")
	assert.Nil(t, err)
	got, err := ctrl.Balance(db, addr, "DAI")
	assert.Nil(t, err)
	assert.Equal(t, int64(500), got.Amount)

	authority, err := bondsale.ParseAddress("2222222222222222222222222222222222222222")
	assert.Nil(t, err)
	dest := bondsaletest.NewCondition().Address()
	assert.Nil(t, ctrl.IssueCoins(db, authority, dest, coin.NewCoin(1, "SOL")))

	var conf Configuration
	assert.Nil(t, gconf.Load(db, "cash", &conf))
	assert.Nil(t, conf.Governor.Validate())
}
