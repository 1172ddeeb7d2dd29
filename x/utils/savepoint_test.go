package utils

import (
	"context"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/store"
)

// writeHandler writes a key/value pair and then returns err.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writeHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &bondsale.DeliverResult{}, h.err
}

func TestSavepointRollsBackOnError(t *testing.T) {
	fail := errors.Wrap(errors.ErrState, "boom")
	cases := map[string]struct {
		handler   bondsale.Handler
		savepoint Savepoint
		onCheck   bool
		wantErr   *errors.Error
		wantSet   bool
	}{
		"check failure rolls back": {
			handler:   writeHandler{key: []byte("k"), value: []byte("v"), err: fail},
			savepoint: NewSavepoint().OnCheck(),
			onCheck:   true,
			wantErr:   errors.ErrState,
		},
		"check success writes through": {
			handler:   writeHandler{key: []byte("k"), value: []byte("v")},
			savepoint: NewSavepoint().OnCheck(),
			onCheck:   true,
			wantSet:   true,
		},
		"deliver failure rolls back": {
			handler:   writeHandler{key: []byte("k"), value: []byte("v"), err: fail},
			savepoint: NewSavepoint().OnDeliver(),
			wantErr:   errors.ErrState,
		},
		"deliver success writes through": {
			handler:   writeHandler{key: []byte("k"), value: []byte("v")},
			savepoint: NewSavepoint().OnDeliver(),
			wantSet:   true,
		},
		"inactive savepoint writes despite failure": {
			handler:   writeHandler{key: []byte("k"), value: []byte("v"), err: fail},
			savepoint: NewSavepoint(),
			wantErr:   errors.ErrState,
			wantSet:   true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctx := context.Background()

			var err error
			if tc.onCheck {
				_, err = tc.savepoint.Check(ctx, db, nil, tc.handler)
			} else {
				_, err = tc.savepoint.Deliver(ctx, db, nil, tc.handler)
			}
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			ok, err := db.Has([]byte("k"))
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSet, ok)
		})
	}
}
