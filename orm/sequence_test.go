package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/solaris-one/bondsale/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		increments int64
	}{
		0: {"bond", "id", 22},
		1: {"bond", "other", 11},
		2: {"teller", "id", 18},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			_, orig, err := s.Latest(db)
			require.NoError(t, err)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			assert.Equal(t, tc.increments, val)

			// make sure the final value is bigger than the original
			// value if we use the raw bytes to index stuff
			_, last, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, 1, bytes.Compare(last, orig))
		})
	}
}

func TestSequenceIndependence(t *testing.T) {
	db := store.MemStore()

	a := NewSequence("bond", "id")
	b := NewSequence("lock", "id")

	v, err := a.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = a.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}
