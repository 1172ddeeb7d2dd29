package bondsaletest

import (
	"encoding/binary"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/crypto"
)

// NewKey returns a random private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a random key. Each call creates
// a new, unique identity.
func NewCondition() bondsale.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID returns an ID encoded the way a bucket sequence does it.
// Use it to address the n-th entity created within a bucket.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
