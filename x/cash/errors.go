package cash

import "github.com/solaris-one/bondsale/errors"

var (
	// ErrMintAuthority is returned on an attempt to issue coins of a
	// ticker without holding its minting authority.
	ErrMintAuthority = errors.Register(1000, "no minting authority")
)
