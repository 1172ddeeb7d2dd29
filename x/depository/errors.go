package depository

import "github.com/solaris-one/bondsale/errors"

var (
	// ErrNotAuthorized is returned when a teller outside the
	// authorized set asks for reward provisioning.
	ErrNotAuthorized = errors.Register(1020, "teller not authorized")
)
