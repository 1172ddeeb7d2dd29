package bondsale

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/solaris-one/bondsale/errors"
)

// DefaultLogger is used for every context that has no logger attached.
var DefaultLogger = log.NewNopLogger()

// Context is just the standard request context, extended with accessors
// for the values that every handler call can rely on: block height and
// block time. Extensions, such as authentication, may add their own keys.
//
// There should exist two functions for every value of type T that we want
// to support in Context:
//
//   WithXYZ(Context, T) Context
//   XYZ(Context) (val T, ok bool)
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyTime
	contextKeyChainID
	contextKeyLogger
)

// WithLogger sets the logger for the execution context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger attached to this context, or
// DefaultLogger when none was set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithHeight sets the block height for the execution context.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the block height declared for this context.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the execution context. Block time
// is the only time source for handlers; decay and vesting are computed
// lazily from it, never via timers.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the block time declared for this context.
func BlockTime(ctx Context) (time.Time, bool) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	return val, ok
}

// WithChainID sets the chain id for the execution context.
func WithChainID(ctx Context, chainID string) Context {
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id declared for this context.
func GetChainID(ctx Context) (string, bool) {
	val, ok := ctx.Value(contextKeyChainID).(string)
	return val, ok
}

// BlockUnixTime returns the block time as UnixTime. This function panics
// if the block time is not present in the context. This must never happen
// during transaction processing. The panic is here to prevent a broken
// setup from processing data incorrectly.
func BlockUnixTime(ctx Context) UnixTime {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("block time is not present")
	}
	return AsUnixTime(now)
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for the block. Expiration is inclusive, meaning that
// if current time is equal to the expiration time then this function
// returns true.
func IsExpired(ctx Context, t UnixTime) bool {
	return t <= BlockUnixTime(ctx)
}

// InTheFuture returns true if given time is in the future compared to the
// current time as declared in the context. This function is not inclusive
// of the current time.
func InTheFuture(ctx Context, t UnixTime) bool {
	return t > BlockUnixTime(ctx)
}

// LoadMsg extracts the message from the transaction and unpacks it into
// given destination. Message is validated before being returned.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "get msg")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrState, "transaction without message")
	}
	raw, err := msg.Marshal()
	if err != nil {
		return errors.Wrapf(err, "serialize %T message", msg)
	}
	if err := destination.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "deserialize %T message", destination)
	}
	if err := destination.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
