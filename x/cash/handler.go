package cash

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/x"
)

const (
	sendCost      int64 = 100
	setMinterCost int64 = 0
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bondsale.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&SendMsg{}, SendHandler{auth: auth, ctrl: ctrl})
	r.Handle(&SetMinterMsg{}, SetMinterHandler{auth: auth, ctrl: NewController()})
}

// SendHandler moves funds between accounts.
type SendHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ bondsale.Handler = SendHandler{}

func (h SendHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: sendCost}, nil
}

func (h SendHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	source := msg.Source
	if source == nil {
		source = x.MainSigner(ctx, h.auth).Address()
	}

	if err := h.ctrl.MoveCoins(db, source, msg.Destination, *msg.Amount); err != nil {
		return nil, err
	}
	return &bondsale.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// The source must authorize the transfer. An unset source falls
	// back to the main signer, which authorized by signing.
	if msg.Source != nil {
		if !h.auth.HasAddress(ctx, msg.Source) {
			return nil, errors.ErrUnauthorized
		}
	}
	return &msg, nil
}

// SetMinterHandler rewires the minting authority of a ticker. The
// configuration governor must sign.
type SetMinterHandler struct {
	auth x.Authenticator
	ctrl BaseController
}

var _ bondsale.Handler = SetMinterHandler{}

func (h SetMinterHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: setMinterCost}, nil
}

func (h SetMinterHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetMinter(db, msg.Ticker, msg.Authority); err != nil {
		return nil, err
	}
	return &bondsale.DeliverResult{}, nil
}

func (h SetMinterHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*SetMinterMsg, error) {
	var msg SetMinterMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	var conf Configuration
	if err := gconf.Load(db, "cash", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	if !h.auth.HasAddress(ctx, conf.Governor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "not the cash governor")
	}
	return &msg, nil
}
