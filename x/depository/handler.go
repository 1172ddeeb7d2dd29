package depository

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/gconf"
	"github.com/solaris-one/bondsale/orm"
	"github.com/solaris-one/bondsale/x"
	"github.com/solaris-one/bondsale/x/bond"
	"github.com/solaris-one/bondsale/x/govern"
)

const (
	createTellerCost int64 = 300
	adminCost        int64 = 0
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bondsale.Registry, auth x.Authenticator) {
	licenses := NewLicenseBucket()
	tellers := bond.NewTellerBucket()

	r.Handle(&CreateTellerMsg{}, CreateTellerHandler{auth: auth, tellers: tellers, licenses: licenses})
	r.Handle(&AuthorizeTellerMsg{}, AuthorizeTellerHandler{auth: auth, tellers: tellers, licenses: licenses})
	r.Handle(&DeauthorizeTellerMsg{}, DeauthorizeTellerHandler{auth: auth, tellers: tellers, licenses: licenses})
	r.Handle(&UpdateConfigMsg{}, UpdateConfigHandler{auth: auth})
	r.Handle(&ProposeGovernorMsg{}, ProposeGovernorHandler{auth: auth})
	r.Handle(&AcceptGovernorMsg{}, AcceptGovernorHandler{auth: auth})
}

// loadConf returns the depository configuration singleton.
func loadConf(db bondsale.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "depository", &conf); err != nil {
		return nil, errors.Wrap(err, "configuration")
	}
	return &conf, nil
}

// authConf loads the configuration and ensures the governor signed.
func authConf(ctx bondsale.Context, db bondsale.ReadOnlyKVStore, auth x.Authenticator) (*Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := conf.Owners.Authorize(ctx, auth); err != nil {
		return nil, err
	}
	return conf, nil
}

// CreateTellerHandler is the factory. It writes a new teller
// configuration with a salt derived account and licenses it for reward
// draws in the same stroke.
type CreateTellerHandler struct {
	auth     x.Authenticator
	tellers  orm.ModelBucket
	licenses orm.ModelBucket
}

var _ bondsale.Handler = CreateTellerHandler{}

func (h CreateTellerHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: createTellerCost}, nil
}

func (h CreateTellerHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	teller := &bond.Teller{
		Name:             msg.Name,
		Address:          bond.TellerCondition(msg.Salt).Address(),
		PrincipalTicker:  msg.PrincipalTicker,
		SupportsPermit:   msg.SupportsPermit,
		Dao:              msg.Dao,
		UnderwritingPool: msg.UnderwritingPool,
		FeeBps:           msg.FeeBps,
		Owners:           &govern.Ownership{Governor: msg.Governor},
	}
	key, err := h.tellers.Put(db, nil, teller)
	if err != nil {
		return nil, errors.Wrap(err, "save teller")
	}
	if _, err := h.licenses.Put(db, teller.Address, &License{TellerId: key}); err != nil {
		return nil, errors.Wrap(err, "save license")
	}

	res := &bondsale.DeliverResult{
		Data: key,
		Tags: []common.KVPair{
			{Key: []byte("depository:action"), Value: []byte("create_teller")},
			{Key: []byte("depository:teller"), Value: []byte(teller.Address.String())},
		},
	}
	return res, nil
}

func (h CreateTellerHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*CreateTellerMsg, error) {
	var msg CreateTellerMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := authConf(ctx, db, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AuthorizeTellerHandler puts an existing teller into the authorized
// set.
type AuthorizeTellerHandler struct {
	auth     x.Authenticator
	tellers  orm.ModelBucket
	licenses orm.ModelBucket
}

var _ bondsale.Handler = AuthorizeTellerHandler{}

func (h AuthorizeTellerHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h AuthorizeTellerHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, teller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.licenses.Put(db, teller.Address, &License{TellerId: msg.TellerId}); err != nil {
		return nil, errors.Wrap(err, "save license")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("depository:action"), Value: []byte("authorize_teller")},
			{Key: []byte("depository:teller"), Value: []byte(teller.Address.String())},
		},
	}
	return res, nil
}

func (h AuthorizeTellerHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*AuthorizeTellerMsg, *bond.Teller, error) {
	var msg AuthorizeTellerMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := authConf(ctx, db, h.auth); err != nil {
		return nil, nil, err
	}
	var teller bond.Teller
	if err := h.tellers.One(db, msg.TellerId, &teller); err != nil {
		return nil, nil, errors.Wrap(err, "teller")
	}
	return &msg, &teller, nil
}

// DeauthorizeTellerHandler removes a teller from the authorized set.
// The teller configuration and its sold bonds are untouched.
type DeauthorizeTellerHandler struct {
	auth     x.Authenticator
	tellers  orm.ModelBucket
	licenses orm.ModelBucket
}

var _ bondsale.Handler = DeauthorizeTellerHandler{}

func (h DeauthorizeTellerHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h DeauthorizeTellerHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	_, teller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	switch err := h.licenses.Delete(db, teller.Address); {
	case err == nil, errors.ErrNotFound.Is(err):
		// Removal is idempotent.
	default:
		return nil, errors.Wrap(err, "delete license")
	}
	res := &bondsale.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte("depository:action"), Value: []byte("deauthorize_teller")},
			{Key: []byte("depository:teller"), Value: []byte(teller.Address.String())},
		},
	}
	return res, nil
}

func (h DeauthorizeTellerHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*DeauthorizeTellerMsg, *bond.Teller, error) {
	var msg DeauthorizeTellerMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if _, err := authConf(ctx, db, h.auth); err != nil {
		return nil, nil, err
	}
	var teller bond.Teller
	if err := h.tellers.One(db, msg.TellerId, &teller); err != nil {
		return nil, nil, errors.Wrap(err, "teller")
	}
	return &msg, &teller, nil
}

// UpdateConfigHandler replaces the reward ticker.
type UpdateConfigHandler struct {
	auth x.Authenticator
}

var _ bondsale.Handler = UpdateConfigHandler{}

func (h UpdateConfigHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h UpdateConfigHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.RewardTicker = msg.RewardTicker
	if err := gconf.Save(db, "depository", conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &bondsale.DeliverResult{}, nil
}

func (h UpdateConfigHandler) validate(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*UpdateConfigMsg, *Configuration, error) {
	var msg UpdateConfigMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := authConf(ctx, db, h.auth)
	if err != nil {
		return nil, nil, err
	}
	return &msg, conf, nil
}

// ProposeGovernorHandler starts a two phase transfer of the depository
// governance.
type ProposeGovernorHandler struct {
	auth x.Authenticator
}

var _ bondsale.Handler = ProposeGovernorHandler{}

func (h ProposeGovernorHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	var msg ProposeGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h ProposeGovernorHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	var msg ProposeGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := conf.Owners.Propose(ctx, h.auth, msg.Candidate); err != nil {
		return nil, err
	}
	if err := gconf.Save(db, "depository", conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &bondsale.DeliverResult{}, nil
}

// AcceptGovernorHandler completes a pending depository governance
// transfer.
type AcceptGovernorHandler struct {
	auth x.Authenticator
}

var _ bondsale.Handler = AcceptGovernorHandler{}

func (h AcceptGovernorHandler) Check(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	var msg AcceptGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &bondsale.CheckResult{GasAllocated: adminCost}, nil
}

func (h AcceptGovernorHandler) Deliver(ctx bondsale.Context, db bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	var msg AcceptGovernorMsg
	if err := bondsale.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if err := conf.Owners.Accept(ctx, h.auth); err != nil {
		return nil, err
	}
	if err := gconf.Save(db, "depository", conf); err != nil {
		return nil, errors.Wrap(err, "save configuration")
	}
	return &bondsale.DeliverResult{}, nil
}
