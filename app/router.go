package app

import (
	"fmt"
	"regexp"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// isPath defines the valid characters of a message path.
var isPath = regexp.MustCompile(`^[a-z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the registered handler.
type Router struct {
	routes map[string]bondsale.Handler
}

var _ bondsale.Registry = (*Router)(nil)
var _ bondsale.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]bondsale.Handler),
	}
}

// Handle implements bondsale.Registry. It panics when a handler for
// given message type was already registered or when the message path is
// invalid.
func (r *Router) Handle(m bondsale.Msg, h bondsale.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, it returns a noSuchPathHandler so the error propagates through
// the usual result path.
func (r *Router) handler(m bondsale.Msg) bondsale.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx) (*bondsale.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx bondsale.Context, store bondsale.KVStore, tx bondsale.Tx) (*bondsale.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

type noSuchPathHandler struct {
	path string
}

var _ bondsale.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(bondsale.Context, bondsale.KVStore, bondsale.Tx) (*bondsale.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}

func (h noSuchPathHandler) Deliver(bondsale.Context, bondsale.KVStore, bondsale.Tx) (*bondsale.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", h.path)
}
