/*
Package std wires the extensions of this repository into one
application stack. It is the single place that knows about every
module, so binaries and tests can assemble the full engine with one
call.
*/
package std

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/app"
	"github.com/solaris-one/bondsale/x"
	"github.com/solaris-one/bondsale/x/bond"
	"github.com/solaris-one/bondsale/x/cash"
	"github.com/solaris-one/bondsale/x/depository"
	"github.com/solaris-one/bondsale/x/lockvault"
	"github.com/solaris-one/bondsale/x/utils"
)

// Chain returns the decorator chain every transaction passes through:
// logging, panic recovery and savepoints, so a failed message never
// leaves partial writes behind.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		// on DeliverTx, bad tx must roll back all their writes
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to every message handler of this
// repository. All modules share one token ledger.
func Router(auth x.Authenticator) *app.Router {
	bank := cash.NewController()
	vault := lockvault.NewController(bank)
	prov := depository.NewController(bank)

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, bank)
	lockvault.RegisterRoutes(r, auth, bank)
	depository.RegisterRoutes(r, auth)
	bond.RegisterRoutes(r, auth, bank, vault, prov)
	return r
}

// Stack resolves the full transaction processing stack: the decorator
// chain wrapped around the router.
func Stack(auth x.Authenticator) bondsale.Handler {
	return Chain().WithHandler(Router(auth))
}
