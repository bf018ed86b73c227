// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/chain/app/services/node/handlers/v1/private"
	"github.com/ardanlabs/chain/app/services/node/handlers/v1/public"
	"github.com/ardanlabs/chain/foundation/blockchain/chain"
	"github.com/ardanlabs/chain/foundation/blockchain/genesis"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
	"github.com/ardanlabs/chain/foundation/blockchain/worker"
	"github.com/ardanlabs/chain/foundation/events"
	"github.com/ardanlabs/chain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log     *zap.SugaredLogger
	Genesis genesis.Genesis
	Chain   *chain.Chain[currency.Balances, currency.Tx]
	Worker  *worker.Worker[currency.Balances, currency.Tx]
	Evts    *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		Gen:   cfg.Genesis,
		Chain: cfg.Chain,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/genesis/list", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/head", pbl.BestHead)
	app.Handle(http.MethodGet, version, "/leaves/list", pbl.Leaves)
	app.Handle(http.MethodGet, version, "/ancestors/list/:block", pbl.Ancestors)
	app.Handle(http.MethodGet, version, "/blocks/:block", pbl.BlockByID)
	app.Handle(http.MethodGet, version, "/balances/list", pbl.Balances)
	app.Handle(http.MethodGet, version, "/balances/list/:account", pbl.Balances)
	app.Handle(http.MethodGet, version, "/balances/block/:block", pbl.BalancesAt)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	prv := private.Handlers{
		Log:    cfg.Log,
		Chain:  cfg.Chain,
		Worker: cfg.Worker,
	}

	app.Handle(http.MethodGet, version, "/node/status", prv.Status)
	app.Handle(http.MethodPost, version, "/node/block/next", prv.AddNextBlock)
	app.Handle(http.MethodPost, version, "/node/tx/add", prv.SubmitBatch)
	app.Handle(http.MethodGet, version, "/node/mining/cancel", prv.CancelMining)
}
