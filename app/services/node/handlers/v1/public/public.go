// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	v1 "github.com/ardanlabs/chain/business/web/v1"
	"github.com/ardanlabs/chain/foundation/blockchain/chain"
	"github.com/ardanlabs/chain/foundation/blockchain/genesis"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
	"github.com/ardanlabs/chain/foundation/events"
	"github.com/ardanlabs/chain/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of public endpoints. Everything here is a
// read-only view over the chain.
type Handlers struct {
	Log   *zap.SugaredLogger
	Gen   genesis.Genesis
	Chain *chain.Chain[currency.Balances, currency.Tx]
	Evts  *events.Events
	WS    websocket.Upgrader
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Genesis returns the genesis information.
func (h Handlers) Genesis(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.Gen, http.StatusOK)
}

// BestHead returns the canonical head selected by the fork choice rule.
func (h Handlers) BestHead(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blockID, err := h.Chain.BestHead()
	if err != nil {
		return err
	}

	block, err := h.Chain.GetBlock(blockID)
	if err != nil {
		return err
	}

	head := head{
		BlockID: blockID,
		Header:  block.Header,
	}

	return web.Respond(ctx, w, head, http.StatusOK)
}

// Leaves returns the identities of all current leaves of the block tree.
func (h Handlers) Leaves(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	lvs := leaves{
		Leaves: h.Chain.Leaves(),
	}

	return web.Respond(ctx, w, lvs, http.StatusOK)
}

// Ancestors returns the headers from the specified block back to genesis.
func (h Handlers) Ancestors(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blockID := web.Param(r, "block")

	headers, err := h.Chain.Ancestors(blockID)
	if err != nil {
		if errors.Is(err, chain.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return err
	}

	return web.Respond(ctx, w, headers, http.StatusOK)
}

// BlockByID returns the full block with the specified identity.
func (h Handlers) BlockByID(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blockID := web.Param(r, "block")

	block, err := h.Chain.GetBlock(blockID)
	if err != nil {
		if errors.Is(err, chain.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return err
	}

	return web.Respond(ctx, w, block, http.StatusOK)
}

// Balances returns the balances as of the canonical head, optionally
// filtered down to a single account.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	blockID, state, err := h.Chain.HeadState()
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, toBalances(blockID, state, account), http.StatusOK)
}

// BalancesAt returns the balances as of the specified block.
func (h Handlers) BalancesAt(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blockID := web.Param(r, "block")

	state, err := h.Chain.StateAt(blockID)
	if err != nil {
		if errors.Is(err, chain.ErrNotFound) {
			return v1.NewRequestError(err, http.StatusNotFound)
		}
		return err
	}

	return web.Respond(ctx, w, toBalances(blockID, state, ""), http.StatusOK)
}
