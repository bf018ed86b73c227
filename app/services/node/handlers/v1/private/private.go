// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"errors"
	"net/http"

	"github.com/ardanlabs/chain/business/sys/validate"
	v1 "github.com/ardanlabs/chain/business/web/v1"
	"github.com/ardanlabs/chain/foundation/blockchain/chain"
	"github.com/ardanlabs/chain/foundation/blockchain/database"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/currency"
	"github.com/ardanlabs/chain/foundation/blockchain/worker"
	"github.com/ardanlabs/chain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Chain  *chain.Chain[currency.Balances, currency.Tx]
	Worker *worker.Worker[currency.Balances, currency.Tx]
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	headID, err := h.Chain.BestHead()
	if err != nil {
		return err
	}

	height, err := h.Chain.Height(headID)
	if err != nil {
		return err
	}

	status := struct {
		BestHead    string `json:"best_head"`
		Height      uint64 `json:"height"`
		KnownBlocks int    `json:"known_blocks"`
		Leaves      int    `json:"leaves"`
	}{
		BestHead:    headID,
		Height:      height,
		KnownBlocks: h.Chain.KnownBlocks(),
		Leaves:      len(h.Chain.Leaves()),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// AddNextBlock accepts a fully formed candidate block and submits it for
// admission into the block tree.
func (h Handlers) AddNextBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var block database.Block[currency.Tx]
	if err := web.Decode(r, &block); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	h.Log.Infow("add next block", "traceid", v.TraceID, "block", block.Hash(), "height", block.Header.Height)

	// Any mining in progress is now working against a stale head if this
	// block is admitted, so cancel it once the insert completes.
	if err := h.Chain.Insert(block); err != nil {
		if isAdmissionError(err) {
			return v1.NewRequestError(err, http.StatusUnprocessableEntity)
		}
		return err
	}

	done := h.Worker.SignalCancelMining()
	done()

	resp := struct {
		Status  string `json:"status"`
		BlockID string `json:"block_id"`
	}{
		Status:  "block admitted",
		BlockID: block.Hash(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SubmitBatch queues a batch of transactions to be mined into the next
// block by this node.
func (h Handlers) SubmitBatch(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var batch newBatch
	if err := web.Decode(r, &batch); err != nil {
		return v1.NewRequestError(err, http.StatusBadRequest)
	}

	h.Log.Infow("submit batch", "traceid", v.TraceID, "txs", len(batch.Txs))

	if !h.Worker.SignalMine(batch.Txs) {
		return v1.NewRequestError(errors.New("mining queue is full"), http.StatusTooManyRequests)
	}

	resp := struct {
		Status string `json:"status"`
		Txs    int    `json:"txs"`
	}{
		Status: "batch queued for mining",
		Txs:    len(batch.Txs),
	}

	return web.Respond(ctx, w, resp, http.StatusAccepted)
}

// CancelMining asks the worker to abandon any in-progress mining search.
func (h Handlers) CancelMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	done := h.Worker.SignalCancelMining()
	done()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining cancelled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

// newBatch represents the payload for submitting a batch of transactions.
type newBatch struct {
	Txs []currency.Tx `json:"txs" validate:"required,min=1"`
}

// Validate checks the batch fields against the validation tags.
func (nb newBatch) Validate() error {
	return validate.Check(nb)
}

// isAdmissionError tests if the error is one of the block rejection kinds.
func isAdmissionError(err error) bool {
	switch {
	case errors.Is(err, chain.ErrUnknownParent),
		errors.Is(err, chain.ErrBadHeight),
		errors.Is(err, chain.ErrBodyMismatch),
		errors.Is(err, chain.ErrInvalidConsensus),
		errors.Is(err, chain.ErrInvalidTransition),
		errors.Is(err, chain.ErrStateRootMismatch):
		return true
	}
	return false
}
