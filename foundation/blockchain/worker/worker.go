// Package worker implements the background mining workflow for a chain.
// Mining is computationally unbounded so it runs on its own goroutine and
// only touches the chain once a completed block is ready for insert.
package worker

import (
	"sync"

	"github.com/ardanlabs/chain/foundation/blockchain/chain"
	"github.com/ardanlabs/chain/foundation/blockchain/merkle"
)

// maxBatchRequests represents the max number of pending extrinsic batches
// that can be outstanding before new batches are dropped. To keep this
// simple, a buffered channel of this arbitrary number is being used.
const maxBatchRequests = 100

// Worker manages the mining goroutine for one chain.
type Worker[S any, E merkle.Hashable[E]] struct {
	chain        *chain.Chain[S, E]
	wg           sync.WaitGroup
	shut         chan struct{}
	batches      chan []E
	cancelMining chan chan struct{}
	evHandler    chain.EventHandler
}

// Run constructs a worker for the specified chain and starts the mining
// operation goroutine.
func Run[S any, E merkle.Hashable[E]](c *chain.Chain[S, E], evHandler chain.EventHandler) *Worker[S, E] {
	ev := func(v string, args ...any) {
		if evHandler != nil {
			evHandler(v, args...)
		}
	}

	w := Worker[S, E]{
		chain:        c,
		shut:         make(chan struct{}),
		batches:      make(chan []E, maxBatchRequests),
		cancelMining: make(chan chan struct{}, 1),
		evHandler:    ev,
	}

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningOperations()
	}()

	<-hasStarted

	return &w
}

// Shutdown terminates the goroutine performing work.
func (w *Worker[S, E]) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: signal cancel mining")
	done := w.SignalCancelMining()
	done()

	w.evHandler("worker: shutdown: terminate goroutine")
	close(w.shut)
	w.wg.Wait()
}

// SignalMine queues a batch of extrinsics to be mined into the next block.
// The batch is dropped and false returned when the queue is full.
func (w *Worker[S, E]) SignalMine(batch []E) bool {
	select {
	case w.batches <- batch:
		w.evHandler("worker: signalMine: batch queued: extrinsics[%d]", len(batch))
		return true
	default:
		w.evHandler("worker: signalMine: WARNING: batch queue full, batch dropped")
		return false
	}
}

// SignalCancelMining signals the G executing the runMiningOperation
// function to stop immediately. That G will not return from the function
// until done is called. This allows the caller to complete any state
// changes before a new mining operation takes place.
func (w *Worker[S, E]) SignalCancelMining() (done func()) {
	wait := make(chan struct{})

	select {
	case w.cancelMining <- wait:
	default:
	}
	w.evHandler("worker: signalCancelMining: cancel mining signaled")

	return func() { close(wait) }
}

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker[S, E]) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
