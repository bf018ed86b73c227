package worker_test

import (
	"testing"
	"time"

	"github.com/ardanlabs/chain/foundation/blockchain/chain"
	"github.com/ardanlabs/chain/foundation/blockchain/machine/tally"
	"github.com/ardanlabs/chain/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// =============================================================================

func Test_MineBatch(t *testing.T) {
	t.Log("Given the need to mine queued batches in the background.")
	{
		t.Logf("\tTest 0:\tWhen queueing a batch at difficulty 1.")
		{
			c, err := chain.New(chain.Config[tally.State, tally.Value]{
				GenesisState: tally.State{Sum: 0, Product: 1},
				Difficulty:   1,
				Machine:      tally.New(),
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the chain: %v", failed, err)
			}

			w := worker.Run(c, nil)
			defer w.Shutdown()

			if !w.SignalMine([]tally.Value{2, 3}) {
				t.Fatalf("\t%s\tTest 0:\tShould be able to queue the batch.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to queue the batch.", success)

			// Difficulty 1 solves on the first attempt so the block lands
			// almost immediately. Poll with a generous deadline.
			deadline := time.Now().Add(5 * time.Second)
			for c.KnownBlocks() < 2 {
				if time.Now().After(deadline) {
					t.Fatalf("\t%s\tTest 0:\tShould admit the mined block before the deadline.", failed)
				}
				time.Sleep(10 * time.Millisecond)
			}
			t.Logf("\t%s\tTest 0:\tShould admit the mined block.", success)

			_, state, err := c.HeadState()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to read the head state: %v", failed, err)
			}
			if state != (tally.State{Sum: 5, Product: 6}) {
				t.Fatalf("\t%s\tTest 0:\tShould carry the batch in the mined block: %+v", failed, state)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the batch in the mined block.", success)
		}
	}
}

func Test_CancelMining(t *testing.T) {
	t.Log("Given the need to abandon a mining operation on demand.")
	{
		t.Logf("\tTest 0:\tWhen the difficulty is unreachably high.")
		{
			c, err := chain.New(chain.Config[tally.State, tally.Value]{
				GenesisState: tally.State{Sum: 0, Product: 1},
				Difficulty:   1 << 62,
				Machine:      tally.New(),
			})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the chain: %v", failed, err)
			}

			w := worker.Run(c, nil)
			defer w.Shutdown()

			if !w.SignalMine([]tally.Value{2}) {
				t.Fatalf("\t%s\tTest 0:\tShould be able to queue the batch.", failed)
			}

			// Give the mining goroutine a moment to start searching.
			time.Sleep(100 * time.Millisecond)

			done := w.SignalCancelMining()
			done()
			t.Logf("\t%s\tTest 0:\tShould be able to signal the cancellation.", success)

			if c.KnownBlocks() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould not admit a block for the cancelled batch: %d", failed, c.KnownBlocks())
			}
			t.Logf("\t%s\tTest 0:\tShould not admit a block for the cancelled batch.", success)
		}
	}
}
