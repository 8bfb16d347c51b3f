package worker

import (
	"time"
)

// miningOperations runs a mining cycle on every tick of the heartbeat or
// when a cycle is signaled.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case <-w.startMining:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// runMiningOperation executes one mining cycle. A block is sealed even when
// the mempool is empty.
func (w *Worker) runMiningOperation() {
	w.evHandler("worker: runMiningOperation: MINING: started")
	defer w.evHandler("worker: runMiningOperation: MINING: completed")

	t := time.Now()
	block := w.state.MineNewBlock()
	duration := time.Since(t)

	w.evHandler("worker: runMiningOperation: MINING: block[%d] Txs[%d] duration[%v]", block.Number, len(block.Trans), duration)
}
