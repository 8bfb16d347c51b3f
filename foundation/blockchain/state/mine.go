package state

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/execution"
)

// MineNewBlock executes the transactions in the mempool, seals a block with
// the ones that were applied and appends it to the chain. A block is sealed
// even when there is nothing to execute. Transactions that fail execution
// are dropped.
func (s *State) MineNewBlock() database.SealedBlock {
	s.mu.Lock()
	defer s.mu.Unlock()

	trans := s.mempool.PickAll()

	s.evHandler("state: MineNewBlock: MINING: picked Txs[%d]", len(trans))

	var applied []database.SignedTx
	if len(trans) > 0 {
		s.db.GuardedBatch(func(accounts database.Accounts) {
			for _, tx := range trans {
				if err := execution.Execute(accounts, tx); err != nil {
					s.evHandler("state: MineNewBlock: MINING: WARNING: tx[%s] hash[%s] dropped: %s", tx, tx.Hash(), err)
					s.txRejected.Add(1)
					continue
				}
				applied = append(applied, tx)
			}
		})
	}

	// The parent is read here and nothing else appends to the chain while
	// the state lock is held.
	block := database.Seal(database.NewBlock(s.chain.LastBlock(), applied))
	if err := s.chain.Append(block); err != nil {
		s.evHandler("state: MineNewBlock: MINING: ERROR: %s", err)
	}

	// Only the transactions picked for this block are removed. Anything
	// submitted while the block was being built waits for the next one.
	for _, tx := range trans {
		s.mempool.Delete(tx.Hash())
	}

	s.txApplied.Add(uint64(len(applied)))
	s.blocksSealed.Add(1)

	s.evHandler("state: MineNewBlock: MINING: sealed block[%d] hash[%s] Txs[%d]", block.Number, block.Hash(), len(applied))

	return block
}
