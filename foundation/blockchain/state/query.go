package state

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ethereum/go-ethereum/common"
)

// QueryAccount returns a copy of the account from the database. An unknown
// account has a zero nonce and balance.
func (s *State) QueryAccount(accountID common.Address) database.Account {
	return s.db.GetAccount(accountID)
}

// QueryAccounts returns a copy of every account sorted by address.
func (s *State) QueryAccounts() []database.AccountRecord {
	return s.db.Records()
}

// QueryBlockByHash returns the block with the specified hash.
func (s *State) QueryBlockByHash(hash common.Hash) (database.SealedBlock, bool) {
	return s.chain.GetBlockByHash(hash)
}

// QueryBlockByNumber returns the block with the specified number.
func (s *State) QueryBlockByNumber(num uint64) (database.SealedBlock, error) {
	return s.chain.GetBlockByNumber(num)
}

// QueryBlocks returns a copy of every block in the chain.
func (s *State) QueryBlocks() []database.SealedBlock {
	return s.chain.Blocks()
}

// QueryLatestBlock returns the block at the end of the chain.
func (s *State) QueryLatestBlock() database.SealedBlock {
	return s.chain.LastBlock()
}

// QueryMempool returns the pending transactions in the order they would be
// executed.
func (s *State) QueryMempool() []database.SignedTx {
	return s.mempool.PickAll()
}

// QueryMempoolLength returns the current length of the mempool.
func (s *State) QueryMempoolLength() int {
	return s.mempool.Count()
}

// QueryStats returns the counters for the work performed by the node.
func (s *State) QueryStats() Stats {
	return Stats{
		TxSubmitted:  s.txSubmitted.Load(),
		TxApplied:    s.txApplied.Load(),
		TxRejected:   s.txRejected.Load(),
		BlocksSealed: s.blocksSealed.Load(),
	}
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}
