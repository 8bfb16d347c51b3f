// Package mempool maintains the mempool for the blockchain.
package mempool

import (
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool/selector"
	"github.com/ethereum/go-ethereum/common"
)

// Mempool represents a cache of transactions keyed by their identity hash.
type Mempool struct {
	mu       sync.RWMutex
	pool     map[common.Hash]database.SignedTx
	selectFn selector.Func
}

// New constructs a new mempool using the default select strategy.
func New() *Mempool {
	mp, _ := NewWithStrategy(selector.StrategyHash)
	return mp
}

// NewWithStrategy constructs a new mempool with specified select strategy.
func NewWithStrategy(strategy string) (*Mempool, error) {
	selectFn, err := selector.Retrieve(strategy)
	if err != nil {
		return nil, err
	}

	mp := Mempool{
		pool:     make(map[common.Hash]database.SignedTx),
		selectFn: selectFn,
	}

	return &mp, nil
}

// Count returns the current number of transaction in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Upsert adds or replaces a transaction in the mempool and returns the
// size of the pool. Adding the same transaction twice keeps one copy.
func (mp *Mempool) Upsert(hash common.Hash, tx database.SignedTx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool[hash] = tx

	return len(mp.pool)
}

// Delete removes a transaction from the mempool.
func (mp *Mempool) Delete(hash common.Hash) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	delete(mp.pool, hash)
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = make(map[common.Hash]database.SignedTx)
}

// Copy returns a copy of the transactions in the pool in no specific order.
func (mp *Mempool) Copy() []database.SignedTx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	cpy := make([]database.SignedTx, 0, len(mp.pool))
	for _, tx := range mp.pool {
		cpy = append(cpy, tx)
	}

	return cpy
}

// PickAll uses the configured select strategy to return every transaction
// in the pool ordered for the next block. The pool is not cleared.
func (mp *Mempool) PickAll() []database.SignedTx {
	txs := mp.Copy()

	// Group the transactions by sender outside of the lock, recovering the
	// sender is not cheap.
	m := make(map[common.Address][]database.SignedTx)
	for _, tx := range txs {
		from, _ := tx.FromAccount()
		m[from] = append(m[from], tx)
	}

	return mp.selectFn(m)
}
