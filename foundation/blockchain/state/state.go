// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/ardanlabs/ledger/foundation/blockchain/chain"
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool/selector"
)

// EventHandler defines a function that is called when events
// occur in the processing of transactions and blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for mining.
type Worker interface {
	Shutdown()
	SignalStartMining()
}

// =============================================================================

// Config represents the configuration required to start
// the blockchain node.
type Config struct {
	Genesis        genesis.Genesis
	SelectStrategy string
	EvHandler      EventHandler
}

// Stats represents counters about the work performed by the node.
type Stats struct {
	TxSubmitted  uint64
	TxApplied    uint64
	TxRejected   uint64
	BlocksSealed uint64
}

// State manages the blockchain database.
type State struct {
	mu        sync.Mutex
	evHandler EventHandler

	genesis genesis.Genesis
	mempool *mempool.Mempool
	db      *database.Database
	chain   *chain.Chain

	txSubmitted  atomic.Uint64
	txApplied    atomic.Uint64
	txRejected   atomic.Uint64
	blocksSealed atomic.Uint64

	Worker Worker
}

// New constructs a new blockchain for data management.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	// Create a new database to manage accounts who transact on
	// the blockchain and apply the genesis balances.
	db, err := database.New(cfg.Genesis)
	if err != nil {
		return nil, err
	}

	// Construct a mempool with the specified select strategy.
	strategy := cfg.SelectStrategy
	if strategy == "" {
		strategy = selector.StrategyHash
	}
	mempool, err := mempool.NewWithStrategy(strategy)
	if err != nil {
		return nil, err
	}

	// Create the State to provide support for managing the blockchain.
	state := State{
		evHandler: ev,
		genesis:   cfg.Genesis,
		mempool:   mempool,
		db:        db,
		chain:     chain.New(database.Genesis()),
	}

	// The Worker is not set here. The call to worker.Run will assign itself
	// and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {

	// Stop all blockchain writing activity.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}
