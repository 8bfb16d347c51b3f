// Package chain maintains the ordered history of sealed blocks in memory.
package chain

import (
	"errors"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
)

// Set of errors returned by the chain.
var (
	ErrNotFound  = errors.New("block does not exist")
	ErrNotSealed = errors.New("block is not sealed")
)

// Chain represents the blocks sealed by this node, genesis first.
type Chain struct {
	mu     sync.RWMutex
	blocks []database.SealedBlock
}

// New constructs a chain holding the specified genesis block.
func New(genesis database.SealedBlock) *Chain {
	return &Chain{
		blocks: []database.SealedBlock{genesis},
	}
}

// Append adds a sealed block to the end of the chain. Linking the block to
// the current last block is the caller's job.
func (c *Chain) Append(block database.SealedBlock) error {
	if !block.IsSealed() {
		return ErrNotSealed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.blocks = append(c.blocks, block)

	return nil
}

// LastBlock returns the block at the end of the chain.
func (c *Chain) LastBlock() database.SealedBlock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1]
}

// Height returns the number of blocks after genesis.
func (c *Chain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return uint64(len(c.blocks) - 1)
}

// GetBlockByHash searches the chain for the block with the specified hash.
// There is no index so this is a linear scan. On a miss the zero value is
// returned, which is not sealed.
func (c *Chain) GetBlockByHash(hash common.Hash) (database.SealedBlock, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, block := range c.blocks {
		if block.Hash() == hash {
			return block, true
		}
	}

	return database.SealedBlock{}, false
}

// GetBlockByNumber returns the block at the specified position. Blocks are
// appended in number order so the number is the index.
func (c *Chain) GetBlockByNumber(num uint64) (database.SealedBlock, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if num >= uint64(len(c.blocks)) {
		return database.SealedBlock{}, ErrNotFound
	}

	return c.blocks[num], nil
}

// Blocks returns a copy of the blocks in the chain.
func (c *Chain) Blocks() []database.SealedBlock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blocks := make([]database.SealedBlock, len(c.blocks))
	copy(blocks, c.blocks)

	return blocks
}
