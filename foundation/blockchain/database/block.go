package database

import (
	"encoding/binary"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/signature"
	"github.com/ethereum/go-ethereum/common"
)

// Block represents a group of transactions batched together. A block has no
// identity until it is sealed.
type Block struct {
	Number     uint64      `json:"number"`      // Block number in the chain, genesis is 0.
	ParentHash common.Hash `json:"parent_hash"` // Hash of the previous block in the chain.
	TimeStamp  uint64      `json:"timestamp"`   // Time the block was sealed, not part of the hash.
	Trans      []SignedTx  `json:"trans"`
}

// NewBlock constructs the block that follows the specified parent.
func NewBlock(parent SealedBlock, trans []SignedTx) Block {
	return Block{
		Number:     parent.Number + 1,
		ParentHash: parent.Hash(),
		TimeStamp:  uint64(time.Now().UTC().Unix()),
		Trans:      trans,
	}
}

// =============================================================================

// SealedBlock is a block bundled with its hash. The only way to construct
// one is by calling Seal. The zero value has no hash and is not sealed, use
// IsSealed to tell the two apart.
type SealedBlock struct {
	Block
	hash common.Hash
}

// Seal calculates the hash for the block and returns the block in a form
// that can be appended to a chain.
func Seal(block Block) SealedBlock {
	trans := make([]SignedTx, len(block.Trans))
	copy(trans, block.Trans)
	block.Trans = trans

	data := make([][]byte, 0, 2+len(trans))
	data = append(data, binary.BigEndian.AppendUint64(nil, block.Number))
	data = append(data, block.ParentHash.Bytes())
	for _, tx := range trans {
		data = append(data, tx.Hash().Bytes())
	}

	return SealedBlock{
		Block: block,
		hash:  signature.Hash(data...),
	}
}

// Hash returns the hash calculated when the block was sealed.
func (sb SealedBlock) Hash() common.Hash {
	return sb.hash
}

// IsSealed reports whether the block was produced by Seal.
func (sb SealedBlock) IsSealed() bool {
	return sb.hash != (common.Hash{})
}

// Genesis returns the sealed genesis block.
func Genesis() SealedBlock {
	return Seal(Block{})
}
