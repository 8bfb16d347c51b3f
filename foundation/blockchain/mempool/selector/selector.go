// Package selector provides different transaction ordering algorithms.
package selector

import (
	"bytes"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
)

// List of different select strategies.
const (
	StrategyHash  = "hash"
	StrategyNonce = "nonce"
)

// Map of different select strategies with functions.
var strategies = map[string]Func{
	StrategyHash:  hashSelect,
	StrategyNonce: nonceSelect,
}

// Func defines a function that takes a mempool of transactions grouped by
// sender and returns all of them in the order defined by the strategy. The
// ordering must be deterministic for the same set of transactions.
type Func func(transactions map[common.Address][]database.SignedTx) []database.SignedTx

// Retrieve returns the specified select strategy function.
func Retrieve(strategy string) (Func, error) {
	fn, exists := strategies[strategy]
	if !exists {
		return nil, fmt.Errorf("strategy %q does not exist", strategy)
	}
	return fn, nil
}

// =============================================================================

// byNonce provides sorting support by the transaction nonce value.
type byNonce []database.SignedTx

// Len returns the number of transactions in the list.
func (bn byNonce) Len() int {
	return len(bn)
}

// Less helps to sort the list by nonce in ascending order to keep the
// transactions in the right order of processing. Equal nonces fall back to
// the identity hash.
func (bn byNonce) Less(i, j int) bool {
	if bn[i].Tx.Nonce != bn[j].Tx.Nonce {
		return bn[i].Tx.Nonce < bn[j].Tx.Nonce
	}
	return lessHash(bn[i], bn[j])
}

// Swap moves transactions in the order of the nonce value.
func (bn byNonce) Swap(i, j int) {
	bn[i], bn[j] = bn[j], bn[i]
}

// =============================================================================

// byHash provides sorting support by the transaction identity hash.
type byHash []database.SignedTx

// Len returns the number of transactions in the list.
func (bh byHash) Len() int {
	return len(bh)
}

// Less helps to sort the list by identity hash in ascending order.
func (bh byHash) Less(i, j int) bool {
	return lessHash(bh[i], bh[j])
}

// Swap moves transactions in the order of the identity hash.
func (bh byHash) Swap(i, j int) {
	bh[i], bh[j] = bh[j], bh[i]
}

func lessHash(a, b database.SignedTx) bool {
	ha := a.Hash()
	hb := b.Hash()
	return bytes.Compare(ha[:], hb[:]) < 0
}
