package selector

import (
	"sort"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
)

// nonceSelect returns every transaction while respecting the nonce order for
// each sender. A sender can have several sequential transactions applied in
// the same block.
var nonceSelect = func(m map[common.Address][]database.SignedTx) []database.SignedTx {

	/*
		Bill: {Nonce: 1, Hash: 0x9c..}
			  {Nonce: 0, Hash: 0x4a..}
		Pavl: {Nonce: 0, Hash: 0xd1..}
		Edua: {Nonce: 1, Hash: 0x07..}
			  {Nonce: 0, Hash: 0x3f..}
	*/

	// Sort the transactions per account by nonce.
	for key := range m {
		if len(m[key]) > 1 {
			sort.Sort(byNonce(m[key]))
		}
	}

	// Pick the first transaction in the slice for each account. Each iteration
	// represents a new row of selections. Keep doing that until all the
	// transactions have been selected.
	var rows [][]database.SignedTx
	for {
		var row []database.SignedTx
		for key := range m {
			if len(m[key]) > 0 {
				row = append(row, m[key][0])
				m[key] = m[key][1:]
			}
		}
		if row == nil {
			break
		}
		rows = append(rows, row)
	}

	/*
		0: Edua: {Nonce: 0, Hash: 0x3f..}
		0: Bill: {Nonce: 0, Hash: 0x4a..}
		0: Pavl: {Nonce: 0, Hash: 0xd1..}
		1: Edua: {Nonce: 1, Hash: 0x07..}
		1: Bill: {Nonce: 1, Hash: 0x9c..}
	*/

	// Map iteration is random so each row is sorted by identity hash.
	var final []database.SignedTx
	for _, row := range rows {
		sort.Sort(byHash(row))
		final = append(final, row...)
	}

	return final
}
