package selector

import (
	"sort"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
)

// hashSelect returns every transaction sorted by identity hash. The same set
// of transactions always produces the same block.
var hashSelect = func(m map[common.Address][]database.SignedTx) []database.SignedTx {
	var final []database.SignedTx
	for _, txs := range m {
		final = append(final, txs...)
	}

	sort.Sort(byHash(final))

	return final
}
