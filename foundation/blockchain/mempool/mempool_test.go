package mempool_test

import (
	"sync"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool"
	"github.com/ardanlabs/ledger/foundation/blockchain/mempool/selector"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const to = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"

func sign(t *testing.T, nonce uint64, value uint64) database.SignedTx {
	pk, err := crypto.HexToECDSA("fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959")
	if err != nil {
		t.Fatalf("Should be able to generate a private key: %s", err)
	}

	tx, err := database.NewTx(common.HexToAddress(to), value, nonce).Sign(pk)
	if err != nil {
		t.Fatalf("Should be able to sign transaction: %s", err)
	}

	return tx
}

func TestCRUD(t *testing.T) {
	t.Log("Given the need to validate mempool api.")
	{
		mp := mempool.New()

		t.Logf("\tTest 0:\tWhen adding the same transaction twice.")
		{
			tx := sign(t, 0, 100)

			mp.Upsert(tx.Hash(), tx)
			if n := mp.Upsert(tx.Hash(), tx); n != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have one transaction in the pool: %d", failed, n)
			}
			t.Logf("\t%s\tTest 0:\tShould have one transaction in the pool.", success)
		}

		t.Logf("\tTest 1:\tWhen picking the transactions.")
		{
			tx := sign(t, 1, 100)
			mp.Upsert(tx.Hash(), tx)

			if got := mp.PickAll(); len(got) != 2 {
				t.Fatalf("\t%s\tTest 1:\tShould get back both transactions: %d", failed, len(got))
			}

			if mp.Count() != 2 {
				t.Fatalf("\t%s\tTest 1:\tShould not clear the pool when picking.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get back both transactions.", success)
		}

		t.Logf("\tTest 2:\tWhen deleting and truncating.")
		{
			tx := sign(t, 1, 100)
			mp.Delete(tx.Hash())
			if mp.Count() != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould have one transaction after delete: %d", failed, mp.Count())
			}

			mp.Truncate()
			if mp.Count() != 0 || len(mp.Copy()) != 0 {
				t.Fatalf("\t%s\tTest 2:\tShould have an empty pool.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould be able to remove transactions.", success)
		}
	}
}

func TestConcurrentUpsert(t *testing.T) {
	const goroutines = 100

	txs := make([]database.SignedTx, goroutines)
	for i := range txs {
		txs[i] = sign(t, uint64(i), 1)
	}

	t.Log("Given the need to add transactions from many goroutines.")
	{
		t.Logf("\tTest 0:\tWhen %d goroutines add distinct transactions.", goroutines)
		{
			mp := mempool.New()

			var wg sync.WaitGroup
			for _, tx := range txs {
				wg.Go(func() {
					mp.Upsert(tx.Hash(), tx)
				})
			}
			wg.Wait()

			if mp.Count() != goroutines {
				t.Fatalf("\t%s\tTest 0:\tShould have %d transactions: %d", failed, goroutines, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould have %d transactions.", success, goroutines)
		}
	}
}

func TestStrategies(t *testing.T) {
	type table struct {
		name     string
		strategy string
	}

	tt := []table{
		{name: "hash", strategy: selector.StrategyHash},
		{name: "nonce", strategy: selector.StrategyNonce},
	}

	t.Log("Given the need to order the pool for a block.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen using the %s strategy.", testID, tst.strategy)
				{
					mp, err := mempool.NewWithStrategy(tst.strategy)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to construct the mempool: %v", failed, testID, err)
					}

					for i := range 5 {
						tx := sign(t, uint64(4-i), 10)
						mp.Upsert(tx.Hash(), tx)
					}

					first := mp.PickAll()
					second := mp.PickAll()
					for i := range first {
						if first[i].Hash() != second[i].Hash() {
							t.Fatalf("\t%s\tTest %d:\tShould get the same order every time.", failed, testID)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould get the same order every time.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}

		t.Logf("\tTest %d:\tWhen using an unknown strategy.", len(tt))
		{
			if _, err := mempool.NewWithStrategy("tip"); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould not accept the strategy.", failed, len(tt))
			}
			t.Logf("\t%s\tTest %d:\tShould not accept the strategy.", success, len(tt))
		}
	}
}
