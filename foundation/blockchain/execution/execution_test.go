package execution_test

import (
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/execution"
	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	pkHexKey = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"
	from     = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
	to       = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"
)

func sign(t *testing.T, toID string, value uint64, nonce uint64) database.SignedTx {
	pk, err := crypto.HexToECDSA(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to generate a private key: %s", err)
	}

	tx, err := database.NewTx(common.HexToAddress(toID), value, nonce).Sign(pk)
	if err != nil {
		t.Fatalf("Should be able to sign transaction: %s", err)
	}

	return tx
}

func newDB(t *testing.T, balance uint64) *database.Database {
	db, err := database.New(genesis.Genesis{Balances: map[string]uint64{from: balance}})
	if err != nil {
		t.Fatalf("Should be able to construct the database: %s", err)
	}

	return db
}

func total(db *database.Database) *uint256.Int {
	sum := new(uint256.Int)
	for _, acc := range db.Copy() {
		sum.Add(sum, acc.Balance)
	}

	return sum
}

// =============================================================================

func Test_Execute(t *testing.T) {
	type table struct {
		name    string
		balance uint64
		txs     []database.SignedTx
		errs    []error
		from    uint64
		to      uint64
		nonce   uint64
	}

	tt := []table{
		{
			name:    "basic",
			balance: 1000,
			txs:     []database.SignedTx{sign(t, to, 100, 0), sign(t, to, 200, 1)},
			errs:    []error{nil, nil},
			from:    700,
			to:      300,
			nonce:   2,
		},
		{
			name:    "nonce",
			balance: 1000,
			txs:     []database.SignedTx{sign(t, to, 100, 1), sign(t, to, 100, 0), sign(t, to, 100, 0)},
			errs:    []error{&execution.InvalidNonceError{}, nil, &execution.InvalidNonceError{}},
			from:    900,
			to:      100,
			nonce:   1,
		},
		{
			name:    "funds",
			balance: 50,
			txs:     []database.SignedTx{sign(t, to, 100, 0), sign(t, to, 50, 0)},
			errs:    []error{execution.ErrInsufficientFunds, nil},
			from:    0,
			to:      50,
			nonce:   1,
		},
		{
			name:    "self",
			balance: 1000,
			txs:     []database.SignedTx{sign(t, from, 400, 0)},
			errs:    []error{nil},
			from:    1000,
			to:      0,
			nonce:   1,
		},
	}

	t.Log("Given the need to execute transactions against account state.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen handling the %s set of transactions.", testID, tst.name)
				{
					db := newDB(t, tst.balance)
					start := total(db)

					for i, tx := range tst.txs {
						before := db.GetAccount(common.HexToAddress(from))

						err := execution.Execute(db, tx)

						switch exp := tst.errs[i]; {
						case exp == nil:
							if err != nil {
								t.Fatalf("\t%s\tTest %d:\tShould execute transaction %d: %v", failed, testID, i, err)
							}

						case execution.IsInvalidNonceError(exp):
							if !execution.IsInvalidNonceError(err) {
								t.Fatalf("\t%s\tTest %d:\tShould get an invalid nonce for transaction %d: %v", failed, testID, i, err)
							}

						default:
							if !errors.Is(err, exp) {
								t.Fatalf("\t%s\tTest %d:\tShould get %q for transaction %d: %v", failed, testID, exp, i, err)
							}
						}

						if err != nil {
							after := db.GetAccount(common.HexToAddress(from))
							if after.Nonce != before.Nonce || !after.Balance.Eq(before.Balance) {
								t.Fatalf("\t%s\tTest %d:\tShould not change the account on a rejected transaction.", failed, testID)
							}
						}
					}
					t.Logf("\t%s\tTest %d:\tShould get the expected result for every transaction.", success, testID)

					fromAcc := db.GetAccount(common.HexToAddress(from))
					if fromAcc.Balance.Uint64() != tst.from || fromAcc.Nonce != tst.nonce {
						t.Logf("\t%s\tTest %d:\tgot: %d:%d", failed, testID, fromAcc.Balance.Uint64(), fromAcc.Nonce)
						t.Logf("\t%s\tTest %d:\texp: %d:%d", failed, testID, tst.from, tst.nonce)
						t.Fatalf("\t%s\tTest %d:\tShould get the right sender account.", failed, testID)
					}

					if tst.name != "self" {
						if got := db.GetAccount(common.HexToAddress(to)).Balance.Uint64(); got != tst.to {
							t.Fatalf("\t%s\tTest %d:\tShould get the right receiver balance: %d", failed, testID, got)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould get the right balances.", success, testID)

					if !total(db).Eq(start) {
						t.Fatalf("\t%s\tTest %d:\tShould not create or destroy value.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould not create or destroy value.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_NonceDetails(t *testing.T) {
	db := newDB(t, 1000)

	t.Log("Given the need to report a bad nonce.")
	{
		t.Logf("\tTest 0:\tWhen the nonce is ahead of the account.")
		{
			err := execution.Execute(db, sign(t, to, 1, 5))

			var ine *execution.InvalidNonceError
			if !errors.As(err, &ine) {
				t.Fatalf("\t%s\tTest 0:\tShould get an invalid nonce error: %v", failed, err)
			}

			if ine.Expected != 0 || ine.Got != 5 {
				t.Fatalf("\t%s\tTest 0:\tShould get expected 0 got 5: %v", failed, ine)
			}
			t.Logf("\t%s\tTest 0:\tShould get the expected and provided nonce.", success)
		}

		t.Logf("\tTest 1:\tWhen the signature can't be trusted.")
		{
			tx := sign(t, to, 1, 0)
			tx.RecoveryID = 9

			if err := execution.Execute(db, tx); !errors.Is(err, execution.ErrBadSignature) {
				t.Fatalf("\t%s\tTest 1:\tShould get a bad signature error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get a bad signature error.", success)
		}
	}
}

func Test_GuardedBatch(t *testing.T) {
	db := newDB(t, 1000)

	txs := []database.SignedTx{sign(t, to, 100, 0), sign(t, to, 100, 5), sign(t, to, 100, 1)}

	t.Log("Given the need to execute a batch of transactions.")
	{
		t.Logf("\tTest 0:\tWhen one transaction in the batch fails.")
		{
			var errs []error
			db.GuardedBatch(func(accounts database.Accounts) {
				for _, tx := range txs {
					errs = append(errs, execution.Execute(accounts, tx))
				}
			})

			if errs[0] != nil || errs[1] == nil || errs[2] != nil {
				t.Fatalf("\t%s\tTest 0:\tShould only fail the middle transaction: %v", failed, errs)
			}

			acc := db.GetAccount(common.HexToAddress(from))
			if acc.Nonce != 2 || acc.Balance.Uint64() != 800 {
				t.Fatalf("\t%s\tTest 0:\tShould apply the other transactions: %d:%d", failed, acc.Balance.Uint64(), acc.Nonce)
			}
			t.Logf("\t%s\tTest 0:\tShould skip the failed transaction.", success)
		}
	}
}
