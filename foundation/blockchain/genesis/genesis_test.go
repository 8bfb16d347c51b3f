package genesis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Load(t *testing.T) {
	t.Log("Given the need to load the genesis file.")
	{
		t.Logf("\tTest 0:\tWhen loading the node's genesis file.")
		{
			gen, err := genesis.Load("../../../zblock/genesis.json")
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to load the file: %s", failed, err)
			}

			if got := gen.Balances["0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"]; got != 1000000 {
				t.Fatalf("\t%s\tTest 0:\tShould get the starting balance: %d", failed, got)
			}
			if gen.Date.IsZero() {
				t.Fatalf("\t%s\tTest 0:\tShould get the date.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the starting balances.", success)
		}

		t.Logf("\tTest 1:\tWhen the file is missing or broken.")
		{
			if _, err := genesis.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould fail for a missing file.", failed)
			}

			path := filepath.Join(t.TempDir(), "genesis.json")
			if err := os.WriteFile(path, []byte(`{"balances":`), 0600); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to write the file: %s", failed, err)
			}
			if _, err := genesis.Load(path); err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould fail for a broken file.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould return the errors.", success)
		}
	}
}
