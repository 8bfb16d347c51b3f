package nameservice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/ledger/foundation/nameservice"
	"github.com/ethereum/go-ethereum/common"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Lookup(t *testing.T) {
	root := t.TempDir()

	key := []byte("fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959")
	if err := os.WriteFile(filepath.Join(root, "pavel.ecdsa"), key, 0600); err != nil {
		t.Fatalf("Should be able to write the key file: %s", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip"), 0600); err != nil {
		t.Fatalf("Should be able to write the text file: %s", err)
	}

	t.Log("Given the need to look up account names.")
	{
		ns, err := nameservice.New(root)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the name service: %v", failed, err)
		}

		t.Logf("\tTest 0:\tWhen looking up a known account.")
		{
			got := ns.Lookup(common.HexToAddress("0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"))
			if got != "pavel" {
				t.Fatalf("\t%s\tTest 0:\tShould get the name: %s", failed, got)
			}
			t.Logf("\t%s\tTest 0:\tShould get the name.", success)
		}

		t.Logf("\tTest 1:\tWhen looking up an unknown account.")
		{
			const unknown = "0xF01813E4B85e178A83e29B8E7bF26BD830a25f32"
			if got := ns.Lookup(common.HexToAddress(unknown)); got != unknown {
				t.Fatalf("\t%s\tTest 1:\tShould get the address back: %s", failed, got)
			}

			if len(ns.Copy()) != 1 {
				t.Fatalf("\t%s\tTest 1:\tShould only load the key files.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get the address back.", success)
		}
	}
}
