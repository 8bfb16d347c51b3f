package signature_test

import (
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/signature"
	"github.com/ethereum/go-ethereum/crypto"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

const (
	pkHexKey = "fae85851bdf5c9f49923722ce38f3c1defcfd3619ef5453230a58ad805499959"
	from     = "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4"
)

// =============================================================================

func Test_Signing(t *testing.T) {
	pk, err := crypto.HexToECDSA(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to generate a private key: %s", err)
	}

	hash := signature.Hash([]byte("Bill"))

	sig, recID, err := signature.Sign(hash, pk)
	if err != nil {
		t.Fatalf("Should be able to sign data: %s", err)
	}

	if err := signature.VerifySignature(sig, recID); err != nil {
		t.Fatalf("Should be able to verify the signature: %s", err)
	}

	addr, err := signature.FromAddress(hash, sig, recID)
	if err != nil {
		t.Fatalf("Should be able to generate from address: %s", err)
	}

	if from != addr.Hex() {
		t.Logf("got: %s", addr.Hex())
		t.Logf("exp: %s", from)
		t.Fatalf("Should get back the right address.")
	}

	str := signature.SignatureString(sig, recID)
	sig2, recID2, err := signature.FromSignatureString(str)
	if err != nil {
		t.Fatalf("Should be able to parse the signature string: %s", err)
	}

	if sig2 != sig || recID2 != recID {
		t.Logf("got: %s", signature.SignatureString(sig2, recID2)[:10])
		t.Logf("exp: %s", str[:10])
		t.Fatalf("Should get back the right signature from the string.")
	}
}

func Test_Hash(t *testing.T) {
	const emptyHash = "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

	h := signature.Hash()
	if h.Hex() != emptyHash {
		t.Logf("got: %s", h.Hex())
		t.Logf("exp: %s", emptyHash)
		t.Fatalf("Should get back the right hash: %s", h.Hex()[:6])
	}

	h1 := signature.Hash([]byte("Bill"), []byte("Jill"))
	h2 := signature.Hash([]byte("BillJill"))
	if h1 != h2 {
		t.Logf("got: %s", h1.Hex())
		t.Logf("exp: %s", h2.Hex())
		t.Fatalf("Should get the same hash for the concatenated data.")
	}
}

func Test_SignConsistency(t *testing.T) {
	pk, err := crypto.HexToECDSA(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to generate a private key: %s", err)
	}

	hash1 := signature.Hash([]byte("Bill"))
	hash2 := signature.Hash([]byte("Jill"))

	sig1, recID1, err := signature.Sign(hash1, pk)
	if err != nil {
		t.Fatalf("Should be able to sign data: %s", err)
	}

	addr1, err := signature.FromAddress(hash1, sig1, recID1)
	if err != nil {
		t.Fatalf("Should be able to generate an address: %s", err)
	}

	sig2, recID2, err := signature.Sign(hash2, pk)
	if err != nil {
		t.Fatalf("Should be able to sign data: %s", err)
	}

	addr2, err := signature.FromAddress(hash2, sig2, recID2)
	if err != nil {
		t.Fatalf("Should be able to generate an address: %s", err)
	}

	if addr1 != addr2 {
		t.Errorf("Got: %s", addr1)
		t.Errorf("Got: %s", addr2)
		t.Fatalf("Should have the same address.")
	}
}

func Test_BadSignatures(t *testing.T) {
	pk, err := crypto.HexToECDSA(pkHexKey)
	if err != nil {
		t.Fatalf("Should be able to generate a private key: %s", err)
	}

	hash := signature.Hash([]byte("Bill"))

	sig, recID, err := signature.Sign(hash, pk)
	if err != nil {
		t.Fatalf("Should be able to sign data: %s", err)
	}

	t.Log("Given the need to reject signatures that can't be trusted.")
	{
		t.Logf("\tTest 0:\tWhen handling a recovery id out of range.")
		{
			for _, id := range []byte{2, 27, 255} {
				if _, err := signature.FromAddress(hash, sig, id); !errors.Is(err, signature.ErrInvalidRecoveryID) {
					t.Fatalf("\t%s\tTest 0:\tShould reject recovery id %d: %v", failed, id, err)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould reject the recovery ids.", success)
		}

		t.Logf("\tTest 1:\tWhen handling a zero signature.")
		{
			var zero [signature.Length]byte
			if err := signature.VerifySignature(zero, recID); !errors.Is(err, signature.ErrInvalidSignatureValues) {
				t.Fatalf("\t%s\tTest 1:\tShould reject the zero signature: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould reject the zero signature.", success)
		}

		t.Logf("\tTest 2:\tWhen flipping every bit of the signature.")
		{
			for i := 0; i < signature.Length*8; i++ {
				flipped := sig
				flipped[i/8] ^= 1 << (i % 8)

				addr, err := signature.FromAddress(hash, flipped, recID)
				if err == nil && addr.Hex() == from {
					t.Fatalf("\t%s\tTest 2:\tShould not recover the signer with bit %d flipped.", failed, i)
				}
			}
			t.Logf("\t%s\tTest 2:\tShould never recover the signer from a flipped signature.", success)
		}
	}
}
