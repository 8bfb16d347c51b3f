package database

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Tx is the transactional information between two parties. The field order
// defines the wire format.
type Tx struct {
	To    common.Address `json:"to"`    // Account receiving the value.
	Value *uint256.Int   `json:"value"` // Monetary value moved by this transaction.
	Nonce uint64         `json:"nonce"` // Must match the sender's account nonce.
}

// NewTx constructs a new transaction.
func NewTx(to common.Address, value uint64, nonce uint64) Tx {
	return Tx{
		To:    to,
		Value: uint256.NewInt(value),
		Nonce: nonce,
	}
}

// DecodeTx decodes a transaction from its canonical encoding.
func DecodeTx(b []byte) (Tx, error) {
	var tx Tx
	if err := rlp.DecodeBytes(b, &tx); err != nil {
		return Tx{}, toDecodeError(err)
	}

	return tx, nil
}

// Encode returns the canonical encoding of the transaction.
func (tx Tx) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(tx)
}

// Hash returns the Keccak-256 hash of the canonical encoding. This is the
// hash the sender signs.
func (tx Tx) Hash() common.Hash {

	// None of the field types can fail to encode.
	b, err := tx.Encode()
	if err != nil {
		return common.Hash{}
	}

	return signature.Hash(b)
}

// Sign uses the specified private key to sign the transaction.
func (tx Tx) Sign(privateKey *ecdsa.PrivateKey) (SignedTx, error) {
	sig, recID, err := signature.Sign(tx.Hash(), privateKey)
	if err != nil {
		return SignedTx{}, err
	}

	signedTx := SignedTx{
		Tx:         tx,
		Signature:  sig,
		RecoveryID: recID,
	}

	return signedTx, nil
}

// =============================================================================

// SignedTx is a signed version of the transaction. This is how clients like
// a wallet provide transactions for inclusion into the blockchain.
type SignedTx struct {
	Tx         Tx
	Signature  [signature.Length]byte
	RecoveryID byte
}

// DecodeSignedTx decodes a signed transaction from its canonical encoding.
func DecodeSignedTx(b []byte) (SignedTx, error) {
	var tx SignedTx
	if err := rlp.DecodeBytes(b, &tx); err != nil {
		return SignedTx{}, toDecodeError(err)
	}

	return tx, nil
}

// Encode returns the canonical encoding of the signed transaction. The
// transaction is nested as its own list ahead of the signature values.
func (tx SignedTx) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(tx)
}

// Hash returns the identity hash used to key the transaction in the mempool
// and inside a block.
func (tx SignedTx) Hash() common.Hash {
	return signature.Hash(tx.Tx.Hash().Bytes(), tx.Signature[:], []byte{tx.RecoveryID})
}

// FromAccount recovers the account that signed the transaction.
func (tx SignedTx) FromAccount() (common.Address, error) {
	addr, err := signature.FromAddress(tx.Tx.Hash(), tx.Signature, tx.RecoveryID)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return addr, nil
}

// Validate verifies the transaction has a proper signature that conforms to
// our standards and that a sender can be recovered from it. Account state is
// not consulted.
func (tx SignedTx) Validate() error {
	_, err := tx.FromAccount()
	return err
}

// SignatureString returns the signature as a string.
func (tx SignedTx) SignatureString() string {
	return signature.SignatureString(tx.Signature, tx.RecoveryID)
}

// String implements the fmt.Stringer interface for logging.
func (tx SignedTx) String() string {
	from := "unknown"
	if addr, err := tx.FromAccount(); err == nil {
		from = addr.Hex()
	}

	return fmt.Sprintf("%s:%d", from, tx.Tx.Nonce)
}
