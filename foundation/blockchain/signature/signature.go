// Package signature provides helper functions for handling the blockchain
// hashing and signature needs.
package signature

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ZeroHash represents a hash code of zeros.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Length is the number of bytes in a signature without the recovery id. The
// signature is stored in the [R|S] format.
const Length = crypto.SignatureLength - 1

// Set of errors returned when a signature can't be trusted.
var (
	ErrInvalidRecoveryID      = errors.New("invalid recovery id")
	ErrInvalidSignatureValues = errors.New("invalid signature values")
)

// =============================================================================

// Hash returns the Keccak-256 hash of the concatenated data.
func Hash(data ...[]byte) common.Hash {
	return crypto.Keccak256Hash(data...)
}

// Sign uses the specified private key to sign the hash. The signature is
// returned in the [R|S] format with the recovery id split out.
func Sign(hash common.Hash, privateKey *ecdsa.PrivateKey) (sig [Length]byte, recID byte, err error) {

	// Sign the hash with the private key to produce a signature.
	raw, err := crypto.Sign(hash.Bytes(), privateKey)
	if err != nil {
		return sig, 0, err
	}

	// Extract the public key from the hash and the signature.
	publicKey, err := crypto.SigToPub(hash.Bytes(), raw)
	if err != nil {
		return sig, 0, err
	}

	// Check the public key extracted from the hash and signature.
	rs := raw[:crypto.RecoveryIDOffset]
	if !crypto.VerifySignature(crypto.FromECDSAPub(publicKey), hash.Bytes(), rs) {
		return sig, 0, errors.New("invalid signature")
	}

	copy(sig[:], rs)

	return sig, raw[crypto.RecoveryIDOffset], nil
}

// VerifySignature verifies the signature conforms to our standards.
func VerifySignature(sig [Length]byte, recID byte) error {

	// Check the recovery id is either 0 or 1.
	if recID != 0 && recID != 1 {
		return ErrInvalidRecoveryID
	}

	// Check the signature values are valid.
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	if !crypto.ValidateSignatureValues(recID, r, s, false) {
		return ErrInvalidSignatureValues
	}

	return nil
}

// FromAddress extracts the address for the account that signed the hash.
func FromAddress(hash common.Hash, sig [Length]byte, recID byte) (common.Address, error) {

	// NOTE: If the same exact hash for the given signature is not provided
	// we will get the wrong from address. There is no way to check this on
	// the node since we don't have a copy of the public key used. The public
	// key is being extracted from the hash and signature.

	if err := VerifySignature(sig, recID); err != nil {
		return common.Address{}, err
	}

	// Capture the public key associated with this hash and signature.
	publicKey, err := crypto.SigToPub(hash.Bytes(), ToSignatureBytes(sig, recID))
	if err != nil {
		return common.Address{}, err
	}

	// The address is the last 20 bytes of the hash of the public key.
	return crypto.PubkeyToAddress(*publicKey), nil
}

// SignatureString returns the signature as a string in the [R|S|V] format.
func SignatureString(sig [Length]byte, recID byte) string {
	return hexutil.Encode(ToSignatureBytes(sig, recID))
}

// ToSignatureBytes converts the signature and recovery id into the 65 byte
// [R|S|V] format.
func ToSignatureBytes(sig [Length]byte, recID byte) []byte {
	b := make([]byte, crypto.SignatureLength)
	copy(b, sig[:])
	b[crypto.RecoveryIDOffset] = recID

	return b
}

// FromSignatureString converts a hex representation of the [R|S|V] signature
// back into its parts.
func FromSignatureString(sigStr string) (sig [Length]byte, recID byte, err error) {
	b, err := hexutil.Decode(sigStr)
	if err != nil {
		return sig, 0, err
	}

	if len(b) != crypto.SignatureLength {
		return sig, 0, errors.New("invalid signature length")
	}

	copy(sig[:], b[:crypto.RecoveryIDOffset])

	return sig, b[crypto.RecoveryIDOffset], nil
}
