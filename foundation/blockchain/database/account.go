package database

import (
	"crypto/ecdsa"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Account represents information stored in the database for an individual
// account. An account that has never transacted has a zero nonce and a zero
// balance.
type Account struct {
	Nonce   uint64       `json:"nonce"`
	Balance *uint256.Int `json:"balance"`
}

// newAccount constructs a new account value for use.
func newAccount(balance uint64) Account {
	return Account{
		Balance: uint256.NewInt(balance),
	}
}

// copy returns an account that doesn't share the balance with the original.
// A nil balance is normalized to zero.
func (a Account) copy() Account {
	if a.Balance == nil {
		return Account{Nonce: a.Nonce, Balance: new(uint256.Int)}
	}

	return Account{Nonce: a.Nonce, Balance: new(uint256.Int).Set(a.Balance)}
}

// =============================================================================

// ToAccountID converts a hex-encoded string to an account address and
// validates the hex-encoded string is formatted correctly.
func ToAccountID(hex string) (common.Address, error) {
	if !common.IsHexAddress(hex) {
		return common.Address{}, errors.New("invalid account format")
	}

	return common.HexToAddress(hex), nil
}

// PublicKeyToAccountID converts the public key to an account address.
func PublicKeyToAccountID(pk ecdsa.PublicKey) common.Address {
	return crypto.PubkeyToAddress(pk)
}

// =============================================================================

// AccountRecord pairs an account address with its account information.
type AccountRecord struct {
	AccountID common.Address
	Account
}

// byAccount provides sorting support by the account address value.
type byAccount []AccountRecord

// Len returns the number of accounts in the list.
func (ba byAccount) Len() int {
	return len(ba)
}

// Less helps to sort the list by account address in ascending order.
func (ba byAccount) Less(i, j int) bool {
	return ba[i].AccountID.Cmp(ba[j].AccountID) < 0
}

// Swap moves accounts in the order of the account address value.
func (ba byAccount) Swap(i, j int) {
	ba[i], ba[j] = ba[j], ba[i]
}
