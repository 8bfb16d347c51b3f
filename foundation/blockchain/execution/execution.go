// Package execution applies signed transactions to account state.
package execution

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Set of errors returned when a transaction is rejected.
var (
	ErrBadSignature      = errors.New("bad signature")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InvalidNonceError is returned when the transaction nonce doesn't match the
// sender's account nonce.
type InvalidNonceError struct {
	Expected uint64
	Got      uint64
}

func (ine *InvalidNonceError) Error() string {
	return fmt.Sprintf("invalid nonce, expected %d, got %d", ine.Expected, ine.Got)
}

// IsInvalidNonceError checks if an error of type InvalidNonceError exists.
func IsInvalidNonceError(err error) bool {
	var ine *InvalidNonceError
	return errors.As(err, &ine)
}

// =============================================================================

// Store represents the account access required to execute a transaction. It
// is satisfied by the database and by the handle given to a guarded batch.
type Store interface {
	GetAccount(accountID common.Address) database.Account
	SetAccount(accountID common.Address, account database.Account)
}

// Execute validates the transaction against the store and applies it. A
// rejected transaction leaves the store untouched.
func Execute(store Store, tx database.SignedTx) error {
	fromID, err := tx.FromAccount()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	from := store.GetAccount(fromID)

	if tx.Tx.Nonce != from.Nonce {
		return &InvalidNonceError{Expected: from.Nonce, Got: tx.Tx.Nonce}
	}

	value := tx.Tx.Value
	if value == nil {
		value = new(uint256.Int)
	}

	if from.Balance.Lt(value) {
		return fmt.Errorf("%w: balance %s, needed %s", ErrInsufficientFunds, from.Balance.Dec(), value.Dec())
	}

	// The sender is written before the receiver is read so a transfer to
	// yourself sees the debit.
	from.Nonce++
	from.Balance.Sub(from.Balance, value)
	store.SetAccount(fromID, from)

	to := store.GetAccount(tx.Tx.To)
	to.Balance.Add(to.Balance, value)
	store.SetAccount(tx.Tx.To, to)

	return nil
}
