// Package database handles the transaction codec, block sealing and the
// in memory database of account information.
package database

import (
	"sort"
	"sync"

	"github.com/ardanlabs/ledger/foundation/blockchain/genesis"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Database manages data related to accounts who have transacted on the blockchain.
type Database struct {
	mu       sync.RWMutex
	genesis  genesis.Genesis
	accounts map[common.Address]Account
}

// New constructs a new database and applies account genesis information.
func New(genesis genesis.Genesis) (*Database, error) {
	accounts, err := genesisAccounts(genesis)
	if err != nil {
		return nil, err
	}

	db := Database{
		genesis:  genesis,
		accounts: accounts,
	}

	return &db, nil
}

// Reset re-initializes the database back to the genesis state.
func (db *Database) Reset() error {
	accounts, err := genesisAccounts(db.genesis)
	if err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.accounts = accounts

	return nil
}

// GetAccount returns a copy of the account. An unknown account has a zero
// nonce and a zero balance.
func (db *Database) GetAccount(accountID common.Address) Account {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return Accounts{db: db}.GetAccount(accountID)
}

// SetAccount replaces the account information.
func (db *Database) SetAccount(accountID common.Address, account Account) {
	db.mu.Lock()
	defer db.mu.Unlock()

	Accounts{db: db}.SetAccount(accountID, account)
}

// GuardedBatch holds the database lock for the duration of the function. The
// function works with the accounts through the handle it is given, readers
// never observe a partially applied batch.
func (db *Database) GuardedBatch(f func(accounts Accounts)) {
	db.mu.Lock()
	defer db.mu.Unlock()

	f(Accounts{db: db})
}

// Copy makes a copy of the current accounts in the database.
func (db *Database) Copy() map[common.Address]Account {
	db.mu.RLock()
	defer db.mu.RUnlock()

	accounts := make(map[common.Address]Account, len(db.accounts))
	for accountID, account := range db.accounts {
		accounts[accountID] = account.copy()
	}

	return accounts
}

// Records returns the accounts sorted by account address.
func (db *Database) Records() []AccountRecord {
	accounts := db.Copy()

	records := make([]AccountRecord, 0, len(accounts))
	for accountID, account := range accounts {
		records = append(records, AccountRecord{AccountID: accountID, Account: account})
	}
	sort.Sort(byAccount(records))

	return records
}

// =============================================================================

// Accounts provides access to the accounts while the database lock is held
// by GuardedBatch. It must not be retained after the function returns.
type Accounts struct {
	db *Database
}

// GetAccount returns a copy of the account.
func (a Accounts) GetAccount(accountID common.Address) Account {
	account, exists := a.db.accounts[accountID]
	if !exists {
		return Account{Balance: new(uint256.Int)}
	}

	return account.copy()
}

// SetAccount replaces the account information.
func (a Accounts) SetAccount(accountID common.Address, account Account) {
	a.db.accounts[accountID] = account.copy()
}

// =============================================================================

func genesisAccounts(genesis genesis.Genesis) (map[common.Address]Account, error) {
	accounts := make(map[common.Address]Account, len(genesis.Balances))
	for accountStr, balance := range genesis.Balances {
		accountID, err := ToAccountID(accountStr)
		if err != nil {
			return nil, err
		}
		accounts[accountID] = newAccount(balance)
	}

	return accounts, nil
}
