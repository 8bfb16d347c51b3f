package state

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common"
)

// SubmitWalletTransaction accepts an encoded signed transaction from a wallet
// for inclusion and returns its identity hash. Only the format and the
// signature are checked here, the nonce and balance are checked when the
// transaction is executed.
func (s *State) SubmitWalletTransaction(raw []byte) (common.Hash, error) {
	signedTx, err := database.DecodeSignedTx(raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("submit: %w", err)
	}

	if err := signedTx.Validate(); err != nil {
		return common.Hash{}, fmt.Errorf("submit: %w", err)
	}

	hash := signedTx.Hash()
	n := s.mempool.Upsert(hash, signedTx)
	s.txSubmitted.Add(1)

	s.evHandler("state: SubmitWalletTransaction: tx[%s] hash[%s] mempool[%d]", signedTx, hash, n)

	return hash, nil
}

// FundAccount adds the amount to the account balance outside of any
// transaction. This is an operator action.
func (s *State) FundAccount(accountID common.Address, amount uint64) database.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	var account database.Account
	s.db.GuardedBatch(func(accounts database.Accounts) {
		account = accounts.GetAccount(accountID)
		account.Balance.AddUint64(account.Balance, amount)
		accounts.SetAccount(accountID, account)
	})

	s.evHandler("state: FundAccount: account[%s] amount[%d] balance[%s]", accountID, amount, account.Balance.Dec())

	return account
}
