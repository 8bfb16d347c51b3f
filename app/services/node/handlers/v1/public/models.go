package public

import (
	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/nameservice"
)

type submitRequest struct {
	RawTx string `json:"raw_tx" validate:"required,hexadecimal"`
}

type submitResponse struct {
	Status string `json:"status"`
	Hash   string `json:"hash"`
}

type tx struct {
	FromAccount string `json:"from"`
	FromName    string `json:"from_name"`
	To          string `json:"to"`
	ToName      string `json:"to_name"`
	Value       string `json:"value"`
	Nonce       uint64 `json:"nonce"`
	Hash        string `json:"hash"`
	Sig         string `json:"sig"`
}

type block struct {
	Number     uint64 `json:"number"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	TimeStamp  uint64 `json:"timestamp"`
	Trans      []tx   `json:"trans"`
}

type info struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

type actInfo struct {
	LatestBlock string `json:"latest_block"`
	Uncommitted int    `json:"uncommitted"`
	Accounts    []info `json:"accounts"`
}

// =============================================================================

func toTx(ns *nameservice.NameService, tran database.SignedTx) tx {
	var from, fromName string
	if account, err := tran.FromAccount(); err == nil {
		from = account.Hex()
		fromName = ns.Lookup(account)
	}

	value := "0"
	if tran.Tx.Value != nil {
		value = tran.Tx.Value.Dec()
	}

	return tx{
		FromAccount: from,
		FromName:    fromName,
		To:          tran.Tx.To.Hex(),
		ToName:      ns.Lookup(tran.Tx.To),
		Value:       value,
		Nonce:       tran.Tx.Nonce,
		Hash:        tran.Hash().Hex(),
		Sig:         tran.SignatureString(),
	}
}

func toBlock(ns *nameservice.NameService, blk database.SealedBlock) block {
	trans := make([]tx, len(blk.Trans))
	for i, tran := range blk.Trans {
		trans[i] = toTx(ns, tran)
	}

	return block{
		Number:     blk.Number,
		Hash:       blk.Hash().Hex(),
		ParentHash: blk.ParentHash.Hex(),
		TimeStamp:  blk.TimeStamp,
		Trans:      trans,
	}
}

func toInfo(ns *nameservice.NameService, record database.AccountRecord) info {
	return info{
		Account: record.AccountID.Hex(),
		Name:    ns.Lookup(record.AccountID),
		Balance: record.Balance.Dec(),
		Nonce:   record.Nonce,
	}
}
