package commands

import (
	"fmt"
	"strconv"
)

// Fund credits an account outside of any transaction.
func Fund(args []string, c *Client) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: admin fund <account> <amount>")
	}

	amount, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing amount: %w", err)
	}

	req := struct {
		Account string `json:"account"`
		Amount  uint64 `json:"amount"`
	}{
		Account: args[2],
		Amount:  amount,
	}

	var resp struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
		Nonce   uint64 `json:"nonce"`
	}
	if err := c.post("/v1/node/accounts/fund", req, &resp); err != nil {
		return err
	}

	fmt.Printf("Account: %s  Balance: %s  Nonce: %d\n", resp.Account, resp.Balance, resp.Nonce)
	return nil
}
