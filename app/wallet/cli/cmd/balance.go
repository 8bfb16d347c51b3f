package cmd

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your balance.",
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		return err
	}

	accountID := database.PublicKeyToAccountID(privateKey.PublicKey)
	fmt.Fprintln(cmd.OutOrStdout(), "For Account:", accountID)

	info, err := queryAccount(url, accountID.Hex())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Balance:", info.Balance)
	fmt.Fprintln(cmd.OutOrStdout(), "Nonce:", info.Nonce)
	return nil
}
