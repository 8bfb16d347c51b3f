package cmd

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

var (
	to         string
	value      string
	nonce      uint64
	fetchNonce bool
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send transaction",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the value.")
	sendCmd.Flags().StringVarP(&value, "value", "v", "0", "Decimal value to send, up to 256 bits.")
	sendCmd.Flags().Uint64VarP(&nonce, "nonce", "n", 0, "Nonce to use. Setting it turns off --fetch-nonce.")
	sendCmd.Flags().BoolVar(&fetchNonce, "fetch-nonce", true, "Fetch the account's current nonce from the node.")
	sendCmd.MarkFlagRequired("to")
}

func sendRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		return err
	}

	fetch := fetchNonce && !cmd.Flags().Changed("nonce")

	hash, err := send(privateKey, url, to, value, nonce, fetch)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Submitted:", hash)
	return nil
}

// send signs a transfer and submits it to the node. When fetch is set the
// account's current nonce is read from the node and the nonce provided is
// ignored.
func send(privateKey *ecdsa.PrivateKey, node string, to string, value string, nonce uint64, fetch bool) (string, error) {
	toID, err := database.ToAccountID(to)
	if err != nil {
		return "", err
	}

	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return "", fmt.Errorf("parsing value %q: %w", value, err)
	}

	if fetch {
		from := database.PublicKeyToAccountID(privateKey.PublicKey)
		info, err := queryAccount(node, from.Hex())
		if err != nil {
			return "", fmt.Errorf("fetch nonce: %w", err)
		}
		nonce = info.Nonce
	}

	tx := database.Tx{
		To:    toID,
		Value: amount,
		Nonce: nonce,
	}

	signedTx, err := tx.Sign(privateKey)
	if err != nil {
		return "", err
	}

	raw, err := signedTx.Encode()
	if err != nil {
		return "", err
	}

	return submitTx(node, hexutil.Encode(raw))
}
