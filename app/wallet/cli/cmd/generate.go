package cmd

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/tyler-smith/go-bip39"
)

var (
	withMnemonic bool
	mnemonic     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new key pair",
	RunE:  generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVarP(&withMnemonic, "with-mnemonic", "m", false, "Derive the key from a new mnemonic phrase.")
	generateCmd.Flags().StringVarP(&mnemonic, "recover", "r", "", "Derive the key from an existing mnemonic phrase.")
}

func generateRun(cmd *cobra.Command, args []string) error {
	var privateKey *ecdsa.PrivateKey
	var err error

	switch {
	case mnemonic != "":
		privateKey, err = keyFromMnemonic(mnemonic)

	case withMnemonic:
		var phrase string
		phrase, err = newMnemonic()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Mnemonic:", phrase)
		privateKey, err = keyFromMnemonic(phrase)

	default:
		privateKey, err = crypto.GenerateKey()
	}
	if err != nil {
		return err
	}

	if err := crypto.SaveECDSA(getPrivateKeyPath(), privateKey); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(privateKey.PublicKey))
	return nil
}

func newMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

// keyFromMnemonic derives a private key from the first 32 bytes of the
// mnemonic's seed. The same phrase always produces the same key.
func keyFromMnemonic(phrase string) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, errors.New("invalid mnemonic")
	}

	seed := bip39.NewSeed(phrase, "")
	return crypto.ToECDSA(seed[:32])
}
