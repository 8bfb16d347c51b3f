package cmd

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

var (
	keystoreDir string
	passphrase  string
)

var keystoreCmd = &cobra.Command{
	Use:   "keystore",
	Short: "Export the private key into an encrypted keystore file.",
	RunE:  keystoreRun,
}

func init() {
	rootCmd.AddCommand(keystoreCmd)
	keystoreCmd.Flags().StringVarP(&keystoreDir, "dir", "d", "zblock/keystore/", "Directory for the keystore files.")
	keystoreCmd.Flags().StringVar(&passphrase, "passphrase", "", "Passphrase used to encrypt the key.")
}

func keystoreRun(cmd *cobra.Command, args []string) error {
	privateKey, err := crypto.LoadECDSA(getPrivateKeyPath())
	if err != nil {
		return err
	}

	path, err := exportKey(keystoreDir, privateKey, passphrase)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Keystore:", path)
	return nil
}

// exportKey writes the key into a scrypt encrypted keystore file and returns
// the file's path.
func exportKey(dir string, privateKey *ecdsa.PrivateKey, passphrase string) (string, error) {
	if passphrase == "" {
		return "", errors.New("passphrase required")
	}

	ks := keystore.NewKeyStore(dir, keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.ImportECDSA(privateKey, passphrase)
	if err != nil {
		return "", err
	}

	return acc.URL.Path, nil
}
