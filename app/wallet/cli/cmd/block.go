package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block <hash>",
	Short: "Print the block with the specified hash.",
	Args:  cobra.ExactArgs(1),
	RunE:  blockRun,
}

func init() {
	rootCmd.AddCommand(blockCmd)
}

func blockRun(cmd *cobra.Command, args []string) error {
	blk, err := queryBlock(url, args[0])
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, blk, "", "  "); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
