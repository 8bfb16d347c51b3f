// This program performs administrative tasks against the private api of
// the ledger node.
package main

import (
	"fmt"
	"os"

	"github.com/ardanlabs/ledger/app/tooling/admin/commands"
	"github.com/ardanlabs/ledger/foundation/logger"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {
	log, err := logger.New("ADMIN")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("admin", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	host := os.Getenv("ADMIN_PRIVATE_HOST")
	if host == "" {
		host = "http://localhost:9080"
	}

	log.Infow("admin", "version", build, "host", host)

	return processCommands(os.Args, commands.NewClient(host))
}

// processCommands handles the execution of the commands specified on
// the command line.
func processCommands(args []string, client *commands.Client) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: admin fund <account> <amount> | admin mine")
	}

	switch args[1] {
	case "fund":
		if err := commands.Fund(args, client); err != nil {
			return fmt.Errorf("funding account: %w", err)
		}
	case "mine":
		if err := commands.Mine(client); err != nil {
			return fmt.Errorf("signaling mining: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q", args[1])
	}

	return nil
}
