package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "predeposit"
	app.Usage = "Deploy and inspect Pre-deposit contracts"
	app.HideVersion = true
	app.Commands = []cli.Command{
		deployCommand,
		balanceCommand,
		vaultsCommand,
		statusCommand,
	}

	return app
}

var rpcFlag = cli.StringFlag{
	Name:   "rpc-endpoint, r",
	Usage:  "Neo RPC node address",
	EnvVar: "PREDEPOSIT_RPC_ENDPOINT",
}

var ledgerFlag = cli.StringFlag{
	Name:  "ledger, l",
	Usage: "Ledger contract address or 0x-prefixed LE script hash",
}
