package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/deploy"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var deployCommand = cli.Command{
	Name:  "deploy",
	Usage: "Deploy Registry and Ledger contracts and apply initial settings",
	Flags: []cli.Flag{
		rpcFlag,
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to YAML deployment configuration",
		},
		cli.StringFlag{
			Name:  "contracts",
			Usage: "Directory with compiled contracts (<name>/contract.nef and <name>/manifest.json)",
		},
		cli.StringFlag{
			Name:  "wallet, w",
			Usage: "Path to NEP-6 wallet with the deploying account",
		},
		cli.StringFlag{
			Name:  "address, a",
			Usage: "Deploying account address (wallet default if omitted)",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "Password of the deploying account",
			EnvVar: "PREDEPOSIT_WALLET_PASSWORD",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "Enable debug logging",
		},
	},
	Action: deployAction,
}

func deployAction(c *cli.Context) error {
	for _, name := range []string{"rpc-endpoint", "config", "contracts", "wallet"} {
		if c.String(name) == "" {
			return cli.NewExitError(fmt.Sprintf("missing required flag --%s", name), 1)
		}
	}

	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("init logger: %w", err), 1)
	}
	defer func() { _ = log.Sync() }()

	settings, err := deploy.LoadConfig(c.String("config"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("load configuration: %w", err), 1)
	}

	set, err := contracts.Read(os.DirFS(c.String("contracts")))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("read compiled contracts: %w", err), 1)
	}

	acc, err := openAccount(c.String("wallet"), c.String("address"), c.String("password"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rpc, err := newRPC(ctx, c.String("rpc-endpoint"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer rpc.Close()

	res, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       log,
		Blockchain:   rpc,
		LocalAccount: acc,
		Registry:     deploy.CommonDeployPrm{NEF: set.Registry.NEF, Manifest: set.Registry.Manifest},
		Ledger:       deploy.CommonDeployPrm{NEF: set.Ledger.NEF, Manifest: set.Ledger.Manifest},
		Settings:     settings,
	})
	if err != nil {
		return cli.NewExitError(fmt.Errorf("deploy contracts: %w", err), 1)
	}

	fmt.Fprintf(c.App.Writer, "Registry: %s\nLedger: %s\n", res.Registry.StringLE(), res.Ledger.StringLE())

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

func openAccount(walletPath, addr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var h util.Uint160
	if addr != "" {
		h, err = deploy.ParseAddress(addr)
		if err != nil {
			return nil, fmt.Errorf("account address: %w", err)
		}
	} else {
		h = w.GetChangeAddress()
	}

	acc := w.GetAccount(h)
	if acc == nil {
		return nil, errors.New("account is missing in the wallet")
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account: %w", err)
	}

	return acc, nil
}

func newRPC(ctx context.Context, endpoint string) (*rpcclient.Client, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{})
	if err != nil {
		return nil, fmt.Errorf("RPC client: %w", err)
	}

	err = c.Init()
	if err != nil {
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return c, nil
}
