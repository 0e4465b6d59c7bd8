package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/Byzantine-Finance/predeposit-contract-ethereum/deploy"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/rpc/ledger"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/urfave/cli"
)

const defaultVaultsLimit = 100

var balanceCommand = cli.Command{
	Name:      "balance",
	Usage:     "Print amount of the asset deposited by the account",
	ArgsUsage: "<depositor>",
	Flags: []cli.Flag{
		rpcFlag,
		ledgerFlag,
		cli.StringFlag{
			Name:  "asset",
			Usage: "Deposited asset address (GAS if omitted)",
		},
	},
	Action: balanceAction,
}

var statusCommand = cli.Command{
	Name:   "status",
	Usage:  "Print Ledger owner, assets and pause gates",
	Flags:  []cli.Flag{rpcFlag, ledgerFlag},
	Action: statusAction,
}

var vaultsCommand = cli.Command{
	Name:  "vaults",
	Usage: "List vaults recorded in the Ledger",
	Flags: []cli.Flag{
		rpcFlag,
		ledgerFlag,
		cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of vaults to list",
			Value: defaultVaultsLimit,
		},
	},
	Action: vaultsAction,
}

func balanceAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("exactly one depositor address expected", 1)
	}

	depositor, err := deploy.ParseAddress(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Errorf("depositor: %w", err), 1)
	}

	asset := gas.Hash
	if s := c.String("asset"); s != "" {
		asset, err = deploy.ParseAddress(s)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("asset: %w", err), 1)
		}
	}

	r, _, closeRPC, err := newLedgerReader(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closeRPC()

	amount, err := r.DepositedAmount(depositor, asset)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get deposited amount: %w", err), 1)
	}

	fmt.Fprintln(c.App.Writer, amount.String())

	return nil
}

func vaultsAction(c *cli.Context) error {
	r, _, closeRPC, err := newLedgerReader(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closeRPC()

	vaults, err := r.Vaults(c.Int("limit"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("list vaults: %w", err), 1)
	}

	for _, v := range vaults {
		status := "approved"
		if !v.Approved {
			status = "delisted"
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\n", v.Hash.StringLE(), status)
	}

	return nil
}

func statusAction(c *cli.Context) error {
	r, inv, closeRPC, err := newLedgerReader(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer closeRPC()

	owner, err := r.Owner()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get owner: %w", err), 1)
	}

	rebasing, err := r.RebasingAsset()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get rebasing asset: %w", err), 1)
	}

	wrapped, err := r.WrappedAsset()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get wrapped asset: %w", err), 1)
	}

	registryHash, err := r.Registry()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get registry: %w", err), 1)
	}

	unpauser, err := registry.NewReader(inv, registryHash).Unpauser()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get unpauser: %w", err), 1)
	}

	permissionless, err := r.IsPermissionlessDeposit()
	if err != nil {
		return cli.NewExitError(fmt.Errorf("get permissionless flag: %w", err), 1)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Owner:\t%s\n", address.Uint160ToString(owner))
	fmt.Fprintf(w, "Registry:\t%s\n", registryHash.StringLE())
	fmt.Fprintf(w, "Unpauser:\t%s\n", address.Uint160ToString(unpauser))
	fmt.Fprintf(w, "Rebasing asset:\t%s\n", rebasing.StringLE())
	fmt.Fprintf(w, "Wrapped asset:\t%s\n", wrapped.StringLE())
	fmt.Fprintf(w, "Permissionless deposit:\t%t\n", permissionless)

	for _, gate := range []struct {
		name string
		idx  int64
	}{
		{"deposits", ledger.GateDeposits},
		{"vault moves", ledger.GateVaultMoves},
	} {
		paused, err := r.IsPaused(big.NewInt(gate.idx))
		if err != nil {
			return cli.NewExitError(fmt.Errorf("get %s gate: %w", gate.name, err), 1)
		}
		fmt.Fprintf(w, "Paused %s:\t%t\n", gate.name, paused)
	}

	return nil
}

// newLedgerReader returns Ledger reader, the underlying invoker and a function
// releasing the RPC connection.
func newLedgerReader(c *cli.Context) (*ledger.ContractReader, *invoker.Invoker, func(), error) {
	if c.String("rpc-endpoint") == "" || c.String("ledger") == "" {
		return nil, nil, nil, errors.New("missing required flags --rpc-endpoint and --ledger")
	}

	h, err := deploy.ParseAddress(c.String("ledger"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("ledger: %w", err)
	}

	rpc, err := newRPC(context.Background(), c.String("rpc-endpoint"))
	if err != nil {
		return nil, nil, nil, err
	}

	inv := invoker.New(rpc, nil)

	return ledger.NewReader(inv, h), inv, rpc.Close, nil
}
