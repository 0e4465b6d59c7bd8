package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func runApp(t *testing.T, args ...string) (string, error) {
	exiter, errWriter := cli.OsExiter, cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	t.Cleanup(func() {
		cli.OsExiter, cli.ErrWriter = exiter, errWriter
	})

	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"predeposit"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	out, err := runApp(t, "help")
	require.NoError(t, err)
	for _, cmd := range []string{"deploy", "balance", "vaults", "status"} {
		require.Contains(t, out, cmd)
	}
}

func TestDeployFlags(t *testing.T) {
	_, err := runApp(t, "deploy")
	require.ErrorContains(t, err, "--rpc-endpoint")

	_, err = runApp(t, "deploy", "-r", "http://localhost:30333")
	require.ErrorContains(t, err, "--config")

	_, err = runApp(t, "deploy", "-r", "http://localhost:30333", "-c", "missing.yml",
		"--contracts", t.TempDir(), "-w", "wallet.json")
	require.ErrorContains(t, err, "load configuration")
}

func TestBalanceArgs(t *testing.T) {
	_, err := runApp(t, "balance")
	require.ErrorContains(t, err, "depositor")

	_, err = runApp(t, "balance", "not an address")
	require.ErrorContains(t, err, "invalid address")

	_, err = runApp(t, "balance", "--asset", "0x1234", "0x"+"0102030405060708090a0b0c0d0e0f1011121314")
	require.ErrorContains(t, err, "asset")

	_, err = runApp(t, "balance", "0x"+"0102030405060708090a0b0c0d0e0f1011121314")
	require.ErrorContains(t, err, "--ledger")
}

func TestVaultsFlags(t *testing.T) {
	_, err := runApp(t, "vaults", "--ledger", "0x0102030405060708090a0b0c0d0e0f1011121314")
	require.ErrorContains(t, err, "--rpc-endpoint")
}
