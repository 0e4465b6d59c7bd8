// Package testenv deploys Registry, Ledger and their collaborator contracts
// to an in-memory chain for contract tests.
package testenv

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Contract directories relative to the repository root.
const (
	RegistryPath  = "contracts/registry"
	LedgerPath    = "contracts/ledger"
	TokenPath     = "internal/testcontracts/token"
	RebasingPath  = "internal/testcontracts/rebasing"
	WrapperPath   = "internal/testcontracts/wrapper"
	VaultPath     = "internal/testcontracts/vault"
	ReentrantPath = "internal/testcontracts/reentrant"
)

// Env is a deployed set of contracts.
type Env struct {
	E *neotest.Executor

	Owner    neotest.Signer
	Unpauser neotest.Signer
	Pauser   neotest.Signer

	Registry util.Uint160
	Ledger   util.Uint160
	GAS      util.Uint160
	Token    util.Uint160
	Rebasing util.Uint160
	Wrapped  util.Uint160
}

// Root returns absolute path of the repository root.
func Root() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// Compile compiles contract located in the repository directory.
func Compile(t testing.TB, e *neotest.Executor, dir string) *neotest.Contract {
	p := filepath.Join(Root(), dir)
	return neotest.CompileFile(t, e.CommitteeHash, p, filepath.Join(p, "config.yml"))
}

// Renamed returns a copy of the compiled contract under another manifest
// name, so the same code can be deployed more than once.
func Renamed(e *neotest.Executor, c *neotest.Contract, name string) *neotest.Contract {
	m := *c.Manifest
	m.Name = name
	return &neotest.Contract{
		Hash:     state.CreateContractHash(e.CommitteeHash, c.NEF.Checksum, name),
		NEF:      c.NEF,
		Manifest: &m,
	}
}

// New deploys Registry and Ledger contracts together with plain, rebasing and
// wrapped tokens. The Ledger is deployed with the given gates paused.
func New(t testing.TB, paused ...int) *Env {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	env := &Env{
		E:        e,
		Owner:    e.NewAccount(t),
		Unpauser: e.NewAccount(t),
		Pauser:   e.NewAccount(t),
		GAS:      e.NativeHash(t, nativenames.Gas),
	}

	token := Compile(t, e, TokenPath)
	e.DeployContract(t, token, nil)
	env.Token = token.Hash

	rebasing := Compile(t, e, RebasingPath)
	e.DeployContract(t, rebasing, nil)
	env.Rebasing = rebasing.Hash

	wrapper := Compile(t, e, WrapperPath)
	e.DeployContract(t, wrapper, env.Rebasing)
	env.Wrapped = wrapper.Hash

	registry := Compile(t, e, RegistryPath)
	e.DeployContract(t, registry, []any{
		env.Unpauser.ScriptHash(),
		[]any{env.Pauser.ScriptHash()},
	})
	env.Registry = registry.Hash

	gates := make([]any, len(paused))
	for i := range paused {
		gates[i] = paused[i]
	}

	ledger := Compile(t, e, LedgerPath)
	e.DeployContract(t, ledger, []any{
		env.Registry,
		env.Owner.ScriptHash(),
		env.Rebasing,
		env.Wrapped,
		gates,
	})
	env.Ledger = ledger.Hash

	return env
}

// OwnerInvoker returns Ledger invoker signed by the owner.
func (env *Env) OwnerInvoker() *neotest.ContractInvoker {
	return env.E.NewInvoker(env.Ledger, env.Owner)
}

// LedgerInvoker returns Ledger invoker signed by the given accounts.
func (env *Env) LedgerInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return env.E.NewInvoker(env.Ledger, signers...)
}

// RegistryInvoker returns Registry invoker signed by the given accounts.
func (env *Env) RegistryInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return env.E.NewInvoker(env.Registry, signers...)
}

// NewDepositor creates funded account and adds it to the deposit allow-list.
func (env *Env) NewDepositor(t testing.TB) neotest.Signer {
	acc := env.E.NewAccount(t)
	env.Allow(t, acc.ScriptHash())
	return acc
}

// Allow adds accounts to the deposit allow-list.
func (env *Env) Allow(t testing.TB, accounts ...util.Uint160) {
	list := make([]any, len(accounts))
	for i := range accounts {
		list[i] = accounts[i]
	}
	env.OwnerInvoker().Invoke(t, stackitem.Null{}, "setCanDeposit", list, true)
}

// Deposit transfers amount of the token from the account to the Ledger.
func (env *Env) Deposit(t testing.TB, acc neotest.Signer, token util.Uint160, amount int64) {
	env.E.NewInvoker(token, acc).Invoke(t, true, "transfer", acc.ScriptHash(), env.Ledger, amount, nil)
}

// Mint issues test token (plain or rebasing) to the account.
func (env *Env) Mint(t testing.TB, token, to util.Uint160, amount int64) {
	env.E.CommitteeInvoker(token).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

// DeployVault deploys a vault accepting the asset under a unique name.
func (env *Env) DeployVault(t testing.TB, name string, asset util.Uint160) util.Uint160 {
	c := Renamed(env.E, Compile(t, env.E, VaultPath), name)
	env.E.DeployContract(t, c, asset)
	return c.Hash
}

// DeployReentrant deploys depositor contract calling back into the Ledger.
func (env *Env) DeployReentrant(t testing.TB) util.Uint160 {
	c := Compile(t, env.E, ReentrantPath)
	env.E.DeployContract(t, c, env.Ledger)
	return c.Hash
}

// BalanceOf returns NEP-17 balance of the account.
func (env *Env) BalanceOf(t testing.TB, token, acc util.Uint160) int64 {
	return env.call(t, token, "balanceOf", acc).BigInt().Int64()
}

// Deposited returns Ledger balance of the depositor.
func (env *Env) Deposited(t testing.TB, depositor, asset util.Uint160) int64 {
	return env.call(t, env.Ledger, "depositedAmount", depositor, asset).BigInt().Int64()
}

// Bool calls Ledger method returning boolean.
func (env *Env) Bool(t testing.TB, method string, args ...any) bool {
	return env.call(t, env.Ledger, method, args...).Bool()
}

// Hash calls Ledger method returning script hash. The result is compared by
// value since hashes read from storage are returned as Buffer items.
func (env *Env) Hash(t testing.TB, method string, args ...any) util.Uint160 {
	h, err := util.Uint160DecodeBytesBE(env.call(t, env.Ledger, method, args...).Bytes())
	require.NoError(t, err)
	return h
}

func (env *Env) call(t testing.TB, h util.Uint160, method string, args ...any) vm.Element {
	s, err := env.E.CommitteeInvoker(h).TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop()
}
