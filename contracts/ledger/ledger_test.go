package ledger_test

import (
	"testing"

	"github.com/Byzantine-Finance/predeposit-contract-ethereum/common"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts/ledger/ledgerconst"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/internal/testenv"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const gasUnit = 1_0000_0000

func checkEvent(t *testing.T, env *testenv.Env, h util.Uint256, name string, args ...any) {
	aer := env.E.CheckHalt(t, h)

	items := make([]stackitem.Item, len(args))
	for i := range args {
		items[i] = stackitem.Make(args[i])
	}

	for _, ev := range aer.Events {
		if ev.ScriptHash.Equals(env.Ledger) && ev.Name == name {
			require.Equal(t, stackitem.NewArray(items), ev.Item)
			return
		}
	}
	require.Failf(t, "missing notification", "%s is not found", name)
}

func TestLedger_Deploy(t *testing.T) {
	env := testenv.New(t)

	require.True(t, env.Bool(t, "isDepositToken", env.GAS))
	require.True(t, env.Bool(t, "isDepositToken", env.Rebasing))
	require.True(t, env.Bool(t, "isDepositToken", env.Wrapped))
	require.False(t, env.Bool(t, "isDepositToken", env.Token))
	require.False(t, env.Bool(t, "isPermissionlessDeposit"))
	require.False(t, env.Bool(t, "isPaused", ledgerconst.GateDeposits))
	require.False(t, env.Bool(t, "isPaused", ledgerconst.GateVaultMoves))

	require.Equal(t, env.Owner.ScriptHash(), env.Hash(t, "owner"))
	require.Equal(t, env.Registry, env.Hash(t, "registry"))
	require.Equal(t, env.Rebasing, env.Hash(t, "rebasingAsset"))
	require.Equal(t, env.Wrapped, env.Hash(t, "wrappedAsset"))
	require.Equal(t, env.GAS, env.Hash(t, "nativeAsset"))

	c := env.OwnerInvoker()
	c.Invoke(t, stackitem.Null{}, "pendingOwner")
	c.Invoke(t, common.Version, "version")

	t.Run("initially paused", func(t *testing.T) {
		env := testenv.New(t, ledgerconst.GateDeposits)
		require.True(t, env.Bool(t, "isPaused", ledgerconst.GateDeposits))
		require.False(t, env.Bool(t, "isPaused", ledgerconst.GateVaultMoves))

		acc := env.NewDepositor(t)
		env.E.NewInvoker(env.GAS, acc).InvokeFail(t, ledgerconst.ErrPaused+": 0",
			"transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)
	})
}

func TestLedger_DepositGAS(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	gasInv := env.E.NewInvoker(env.GAS, acc)

	h := gasInv.Invoke(t, true, "transfer", acc.ScriptHash(), env.Ledger, 5*gasUnit, nil)
	checkEvent(t, env, h, "Deposit", acc.ScriptHash(), env.GAS, 5*gasUnit)

	require.Equal(t, int64(5*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
	require.Equal(t, int64(5*gasUnit), env.BalanceOf(t, env.GAS, env.Ledger))

	env.Deposit(t, acc, env.GAS, gasUnit)
	require.Equal(t, int64(6*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))

	t.Run("zero amount", func(t *testing.T) {
		gasInv.InvokeFail(t, ledgerconst.ErrZeroAmount, "transfer", acc.ScriptHash(), env.Ledger, 0, nil)
	})

	t.Run("not allow-listed", func(t *testing.T) {
		stranger := env.E.NewAccount(t)
		env.E.NewInvoker(env.GAS, stranger).InvokeFail(t, ledgerconst.ErrNotAuthorizedToDeposit,
			"transfer", stranger.ScriptHash(), env.Ledger, gasUnit, nil)
	})

	t.Run("removed from allow-list", func(t *testing.T) {
		other := env.NewDepositor(t)
		env.Deposit(t, other, env.GAS, gasUnit)

		h := env.OwnerInvoker().Invoke(t, stackitem.Null{}, "setCanDeposit", []any{other.ScriptHash()}, false)
		checkEvent(t, env, h, "DepositorStatusChanged", other.ScriptHash(), false)
		require.False(t, env.Bool(t, "canDeposit", other.ScriptHash()))

		env.E.NewInvoker(env.GAS, other).InvokeFail(t, ledgerconst.ErrNotAuthorizedToDeposit,
			"transfer", other.ScriptHash(), env.Ledger, gasUnit, nil)

		// Funds deposited before are still there.
		require.Equal(t, int64(gasUnit), env.Deposited(t, other.ScriptHash(), env.GAS))
	})

	t.Run("not whitelisted", func(t *testing.T) {
		env := testenv.New(t)
		acc := env.NewDepositor(t)

		h := env.OwnerInvoker().Invoke(t, stackitem.Null{}, "removeDepositToken", env.GAS)
		checkEvent(t, env, h, "DepositTokenRemoved", env.GAS)

		env.E.NewInvoker(env.GAS, acc).InvokeFail(t, ledgerconst.ErrAssetNotWhitelisted,
			"transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)
	})
}

func TestLedger_DepositToken(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	env.Mint(t, env.Token, acc.ScriptHash(), 1000)

	tokenInv := env.E.NewInvoker(env.Token, acc)
	tokenInv.InvokeFail(t, ledgerconst.ErrAssetNotWhitelisted, "transfer", acc.ScriptHash(), env.Ledger, 100, nil)

	h := env.OwnerInvoker().Invoke(t, stackitem.Null{}, "addDepositToken", env.Token)
	checkEvent(t, env, h, "DepositTokenAdded", env.Token)
	require.True(t, env.Bool(t, "isDepositToken", env.Token))

	h = tokenInv.Invoke(t, true, "transfer", acc.ScriptHash(), env.Ledger, 100, nil)
	checkEvent(t, env, h, "Deposit", acc.ScriptHash(), env.Token, 100)
	require.Equal(t, int64(100), env.Deposited(t, acc.ScriptHash(), env.Token))
	require.Equal(t, int64(900), env.BalanceOf(t, env.Token, acc.ScriptHash()))

	t.Run("zero amount is accepted", func(t *testing.T) {
		tokenInv.Invoke(t, true, "transfer", acc.ScriptHash(), env.Ledger, 0, nil)
		require.Equal(t, int64(100), env.Deposited(t, acc.ScriptHash(), env.Token))
	})
}

func TestLedger_PermissionlessDeposit(t *testing.T) {
	env := testenv.New(t)
	acc := env.E.NewAccount(t)
	gasInv := env.E.NewInvoker(env.GAS, acc)

	gasInv.InvokeFail(t, ledgerconst.ErrNotAuthorizedToDeposit, "transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)

	h := env.OwnerInvoker().Invoke(t, stackitem.Null{}, "setPermissionlessDeposit", true)
	checkEvent(t, env, h, "PermissionlessDepositSet", true)
	require.True(t, env.Bool(t, "isPermissionlessDeposit"))

	gasInv.Invoke(t, true, "transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)
	require.Equal(t, int64(gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
	require.False(t, env.Bool(t, "canDeposit", acc.ScriptHash()))

	t.Run("vault moves need allow-list", func(t *testing.T) {
		vault := env.DeployVault(t, "gas vault", env.GAS)
		env.OwnerInvoker().Invoke(t, stackitem.Null{}, "recordVaults", []any{vault})

		env.LedgerInvoker(acc).InvokeFail(t, ledgerconst.ErrNotAuthorizedToMoveFunds, "moveToVault",
			acc.ScriptHash(), env.GAS, vault, gasUnit, acc.ScriptHash(), 0)
	})

	env.OwnerInvoker().Invoke(t, stackitem.Null{}, "setPermissionlessDeposit", false)
	gasInv.InvokeFail(t, ledgerconst.ErrNotAuthorizedToDeposit, "transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)
}

func TestLedger_Withdraw(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	receiver := env.E.NewAccount(t)
	env.Deposit(t, acc, env.GAS, 5*gasUnit)

	c := env.LedgerInvoker(acc)

	before := env.BalanceOf(t, env.GAS, receiver.ScriptHash())
	h := c.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash(), env.GAS, 2*gasUnit, receiver.ScriptHash())
	checkEvent(t, env, h, "Withdraw", acc.ScriptHash(), env.GAS, 2*gasUnit, receiver.ScriptHash())

	require.Equal(t, before+2*gasUnit, env.BalanceOf(t, env.GAS, receiver.ScriptHash()))
	require.Equal(t, int64(3*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
	require.Equal(t, int64(3*gasUnit), env.BalanceOf(t, env.GAS, env.Ledger))

	t.Run("insufficient balance", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrInsufficientBalance, "withdraw",
			acc.ScriptHash(), env.GAS, 3*gasUnit+1, receiver.ScriptHash())
		c.InvokeFail(t, ledgerconst.ErrInsufficientBalance, "withdraw",
			acc.ScriptHash(), env.Token, 1, receiver.ScriptHash())
	})

	t.Run("negative amount", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrInvalidAmount, "withdraw",
			acc.ScriptHash(), env.GAS, -1, receiver.ScriptHash())
	})

	t.Run("zero receiver", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrReceiverIsZeroAddress, "withdraw",
			acc.ScriptHash(), env.GAS, gasUnit, util.Uint160{})
	})

	t.Run("ledger receiver", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrReceiverIsLedger, "withdraw",
			acc.ScriptHash(), env.GAS, gasUnit, env.Ledger)
		require.Equal(t, int64(3*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
	})

	t.Run("foreign balance", func(t *testing.T) {
		env.OwnerInvoker().InvokeFail(t, common.ErrWitnessFailed, "withdraw",
			acc.ScriptHash(), env.GAS, gasUnit, env.Owner.ScriptHash())
	})

	t.Run("not paused", func(t *testing.T) {
		p := env.LedgerInvoker(env.Pauser)
		p.Invoke(t, stackitem.Null{}, "pause", env.Pauser.ScriptHash(), ledgerconst.GateDeposits)
		p.Invoke(t, stackitem.Null{}, "pause", env.Pauser.ScriptHash(), ledgerconst.GateVaultMoves)

		c.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash(), env.GAS, 3*gasUnit, receiver.ScriptHash())
		require.Equal(t, int64(0), env.Deposited(t, acc.ScriptHash(), env.GAS))
		require.Equal(t, int64(0), env.BalanceOf(t, env.GAS, env.Ledger))
	})
}

func TestLedger_WithdrawToken(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)

	env.OwnerInvoker().Invoke(t, stackitem.Null{}, "addDepositToken", env.Token)
	env.Mint(t, env.Token, acc.ScriptHash(), 1000)
	env.Deposit(t, acc, env.Token, 600)

	c := env.LedgerInvoker(acc)
	c.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash(), env.Token, 100, acc.ScriptHash())
	require.Equal(t, int64(500), env.BalanceOf(t, env.Token, acc.ScriptHash()))
	require.Equal(t, int64(500), env.Deposited(t, acc.ScriptHash(), env.Token))

	t.Run("delisted asset is withdrawable", func(t *testing.T) {
		env.OwnerInvoker().Invoke(t, stackitem.Null{}, "removeDepositToken", env.Token)
		c.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash(), env.Token, 100, acc.ScriptHash())
		require.Equal(t, int64(400), env.Deposited(t, acc.ScriptHash(), env.Token))
	})

	t.Run("transfer failed", func(t *testing.T) {
		env.E.CommitteeInvoker(env.Token).Invoke(t, stackitem.Null{}, "setTransfersStopped", true)

		c.InvokeFail(t, ledgerconst.ErrTransferFailed, "withdraw",
			acc.ScriptHash(), env.Token, 100, acc.ScriptHash())
		require.Equal(t, int64(400), env.Deposited(t, acc.ScriptHash(), env.Token))
	})
}

func TestLedger_Rebasing(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	receiver := env.E.NewAccount(t)

	env.Mint(t, env.Rebasing, acc.ScriptHash(), 1000)
	rebase := func(num, den int64) {
		env.E.CommitteeInvoker(env.Rebasing).Invoke(t, stackitem.Null{}, "rebase", num, den)
	}

	rebase(2, 1)
	require.Equal(t, int64(2000), env.BalanceOf(t, env.Rebasing, acc.ScriptHash()))

	h := env.E.NewInvoker(env.Rebasing, acc).Invoke(t, true, "transfer",
		acc.ScriptHash(), env.Ledger, 2000, nil)
	checkEvent(t, env, h, "Deposit", acc.ScriptHash(), env.Rebasing, 1000)

	require.Equal(t, int64(1000), env.Deposited(t, acc.ScriptHash(), env.Rebasing))
	require.Equal(t, int64(0), env.Deposited(t, acc.ScriptHash(), env.Wrapped))
	require.Equal(t, int64(1000), env.BalanceOf(t, env.Wrapped, env.Ledger))
	require.Equal(t, int64(0), env.BalanceOf(t, env.Rebasing, env.Ledger))

	rebase(3, 2)
	require.Equal(t, int64(1000), env.Deposited(t, acc.ScriptHash(), env.Rebasing))

	env.LedgerInvoker(acc).InvokeFail(t, ledgerconst.ErrReceiverIsLedger, "withdraw",
		acc.ScriptHash(), env.Rebasing, 500, env.Ledger)
	require.Equal(t, int64(1000), env.Deposited(t, acc.ScriptHash(), env.Rebasing))
	require.Equal(t, int64(0), env.BalanceOf(t, env.Rebasing, env.Ledger))

	h = env.LedgerInvoker(acc).Invoke(t, stackitem.Null{}, "withdraw",
		acc.ScriptHash(), env.Rebasing, 1000, receiver.ScriptHash())
	checkEvent(t, env, h, "Withdraw", acc.ScriptHash(), env.Rebasing, 1000, receiver.ScriptHash())

	require.InDelta(t, 3000, env.BalanceOf(t, env.Rebasing, receiver.ScriptHash()), 1)
	require.Equal(t, int64(0), env.Deposited(t, acc.ScriptHash(), env.Rebasing))
	require.Equal(t, int64(0), env.BalanceOf(t, env.Wrapped, env.Ledger))

	t.Run("wrapped deposit", func(t *testing.T) {
		env.Mint(t, env.Rebasing, acc.ScriptHash(), 300)
		env.E.NewInvoker(env.Rebasing, acc).Invoke(t, true, "transfer",
			acc.ScriptHash(), env.Wrapped, 300, nil)

		wrapped := env.BalanceOf(t, env.Wrapped, acc.ScriptHash())
		require.Equal(t, int64(100), wrapped)

		env.Deposit(t, acc, env.Wrapped, wrapped)
		require.Equal(t, wrapped, env.Deposited(t, acc.ScriptHash(), env.Wrapped))
		require.Equal(t, int64(0), env.Deposited(t, acc.ScriptHash(), env.Rebasing))
	})
}

func TestLedger_MoveToVault(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	receiver := env.E.NewAccount(t)
	owner := env.OwnerInvoker()
	c := env.LedgerInvoker(acc)

	gasVault := env.DeployVault(t, "gas vault", env.GAS)
	tokenVault := env.DeployVault(t, "token vault", env.Token)
	rebasingVault := env.DeployVault(t, "rebasing vault", env.Rebasing)

	env.Deposit(t, acc, env.GAS, 5*gasUnit)
	c.Invoke(t, stackitem.Null{}, "withdraw", acc.ScriptHash(), env.GAS, 2*gasUnit, acc.ScriptHash())

	c.InvokeFail(t, ledgerconst.ErrNotAllowedVault, "moveToVault",
		acc.ScriptHash(), env.GAS, gasVault, 3*gasUnit, receiver.ScriptHash(), 3*gasUnit)

	h := owner.Invoke(t, stackitem.Null{}, "recordVaults", []any{gasVault, tokenVault, rebasingVault})
	checkEvent(t, env, h, "VaultRecorded", gasVault)
	require.True(t, env.Bool(t, "isApprovedVault", gasVault))

	t.Run("mismatched asset", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrMismatchedAsset, "moveToVault",
			acc.ScriptHash(), env.GAS, tokenVault, gasUnit, receiver.ScriptHash(), 0)
		c.InvokeFail(t, ledgerconst.ErrMismatchedAsset, "moveToVault",
			acc.ScriptHash(), env.Token, gasVault, gasUnit, receiver.ScriptHash(), 0)
		c.InvokeFail(t, ledgerconst.ErrMismatchedAsset, "moveToVault",
			acc.ScriptHash(), env.Token, rebasingVault, 1, receiver.ScriptHash(), 0)
		c.InvokeFail(t, ledgerconst.ErrMismatchedAsset, "moveToVault",
			acc.ScriptHash(), env.Wrapped, rebasingVault, 1, receiver.ScriptHash(), 0)
	})

	t.Run("insufficient shares", func(t *testing.T) {
		env.E.CommitteeInvoker(gasVault).Invoke(t, stackitem.Null{}, "setShortfall", 100)

		c.InvokeFail(t, ledgerconst.ErrInsufficientSharesRecv, "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, 3*gasUnit, receiver.ScriptHash(), 3*gasUnit)
		require.Equal(t, int64(3*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))

		env.E.CommitteeInvoker(gasVault).Invoke(t, stackitem.Null{}, "setShortfall", 0)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrInsufficientBalance, "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, 3*gasUnit+1, receiver.ScriptHash(), 0)
	})

	t.Run("zero receiver", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrReceiverIsZeroAddress, "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, gasUnit, util.Uint160{}, 0)
	})

	t.Run("ledger receiver", func(t *testing.T) {
		c.InvokeFail(t, ledgerconst.ErrReceiverIsLedger, "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, gasUnit, env.Ledger, 0)
		require.Equal(t, int64(3*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
	})

	t.Run("paused", func(t *testing.T) {
		p := env.LedgerInvoker(env.Pauser)
		p.Invoke(t, stackitem.Null{}, "pause", env.Pauser.ScriptHash(), ledgerconst.GateVaultMoves)

		c.InvokeFail(t, ledgerconst.ErrPaused+": 1", "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, gasUnit, receiver.ScriptHash(), 0)

		env.LedgerInvoker(env.Unpauser).Invoke(t, stackitem.Null{}, "unpause",
			env.Unpauser.ScriptHash(), ledgerconst.GateVaultMoves)
	})

	h = c.Invoke(t, stackitem.Null{}, "moveToVault",
		acc.ScriptHash(), env.GAS, gasVault, 3*gasUnit, receiver.ScriptHash(), 3*gasUnit)
	checkEvent(t, env, h, "MoveToVault", acc.ScriptHash(), env.GAS, gasVault, 3*gasUnit, receiver.ScriptHash())

	require.Equal(t, int64(0), env.Deposited(t, acc.ScriptHash(), env.GAS))
	require.Equal(t, int64(3*gasUnit), env.BalanceOf(t, gasVault, receiver.ScriptHash()))
	require.Equal(t, int64(3*gasUnit), env.BalanceOf(t, env.GAS, gasVault))
	require.Equal(t, int64(0), env.BalanceOf(t, env.GAS, env.Ledger))

	t.Run("delisted", func(t *testing.T) {
		env.Deposit(t, acc, env.GAS, gasUnit)

		h := owner.Invoke(t, stackitem.Null{}, "delistVault", gasVault)
		checkEvent(t, env, h, "VaultDelisted", gasVault)
		owner.Invoke(t, stackitem.Null{}, "delistVault", gasVault)
		require.False(t, env.Bool(t, "isApprovedVault", gasVault))

		c.InvokeFail(t, ledgerconst.ErrNotAllowedVault, "moveToVault",
			acc.ScriptHash(), env.GAS, gasVault, gasUnit, receiver.ScriptHash(), 0)
	})

	t.Run("list vaults", func(t *testing.T) {
		s, err := owner.TestInvoke(t, "listVaults")
		require.NoError(t, err)

		approved := make(map[util.Uint160]bool)
		iter := s.Pop().Value().(*storage.Iterator)
		for iter.Next() {
			kv := iter.Value().Value().([]stackitem.Item)
			key, err := kv[0].TryBytes()
			require.NoError(t, err)
			h, err := util.Uint160DecodeBytesBE(key)
			require.NoError(t, err)
			approved[h], err = kv[1].TryBool()
			require.NoError(t, err)
		}
		require.Equal(t, map[util.Uint160]bool{gasVault: false, tokenVault: true, rebasingVault: true}, approved)
	})

	t.Run("delist unknown vault", func(t *testing.T) {
		unknown := env.DeployVault(t, "unknown vault", env.GAS)
		owner.InvokeFail(t, ledgerconst.ErrNotAllowedVault, "delistVault", unknown)
		require.False(t, env.Bool(t, "isApprovedVault", unknown))
	})

	t.Run("not a contract", func(t *testing.T) {
		owner.InvokeFail(t, ledgerconst.ErrInvalidVault, "recordVaults", []any{receiver.ScriptHash()})
		owner.InvokeFail(t, ledgerconst.ErrInvalidAddress, "recordVaults", []any{util.Uint160{}})
	})
}

func TestLedger_MoveToVaultToken(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	owner := env.OwnerInvoker()

	vault := env.DeployVault(t, "token vault", env.Token)
	owner.Invoke(t, stackitem.Null{}, "recordVaults", []any{vault})
	owner.Invoke(t, stackitem.Null{}, "addDepositToken", env.Token)

	env.Mint(t, env.Token, acc.ScriptHash(), 1000)
	env.Deposit(t, acc, env.Token, 1000)

	env.E.CommitteeInvoker(vault).Invoke(t, stackitem.Null{}, "setShortfall", 1000)

	c := env.LedgerInvoker(acc)
	c.Invoke(t, stackitem.Null{}, "moveToVault",
		acc.ScriptHash(), env.Token, vault, 500, acc.ScriptHash(), 450)

	require.Equal(t, int64(450), env.BalanceOf(t, vault, acc.ScriptHash()))
	require.Equal(t, int64(500), env.Deposited(t, acc.ScriptHash(), env.Token))

	t.Run("transfer failed", func(t *testing.T) {
		env.E.CommitteeInvoker(env.Token).Invoke(t, stackitem.Null{}, "setTransfersStopped", true)
		c.InvokeFail(t, ledgerconst.ErrTransferFailed, "moveToVault",
			acc.ScriptHash(), env.Token, vault, 500, acc.ScriptHash(), 0)
		require.Equal(t, int64(500), env.Deposited(t, acc.ScriptHash(), env.Token))
	})
}

func TestLedger_MoveToVaultRebasing(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	receiver := env.E.NewAccount(t)

	vault := env.DeployVault(t, "rebasing vault", env.Rebasing)
	env.OwnerInvoker().Invoke(t, stackitem.Null{}, "recordVaults", []any{vault})

	env.Mint(t, env.Rebasing, acc.ScriptHash(), 1000)
	env.Deposit(t, acc, env.Rebasing, 1000)
	env.E.CommitteeInvoker(env.Rebasing).Invoke(t, stackitem.Null{}, "rebase", 5, 4)

	env.LedgerInvoker(acc).Invoke(t, stackitem.Null{}, "moveToVault",
		acc.ScriptHash(), env.Rebasing, vault, 400, receiver.ScriptHash(), 500)

	require.Equal(t, int64(500), env.BalanceOf(t, vault, receiver.ScriptHash()))
	require.Equal(t, int64(500), env.BalanceOf(t, env.Rebasing, vault))
	require.Equal(t, int64(600), env.Deposited(t, acc.ScriptHash(), env.Rebasing))
	require.Equal(t, int64(600), env.BalanceOf(t, env.Wrapped, env.Ledger))
}

func TestLedger_Admin(t *testing.T) {
	env := testenv.New(t)
	stranger := env.E.NewAccount(t)
	c := env.LedgerInvoker(stranger)

	vault := env.DeployVault(t, "gas vault", env.GAS)

	c.InvokeFail(t, ledgerconst.ErrNotOwner, "setCanDeposit", []any{stranger.ScriptHash()}, true)
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "addDepositToken", env.Token)
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "removeDepositToken", env.GAS)
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "setPermissionlessDeposit", true)
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "recordVaults", []any{vault})
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "delistVault", vault)
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "transferOwnership", stranger.ScriptHash())
	c.InvokeFail(t, ledgerconst.ErrNotOwner, "update", []byte{}, []byte{}, nil)

	owner := env.OwnerInvoker()
	owner.InvokeFail(t, ledgerconst.ErrInvalidAddress, "setCanDeposit", []any{util.Uint160{}}, true)
	owner.InvokeFail(t, ledgerconst.ErrInvalidAddress, "addDepositToken", util.Uint160{})
	owner.InvokeFail(t, ledgerconst.ErrInvalidAddress, "transferOwnership", util.Uint160{})

	a, b := env.E.NewAccount(t), env.E.NewAccount(t)
	owner.Invoke(t, stackitem.Null{}, "setCanDeposit", []any{a.ScriptHash(), b.ScriptHash()}, true)
	require.True(t, env.Bool(t, "canDeposit", a.ScriptHash()))
	require.True(t, env.Bool(t, "canDeposit", b.ScriptHash()))
}

func TestLedger_Ownership(t *testing.T) {
	env := testenv.New(t)
	newOwner := env.E.NewAccount(t)
	owner := env.OwnerInvoker()

	env.LedgerInvoker(newOwner).InvokeFail(t, ledgerconst.ErrNotPendingOwner, "acceptOwnership")

	h := owner.Invoke(t, stackitem.Null{}, "transferOwnership", newOwner.ScriptHash())
	checkEvent(t, env, h, "OwnershipTransferStarted", env.Owner.ScriptHash(), newOwner.ScriptHash())
	require.Equal(t, newOwner.ScriptHash(), env.Hash(t, "pendingOwner"))
	require.Equal(t, env.Owner.ScriptHash(), env.Hash(t, "owner"))

	owner.InvokeFail(t, ledgerconst.ErrNotPendingOwner, "acceptOwnership")

	c := env.LedgerInvoker(newOwner)
	h = c.Invoke(t, stackitem.Null{}, "acceptOwnership")
	checkEvent(t, env, h, "OwnershipTransferred", env.Owner.ScriptHash(), newOwner.ScriptHash())

	require.Equal(t, newOwner.ScriptHash(), env.Hash(t, "owner"))
	c.Invoke(t, stackitem.Null{}, "pendingOwner")

	owner.InvokeFail(t, ledgerconst.ErrNotOwner, "setPermissionlessDeposit", true)
	c.Invoke(t, stackitem.Null{}, "setPermissionlessDeposit", true)
}

func TestLedger_Pause(t *testing.T) {
	env := testenv.New(t)
	acc := env.NewDepositor(t)
	stranger := env.E.NewAccount(t)

	pauser := env.LedgerInvoker(env.Pauser)
	unpauser := env.LedgerInvoker(env.Unpauser)

	env.LedgerInvoker(stranger).InvokeFail(t, ledgerconst.ErrUnauthorized, "pause",
		stranger.ScriptHash(), ledgerconst.GateDeposits)
	pauser.InvokeFail(t, common.ErrWitnessFailed, "pause",
		env.Unpauser.ScriptHash(), ledgerconst.GateDeposits)
	pauser.InvokeFail(t, ledgerconst.ErrUnknownGate, "pause",
		env.Pauser.ScriptHash(), ledgerconst.GatesCount)

	h := pauser.Invoke(t, stackitem.Null{}, "pause", env.Pauser.ScriptHash(), ledgerconst.GateDeposits)
	checkEvent(t, env, h, "Paused", ledgerconst.GateDeposits, env.Pauser.ScriptHash())
	require.True(t, env.Bool(t, "isPaused", ledgerconst.GateDeposits))

	env.E.NewInvoker(env.GAS, acc).InvokeFail(t, ledgerconst.ErrPaused+": 0",
		"transfer", acc.ScriptHash(), env.Ledger, gasUnit, nil)

	env.OwnerInvoker().Invoke(t, stackitem.Null{}, "addDepositToken", env.Token)
	env.Mint(t, env.Token, acc.ScriptHash(), 1000)
	env.Mint(t, env.Rebasing, acc.ScriptHash(), 1000)

	env.E.NewInvoker(env.Token, acc).InvokeFail(t, ledgerconst.ErrPaused+": 0",
		"transfer", acc.ScriptHash(), env.Ledger, 100, nil)
	env.E.NewInvoker(env.Rebasing, acc).InvokeFail(t, ledgerconst.ErrPaused+": 0",
		"transfer", acc.ScriptHash(), env.Ledger, 100, nil)
	require.Equal(t, int64(1000), env.BalanceOf(t, env.Token, acc.ScriptHash()))
	require.Equal(t, int64(1000), env.BalanceOf(t, env.Rebasing, acc.ScriptHash()))

	pauser.InvokeFail(t, ledgerconst.ErrUnauthorized, "unpause",
		env.Pauser.ScriptHash(), ledgerconst.GateDeposits)

	h = unpauser.Invoke(t, stackitem.Null{}, "unpause", env.Unpauser.ScriptHash(), ledgerconst.GateDeposits)
	checkEvent(t, env, h, "Unpaused", ledgerconst.GateDeposits, env.Unpauser.ScriptHash())
	require.False(t, env.Bool(t, "isPaused", ledgerconst.GateDeposits))

	env.Deposit(t, acc, env.GAS, gasUnit)

	t.Run("vault moves gate keeps deposits open", func(t *testing.T) {
		pauser.Invoke(t, stackitem.Null{}, "pause", env.Pauser.ScriptHash(), ledgerconst.GateVaultMoves)

		env.Deposit(t, acc, env.GAS, gasUnit)
		env.Deposit(t, acc, env.Token, 100)
		require.Equal(t, int64(2*gasUnit), env.Deposited(t, acc.ScriptHash(), env.GAS))
		require.Equal(t, int64(100), env.Deposited(t, acc.ScriptHash(), env.Token))

		unpauser.Invoke(t, stackitem.Null{}, "unpause", env.Unpauser.ScriptHash(), ledgerconst.GateVaultMoves)
	})

	t.Run("unpauser may pause", func(t *testing.T) {
		unpauser.Invoke(t, stackitem.Null{}, "pause", env.Unpauser.ScriptHash(), ledgerconst.GateVaultMoves)
		require.True(t, env.Bool(t, "isPaused", ledgerconst.GateVaultMoves))
		unpauser.Invoke(t, stackitem.Null{}, "unpause", env.Unpauser.ScriptHash(), ledgerconst.GateVaultMoves)
	})

	t.Run("registry roles are read on every call", func(t *testing.T) {
		env.RegistryInvoker(env.Unpauser).Invoke(t, stackitem.Null{}, "setPauser", stranger.ScriptHash(), true)
		env.LedgerInvoker(stranger).Invoke(t, stackitem.Null{}, "pause",
			stranger.ScriptHash(), ledgerconst.GateVaultMoves)

		env.RegistryInvoker(env.Unpauser).Invoke(t, stackitem.Null{}, "setPauser", env.Pauser.ScriptHash(), false)
		pauser.InvokeFail(t, ledgerconst.ErrUnauthorized, "pause",
			env.Pauser.ScriptHash(), ledgerconst.GateDeposits)
	})
}

func TestLedger_Reentrancy(t *testing.T) {
	env := testenv.New(t)
	funder := env.E.NewAccount(t)

	attacker := env.DeployReentrant(t)
	env.Allow(t, attacker)

	env.E.NewInvoker(env.GAS, funder).Invoke(t, true, "transfer",
		funder.ScriptHash(), attacker, 5*gasUnit, nil)

	c := env.E.CommitteeInvoker(attacker)
	c.Invoke(t, stackitem.Null{}, "deposit", 4*gasUnit)
	require.Equal(t, int64(4*gasUnit), env.Deposited(t, attacker, env.GAS))

	const (
		modeNone     = 0
		modeWithdraw = 1
		modeDeposit  = 2
	)

	c.InvokeFail(t, ledgerconst.ErrReentrantCall, "attack", gasUnit, modeWithdraw)
	c.InvokeFail(t, ledgerconst.ErrReentrantCall, "attack", gasUnit, modeDeposit)
	require.Equal(t, int64(4*gasUnit), env.Deposited(t, attacker, env.GAS))

	c.Invoke(t, stackitem.Null{}, "attack", gasUnit, modeNone)
	require.Equal(t, int64(3*gasUnit), env.Deposited(t, attacker, env.GAS))
	require.Equal(t, int64(2*gasUnit), env.BalanceOf(t, env.GAS, attacker))
}
