package registry

import (
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/common"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	unpauserKey   = 'u'
	pauserPrefix  = 'p'
	enabledMarker = 1
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		unpauser interop.Hash160
		pausers  []interop.Hash160
	})

	if common.IsNullAddress(args.unpauser) {
		panic(registryconst.ErrInvalidAddress)
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{unpauserKey}, args.unpauser)

	for _, p := range args.pausers {
		if common.IsNullAddress(p) {
			panic(registryconst.ErrInvalidAddress)
		}
		storage.Put(ctx, pauserKey(p), enabledMarker)
	}

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the unpauser.
func Update(nefFile, manifest []byte, data any) {
	checkUnpauser(storage.GetReadOnlyContext())

	common.UpdateContract(nefFile, manifest, data)
	runtime.Log("registry contract updated")
}

// IsPauser returns true if the account is allowed to pause Ledger gates.
func IsPauser(account interop.Hash160) bool {
	return storage.Get(storage.GetReadOnlyContext(), pauserKey(account)) != nil
}

// Unpauser returns the only account allowed to unpause Ledger gates and to
// manage roles.
func Unpauser() interop.Hash160 {
	return getUnpauser(storage.GetReadOnlyContext())
}

// IsUnpauser returns true if the account is the current unpauser.
func IsUnpauser(account interop.Hash160) bool {
	if len(account) != interop.Hash160Len {
		return false
	}
	return account.Equals(getUnpauser(storage.GetReadOnlyContext()))
}

// Pausers returns iterator over script hashes of all current pausers.
func Pausers() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{pauserPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// SetPauser grants (enabled is true) or revokes pauser role of the account.
// It can be invoked only by the unpauser.
//
// Produces PauserStatusChanged notification.
func SetPauser(account interop.Hash160, enabled bool) {
	ctx := storage.GetContext()
	checkUnpauser(ctx)

	if common.IsNullAddress(account) {
		panic(registryconst.ErrInvalidAddress)
	}

	if enabled {
		storage.Put(ctx, pauserKey(account), enabledMarker)
	} else {
		storage.Delete(ctx, pauserKey(account))
	}

	runtime.Notify("PauserStatusChanged", account, enabled)
}

// SetUnpauser replaces the unpauser. It can be invoked only by the current
// unpauser.
//
// Produces UnpauserChanged notification.
func SetUnpauser(account interop.Hash160) {
	ctx := storage.GetContext()
	previous := checkUnpauser(ctx)

	if common.IsNullAddress(account) {
		panic(registryconst.ErrInvalidAddress)
	}

	storage.Put(ctx, []byte{unpauserKey}, account)

	runtime.Notify("UnpauserChanged", previous, account)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkUnpauser(ctx storage.Context) interop.Hash160 {
	unpauser := getUnpauser(ctx)
	common.CheckWitnessOrPanic(unpauser, registryconst.ErrUnauthorized)
	return unpauser
}

func getUnpauser(ctx storage.Context) interop.Hash160 {
	return common.GetHash160(ctx, []byte{unpauserKey})
}

func pauserKey(account interop.Hash160) []byte {
	return append([]byte{pauserPrefix}, account...)
}
