// Package wrapper contains wrapped rebasing token contract. Sending rebasing
// tokens to it mints wrapped units equal to the shares received, sending
// wrapped units back to it burns them and returns the rebasing tokens.
package wrapper

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	rebasingKey    = "r"
	totalSupplyKey = "s"
	balancePrefix  = 'b'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	rebasing := data.(interop.Hash160)
	storage.Put(storage.GetContext(), rebasingKey, rebasing)
}

// Symbol returns the token symbol.
func Symbol() string {
	return "WRBS"
}

// Decimals returns the number of token decimals.
func Decimals() int {
	return 8
}

// TotalSupply returns the total amount of issued tokens.
func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), totalSupplyKey)
}

// BalanceOf returns the token balance of the account.
func BalanceOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), balanceKey(account))
}

// Underlying returns the rebasing token hash.
func Underlying() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), rebasingKey).(interop.Hash160)
}

// Transfer moves tokens between accounts and calls onNEP17Payment of the
// receiving contract.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid address")
	}
	if amount < 0 {
		panic("negative amount")
	}

	if !from.Equals(runtime.GetCallingScriptHash()) && !runtime.CheckWitness(from) {
		return false
	}

	ctx := storage.GetContext()
	fromBalance := getInt(ctx, balanceKey(from))
	if fromBalance < amount {
		return false
	}

	storage.Put(ctx, balanceKey(from), fromBalance-amount)

	self := runtime.GetExecutingScriptHash()
	if to.Equals(self) {
		storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)-amount)
		runtime.Notify("Transfer", from, to, amount)

		rebasing := storage.Get(ctx, rebasingKey).(interop.Hash160)
		pooled := contract.Call(rebasing, "getPooledAmountByShares", contract.ReadStates, amount).(int)
		ok := contract.Call(rebasing, "transfer", contract.All, self, from, pooled, nil).(bool)
		if !ok {
			panic("unwrap failed")
		}
		return true
	}

	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)
	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

// OnNEP17Payment wraps received rebasing tokens for the sender.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	rebasing := storage.Get(ctx, rebasingKey).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(rebasing) {
		panic("only rebasing token can be wrapped")
	}

	shares := contract.Call(rebasing, "getSharesByPooledAmount", contract.ReadStates, amount).(int)

	storage.Put(ctx, balanceKey(from), getInt(ctx, balanceKey(from))+shares)
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)+shares)

	var nobody interop.Hash160
	runtime.Notify("Transfer", nobody, from, shares)

	if management.GetContract(from) != nil {
		contract.Call(from, "onNEP17Payment", contract.All, nobody, shares, nil)
	}
}

func getInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}
	return v.(int)
}

func balanceKey(account interop.Hash160) []byte {
	return append([]byte{balancePrefix}, account...)
}
