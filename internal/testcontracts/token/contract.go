// Package token contains plain NEP-17 token contract with open minting. Its
// transfers can be switched off to make them return false.
package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	totalSupplyKey = "s"
	stoppedKey     = "p"
	balancePrefix  = 'b'
)

// Symbol returns the token symbol.
func Symbol() string {
	return "TKN"
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

// Transfer moves tokens between accounts and calls onNEP17Payment of the
// receiving contract.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid address")
	}
	if amount < 0 {
		panic("negative amount")
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, stoppedKey) != nil {
		return false
	}

	if !from.Equals(runtime.GetCallingScriptHash()) && !runtime.CheckWitness(from) {
		return false
	}

	fromBalance := getInt(ctx, balanceKey(from))
	if fromBalance < amount {
		return false
	}

	storage.Put(ctx, balanceKey(from), fromBalance-amount)
	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

// Mint issues new tokens to the account. Anyone can mint.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)+amount)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
}

// SetTransfersStopped makes every following transfer return false.
func SetTransfersStopped(stopped bool) {
	ctx := storage.GetContext()
	if stopped {
		storage.Put(ctx, stoppedKey, true)
	} else {
		storage.Delete(ctx, stoppedKey)
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
