// Package vault contains share token contract accepting a single underlying
// asset. A deposit is a transfer of the asset with the share receiver passed
// as data. Shortfall in basis points reduces issued shares.
package vault

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	assetKey       = "a"
	shortfallKey   = "f"
	totalSupplyKey = "s"
	balancePrefix  = 'b'

	basisPoints = 10000
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	asset := data.(interop.Hash160)
	storage.Put(storage.GetContext(), assetKey, asset)
}

// Symbol returns the token symbol.
func Symbol() string {
	return "VLT"
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

// Asset returns the underlying asset hash.
func Asset() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), assetKey).(interop.Hash160)
}

// PreviewDeposit returns shares issued for the deposited amount.
func PreviewDeposit(amount int) int {
	return previewDeposit(storage.GetReadOnlyContext(), amount)
}

// SetShortfall sets the share of deposits in basis points that is not backed
// by shares.
func SetShortfall(bps int) {
	storage.Put(storage.GetContext(), shortfallKey, bps)
}

// Transfer moves shares between accounts.
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
	storage.Put(ctx, balanceKey(to), getInt(ctx, balanceKey(to))+amount)

	runtime.Notify("Transfer", from, to, amount)
	return true
}

// OnNEP17Payment issues shares for the received asset. Shares go to the
// account passed as data or to the sender if data is empty.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	asset := storage.Get(ctx, assetKey).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(asset) {
		panic("wrong asset")
	}

	receiver := from
	if data != nil {
		receiver = data.(interop.Hash160)
	}

	shares := previewDeposit(ctx, amount)

	storage.Put(ctx, balanceKey(receiver), getInt(ctx, balanceKey(receiver))+shares)
	storage.Put(ctx, totalSupplyKey, getInt(ctx, totalSupplyKey)+shares)

	var nobody interop.Hash160
	runtime.Notify("Transfer", nobody, receiver, shares)
}

func previewDeposit(ctx storage.Context, amount int) int {
	return amount * (basisPoints - getInt(ctx, shortfallKey)) / basisPoints
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
