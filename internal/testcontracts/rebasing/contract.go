// Package rebasing contains share-based rebasing NEP-17 token contract.
// Balances are shares of the pooled amount, so they change on every rebase
// while shares stay the same.
package rebasing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	totalSharesKey = "s"
	totalPooledKey = "t"
	sharesPrefix   = 'b'
)

// Symbol returns the token symbol.
func Symbol() string {
	return "RBS"
}

// Decimals returns the number of token decimals.
func Decimals() int {
	return 8
}

// TotalSupply returns the total amount of issued tokens.
func TotalSupply() int {
	return getInt(storage.GetReadOnlyContext(), totalPooledKey)
}

// BalanceOf returns the token balance of the account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return pooledByShares(ctx, getInt(ctx, sharesKey(account)))
}

// SharesOf returns shares owned by the account.
func SharesOf(account interop.Hash160) int {
	return getInt(storage.GetReadOnlyContext(), sharesKey(account))
}

// GetSharesByPooledAmount converts pooled amount into shares.
func GetSharesByPooledAmount(amount int) int {
	return sharesByPooled(storage.GetReadOnlyContext(), amount)
}

// GetPooledAmountByShares converts shares into pooled amount.
func GetPooledAmountByShares(shares int) int {
	return pooledByShares(storage.GetReadOnlyContext(), shares)
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
	shares := sharesByPooled(ctx, amount)

	fromShares := getInt(ctx, sharesKey(from))
	if fromShares < shares {
		return false
	}

	storage.Put(ctx, sharesKey(from), fromShares-shares)
	storage.Put(ctx, sharesKey(to), getInt(ctx, sharesKey(to))+shares)

	runtime.Notify("Transfer", from, to, amount)

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
	return true
}

// Mint issues pooled amount to the account at the current share rate.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()
	shares := sharesByPooled(ctx, amount)

	storage.Put(ctx, sharesKey(to), getInt(ctx, sharesKey(to))+shares)
	storage.Put(ctx, totalSharesKey, getInt(ctx, totalSharesKey)+shares)
	storage.Put(ctx, totalPooledKey, getInt(ctx, totalPooledKey)+amount)

	var from interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
}

// Rebase multiplies pooled amount by num/den, changing every balance.
func Rebase(num, den int) {
	ctx := storage.GetContext()
	storage.Put(ctx, totalPooledKey, getInt(ctx, totalPooledKey)*num/den)
}

func sharesByPooled(ctx storage.Context, amount int) int {
	pooled := getInt(ctx, totalPooledKey)
	if pooled == 0 {
		return amount
	}
	return amount * getInt(ctx, totalSharesKey) / pooled
}

func pooledByShares(ctx storage.Context, shares int) int {
	total := getInt(ctx, totalSharesKey)
	if total == 0 {
		return 0
	}
	return shares * getInt(ctx, totalPooledKey) / total
}

func getInt(ctx storage.Context, key any) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}
	return v.(int)
}

func sharesKey(account interop.Hash160) []byte {
	return append([]byte{sharesPrefix}, account...)
}
