package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

// TransferNEP17 invokes NEP-17 `transfer` method of the token contract and
// returns its result.
func TransferNEP17(token, from, to interop.Hash160, amount int, data any) bool {
	return contract.Call(token, "transfer", contract.All, from, to, amount, data).(bool)
}

// BalanceOfNEP17 invokes NEP-17 `balanceOf` method of the token contract.
func BalanceOfNEP17(token, account interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadStates, account).(int)
}
