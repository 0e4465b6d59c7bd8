// Package reentrant contains depositor contract which calls back into the
// Ledger contract when it receives GAS during a withdrawal.
package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Attack modes.
const (
	// ModeWithdraw withdraws again from the payment callback.
	ModeWithdraw = 1
	// ModeDeposit sends the received GAS back as a deposit.
	ModeDeposit = 2
)

const (
	ledgerKey = "l"
	modeKey   = "m"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	ledger := data.(interop.Hash160)
	storage.Put(storage.GetContext(), ledgerKey, ledger)
}

// Deposit sends GAS owned by the contract to the Ledger.
func Deposit(amount int) {
	ledger := storage.Get(storage.GetReadOnlyContext(), ledgerKey).(interop.Hash160)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), ledger, amount, nil) {
		panic("deposit failed")
	}
}

// Attack withdraws GAS from the Ledger and reacts to the payment according to
// the mode.
func Attack(amount int, mode int) {
	ctx := storage.GetContext()
	ledger := storage.Get(ctx, ledgerKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	storage.Put(ctx, modeKey, mode)
	contract.Call(ledger, "withdraw", contract.All, self, interop.Hash160(gas.Hash), amount, self)
	storage.Delete(ctx, modeKey)
}

// OnNEP17Payment calls back into the Ledger according to the attack mode.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	v := storage.Get(ctx, modeKey)
	if v == nil {
		return
	}

	ledger := storage.Get(ctx, ledgerKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	switch v.(int) {
	case ModeWithdraw:
		contract.Call(ledger, "withdraw", contract.All, self, interop.Hash160(gas.Hash), amount, self)
	case ModeDeposit:
		gas.Transfer(self, ledger, amount, nil)
	}
}
