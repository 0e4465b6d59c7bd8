package ledger

import (
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/common"
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts/ledger/ledgerconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	balancePrefix     = 'b'
	depositorPrefix   = 'd'
	tokenPrefix       = 't'
	vaultPrefix       = 'v'
	gatePrefix        = 'p'
	permissionlessKey = 'm'
	ownerKey          = 'o'
	pendingOwnerKey   = 'n'
	registryKey       = 'r'
	rebasingKey       = 'w'
	wrappedKey        = 'x'
	lockKey           = 'l'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		registry interop.Hash160
		owner    interop.Hash160
		rebasing interop.Hash160
		wrapped  interop.Hash160
		paused   []int
	})

	if common.IsNullAddress(args.registry) || common.IsNullAddress(args.owner) ||
		common.IsNullAddress(args.rebasing) || common.IsNullAddress(args.wrapped) {
		panic(ledgerconst.ErrInvalidAddress)
	}

	if args.rebasing.Equals(args.wrapped) {
		panic(ledgerconst.ErrMismatchedAsset)
	}

	ctx := storage.GetContext()

	storage.Put(ctx, []byte{registryKey}, args.registry)
	storage.Put(ctx, []byte{ownerKey}, args.owner)
	storage.Put(ctx, []byte{rebasingKey}, args.rebasing)
	storage.Put(ctx, []byte{wrappedKey}, args.wrapped)

	storage.Put(ctx, tokenKey(interop.Hash160(gas.Hash)), true)
	storage.Put(ctx, tokenKey(args.rebasing), true)
	storage.Put(ctx, tokenKey(args.wrapped), true)

	for _, gate := range args.paused {
		checkGate(gate)
		storage.Put(ctx, gateKey(gate), true)
	}

	runtime.Log("ledger contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	checkOwner(storage.GetReadOnlyContext())

	common.UpdateContract(nefFile, manifest, data)
	runtime.Log("ledger contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS and other
// deposit tokens. Every accepted payment is a deposit of its sender. Rebasing
// asset payments are wrapped right away and credited in wrapped units under
// the rebasing asset key.
//
// Payments from the rebasing and the wrapped tokens are accepted without
// crediting anyone while the contract performs a conversion. Any other
// payment at that moment is rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	asset := runtime.GetCallingScriptHash()
	rebasing := getHash(ctx, rebasingKey)

	if isLocked(ctx) {
		if asset.Equals(rebasing) || asset.Equals(getHash(ctx, wrappedKey)) {
			return
		}
		panic(ledgerconst.ErrReentrantCall)
	}

	checkNotPaused(ctx, ledgerconst.GateDeposits)

	if common.IsNullAddress(from) || !canDeposit(ctx, from) {
		panic(ledgerconst.ErrNotAuthorizedToDeposit)
	}

	if !common.GetBool(ctx, tokenKey(asset)) {
		panic(ledgerconst.ErrAssetNotWhitelisted)
	}

	credited := amount
	if asset.Equals(gas.Hash) {
		if amount <= 0 {
			panic(ledgerconst.ErrZeroAmount)
		}
	} else if asset.Equals(rebasing) {
		lock(ctx)
		credited = wrap(rebasing, getHash(ctx, wrappedKey), amount)
		unlock(ctx)
	}

	key := balanceKey(from, asset)
	storage.Put(ctx, key, common.GetInt(ctx, key)+credited)

	runtime.Notify("Deposit", from, asset, credited)
}

// Withdraw sends amount of the asset from the depositor's ledger balance to
// the receiver. Withdrawals of the rebasing asset are unwrapped first and the
// receiver gets the rebasing units actually obtained. Withdrawals are never
// paused.
//
// Produces Withdraw notification.
func Withdraw(depositor, asset interop.Hash160, amount int, receiver interop.Hash160) {
	common.CheckWitness(depositor)

	if amount < 0 {
		panic(ledgerconst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	lock(ctx)
	debit(ctx, depositor, asset, amount)

	checkReceiver(receiver)

	out := amount
	rebasing := getHash(ctx, rebasingKey)
	if asset.Equals(rebasing) {
		out = unwrap(rebasing, getHash(ctx, wrappedKey), amount)
	}

	if !transferOut(asset, receiver, out, nil) {
		panic(ledgerconst.ErrTransferFailed)
	}

	unlock(ctx)

	runtime.Notify("Withdraw", depositor, asset, amount, receiver)
}

// MoveToVault deposits amount of the asset from the depositor's ledger balance
// into an approved vault on behalf of the receiver. The whole call fails if
// the receiver gets fewer than minSharesOut vault shares. Only explicitly
// allow-listed depositors may move funds, permissionless mode does not
// apply here.
//
// Produces MoveToVault notification.
func MoveToVault(depositor, asset, vault interop.Hash160, amount int, receiver interop.Hash160, minSharesOut int) {
	ctx := storage.GetContext()
	checkNotPaused(ctx, ledgerconst.GateVaultMoves)

	common.CheckWitness(depositor)

	if !common.GetBool(ctx, depositorKey(depositor)) {
		panic(ledgerconst.ErrNotAuthorizedToMoveFunds)
	}

	if !common.GetBool(ctx, vaultKey(vault)) {
		panic(ledgerconst.ErrNotAllowedVault)
	}

	vaultAsset := contract.Call(vault, "asset", contract.ReadStates).(interop.Hash160)
	if !vaultAsset.Equals(asset) {
		panic(ledgerconst.ErrMismatchedAsset)
	}

	if amount < 0 {
		panic(ledgerconst.ErrInvalidAmount)
	}

	lock(ctx)
	debit(ctx, depositor, asset, amount)

	checkReceiver(receiver)

	spendable := amount
	rebasing := getHash(ctx, rebasingKey)
	if asset.Equals(rebasing) {
		spendable = unwrap(rebasing, getHash(ctx, wrappedKey), amount)
	}

	before := common.BalanceOfNEP17(vault, receiver)
	if !transferOut(asset, vault, spendable, receiver) {
		panic(ledgerconst.ErrTransferFailed)
	}

	received := common.BalanceOfNEP17(vault, receiver) - before
	if received < minSharesOut {
		panic(ledgerconst.ErrInsufficientSharesRecv)
	}

	unlock(ctx)

	runtime.Notify("MoveToVault", depositor, asset, vault, amount, receiver)
}

// SetCanDeposit updates the deposit allow-list. It can be invoked only by the
// owner.
//
// Produces DepositorStatusChanged notification for every depositor.
func SetCanDeposit(depositors []interop.Hash160, enabled bool) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	for _, d := range depositors {
		if common.IsNullAddress(d) {
			panic(ledgerconst.ErrInvalidAddress)
		}
		storage.Put(ctx, depositorKey(d), enabled)
		runtime.Notify("DepositorStatusChanged", d, enabled)
	}
}

// AddDepositToken whitelists the asset for deposits. It can be invoked only
// by the owner.
func AddDepositToken(asset interop.Hash160) {
	setDepositToken(asset, true)
	runtime.Notify("DepositTokenAdded", asset)
}

// RemoveDepositToken removes the asset from the deposit whitelist. Existing
// balances of the asset remain withdrawable. It can be invoked only by the
// owner.
func RemoveDepositToken(asset interop.Hash160) {
	setDepositToken(asset, false)
	runtime.Notify("DepositTokenRemoved", asset)
}

// SetPermissionlessDeposit enables or disables deposits from any account. It
// can be invoked only by the owner.
func SetPermissionlessDeposit(enabled bool) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	storage.Put(ctx, []byte{permissionlessKey}, enabled)
	runtime.Notify("PermissionlessDepositSet", enabled)
}

// RecordVaults approves vaults as moveToVault destinations. Every vault must
// be a deployed contract. It can be invoked only by the owner.
//
// Produces VaultRecorded notification for every vault.
func RecordVaults(vaults []interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	for _, v := range vaults {
		if common.IsNullAddress(v) {
			panic(ledgerconst.ErrInvalidAddress)
		}
		if management.GetContract(v) == nil {
			panic(ledgerconst.ErrInvalidVault)
		}
		storage.Put(ctx, vaultKey(v), true)
		runtime.Notify("VaultRecorded", v)
	}
}

// DelistVault revokes vault approval. Delisted vaults are still reported by
// ListVaults, vaults never recorded can not be delisted. It can be invoked
// only by the owner.
func DelistVault(vault interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	key := vaultKey(vault)
	if storage.Get(ctx, key) == nil {
		panic(ledgerconst.ErrNotAllowedVault)
	}

	storage.Put(ctx, key, false)
	runtime.Notify("VaultDelisted", vault)
}

// TransferOwnership starts ownership transfer to the new owner. The transfer
// completes when the new owner calls AcceptOwnership.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if common.IsNullAddress(newOwner) {
		panic(ledgerconst.ErrInvalidAddress)
	}

	storage.Put(ctx, []byte{pendingOwnerKey}, newOwner)
	runtime.Notify("OwnershipTransferStarted", owner, newOwner)
}

// AcceptOwnership completes ownership transfer started by TransferOwnership.
// It can be invoked only by the pending owner.
func AcceptOwnership() {
	ctx := storage.GetContext()

	pending := getHash(ctx, pendingOwnerKey)
	if pending == nil {
		panic(ledgerconst.ErrNotPendingOwner)
	}
	common.CheckWitnessOrPanic(pending, ledgerconst.ErrNotPendingOwner)

	previous := getHash(ctx, ownerKey)
	storage.Put(ctx, []byte{ownerKey}, pending)
	storage.Delete(ctx, []byte{pendingOwnerKey})

	runtime.Notify("OwnershipTransferred", previous, pending)
}

// Pause closes the gate. The account must be a pauser or the unpauser in the
// Registry contract.
//
// Produces Paused notification.
func Pause(account interop.Hash160, gate int) {
	ctx := storage.GetContext()
	registry := getHash(ctx, registryKey)

	common.CheckWitness(account)

	isPauser := contract.Call(registry, "isPauser", contract.ReadStates, account).(bool)
	if !isPauser && !contract.Call(registry, "isUnpauser", contract.ReadStates, account).(bool) {
		panic(ledgerconst.ErrUnauthorized)
	}

	checkGate(gate)

	storage.Put(ctx, gateKey(gate), true)
	runtime.Notify("Paused", gate, account)
}

// Unpause opens the gate. The account must be the unpauser in the Registry
// contract.
//
// Produces Unpaused notification.
func Unpause(account interop.Hash160, gate int) {
	ctx := storage.GetContext()
	registry := getHash(ctx, registryKey)

	common.CheckWitness(account)

	if !contract.Call(registry, "isUnpauser", contract.ReadStates, account).(bool) {
		panic(ledgerconst.ErrUnauthorized)
	}

	checkGate(gate)

	storage.Put(ctx, gateKey(gate), false)
	runtime.Notify("Unpaused", gate, account)
}

// IsPaused returns true if the gate is closed.
func IsPaused(gate int) bool {
	return common.GetBool(storage.GetReadOnlyContext(), gateKey(gate))
}

// DepositedAmount returns ledger balance of the depositor in the asset.
// Rebasing asset balances are expressed in wrapped units.
func DepositedAmount(depositor, asset interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), balanceKey(depositor, asset))
}

// CanDeposit returns true if the depositor is explicitly allow-listed.
func CanDeposit(depositor interop.Hash160) bool {
	return common.GetBool(storage.GetReadOnlyContext(), depositorKey(depositor))
}

// IsPermissionlessDeposit returns true if anyone may deposit.
func IsPermissionlessDeposit() bool {
	return common.GetBool(storage.GetReadOnlyContext(), []byte{permissionlessKey})
}

// IsDepositToken returns true if the asset is whitelisted for deposits.
func IsDepositToken(asset interop.Hash160) bool {
	return common.GetBool(storage.GetReadOnlyContext(), tokenKey(asset))
}

// IsApprovedVault returns true if the vault accepts moveToVault calls.
func IsApprovedVault(vault interop.Hash160) bool {
	return common.GetBool(storage.GetReadOnlyContext(), vaultKey(vault))
}

// ListVaults returns iterator over all recorded vaults. Each item is a
// key-value pair of vault script hash and approval flag.
func ListVaults() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{vaultPrefix}, storage.RemovePrefix)
}

// Owner returns current contract owner.
func Owner() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), ownerKey)
}

// PendingOwner returns the account which may accept ownership or nil.
func PendingOwner() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), pendingOwnerKey)
}

// Registry returns script hash of the Registry contract.
func Registry() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), registryKey)
}

// RebasingAsset returns script hash of the rebasing token.
func RebasingAsset() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), rebasingKey)
}

// WrappedAsset returns script hash of the wrapped rebasing token.
func WrappedAsset() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), wrappedKey)
}

// NativeAsset returns script hash of the GAS contract.
func NativeAsset() interop.Hash160 {
	return interop.Hash160(gas.Hash)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func setDepositToken(asset interop.Hash160, enabled bool) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	if common.IsNullAddress(asset) {
		panic(ledgerconst.ErrInvalidAddress)
	}

	storage.Put(ctx, tokenKey(asset), enabled)
}

func canDeposit(ctx storage.Context, depositor interop.Hash160) bool {
	return common.GetBool(ctx, []byte{permissionlessKey}) || common.GetBool(ctx, depositorKey(depositor))
}

func debit(ctx storage.Context, depositor, asset interop.Hash160, amount int) {
	key := balanceKey(depositor, asset)
	balance := common.GetInt(ctx, key)
	if balance < amount {
		panic(ledgerconst.ErrInsufficientBalance)
	}

	storage.Put(ctx, key, balance-amount)
}

// wrap converts rebasing units held by the contract into wrapped units and
// returns the number of wrapped units received.
func wrap(rebasing, wrapped interop.Hash160, amount int) int {
	self := runtime.GetExecutingScriptHash()

	held := common.BalanceOfNEP17(rebasing, self)
	if held < amount {
		amount = held
	}

	before := common.BalanceOfNEP17(wrapped, self)
	if !common.TransferNEP17(rebasing, self, wrapped, amount, nil) {
		panic(ledgerconst.ErrTransferFailed)
	}

	return common.BalanceOfNEP17(wrapped, self) - before
}

// unwrap converts wrapped units back into rebasing units and returns the
// number of rebasing units received.
func unwrap(rebasing, wrapped interop.Hash160, amount int) int {
	self := runtime.GetExecutingScriptHash()

	before := common.BalanceOfNEP17(rebasing, self)
	if !common.TransferNEP17(wrapped, self, wrapped, amount, nil) {
		panic(ledgerconst.ErrTransferFailed)
	}

	return common.BalanceOfNEP17(rebasing, self) - before
}

func transferOut(asset, to interop.Hash160, amount int, data any) bool {
	self := runtime.GetExecutingScriptHash()
	if asset.Equals(gas.Hash) {
		return gas.Transfer(self, to, amount, data)
	}

	return common.TransferNEP17(asset, self, to, amount, data)
}

func isLocked(ctx storage.Context) bool {
	return common.GetBool(ctx, []byte{lockKey})
}

func lock(ctx storage.Context) {
	if isLocked(ctx) {
		panic(ledgerconst.ErrReentrantCall)
	}
	storage.Put(ctx, []byte{lockKey}, true)
}

func unlock(ctx storage.Context) {
	storage.Delete(ctx, []byte{lockKey})
}

func checkNotPaused(ctx storage.Context, gate int) {
	if common.GetBool(ctx, gateKey(gate)) {
		panic(ledgerconst.ErrPaused + ": " + std.Itoa(gate, 10))
	}
}

func checkGate(gate int) {
	if gate < 0 || gate >= ledgerconst.GatesCount {
		panic(ledgerconst.ErrUnknownGate)
	}
}

func checkOwner(ctx storage.Context) interop.Hash160 {
	owner := getHash(ctx, ownerKey)
	common.CheckWitnessOrPanic(owner, ledgerconst.ErrNotOwner)
	return owner
}

// checkReceiver panics if funds sent to the receiver would not leave the
// contract: either null address or the Ledger itself.
func checkReceiver(receiver interop.Hash160) {
	if common.IsNullAddress(receiver) {
		panic(ledgerconst.ErrReceiverIsZeroAddress)
	}
	if receiver.Equals(runtime.GetExecutingScriptHash()) {
		panic(ledgerconst.ErrReceiverIsLedger)
	}
}

func getHash(ctx storage.Context, key byte) interop.Hash160 {
	return common.GetHash160(ctx, []byte{key})
}

func balanceKey(depositor, asset interop.Hash160) []byte {
	return append(append([]byte{balancePrefix}, depositor...), asset...)
}

func depositorKey(depositor interop.Hash160) []byte {
	return append([]byte{depositorPrefix}, depositor...)
}

func tokenKey(asset interop.Hash160) []byte {
	return append([]byte{tokenPrefix}, asset...)
}

func vaultKey(vault interop.Hash160) []byte {
	return append([]byte{vaultPrefix}, vault...)
}

func gateKey(gate int) []byte {
	return append([]byte{gatePrefix}, []byte(std.Itoa(gate, 10))...)
}
