/*
Package ledgerconst contains constants shared by Ledger contract and its
off-chain users.
*/
package ledgerconst

// Pause gates. Each gate restricts a single capability of the Ledger
// contract. Withdrawals are not gated.
const (
	// GateDeposits restricts GAS and NEP-17 deposits.
	GateDeposits = 0
	// GateVaultMoves restricts moveToVault.
	GateVaultMoves = 1

	// GatesCount is the number of known gates, valid gate indices are
	// [0, GatesCount).
	GatesCount = 2
)

// Exception messages thrown by the Ledger contract.
const (
	ErrNotOwner                 = "not owner"
	ErrNotPendingOwner          = "not pending owner"
	ErrUnauthorized             = "unauthorized"
	ErrNotAuthorizedToDeposit   = "not authorized to deposit"
	ErrNotAuthorizedToMoveFunds = "not authorized to move funds"

	ErrZeroAmount             = "zero amount"
	ErrInvalidAmount          = "invalid amount"
	ErrAssetNotWhitelisted    = "asset is not whitelisted"
	ErrNotAllowedVault        = "vault is not allowed"
	ErrInvalidVault           = "invalid vault"
	ErrMismatchedAsset        = "mismatched asset"
	ErrReceiverIsZeroAddress  = "receiver is zero address"
	ErrReceiverIsLedger       = "receiver is the ledger"
	ErrInvalidAddress         = "invalid address"
	ErrUnknownGate            = "unknown gate"
	ErrInsufficientBalance    = "insufficient balance"
	ErrTransferFailed         = "transfer failed"
	ErrInsufficientSharesRecv = "insufficient shares received"
	ErrReentrantCall          = "reentrant call"

	// ErrPaused is followed by ": " and the gate index.
	ErrPaused = "paused"
)
