package ledger

import (
	"github.com/Byzantine-Finance/predeposit-contract-ethereum/contracts/ledger/ledgerconst"
)

const (
	// GateDeposits restricts deposits.
	GateDeposits = ledgerconst.GateDeposits
	// GateVaultMoves restricts moveToVault.
	GateVaultMoves = ledgerconst.GateVaultMoves

	// ErrInsufficientBalance is returned when a depositor withdraws or moves
	// more than it has deposited.
	ErrInsufficientBalance = ledgerconst.ErrInsufficientBalance

	// ErrPaused is returned when the gate of the called method is closed.
	ErrPaused = ledgerconst.ErrPaused

	// ErrNotOwner is returned by administrative methods called by a non-owner.
	ErrNotOwner = ledgerconst.ErrNotOwner
)
