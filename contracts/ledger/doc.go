/*
Package ledger implements Ledger contract which accepts pre-deposits of GAS
and whitelisted NEP-17 tokens, keeps per-depositor balances and later lets
depositors withdraw them or move them into approved vaults.

Deposits are plain NEP-17 transfers to the contract. Rebasing asset deposits
are wrapped on arrival, so their balances do not drift with rebases and are
kept in wrapped units under the rebasing asset key. Capabilities may be
paused by the roles kept in the Registry contract.

# Contract notifications

Deposit notification. It is produced when a depositor's balance is credited.

	Deposit:
	  - name: depositor
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. It is produced when a depositor withdraws funds.

	Withdraw:
	  - name: depositor
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: receiver
	    type: Hash160

MoveToVault notification. It is produced when funds are moved into a vault.

	MoveToVault:
	  - name: depositor
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: vault
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: receiver
	    type: Hash160

DepositorStatusChanged, DepositTokenAdded, DepositTokenRemoved,
PermissionlessDepositSet, VaultRecorded and VaultDelisted notifications are
produced by the administrative methods.

	DepositorStatusChanged:
	  - name: depositor
	    type: Hash160
	  - name: enabled
	    type: Boolean

Paused and Unpaused notifications. They are produced when a gate changes
its state.

	Paused:
	  - name: gate
	    type: Integer
	  - name: account
	    type: Hash160

OwnershipTransferStarted and OwnershipTransferred notifications. They are
produced by the two steps of ownership transfer.

	OwnershipTransferred:
	  - name: previous
	    type: Hash160
	  - name: owner
	    type: Hash160
*/
package ledger

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'b' + depositor + asset -> int
    ledger balance, zero balances are kept
  - 'd' + interop.Hash160 -> bool
    deposit allow-list
  - 'm' -> bool
    permissionless deposit mode
  - 't' + interop.Hash160 -> bool
    deposit token whitelist
  - 'v' + interop.Hash160 -> bool
    recorded vaults and their approval flag
  - 'p' + decimal gate number -> bool
    pause gates
  - 'o', 'n' -> interop.Hash160
    owner and pending owner
  - 'r', 'w', 'x' -> interop.Hash160
    Registry contract, rebasing and wrapped tokens
  - 'l' -> bool
    reentrancy flag, present only during outgoing calls
*/
