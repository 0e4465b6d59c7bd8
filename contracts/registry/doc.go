/*
Package registry implements Registry contract which holds pause roles of the
pre-deposit Ledger.

There are two disjoint role tiers. Any number of pausers may restrict Ledger
capabilities quickly, while the single unpauser restores them, manages the
pauser set and may hand its role over to another account. Ledger contract
reads roles from the Registry on every pause and unpause call.

# Contract notifications

PauserStatusChanged notification. It is produced when the pauser role is
granted or revoked.

	PauserStatusChanged:
	  - name: account
	    type: Hash160
	  - name: enabled
	    type: Boolean

UnpauserChanged notification. It is produced when the unpauser is replaced.

	UnpauserChanged:
	  - name: previous
	    type: Hash160
	  - name: unpauser
	    type: Hash160
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'u' -> interop.Hash160
    current unpauser
  - 'p' + interop.Hash160 -> int
    pauser set, key is present only for enabled pausers
*/
