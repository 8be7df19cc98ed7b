/*
Package vault implements Vault contract, a minimal custodial holding
contract.

Vault accepts GAS and arbitrary NEP-17 token deposits from any sender and
keeps them commingled, without per-depositor accounting. The single vault
owner, set once at deployment, can query held balances and withdraw them to
its own address, one asset at a time or in batches of up to 50 tokens.
Balances are never cached: every query and every withdrawal check reads the
live balance from the GAS contract or the token's own ledger, so withdrawals
are always bounded by the balance at the moment of validation and no
separate reentrancy guard is needed.

Batch withdrawals are processed in input order and are atomic as a whole:
any failed entry faults the transaction and unwinds all transfers already
made within it. The all-balances batch form silently skips tokens with zero
balance; the exact-amounts form treats a zero amount as an error.

The contract can be updated by the owner via the native management
contract. Update keeps the contract storage, so the owner and all held
balances survive the code swap.

# Contract notifications

FundsReceived notification. Produced on every inbound GAS transfer.

	FundsReceived:
	  - name: sender
	    type: Hash160
	  - name: amount
	    type: Integer

NativeWithdrawn notification. Produced on every successful GAS withdrawal.

	NativeWithdrawn:
	  - name: owner
	    type: Hash160
	  - name: amount
	    type: Integer

TokenWithdrawn notification. Produced on every successful withdrawal of a
single token, including every non-zero entry of a batch withdrawal.

	TokenWithdrawn:
	  - name: owner
	    type: Hash160
	  - name: token
	    type: Hash160
	  - name: amount
	    type: Integer

MultipleTokensWithdrawn notification. Produced on every successful batch
withdrawal, covering batch entries in input order in runs of up to 16
tokens each (a single notification is limited to 1024 bytes). Amounts are
listed per requested token, zero for skipped entries.

	MultipleTokensWithdrawn:
	  - name: owner
	    type: Hash160
	  - name: tokens
	    type: Array
	  - name: amounts
	    type: Array
*/
package vault

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   script hash of the vault owner

# Ownership
Contract stores the script hash of the only account authorized to withdraw
vault balances and update the contract. It is set once at deployment and
can be changed only by the current owner.

# Balances
Vault balances are not stored in the contract: GAS balance lives in the
native GAS contract, token balances live in the respective NEP-17
contracts. The contract always reads them live.
*/
