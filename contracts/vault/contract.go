package vault

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/vault-contract/common"
	"github.com/nspcc-dev/vault-contract/contracts/vault/vaultconst"
)

const (
	// ErrInvalidOwner is thrown when the owner address has incorrect
	// length or is the zero address.
	ErrInvalidOwner = "invalid owner address"
	// ErrAlreadyInitialized is thrown on an attempt to set up the vault
	// owner for the second time.
	ErrAlreadyInitialized = "contract is already initialized"
	// ErrInvalidToken is thrown when a token address has incorrect length
	// or is the zero address.
	ErrInvalidToken = "invalid token address"
	// ErrNothingToWithdraw is thrown when the resolved withdrawal amount
	// is zero.
	ErrNothingToWithdraw = "nothing to withdraw"
	// ErrInsufficientBalance is thrown when the requested amount exceeds
	// the current vault balance.
	ErrInsufficientBalance = "insufficient balance"
	// ErrEmptyBatch is thrown when a batch operation receives no tokens.
	ErrEmptyBatch = "empty token list"
	// ErrBatchTooLarge is thrown when a batch operation receives more
	// than vaultconst.MaxBatchSize tokens.
	ErrBatchTooLarge = "too many tokens in one batch"
	// ErrLengthMismatch is thrown when token and amount lists of a batch
	// withdrawal have different lengths.
	ErrLengthMismatch = "tokens and amounts length mismatch"
	// ErrTransferFailed is thrown when the underlying asset transfer
	// reports failure.
	ErrTransferFailed = "transfer failed"
)

const ownerKey = 'o'

// OnNEP17Payment is a callback for NEP-17 compatible contracts. Vault
// accepts any deposit unconditionally. Native GAS deposits additionally
// produce FundsReceived notification.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if caller.Equals(gas.Hash) {
		runtime.Notify("FundsReceived", from, amount)
	}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
	})

	ctx := storage.GetContext()
	if storage.Get(ctx, ownerKey) != nil {
		panic(ErrAlreadyInitialized)
	}
	if !isValidAddress(args.owner) {
		panic(ErrInvalidOwner)
	}

	storage.Put(ctx, ownerKey, args.owner)

	runtime.Log("vault contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the vault owner. Owner and all vault balances survive the update
// untouched.
func Update(nefFile, manifest []byte, data any) {
	ownerWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("vault contract updated")
}

// Owner returns the script hash of the vault owner.
func Owner() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

// TransferOwnership sets a new vault owner. It can be invoked only by the
// current owner.
func TransferOwnership(newOwner interop.Hash160) {
	ownerWitness()

	if !isValidAddress(newOwner) {
		panic(ErrInvalidOwner)
	}

	storage.Put(storage.GetContext(), ownerKey, newOwner)
	runtime.Log("vault owner changed")
}

// GetNativeBalance returns the current GAS balance of the vault.
func GetNativeBalance() int {
	return gas.BalanceOf(runtime.GetExecutingScriptHash())
}

// GetTokenBalance returns the current vault balance in the given NEP-17
// token.
func GetTokenBalance(token interop.Hash160) int {
	if !isValidAddress(token) {
		panic(ErrInvalidToken)
	}

	return tokenBalance(token, runtime.GetExecutingScriptHash())
}

// GetMultipleTokenBalances returns current vault balances in each of the
// given NEP-17 tokens, in the order they are listed. The list must contain
// from 1 to vaultconst.MaxBatchSize valid token addresses.
func GetMultipleTokenBalances(tokens []interop.Hash160) []int {
	checkBatch(tokens)

	self := runtime.GetExecutingScriptHash()
	balances := make([]int, len(tokens))
	for i := 0; i < len(tokens); i++ {
		balances[i] = tokenBalance(tokens[i], self)
	}

	return balances
}

// WithdrawAllNative transfers the entire GAS balance of the vault to the
// owner. It can be invoked only by the owner.
//
// It produces NativeWithdrawn notification.
func WithdrawAllNative() {
	owner := ownerWitness()
	withdrawNative(owner, gas.BalanceOf(runtime.GetExecutingScriptHash()))
}

// WithdrawNative transfers the given amount of GAS from the vault to the
// owner. It can be invoked only by the owner.
//
// It produces NativeWithdrawn notification.
func WithdrawNative(amount int) {
	owner := ownerWitness()
	withdrawNative(owner, amount)
}

// WithdrawAllToken transfers the entire vault balance in the given NEP-17
// token to the owner. It can be invoked only by the owner.
//
// It produces TokenWithdrawn notification.
func WithdrawAllToken(token interop.Hash160) {
	owner := ownerWitness()
	if !isValidAddress(token) {
		panic(ErrInvalidToken)
	}

	withdrawToken(owner, token, tokenBalance(token, runtime.GetExecutingScriptHash()))
}

// WithdrawToken transfers the given amount of the given NEP-17 token from
// the vault to the owner. It can be invoked only by the owner.
//
// It produces TokenWithdrawn notification.
func WithdrawToken(token interop.Hash160, amount int) {
	owner := ownerWitness()
	if !isValidAddress(token) {
		panic(ErrInvalidToken)
	}

	withdrawToken(owner, token, amount)
}

// WithdrawAllTokens transfers the entire vault balance in each of the given
// NEP-17 tokens to the owner. Tokens with zero balance are skipped without
// an error, their reported withdrawn amount is zero. It can be invoked only
// by the owner.
//
// It produces TokenWithdrawn notification for every non-zero entry and
// MultipleTokensWithdrawn notifications covering the whole batch.
func WithdrawAllTokens(tokens []interop.Hash160) {
	owner := ownerWitness()
	checkBatch(tokens)

	self := runtime.GetExecutingScriptHash()
	amounts := make([]int, len(tokens))
	for i := 0; i < len(tokens); i++ {
		amounts[i] = tokenBalance(tokens[i], self)
	}

	for i := 0; i < len(tokens); i++ {
		if amounts[i] > 0 {
			withdrawToken(owner, tokens[i], amounts[i])
		}
	}

	notifyBatchWithdrawal(owner, tokens, amounts)
}

// WithdrawMultipleTokens transfers the given amount of every given NEP-17
// token from the vault to the owner. Lists must be of the same length and
// contain from 1 to vaultconst.MaxBatchSize entries. Zero amount or amount
// above the current balance at any position aborts the whole batch. It can
// be invoked only by the owner.
//
// It produces TokenWithdrawn notification for every entry and
// MultipleTokensWithdrawn notifications covering the whole batch.
func WithdrawMultipleTokens(tokens []interop.Hash160, amounts []int) {
	owner := ownerWitness()
	checkBatch(tokens)

	if len(tokens) != len(amounts) {
		panic(ErrLengthMismatch)
	}

	for i := 0; i < len(tokens); i++ {
		withdrawToken(owner, tokens[i], amounts[i])
	}

	notifyBatchWithdrawal(owner, tokens, amounts)
}

// Verify method returns true if transaction contains valid witness of the
// vault owner.
func Verify() bool {
	ctx := storage.GetReadOnlyContext()
	owner := storage.Get(ctx, ownerKey).(interop.Hash160)

	return runtime.CheckWitness(owner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// ownerWitness returns the stored vault owner, panicking if the transaction
// is not signed by it.
func ownerWitness() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	owner := storage.Get(ctx, ownerKey).(interop.Hash160)
	common.CheckOwnerWitness(owner)

	return owner
}

// withdrawNative moves amount of GAS to the owner. The amount is checked
// against the live balance, so a nested call during the transfer observes
// the already reduced balance and cannot overdraw.
func withdrawNative(owner interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrNothingToWithdraw)
	}

	self := runtime.GetExecutingScriptHash()
	if amount > gas.BalanceOf(self) {
		panic(ErrInsufficientBalance)
	}

	if !gas.Transfer(self, owner, amount, nil) {
		panic(ErrTransferFailed)
	}

	runtime.Notify("NativeWithdrawn", owner, amount)
}

// withdrawToken moves amount of token to the owner, re-reading the live
// token balance before the transfer. The token address must be validated by
// the caller.
func withdrawToken(owner, token interop.Hash160, amount int) {
	if amount <= 0 {
		panic(ErrNothingToWithdraw)
	}

	self := runtime.GetExecutingScriptHash()
	if amount > tokenBalance(token, self) {
		panic(ErrInsufficientBalance)
	}

	transferred := contract.Call(token, "transfer", contract.All, self, owner, amount, nil).(bool)
	if !transferred {
		panic(ErrTransferFailed)
	}

	runtime.Notify("TokenWithdrawn", owner, token, amount)
}

// notifyBatchWithdrawal reports the batch in MultipleTokensWithdrawn
// notifications of at most vaultconst.MaxSummaryEntries consecutive entries
// each: a notification is limited to 1024 bytes, which a full
// vaultconst.MaxBatchSize summary exceeds.
func notifyBatchWithdrawal(owner interop.Hash160, tokens []interop.Hash160, amounts []int) {
	for i := 0; i < len(tokens); i += vaultconst.MaxSummaryEntries {
		n := len(tokens) - i
		if n > vaultconst.MaxSummaryEntries {
			n = vaultconst.MaxSummaryEntries
		}

		ts := make([]interop.Hash160, n)
		as := make([]int, n)
		for j := 0; j < n; j++ {
			ts[j] = tokens[i+j]
			as[j] = amounts[i+j]
		}

		runtime.Notify("MultipleTokensWithdrawn", owner, ts, as)
	}
}

func tokenBalance(token, holder interop.Hash160) int {
	return contract.Call(token, "balanceOf", contract.ReadOnly, holder).(int)
}

func checkBatch(tokens []interop.Hash160) {
	if len(tokens) == 0 {
		panic(ErrEmptyBatch)
	}
	if len(tokens) > vaultconst.MaxBatchSize {
		panic(ErrBatchTooLarge)
	}

	for i := 0; i < len(tokens); i++ {
		if !isValidAddress(tokens[i]) {
			panic(ErrInvalidToken)
		}
	}
}

func isValidAddress(addr interop.Hash160) bool {
	if len(addr) != interop.Hash160Len {
		return false
	}

	for i := 0; i < len(addr); i++ {
		if addr[i] != 0 {
			return true
		}
	}

	return false
}
