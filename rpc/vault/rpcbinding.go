// Package vault contains RPC wrappers for Vault contract.
package vault

import (
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// GetNativeBalance invokes `getNativeBalance` method of contract.
func (c *ContractReader) GetNativeBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getNativeBalance"))
}

// GetTokenBalance invokes `getTokenBalance` method of contract.
func (c *ContractReader) GetTokenBalance(token util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getTokenBalance", token))
}

// GetMultipleTokenBalances invokes `getMultipleTokenBalances` method of
// contract. Balances are returned in the order tokens are listed.
func (c *ContractReader) GetMultipleTokenBalances(tokens []util.Uint160) ([]*big.Int, error) {
	items, err := unwrap.Array(c.invoker.Call(c.hash, "getMultipleTokenBalances", uint160sToAny(tokens)))
	if err != nil {
		return nil, err
	}

	balances := make([]*big.Int, len(items))
	for i := range items {
		balances[i], err = items[i].TryInteger()
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
	}

	return balances, nil
}

// Verify invokes `verify` method of contract.
func (c *ContractReader) Verify() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "verify"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// WithdrawAllNative creates a transaction invoking `withdrawAllNative` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAllNative() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAllNative")
}

// WithdrawAllNativeTransaction creates a transaction invoking `withdrawAllNative` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAllNativeTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAllNative")
}

// WithdrawAllNativeUnsigned creates a transaction invoking `withdrawAllNative` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAllNativeUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAllNative", nil)
}

// WithdrawNative creates a transaction invoking `withdrawNative` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawNative(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawNative", amount)
}

// WithdrawNativeTransaction creates a transaction invoking `withdrawNative` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawNativeTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawNative", amount)
}

// WithdrawNativeUnsigned creates a transaction invoking `withdrawNative` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawNativeUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawNative", nil, amount)
}

// WithdrawAllToken creates a transaction invoking `withdrawAllToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAllToken(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAllToken", token)
}

// WithdrawAllTokenTransaction creates a transaction invoking `withdrawAllToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAllTokenTransaction(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAllToken", token)
}

// WithdrawAllTokenUnsigned creates a transaction invoking `withdrawAllToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAllTokenUnsigned(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAllToken", nil, token)
}

// WithdrawToken creates a transaction invoking `withdrawToken` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawToken(token util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawToken", token, amount)
}

// WithdrawTokenTransaction creates a transaction invoking `withdrawToken` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTokenTransaction(token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawToken", token, amount)
}

// WithdrawTokenUnsigned creates a transaction invoking `withdrawToken` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawTokenUnsigned(token util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawToken", nil, token, amount)
}

// WithdrawAllTokens creates a transaction invoking `withdrawAllTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawAllTokens(tokens []util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawAllTokens", uint160sToAny(tokens))
}

// WithdrawAllTokensTransaction creates a transaction invoking `withdrawAllTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawAllTokensTransaction(tokens []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawAllTokens", uint160sToAny(tokens))
}

// WithdrawAllTokensUnsigned creates a transaction invoking `withdrawAllTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawAllTokensUnsigned(tokens []util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawAllTokens", nil, uint160sToAny(tokens))
}

// WithdrawMultipleTokens creates a transaction invoking `withdrawMultipleTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawMultipleTokens(tokens []util.Uint160, amounts []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawMultipleTokens", uint160sToAny(tokens), bigIntsToAny(amounts))
}

// WithdrawMultipleTokensTransaction creates a transaction invoking `withdrawMultipleTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawMultipleTokensTransaction(tokens []util.Uint160, amounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawMultipleTokens", uint160sToAny(tokens), bigIntsToAny(amounts))
}

// WithdrawMultipleTokensUnsigned creates a transaction invoking `withdrawMultipleTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawMultipleTokensUnsigned(tokens []util.Uint160, amounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawMultipleTokens", nil, uint160sToAny(tokens), bigIntsToAny(amounts))
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

func uint160sToAny(hs []util.Uint160) []any {
	res := make([]any, len(hs))
	for i := range hs {
		res[i] = hs[i]
	}

	return res
}

func bigIntsToAny(ns []*big.Int) []any {
	res := make([]any, len(ns))
	for i := range ns {
		res[i] = ns[i]
	}

	return res
}
