/*
Package nep17token implements a mintable NEP-17 token used by Vault contract
tests. Transfers can be switched off to simulate a token whose transfer
method reports failure.
*/
package nep17token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	tokenDecimals = 8

	totalSupplyKey = 's'
	disabledKey    = 'd'
	accPrefix      = 'a'
)

// Symbol is a NEP-17 standard method.
func Symbol() string {
	return "TST"
}

// Decimals is a NEP-17 standard method.
func Decimals() int {
	return tokenDecimals
}

// TotalSupply is a NEP-17 standard method.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	raw := storage.Get(ctx, totalSupplyKey)
	if raw == nil {
		return 0
	}

	return raw.(int)
}

// BalanceOf is a NEP-17 standard method.
func BalanceOf(holder interop.Hash160) int {
	return balanceOf(storage.GetReadOnlyContext(), holder)
}

// Transfer is a NEP-17 standard method. It returns false when transfers are
// disabled via SetTransfersEnabled, when the sender witness is missing or
// when the sender balance is insufficient.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid address")
	}
	if amount < 0 {
		panic("negative amount")
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, disabledKey) != nil {
		runtime.Log("transfers are disabled")
		return false
	}

	if !runtime.CheckWitness(from) && !runtime.GetCallingScriptHash().Equals(from) {
		runtime.Log("transfer is not witnessed by the sender")
		return false
	}

	fromBalance := balanceOf(ctx, from)
	if fromBalance < amount {
		runtime.Log("not enough assets")
		return false
	}

	setBalance(ctx, from, fromBalance-amount)
	setBalance(ctx, to, balanceOf(ctx, to)+amount)

	runtime.Notify("Transfer", from, to, amount)
	postTransfer(from, to, amount, data)

	return true
}

// Mint creates amount of tokens on the given account. Test-only method, no
// access control.
func Mint(to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic("invalid address")
	}
	if amount <= 0 {
		panic("non positive amount")
	}

	ctx := storage.GetContext()
	setBalance(ctx, to, balanceOf(ctx, to)+amount)
	storage.Put(ctx, totalSupplyKey, TotalSupply()+amount)

	runtime.Notify("Transfer", interop.Hash160(nil), to, amount)
	postTransfer(nil, to, amount, nil)
}

// SetTransfersEnabled switches the Transfer method between normal operation
// and unconditional failure.
func SetTransfersEnabled(enabled bool) {
	ctx := storage.GetContext()
	if enabled {
		storage.Delete(ctx, disabledKey)
	} else {
		storage.Put(ctx, disabledKey, true)
	}
}

func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func balanceOf(ctx storage.Context, holder interop.Hash160) int {
	raw := storage.Get(ctx, append([]byte{accPrefix}, holder...))
	if raw == nil {
		return 0
	}

	return raw.(int)
}

func setBalance(ctx storage.Context, holder interop.Hash160, amount int) {
	key := append([]byte{accPrefix}, holder...)
	if amount == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, amount)
	}
}
