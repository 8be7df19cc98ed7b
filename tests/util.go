package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const tokenPath = "../internal/testcontracts/nep17token"

var (
	tokenNEF *nef.File
	tokenDI  *compiler.DebugInfo
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// deployTokenContract compiles and deploys a fresh NEP-17 test token
// instance. The given name goes to the instance manifest, giving every
// instance its own contract hash, so any number of them can live on one
// chain.
func deployTokenContract(t *testing.T, e *neotest.Executor, name string) util.Uint160 {
	if tokenNEF == nil {
		// nef.NewFile() cares about version a lot.
		config.Version = "0.90.0-test"

		ne, di, err := compiler.CompileWithOptions(tokenPath, nil, nil)
		require.NoError(t, err)

		tokenNEF, tokenDI = ne, di
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(tokenPath, "config.yml"))
	require.NoError(t, err)

	o := &compiler.Options{}
	o.Name = name
	o.ContractEvents = conf.Events
	o.SafeMethods = conf.SafeMethods
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}

	m, err := compiler.CreateManifest(tokenDI, o)
	require.NoError(t, err)

	c := &neotest.Contract{
		Hash:     state.CreateContractHash(e.CommitteeHash, tokenNEF.Checksum, name),
		NEF:      tokenNEF,
		Manifest: m,
	}
	e.DeployContract(t, c, nil)

	return c.Hash
}

func mintToken(t *testing.T, e *neotest.Executor, token, to util.Uint160, amount int64) util.Uint256 {
	return e.CommitteeInvoker(token).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

func tokenBalance(t *testing.T, e *neotest.Executor, token, holder util.Uint160) int64 {
	res, err := e.CommitteeInvoker(token).TestInvoke(t, "balanceOf", holder)
	require.NoError(t, err)

	return res.Top().BigInt().Int64()
}

func gasBalance(t *testing.T, e *neotest.Executor, holder util.Uint160) int64 {
	res, err := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas)).TestInvoke(t, "balanceOf", holder)
	require.NoError(t, err)

	return res.Top().BigInt().Int64()
}

// transferGAS moves GAS from the committee to the given account, returning
// the transfer transaction hash.
func transferGAS(t *testing.T, e *neotest.Executor, to util.Uint160, amount int64) util.Uint256 {
	gasInvoker := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	return gasInvoker.Invoke(t, stackitem.NewBool(true), "transfer", e.CommitteeHash, to, amount, nil)
}

// notificationsByName collects notifications with the given name produced
// by the given transaction.
func notificationsByName(t *testing.T, e *neotest.Executor, h util.Uint256, name string) []state.NotificationEvent {
	aer, err := e.Chain.GetAppExecResults(h, trigger.Application)
	require.NoError(t, err)
	require.NotEmpty(t, aer)

	var events []state.NotificationEvent
	for _, ev := range aer[0].Events {
		if ev.Name == name {
			events = append(events, ev)
		}
	}

	return events
}
