package tests

import (
	"path"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	dataPath = "../contracts/suretydata"
	appPath  = "../contracts/suretyapp"

	gasUnit = 1_0000_0000

	// callerSource forwards calls to another contract. Data contract serves
	// such a contract once it is authorized, as it serves App contract.
	callerSource = `package caller

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
)

func Call(target interop.Hash160, method string, args []any) any {
	return contract.Call(target, method, contract.All, args...)
}`
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployDataContract(t *testing.T, e *neotest.Executor, owner, firstAirline util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, dataPath, path.Join(dataPath, "config.yml"))
	e.DeployContract(t, c, []any{owner, firstAirline})
	return c.Hash
}

func deployAppContract(t *testing.T, e *neotest.Executor, owner, dataContract util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, appPath, path.Join(appPath, "config.yml"))
	e.DeployContract(t, c, []any{owner, dataContract})
	return c.Hash
}

func deployCallerContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileSource(t, e.CommitteeHash, strings.NewReader(callerSource), &compiler.Options{
		Name:        "Caller",
		Permissions: []manifest.Permission{*manifest.NewPermission(manifest.PermissionWildcard)},
	})
	e.DeployContract(t, c, nil)
	return c.Hash
}

// dataCaller invokes mutating Data contract methods through the authorized
// caller contract.
type dataCaller struct {
	inv  *neotest.ContractInvoker
	data util.Uint160
}

func (c dataCaller) WithSigners(signers ...neotest.Signer) dataCaller {
	return dataCaller{inv: c.inv.WithSigners(signers...), data: c.data}
}

func (c dataCaller) Invoke(t testing.TB, result any, method string, args ...any) util.Uint256 {
	return c.inv.Invoke(t, result, "call", c.data, method, args)
}

func (c dataCaller) InvokeAndCheck(t testing.TB, check func(t testing.TB, stack []stackitem.Item), method string, args ...any) util.Uint256 {
	return c.inv.InvokeAndCheck(t, check, "call", c.data, method, args)
}

func (c dataCaller) InvokeFail(t testing.TB, message string, method string, args ...any) util.Uint256 {
	return c.inv.InvokeFail(t, message, "call", c.data, method, args)
}

// flightSurety is a deployed pair of contracts. Both invokers are signed by
// the committee which owns the contracts. Calls of caller reach Data
// contract from an authorized contract other than App.
type flightSurety struct {
	e            *neotest.Executor
	data         *neotest.ContractInvoker
	app          *neotest.ContractInvoker
	caller       dataCaller
	firstAirline neotest.Signer
}

func newFlightSurety(t *testing.T) *flightSurety {
	e := newExecutor(t)
	first := e.NewAccount(t)

	dataHash := deployDataContract(t, e, e.CommitteeHash, first.ScriptHash())
	appHash := deployAppContract(t, e, e.CommitteeHash, dataHash)

	callerHash := deployCallerContract(t, e)

	data := e.CommitteeInvoker(dataHash)
	data.Invoke(t, stackitem.Null{}, "authorizeCaller", appHash)
	data.Invoke(t, stackitem.Null{}, "authorizeCaller", callerHash)

	return &flightSurety{
		e:            e,
		data:         data,
		app:          e.CommitteeInvoker(appHash),
		caller:       dataCaller{inv: e.CommitteeInvoker(callerHash), data: dataHash},
		firstAirline: first,
	}
}

// fund pays the minimal fund on behalf of the airline through App contract.
func (fs *flightSurety) fund(t *testing.T, airline neotest.Signer) {
	fs.app.WithSigners(airline).Invoke(t, stackitem.Null{}, "fund",
		airline.ScriptHash(), int64(10*gasUnit))
}

// airlines funds the first airline and registers n more airlines without
// consensus. It returns all airlines starting from the first one.
func (fs *flightSurety) airlines(t *testing.T, n int) []neotest.Signer {
	fs.fund(t, fs.firstAirline)

	res := []neotest.Signer{fs.firstAirline}
	for i := 0; i < n; i++ {
		a := fs.e.NewAccount(t)
		fs.app.WithSigners(fs.firstAirline).Invoke(t, true, "registerAirline",
			a.ScriptHash(), fs.firstAirline.ScriptHash())
		res = append(res, a)
	}

	return res
}

func gasBalance(t *testing.T, e *neotest.Executor, acc util.Uint160) int64 {
	gasInv := e.CommitteeInvoker(e.NativeHash(t, nativenames.Gas))
	s, err := gasInv.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

func applicationLog(t *testing.T, e *neotest.Executor, h util.Uint256) *result.ApplicationLog {
	aer := e.GetTxExecResult(t, h)
	return &result.ApplicationLog{
		Container:     h,
		IsTransaction: true,
		Executions:    []state.Execution{aer.Execution},
	}
}
