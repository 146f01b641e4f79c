package tests

import (
	"math/big"
	"testing"

	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// testFlight is a flight used across contract tests.
type testFlight struct {
	code        string
	origin      string
	destination string
	departure   int64
	landing     int64
	ticketCost  int64
}

func newTestFlight() testFlight {
	return testFlight{
		code:        "ND1309",
		origin:      "SFO",
		destination: "LAX",
		departure:   1700000000,
		landing:     1700005400,
		ticketCost:  gasUnit / 2,
	}
}

func (f testFlight) key() util.Uint256 {
	return suretydata.FlightKey(f.code, f.destination, f.landing)
}

func (f testFlight) registerArgs(airline util.Uint160) []any {
	return []any{airline, f.code, f.origin, f.destination, f.departure, f.landing, f.ticketCost}
}

func checkFlightKey(key util.Uint256) func(t testing.TB, stack []stackitem.Item) {
	return func(t testing.TB, stack []stackitem.Item) {
		require.Len(t, stack, 1)
		b, err := stack[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, key.BytesBE(), b)
	}
}

func getAirline(t *testing.T, c *neotest.ContractInvoker, airline util.Uint160) *suretydata.SuretydataAirline {
	s, err := c.TestInvoke(t, "getAirline", airline)
	require.NoError(t, err)

	res := new(suretydata.SuretydataAirline)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func getFlight(t *testing.T, c *neotest.ContractInvoker, key util.Uint256) *suretydata.SuretydataFlight {
	s, err := c.TestInvoke(t, "getFlight", key)
	require.NoError(t, err)

	res := new(suretydata.SuretydataFlight)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func getTicket(t *testing.T, c *neotest.ContractInvoker, key util.Uint256, passenger util.Uint160) *suretydata.SuretydataTicket {
	s, err := c.TestInvoke(t, "getTicket", key, passenger)
	require.NoError(t, err)

	res := new(suretydata.SuretydataTicket)
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return res
}

func getCredit(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) *big.Int {
	s, err := c.TestInvoke(t, "getCredit", acc)
	require.NoError(t, err)
	return s.Pop().BigInt()
}
