package suretydata

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestFlightKey(t *testing.T) {
	k1 := FlightKey("ND1309", "LAX", 1700000000)
	require.Equal(t, k1, FlightKey("ND1309", "LAX", 1700000000))
	require.NotEqual(t, k1, FlightKey("ND1309", "LAX", 1700000001))
	require.NotEqual(t, k1, FlightKey("ND1310", "LAX", 1700000000))
	require.NotEqual(t, k1, FlightKey("ND1309", "SFO", 1700000000))
	// Code and destination are serialized separately.
	require.NotEqual(t, FlightKey("AB", "C", 1), FlightKey("A", "BC", 1))
}

func TestFlightID(t *testing.T) {
	key := FlightKey("ND1309", "LAX", 1700000000)

	id := EncodeFlightID(key)
	actual, err := DecodeFlightID(id)
	require.NoError(t, err)
	require.Equal(t, key, actual)

	_, err = DecodeFlightID("0OIl")
	require.Error(t, err)

	_, err = DecodeFlightID("3mJr7AoUXx2Wqd")
	require.Error(t, err)
}

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func TestGetFlight(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	key := FlightKey("ND1309", "LAX", 1700000000)

	ti.err = errors.New("bad")
	_, err := r.GetFlight(key)
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{stackitem.Make(1)}),
		},
	}
	_, err = r.GetFlight(key)
	require.Error(t, err)

	airline := util.Uint160{9, 8, 7}
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.NewStruct([]stackitem.Item{
				stackitem.NewByteArray(airline.BytesBE()),
				stackitem.Make("ND1309"),
				stackitem.Make("SFO"),
				stackitem.Make("LAX"),
				stackitem.Make(1699990000),
				stackitem.Make(1700000000),
				stackitem.Make(50_000_000),
				stackitem.Make(20),
				stackitem.NewBool(false),
			}),
		},
	}
	f, err := r.GetFlight(key)
	require.NoError(t, err)
	require.Equal(t, airline, f.Airline)
	require.Equal(t, "ND1309", f.Code)
	require.Equal(t, "SFO", f.Origin)
	require.Equal(t, "LAX", f.Destination)
	require.Equal(t, big.NewInt(1700000000), f.Landing)
	require.Equal(t, big.NewInt(50_000_000), f.TicketCost)
	require.Equal(t, big.NewInt(20), f.Status)
	require.False(t, f.Credited)
}

func TestGetCredit(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = &result.Invoke{
		State:          "FAULT",
		FaultException: "access denied",
	}
	_, err := r.GetCredit(util.Uint160{})
	require.Error(t, err)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(150_000_000)},
	}
	credit, err := r.GetCredit(util.Uint160{})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(150_000_000), credit)
}
