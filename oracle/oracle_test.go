package oracle

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/flightsurety/flightsurety-contract/client"
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/events"
	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type response struct {
	index  int64
	flight client.FlightRef
	status int64
}

type testAccount struct {
	addr       util.Uint160
	registered bool
	indexes    []int64
	submitErr  error

	registerCalls int
	responses     []response
}

func (a *testAccount) Account() util.Uint160 { return a.addr }

func (a *testAccount) IsOracleRegistered(util.Uint160) (bool, error) {
	return a.registered, nil
}

func (a *testAccount) RegisterOracle(context.Context) (*client.Result, error) {
	a.registerCalls++
	a.registered = true
	return new(client.Result), nil
}

func (a *testAccount) OracleIndexes(util.Uint160) ([]int64, error) {
	if !a.registered {
		return nil, client.ErrUnknownOracle
	}
	return a.indexes, nil
}

func (a *testAccount) SubmitOracleResponse(_ context.Context, index int64, f client.FlightRef, status int64) (*client.Result, error) {
	if a.submitErr != nil {
		return nil, a.submitErr
	}
	a.responses = append(a.responses, response{index, f, status})
	return new(client.Result), nil
}

func testRequest(index int64) *suretyapp.OracleRequestEvent {
	return &suretyapp.OracleRequestEvent{
		Index:       big.NewInt(index),
		Key:         util.Uint256{1},
		Code:        "ND1309",
		Destination: "LAX",
		Landing:     big.NewInt(1700005400),
	}
}

func TestNew(t *testing.T) {
	_, err := New(Prm{Source: FixedStatus(common.StatusOnTime)})
	require.Error(t, err)

	_, err = New(Prm{Accounts: []Account{new(testAccount)}})
	require.Error(t, err)
}

func TestServer_Start(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		acc1 := &testAccount{addr: util.Uint160{1}, registered: true, indexes: []int64{1, 2, 3}}
		acc2 := &testAccount{addr: util.Uint160{2}, indexes: []int64{4, 5, 6}}

		s, err := New(Prm{
			Logger:   zaptest.NewLogger(t),
			Accounts: []Account{acc1, acc2},
			Source:   FixedStatus(common.StatusOnTime),
			Register: true,
		})
		require.NoError(t, err)
		require.NoError(t, s.Start(context.Background()))

		require.Zero(t, acc1.registerCalls)
		require.Equal(t, 1, acc2.registerCalls)
		require.Equal(t, []int64{4, 5, 6}, s.Indexes(acc2.addr))
	})
	t.Run("skip unregistered", func(t *testing.T) {
		acc := &testAccount{addr: util.Uint160{1}}

		s, err := New(Prm{Accounts: []Account{acc}, Source: FixedStatus(common.StatusOnTime)})
		require.NoError(t, err)
		require.Error(t, s.Start(context.Background()))
		require.Zero(t, acc.registerCalls)
		require.Empty(t, s.Indexes(acc.addr))
	})
}

func TestServer_Respond(t *testing.T) {
	holders := []*testAccount{
		{addr: util.Uint160{1}, registered: true, indexes: []int64{1, 2, 3}},
		{addr: util.Uint160{2}, registered: true, indexes: []int64{3, 4, 5}},
		{addr: util.Uint160{3}, registered: true, indexes: []int64{5, 6, 7}},
	}
	accounts := make([]Account, len(holders))
	for i := range holders {
		accounts[i] = holders[i]
	}

	s, err := New(Prm{
		Logger:   zaptest.NewLogger(t),
		Accounts: accounts,
		Source:   FixedStatus(common.StatusLateAirline),
	})
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))

	ev := &events.Event{Name: "OracleRequest", Value: testRequest(3)}
	require.NoError(t, s.Handle(context.Background(), ev))

	expected := response{3, client.FlightRef{Code: "ND1309", Destination: "LAX", Landing: 1700005400}, common.StatusLateAirline}
	require.Equal(t, []response{expected}, holders[0].responses)
	require.Equal(t, []response{expected}, holders[1].responses)
	require.Empty(t, holders[2].responses)

	// other events are ignored
	require.NoError(t, s.Handle(context.Background(), &events.Event{
		Name:  "AmountClaimed",
		Value: &suretydata.AmountClaimedEvent{},
	}))

	t.Run("request closed", func(t *testing.T) {
		holders[1].submitErr = fmt.Errorf("submitOracleResponse: %w", client.ErrRequestClosed)
		holders[2].responses = nil

		require.NoError(t, s.Respond(context.Background(), testRequest(5)))
		require.Empty(t, holders[2].responses)
	})
	t.Run("submission failure", func(t *testing.T) {
		holders[1].submitErr = client.ErrOracleRequest

		err := s.Respond(context.Background(), testRequest(4))
		require.ErrorIs(t, err, client.ErrOracleRequest)
	})
	t.Run("invalid status", func(t *testing.T) {
		s.source = FixedStatus(25)
		require.Error(t, s.Respond(context.Background(), testRequest(1)))
	})
}

func TestRandomStatus(t *testing.T) {
	_, err := RandomStatus(nil).FlightStatus(context.Background(), client.FlightRef{})
	require.Error(t, err)

	src := RandomStatus{common.StatusOnTime, common.StatusLateWeather}
	for i := 0; i < 20; i++ {
		st, err := src.FlightStatus(context.Background(), client.FlightRef{})
		require.NoError(t, err)
		require.Contains(t, []int64{common.StatusOnTime, common.StatusLateWeather}, st)
	}
}
