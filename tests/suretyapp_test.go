package tests

import (
	"math/big"
	"testing"

	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestApp_Deploy(t *testing.T) {
	fs := newFlightSurety(t)

	fs.app.Invoke(t, true, "isOperational")
	fs.app.Invoke(t, stackitem.NewBuffer(fs.data.Hash.BytesBE()), "dataContract")
	fs.app.Invoke(t, stackitem.NewBuffer(fs.e.CommitteeHash.BytesBE()), "owner")
	fs.app.Invoke(t, common.Version, "version")
}

func TestApp_RegisterAirline(t *testing.T) {
	fs := newFlightSurety(t)
	first := fs.firstAirline
	candidate := fs.e.NewAccount(t)

	fs.app.WithSigners(first).InvokeFail(t, common.ErrNotFunded, "registerAirline",
		candidate.ScriptHash(), first.ScriptHash())

	fs.fund(t, first)
	fs.app.Invoke(t, 1, "endorsementNeeded", candidate.ScriptHash())

	t.Run("witness", func(t *testing.T) {
		fs.app.WithSigners(candidate).InvokeFail(t, common.ErrWitnessFailed, "registerAirline",
			candidate.ScriptHash(), first.ScriptHash())
	})

	// Below the threshold a single funded airline admits new ones.
	airlines := []neotest.Signer{first}
	for i := 1; i < common.ConsensusThreshold; i++ {
		a := fs.e.NewAccount(t)
		fs.app.WithSigners(first).Invoke(t, true, "registerAirline", a.ScriptHash(), first.ScriptHash())
		airlines = append(airlines, a)
	}
	fs.data.Invoke(t, common.ConsensusThreshold, "numRegisteredAirline")
	fs.app.WithSigners(first).InvokeFail(t, common.ErrAirlineRegistered, "registerAirline",
		airlines[1].ScriptHash(), first.ScriptHash())

	// Unfunded registered airlines can't endorse.
	fs.app.WithSigners(airlines[3]).InvokeFail(t, common.ErrNotFunded, "registerAirline",
		candidate.ScriptHash(), airlines[3].ScriptHash())

	fs.fund(t, airlines[1])
	fs.fund(t, airlines[2])
	fs.data.Invoke(t, 3, "numFundedAirline")
	fs.app.Invoke(t, 2, "endorsementNeeded", candidate.ScriptHash())

	h := fs.app.WithSigners(first).Invoke(t, false, "registerAirline", candidate.ScriptHash(), first.ScriptHash())
	events, err := suretyapp.AirlineEndorsedEventsFromApplicationLog(applicationLog(t, fs.e, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, candidate.ScriptHash(), events[0].Airline)
	require.Equal(t, first.ScriptHash(), events[0].Endorser)
	require.Equal(t, big.NewInt(1), events[0].Votes)

	fs.data.Invoke(t, false, "isAirline", candidate.ScriptHash())
	fs.app.Invoke(t, 1, "endorsements", candidate.ScriptHash())
	fs.app.Invoke(t, 1, "endorsementNeeded", candidate.ScriptHash())

	fs.app.WithSigners(first).InvokeFail(t, common.ErrAlreadyEndorsed, "registerAirline",
		candidate.ScriptHash(), first.ScriptHash())

	fs.app.WithSigners(airlines[1]).Invoke(t, true, "registerAirline",
		candidate.ScriptHash(), airlines[1].ScriptHash())

	fs.data.Invoke(t, true, "isAirline", candidate.ScriptHash())
	fs.data.Invoke(t, common.ConsensusThreshold+1, "numRegisteredAirline")
	fs.app.Invoke(t, 0, "endorsementNeeded", candidate.ScriptHash())
	fs.app.Invoke(t, 0, "endorsements", candidate.ScriptHash())
	require.Equal(t, big.NewInt(2), getAirline(t, fs.data, candidate.ScriptHash()).Endorsements)

	fs.app.WithSigners(airlines[2]).InvokeFail(t, common.ErrAirlineRegistered, "registerAirline",
		candidate.ScriptHash(), airlines[2].ScriptHash())
}

func TestApp_OperatingStatus(t *testing.T) {
	fs := newFlightSurety(t)
	first := fs.firstAirline
	owner := fs.e.CommitteeHash

	t.Run("below threshold", func(t *testing.T) {
		fs.app.WithSigners(first).InvokeFail(t, common.ErrAccessDenied, "setOperatingStatus",
			false, first.ScriptHash())

		fs.app.Invoke(t, true, "setOperatingStatus", false, owner)
		fs.app.Invoke(t, false, "isOperational")
		fs.app.WithSigners(first).InvokeFail(t, common.ErrNotOperational, "fund",
			first.ScriptHash(), 10*gasUnit)

		fs.app.Invoke(t, true, "setOperatingStatus", true, owner)
		fs.app.Invoke(t, true, "isOperational")
	})

	airlines := fs.airlines(t, common.ConsensusThreshold-1)
	fs.fund(t, airlines[1])
	fs.fund(t, airlines[2])

	t.Run("multi-party", func(t *testing.T) {
		fs.app.InvokeFail(t, common.ErrNotFunded, "setOperatingStatus", false, owner)
		fs.app.WithSigners(airlines[3]).InvokeFail(t, common.ErrNotFunded, "setOperatingStatus",
			false, airlines[3].ScriptHash())

		h := fs.app.WithSigners(first).Invoke(t, false, "setOperatingStatus", false, first.ScriptHash())
		events, err := suretyapp.OperatingStatusVoteEventsFromApplicationLog(applicationLog(t, fs.e, h))
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.False(t, events[0].Mode)
		require.Equal(t, big.NewInt(1), events[0].Votes)

		fs.app.Invoke(t, true, "isOperational")
		fs.app.WithSigners(first).InvokeFail(t, common.ErrAlreadyEndorsed, "setOperatingStatus",
			false, first.ScriptHash())

		fs.app.WithSigners(airlines[1]).Invoke(t, true, "setOperatingStatus", false, airlines[1].ScriptHash())
		fs.app.Invoke(t, false, "isOperational")

		fs.app.WithSigners(first).InvokeFail(t, common.ErrNotOperational, "registerAirline",
			fs.e.NewAccount(t).ScriptHash(), first.ScriptHash())

		// Votes of the previous decision are not counted.
		fs.app.WithSigners(first).Invoke(t, false, "setOperatingStatus", true, first.ScriptHash())
		fs.app.WithSigners(airlines[2]).Invoke(t, true, "setOperatingStatus", true, airlines[2].ScriptHash())
		fs.app.Invoke(t, true, "isOperational")

		fs.app.WithSigners(first).InvokeFail(t, "operating status is already set", "setOperatingStatus",
			true, first.ScriptHash())
	})
}

func TestApp_FlightsAndInsurance(t *testing.T) {
	fs := newFlightSurety(t)
	first := fs.firstAirline
	f := newTestFlight()

	airlines := fs.airlines(t, 1)
	unfunded := airlines[1]

	fs.app.WithSigners(unfunded).InvokeFail(t, common.ErrNotFunded, "registerFlight",
		f.registerArgs(unfunded.ScriptHash())...)

	bad := f
	bad.landing = bad.departure
	fs.app.WithSigners(first).InvokeFail(t, "landing must be after departure", "registerFlight",
		bad.registerArgs(first.ScriptHash())...)

	bad = f
	bad.ticketCost = 0
	fs.app.WithSigners(first).InvokeFail(t, "ticket cost must be positive", "registerFlight",
		bad.registerArgs(first.ScriptHash())...)

	fs.app.WithSigners(first).InvokeAndCheck(t, checkFlightKey(f.key()), "registerFlight",
		f.registerArgs(first.ScriptHash())...)

	passenger := fs.e.NewAccount(t)
	pInv := fs.app.WithSigners(passenger)
	insurance := int64(gasUnit / 2)

	pInv.InvokeFail(t, common.ErrInsufficientPayment, "bookTicketAndBuyInsurance",
		passenger.ScriptHash(), f.code, f.destination, f.landing, insurance, f.ticketCost)
	pInv.InvokeFail(t, common.ErrUnknownFlight, "bookTicketAndBuyInsurance",
		passenger.ScriptHash(), f.code, f.destination, f.landing+1, insurance, f.ticketCost+insurance)
	fs.app.WithSigners(first).InvokeFail(t, common.ErrWitnessFailed, "bookTicketAndBuyInsurance",
		passenger.ScriptHash(), f.code, f.destination, f.landing, insurance, f.ticketCost+insurance)

	pInv.Invoke(t, stackitem.Null{}, "bookTicketAndBuyInsurance",
		passenger.ScriptHash(), f.code, f.destination, f.landing, insurance, f.ticketCost+insurance)

	ticket := getTicket(t, fs.data, f.key(), passenger.ScriptHash())
	require.True(t, ticket.Purchased)
	require.Equal(t, big.NewInt(insurance), ticket.Insurance)

	t.Run("claim", func(t *testing.T) {
		pInv.InvokeFail(t, common.ErrNoCredit, "claimAmount", passenger.ScriptHash())
		pInv.InvokeFail(t, common.ErrWitnessFailed, "claimAmount", first.ScriptHash())

		fs.app.WithSigners(first).Invoke(t, f.ticketCost, "claimAmount", first.ScriptHash())
		fs.app.WithSigners(first).InvokeFail(t, common.ErrNoCredit, "claimAmount", first.ScriptHash())
	})
}
