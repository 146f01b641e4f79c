package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// maxExpandedFlights limits listFlights result when RPC server has no
// iterator sessions.
const maxExpandedFlights = 1024

// FlightPrm groups flight registration parameters.
type FlightPrm struct {
	Code        string
	Origin      string
	Destination string
	// Departure and Landing are Unix timestamps.
	Departure int64
	Landing   int64
	// TicketCost is a decimal GAS amount.
	TicketCost string
}

// FlightRef identifies a flight by its natural key.
type FlightRef struct {
	Code        string
	Destination string
	Landing     int64
}

// Key returns the on-chain flight key.
func (f FlightRef) Key() util.Uint256 {
	return suretydata.FlightKey(f.Code, f.Destination, f.Landing)
}

// BookPrm groups ticket purchase parameters.
type BookPrm struct {
	Flight FlightRef
	// Insurance and Payment are decimal GAS amounts. Empty Payment means
	// exactly the ticket cost plus insurance.
	Insurance string
	Payment   string
}

// IsOperational checks whether the contracts accept state-changing calls.
func (c *Client) IsOperational() (bool, error) {
	return c.app.IsOperational()
}

// SetOperatingStatus votes for the operational flag change on behalf of the
// active account. If the vote is recorded but the change is still pending,
// *QuorumError is returned along with the Result.
func (c *Client) SetOperatingStatus(ctx context.Context, mode bool) (*Result, error) {
	sender := c.actor.Sender()
	res, err := c.execute(ctx, "setOperatingStatus", func() (*transaction.Transaction, error) {
		return c.app.SetOperatingStatusUnsigned(mode, sender)
	})
	if err != nil {
		return nil, err
	}

	applied, err := res.boolResult()
	if err != nil {
		return res, fmt.Errorf("setOperatingStatus: %w", err)
	}
	if applied {
		return res, nil
	}

	votes, err := suretyapp.OperatingStatusVoteEventsFromApplicationLog(res.log)
	if err != nil {
		return res, fmt.Errorf("setOperatingStatus: %w", err)
	}
	return res, &QuorumError{Votes: lastVotes(len(votes), func(i int) *big.Int { return votes[i].Votes })}
}

// IsAuthorizedCaller checks whether the contract is allowed to call the Data
// contract.
func (c *Client) IsAuthorizedCaller(contract util.Uint160) (bool, error) {
	return c.data.IsAuthorizedCaller(contract)
}

// AuthorizeCaller allows the contract to call the Data contract. The active
// account must be the Data contract owner.
func (c *Client) AuthorizeCaller(ctx context.Context, contract util.Uint160) (*Result, error) {
	return c.execute(ctx, "authorizeCaller", func() (*transaction.Transaction, error) {
		return c.data.AuthorizeCallerUnsigned(contract)
	})
}

// RegisterAirline registers or endorses the airline on behalf of the active
// account. If the endorsement is recorded but the airline is not admitted
// yet, *QuorumError is returned along with the Result.
func (c *Client) RegisterAirline(ctx context.Context, airline util.Uint160) (*Result, error) {
	sender := c.actor.Sender()
	res, err := c.execute(ctx, "registerAirline", func() (*transaction.Transaction, error) {
		return c.app.RegisterAirlineUnsigned(airline, sender)
	})
	if err != nil {
		return nil, err
	}

	admitted, err := res.boolResult()
	if err != nil {
		return res, fmt.Errorf("registerAirline: %w", err)
	}
	if admitted {
		return res, nil
	}

	votes, err := suretyapp.AirlineEndorsedEventsFromApplicationLog(res.log)
	if err != nil {
		return res, fmt.Errorf("registerAirline: %w", err)
	}
	return res, &QuorumError{Votes: lastVotes(len(votes), func(i int) *big.Int { return votes[i].Votes })}
}

// EndorsementNeeded returns the number of votes the airline still needs.
func (c *Client) EndorsementNeeded(airline util.Uint160) (int64, error) {
	v, err := c.app.EndorsementNeeded(airline)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// Fund pays the participation fund of the active account.
func (c *Client) Fund(ctx context.Context, amount string) (*Result, error) {
	value, err := ParseGAS(amount)
	if err != nil {
		return nil, err
	}

	sender := c.actor.Sender()
	return c.execute(ctx, "fund", func() (*transaction.Transaction, error) {
		return c.app.FundUnsigned(sender, value)
	})
}

// RegisterFlight registers a flight of the active account and returns its key.
func (c *Client) RegisterFlight(ctx context.Context, prm FlightPrm) (util.Uint256, *Result, error) {
	cost, err := ParseGAS(prm.TicketCost)
	if err != nil {
		return util.Uint256{}, nil, err
	}

	sender := c.actor.Sender()
	res, err := c.execute(ctx, "registerFlight", func() (*transaction.Transaction, error) {
		return c.app.RegisterFlightUnsigned(sender, prm.Code, prm.Origin, prm.Destination,
			big.NewInt(prm.Departure), big.NewInt(prm.Landing), cost)
	})
	if err != nil {
		return util.Uint256{}, nil, err
	}

	return FlightRef{Code: prm.Code, Destination: prm.Destination, Landing: prm.Landing}.Key(), res, nil
}

// FetchFlightStatus opens an oracle request for the flight status and returns
// the index of oracles which should answer it.
func (c *Client) FetchFlightStatus(ctx context.Context, f FlightRef) (int64, *Result, error) {
	sender := c.actor.Sender()
	res, err := c.execute(ctx, "fetchFlightStatus", func() (*transaction.Transaction, error) {
		return c.app.FetchFlightStatusUnsigned(sender, f.Code, f.Destination, big.NewInt(f.Landing))
	})
	if err != nil {
		return 0, nil, err
	}

	index, err := res.intResult()
	if err != nil {
		return 0, res, fmt.Errorf("fetchFlightStatus: %w", err)
	}
	return index.Int64(), res, nil
}

// Book buys a ticket with insurance for the active account.
func (c *Client) Book(ctx context.Context, prm BookPrm) (*Result, error) {
	insurance, err := ParseGAS(prm.Insurance)
	if err != nil {
		return nil, err
	}

	var payment *big.Int
	if prm.Payment != "" {
		payment, err = ParseGAS(prm.Payment)
		if err != nil {
			return nil, err
		}
	} else {
		flight, err := c.Flight(prm.Flight)
		if err != nil {
			return nil, err
		}
		payment = new(big.Int).Add(flight.TicketCost, insurance)
	}

	sender := c.actor.Sender()
	f := prm.Flight
	return c.execute(ctx, "bookTicketAndBuyInsurance", func() (*transaction.Transaction, error) {
		return c.app.BookTicketAndBuyInsuranceUnsigned(sender, f.Code, f.Destination, big.NewInt(f.Landing), insurance, payment)
	})
}

// Withdraw claims the whole credit of the active account and returns the
// claimed amount.
func (c *Client) Withdraw(ctx context.Context) (*big.Int, *Result, error) {
	sender := c.actor.Sender()
	res, err := c.execute(ctx, "claimAmount", func() (*transaction.Transaction, error) {
		return c.app.ClaimAmountUnsigned(sender)
	})
	if err != nil {
		return nil, nil, err
	}

	amount, err := res.intResult()
	if err != nil {
		return nil, res, fmt.Errorf("claimAmount: %w", err)
	}
	return amount, res, nil
}

// Airline returns the airline record.
func (c *Client) Airline(airline util.Uint160) (*suretydata.SuretydataAirline, error) {
	return c.data.GetAirline(airline)
}

// Flight returns the flight record.
func (c *Client) Flight(f FlightRef) (*suretydata.SuretydataFlight, error) {
	return c.FlightByKey(f.Key())
}

// FlightByKey returns the flight record by its key.
func (c *Client) FlightByKey(key util.Uint256) (*suretydata.SuretydataFlight, error) {
	res, err := c.data.GetFlight(key)
	if err != nil {
		return nil, mapReadError("getFlight", err)
	}
	return res, nil
}

// Flights returns all registered flights. Iterator is traversed in pages of
// the given size.
func (c *Client) Flights(pageSize int) ([]*suretydata.SuretydataFlight, error) {
	if pageSize <= 0 {
		return nil, errors.New("non-positive page size")
	}

	var items []stackitem.Item

	sess, iter, err := c.data.ListFlights()
	switch {
	case errors.Is(err, unwrap.ErrNoSessionID):
		items, err = c.data.ListFlightsExpanded(maxExpandedFlights)
		if err != nil {
			return nil, fmt.Errorf("listFlights: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("listFlights: %w", err)
	case iter.ID == nil:
		// Server expanded the iterator itself.
		items = iter.Values
	default:
		defer func() { _ = c.actor.TerminateSession(sess) }()
		for {
			page, err := c.actor.TraverseIterator(sess, &iter, pageSize)
			if err != nil {
				return nil, fmt.Errorf("traverse flights iterator: %w", err)
			}
			items = append(items, page...)
			if len(page) < pageSize {
				break
			}
		}
	}

	res := make([]*suretydata.SuretydataFlight, len(items))
	for i := range items {
		res[i] = new(suretydata.SuretydataFlight)
		err = res[i].FromStackItem(items[i])
		if err != nil {
			return nil, fmt.Errorf("flight #%d: %w", i, err)
		}
	}
	return res, nil
}

// Ticket returns the ticket of the passenger for the flight.
func (c *Client) Ticket(f FlightRef, passenger util.Uint160) (*suretydata.SuretydataTicket, error) {
	return c.data.GetTicket(f.Key(), passenger)
}

// Credit returns the withdrawable credit of the account in base units.
func (c *Client) Credit(account util.Uint160) (*big.Int, error) {
	return c.data.GetCredit(account)
}

// RegisterOracle registers the active account as an oracle and pays the
// registration fee.
func (c *Client) RegisterOracle(ctx context.Context) (*Result, error) {
	sender := c.actor.Sender()
	return c.execute(ctx, "registerOracle", func() (*transaction.Transaction, error) {
		return c.app.RegisterOracleUnsigned(sender)
	})
}

// IsOracleRegistered checks whether the account is a registered oracle.
func (c *Client) IsOracleRegistered(oracle util.Uint160) (bool, error) {
	return c.app.IsOracleRegistered(oracle)
}

// OracleIndexes returns the indexes assigned to the oracle.
func (c *Client) OracleIndexes(oracle util.Uint160) ([]int64, error) {
	v, err := c.app.GetMyIndexes(oracle)
	if err != nil {
		return nil, mapReadError("getMyIndexes", err)
	}

	res := make([]int64, len(v))
	for i := range v {
		res[i] = v[i].Int64()
	}
	return res, nil
}

// SubmitOracleResponse reports the flight status on behalf of the active
// oracle account.
func (c *Client) SubmitOracleResponse(ctx context.Context, index int64, f FlightRef, status int64) (*Result, error) {
	sender := c.actor.Sender()
	return c.execute(ctx, "submitOracleResponse", func() (*transaction.Transaction, error) {
		return c.app.SubmitOracleResponseUnsigned(sender, big.NewInt(index), f.Code, f.Destination,
			big.NewInt(f.Landing), big.NewInt(status))
	})
}

// mapReadError converts read-only call faults to package errors.
func mapReadError(method string, err error) error {
	var fe *FaultError
	if errors.As(err, &fe) {
		return err
	}
	if ferr := newFaultError(method, err.Error()); ferr.cause != nil {
		return ferr
	}
	return err
}

func lastVotes(n int, votes func(i int) *big.Int) int64 {
	if n == 0 {
		return 0
	}
	return votes(n - 1).Int64()
}
