// Package suretyapp contains RPC wrappers for FlightSurety App contract.
package suretyapp

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// OperatingStatusVoteEvent represents "OperatingStatusVote" event emitted by the contract.
type OperatingStatusVoteEvent struct {
	Mode bool
	Voter util.Uint160
	Votes *big.Int
}

// AirlineEndorsedEvent represents "AirlineEndorsed" event emitted by the contract.
type AirlineEndorsedEvent struct {
	Airline util.Uint160
	Endorser util.Uint160
	Votes *big.Int
}

// OracleRegisteredEvent represents "OracleRegistered" event emitted by the contract.
type OracleRegisteredEvent struct {
	Oracle util.Uint160
	Indexes []*big.Int
}

// OracleRequestEvent represents "OracleRequest" event emitted by the contract.
type OracleRequestEvent struct {
	Index *big.Int
	Key util.Uint256
	Code string
	Destination string
	Landing *big.Int
}

// OracleReportEvent represents "OracleReport" event emitted by the contract.
type OracleReportEvent struct {
	Key util.Uint256
	Code string
	Destination string
	Landing *big.Int
	Status *big.Int
}

// FlightStatusInfoEvent represents "FlightStatusInfo" event emitted by the contract.
type FlightStatusInfoEvent struct {
	Key util.Uint256
	Code string
	Destination string
	Landing *big.Int
	Status *big.Int
}

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
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// DataContract invokes `dataContract` method of contract.
func (c *ContractReader) DataContract() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "dataContract"))
}

// EndorsementNeeded invokes `endorsementNeeded` method of contract.
func (c *ContractReader) EndorsementNeeded(airline util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "endorsementNeeded", airline))
}

// Endorsements invokes `endorsements` method of contract.
func (c *ContractReader) Endorsements(airline util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "endorsements", airline))
}

// GetMyIndexes invokes `getMyIndexes` method of contract.
func (c *ContractReader) GetMyIndexes(oracle util.Uint160) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getMyIndexes", oracle))
}

// IsOperational invokes `isOperational` method of contract.
func (c *ContractReader) IsOperational() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOperational"))
}

// IsOracleRegistered invokes `isOracleRegistered` method of contract.
func (c *ContractReader) IsOracleRegistered(oracle util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOracleRegistered", oracle))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// BookTicketAndBuyInsurance creates a transaction invoking `bookTicketAndBuyInsurance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BookTicketAndBuyInsurance(passenger util.Uint160, code string, destination string, landing *big.Int, insurance *big.Int, payment *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "bookTicketAndBuyInsurance", passenger, code, destination, landing, insurance, payment)
}

// BookTicketAndBuyInsuranceTransaction creates a transaction invoking `bookTicketAndBuyInsurance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BookTicketAndBuyInsuranceTransaction(passenger util.Uint160, code string, destination string, landing *big.Int, insurance *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "bookTicketAndBuyInsurance", passenger, code, destination, landing, insurance, payment)
}

// BookTicketAndBuyInsuranceUnsigned creates a transaction invoking `bookTicketAndBuyInsurance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BookTicketAndBuyInsuranceUnsigned(passenger util.Uint160, code string, destination string, landing *big.Int, insurance *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "bookTicketAndBuyInsurance", nil, passenger, code, destination, landing, insurance, payment)
}

// ClaimAmount creates a transaction invoking `claimAmount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimAmount(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimAmount", account)
}

// ClaimAmountTransaction creates a transaction invoking `claimAmount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimAmountTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimAmount", account)
}

// ClaimAmountUnsigned creates a transaction invoking `claimAmount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimAmountUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimAmount", nil, account)
}

// FetchFlightStatus creates a transaction invoking `fetchFlightStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FetchFlightStatus(caller util.Uint160, code string, destination string, landing *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fetchFlightStatus", caller, code, destination, landing)
}

// FetchFlightStatusTransaction creates a transaction invoking `fetchFlightStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FetchFlightStatusTransaction(caller util.Uint160, code string, destination string, landing *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fetchFlightStatus", caller, code, destination, landing)
}

// FetchFlightStatusUnsigned creates a transaction invoking `fetchFlightStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FetchFlightStatusUnsigned(caller util.Uint160, code string, destination string, landing *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fetchFlightStatus", nil, caller, code, destination, landing)
}

// Fund creates a transaction invoking `fund` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Fund(airline util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fund", airline, amount)
}

// FundTransaction creates a transaction invoking `fund` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FundTransaction(airline util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fund", airline, amount)
}

// FundUnsigned creates a transaction invoking `fund` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FundUnsigned(airline util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fund", nil, airline, amount)
}

// RegisterAirline creates a transaction invoking `registerAirline` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterAirline(airline util.Uint160, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerAirline", airline, caller)
}

// RegisterAirlineTransaction creates a transaction invoking `registerAirline` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterAirlineTransaction(airline util.Uint160, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerAirline", airline, caller)
}

// RegisterAirlineUnsigned creates a transaction invoking `registerAirline` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterAirlineUnsigned(airline util.Uint160, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerAirline", nil, airline, caller)
}

// RegisterFlight creates a transaction invoking `registerFlight` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterFlight(airline util.Uint160, code string, origin string, destination string, departure *big.Int, landing *big.Int, ticketCost *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerFlight", airline, code, origin, destination, departure, landing, ticketCost)
}

// RegisterFlightTransaction creates a transaction invoking `registerFlight` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterFlightTransaction(airline util.Uint160, code string, origin string, destination string, departure *big.Int, landing *big.Int, ticketCost *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerFlight", airline, code, origin, destination, departure, landing, ticketCost)
}

// RegisterFlightUnsigned creates a transaction invoking `registerFlight` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterFlightUnsigned(airline util.Uint160, code string, origin string, destination string, departure *big.Int, landing *big.Int, ticketCost *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerFlight", nil, airline, code, origin, destination, departure, landing, ticketCost)
}

// RegisterOracle creates a transaction invoking `registerOracle` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterOracle(oracle util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerOracle", oracle)
}

// RegisterOracleTransaction creates a transaction invoking `registerOracle` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterOracleTransaction(oracle util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerOracle", oracle)
}

// RegisterOracleUnsigned creates a transaction invoking `registerOracle` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterOracleUnsigned(oracle util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerOracle", nil, oracle)
}

// SetOperatingStatus creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetOperatingStatus(mode bool, caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setOperatingStatus", mode, caller)
}

// SetOperatingStatusTransaction creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetOperatingStatusTransaction(mode bool, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setOperatingStatus", mode, caller)
}

// SetOperatingStatusUnsigned creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetOperatingStatusUnsigned(mode bool, caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setOperatingStatus", nil, mode, caller)
}

// SubmitOracleResponse creates a transaction invoking `submitOracleResponse` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitOracleResponse(oracle util.Uint160, index *big.Int, code string, destination string, landing *big.Int, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitOracleResponse", oracle, index, code, destination, landing, status)
}

// SubmitOracleResponseTransaction creates a transaction invoking `submitOracleResponse` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitOracleResponseTransaction(oracle util.Uint160, index *big.Int, code string, destination string, landing *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitOracleResponse", oracle, index, code, destination, landing, status)
}

// SubmitOracleResponseUnsigned creates a transaction invoking `submitOracleResponse` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitOracleResponseUnsigned(oracle util.Uint160, index *big.Int, code string, destination string, landing *big.Int, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitOracleResponse", nil, oracle, index, code, destination, landing, status)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// OperatingStatusVoteEventsFromApplicationLog retrieves a set of all emitted events
// with "OperatingStatusVote" name from the provided [result.ApplicationLog].
func OperatingStatusVoteEventsFromApplicationLog(log *result.ApplicationLog) ([]*OperatingStatusVoteEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OperatingStatusVoteEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OperatingStatusVote" {
				continue
			}
			event := new(OperatingStatusVoteEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OperatingStatusVoteEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OperatingStatusVoteEvent or
// returns an error if it's not possible to do to so.
func (e *OperatingStatusVoteEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Mode, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Mode: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Votes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Votes: %w", err)
	}

	return nil
}

// AirlineEndorsedEventsFromApplicationLog retrieves a set of all emitted events
// with "AirlineEndorsed" name from the provided [result.ApplicationLog].
func AirlineEndorsedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AirlineEndorsedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AirlineEndorsedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AirlineEndorsed" {
				continue
			}
			event := new(AirlineEndorsedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AirlineEndorsedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AirlineEndorsedEvent or
// returns an error if it's not possible to do to so.
func (e *AirlineEndorsedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Airline, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Airline: %w", err)
	}

	index++
	e.Endorser, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Endorser: %w", err)
	}

	index++
	e.Votes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Votes: %w", err)
	}

	return nil
}

// OracleRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "OracleRegistered" name from the provided [result.ApplicationLog].
func OracleRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OracleRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OracleRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OracleRegistered" {
				continue
			}
			event := new(OracleRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OracleRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OracleRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *OracleRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Oracle, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Oracle: %w", err)
	}

	index++
	e.Indexes, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Indexes: %w", err)
	}

	return nil
}

// OracleRequestEventsFromApplicationLog retrieves a set of all emitted events
// with "OracleRequest" name from the provided [result.ApplicationLog].
func OracleRequestEventsFromApplicationLog(log *result.ApplicationLog) ([]*OracleRequestEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OracleRequestEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OracleRequest" {
				continue
			}
			event := new(OracleRequestEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OracleRequestEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OracleRequestEvent or
// returns an error if it's not possible to do to so.
func (e *OracleRequestEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Index, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Index: %w", err)
	}

	index++
	e.Key, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	e.Code, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Destination, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Destination: %w", err)
	}

	index++
	e.Landing, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Landing: %w", err)
	}

	return nil
}

// OracleReportEventsFromApplicationLog retrieves a set of all emitted events
// with "OracleReport" name from the provided [result.ApplicationLog].
func OracleReportEventsFromApplicationLog(log *result.ApplicationLog) ([]*OracleReportEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OracleReportEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OracleReport" {
				continue
			}
			event := new(OracleReportEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OracleReportEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OracleReportEvent or
// returns an error if it's not possible to do to so.
func (e *OracleReportEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Key, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	e.Code, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Destination, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Destination: %w", err)
	}

	index++
	e.Landing, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Landing: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// FlightStatusInfoEventsFromApplicationLog retrieves a set of all emitted events
// with "FlightStatusInfo" name from the provided [result.ApplicationLog].
func FlightStatusInfoEventsFromApplicationLog(log *result.ApplicationLog) ([]*FlightStatusInfoEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FlightStatusInfoEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FlightStatusInfo" {
				continue
			}
			event := new(FlightStatusInfoEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FlightStatusInfoEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FlightStatusInfoEvent or
// returns an error if it's not possible to do to so.
func (e *FlightStatusInfoEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Key, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	e.Code, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Destination, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Destination: %w", err)
	}

	index++
	e.Landing, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Landing: %w", err)
	}

	index++
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}
