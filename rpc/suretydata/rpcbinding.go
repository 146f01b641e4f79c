// Package suretydata contains RPC wrappers for FlightSurety Data contract.
package suretydata

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// SuretydataAirline is a contract-specific suretydata.Airline type used by its methods.
type SuretydataAirline struct {
	Registered bool
	FeePaid bool
	Endorsements *big.Int
	Fund *big.Int
}

// SuretydataFlight is a contract-specific suretydata.Flight type used by its methods.
type SuretydataFlight struct {
	Airline util.Uint160
	Code string
	Origin string
	Destination string
	Departure *big.Int
	Landing *big.Int
	TicketCost *big.Int
	Status *big.Int
	Credited bool
}

// SuretydataTicket is a contract-specific suretydata.Ticket type used by its methods.
type SuretydataTicket struct {
	Purchased bool
	Insurance *big.Int
	Payout *big.Int
}

// OperatingStatusChangedEvent represents "OperatingStatusChanged" event emitted by the contract.
type OperatingStatusChangedEvent struct {
	Mode bool
}

// CallerAuthorizedEvent represents "CallerAuthorized" event emitted by the contract.
type CallerAuthorizedEvent struct {
	Caller util.Uint160
}

// CallerDeauthorizedEvent represents "CallerDeauthorized" event emitted by the contract.
type CallerDeauthorizedEvent struct {
	Caller util.Uint160
}

// AirlineRegisteredEvent represents "AirlineRegistered" event emitted by the contract.
type AirlineRegisteredEvent struct {
	Airline util.Uint160
	Endorsements *big.Int
}

// AirlineFundedEvent represents "AirlineFunded" event emitted by the contract.
type AirlineFundedEvent struct {
	Airline util.Uint160
	Amount *big.Int
}

// FlightRegisteredEvent represents "FlightRegistered" event emitted by the contract.
type FlightRegisteredEvent struct {
	Key util.Uint256
	Airline util.Uint160
	Code string
}

// FlightStatusUpdatedEvent represents "FlightStatusUpdated" event emitted by the contract.
type FlightStatusUpdatedEvent struct {
	Key util.Uint256
	Status *big.Int
}

// TicketPurchasedEvent represents "TicketPurchased" event emitted by the contract.
type TicketPurchasedEvent struct {
	Key util.Uint256
	Passenger util.Uint160
	Insurance *big.Int
}

// InsureeCreditedEvent represents "InsureeCredited" event emitted by the contract.
type InsureeCreditedEvent struct {
	Key util.Uint256
	Passenger util.Uint160
	Amount *big.Int
}

// AmountClaimedEvent represents "AmountClaimed" event emitted by the contract.
type AmountClaimedEvent struct {
	Account util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
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

// GetAirline invokes `getAirline` method of contract.
func (c *ContractReader) GetAirline(airline util.Uint160) (*SuretydataAirline, error) {
	return itemToSuretydataAirline(unwrap.Item(c.invoker.Call(c.hash, "getAirline", airline)))
}

// GetCredit invokes `getCredit` method of contract.
func (c *ContractReader) GetCredit(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getCredit", account))
}

// GetFlight invokes `getFlight` method of contract.
func (c *ContractReader) GetFlight(key util.Uint256) (*SuretydataFlight, error) {
	return itemToSuretydataFlight(unwrap.Item(c.invoker.Call(c.hash, "getFlight", key)))
}

// GetFlightIdentifier invokes `getFlightIdentifier` method of contract.
func (c *ContractReader) GetFlightIdentifier(code string, destination string, landing *big.Int) (util.Uint256, error) {
	return unwrap.Uint256(c.invoker.Call(c.hash, "getFlightIdentifier", code, destination, landing))
}

// GetTicket invokes `getTicket` method of contract.
func (c *ContractReader) GetTicket(key util.Uint256, passenger util.Uint160) (*SuretydataTicket, error) {
	return itemToSuretydataTicket(unwrap.Item(c.invoker.Call(c.hash, "getTicket", key, passenger)))
}

// IsAirline invokes `isAirline` method of contract.
func (c *ContractReader) IsAirline(airline util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAirline", airline))
}

// IsAuthorizedCaller invokes `isAuthorizedCaller` method of contract.
func (c *ContractReader) IsAuthorizedCaller(caller util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAuthorizedCaller", caller))
}

// IsFundedAirline invokes `isFundedAirline` method of contract.
func (c *ContractReader) IsFundedAirline(airline util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isFundedAirline", airline))
}

// IsOperational invokes `isOperational` method of contract.
func (c *ContractReader) IsOperational() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isOperational"))
}

// ListFlights invokes `listFlights` method of contract.
func (c *ContractReader) ListFlights() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listFlights"))
}

// ListFlightsExpanded is similar to ListFlights (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListFlightsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listFlights", _numOfIteratorItems))
}

// NumFundedAirline invokes `numFundedAirline` method of contract.
func (c *ContractReader) NumFundedAirline() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "numFundedAirline"))
}

// NumRegisteredAirline invokes `numRegisteredAirline` method of contract.
func (c *ContractReader) NumRegisteredAirline() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "numRegisteredAirline"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AuthorizeCaller creates a transaction invoking `authorizeCaller` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AuthorizeCaller(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "authorizeCaller", caller)
}

// AuthorizeCallerTransaction creates a transaction invoking `authorizeCaller` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AuthorizeCallerTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "authorizeCaller", caller)
}

// AuthorizeCallerUnsigned creates a transaction invoking `authorizeCaller` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AuthorizeCallerUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "authorizeCaller", nil, caller)
}

// Buy creates a transaction invoking `buy` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Buy(key util.Uint256, passenger util.Uint160, insurance *big.Int, payment *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buy", key, passenger, insurance, payment)
}

// BuyTransaction creates a transaction invoking `buy` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyTransaction(key util.Uint256, passenger util.Uint160, insurance *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buy", key, passenger, insurance, payment)
}

// BuyUnsigned creates a transaction invoking `buy` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyUnsigned(key util.Uint256, passenger util.Uint160, insurance *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buy", nil, key, passenger, insurance, payment)
}

// CreditInsurees creates a transaction invoking `creditInsurees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreditInsurees(key util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "creditInsurees", key)
}

// CreditInsureesTransaction creates a transaction invoking `creditInsurees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreditInsureesTransaction(key util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "creditInsurees", key)
}

// CreditInsureesUnsigned creates a transaction invoking `creditInsurees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreditInsureesUnsigned(key util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "creditInsurees", nil, key)
}

// DeauthorizeCaller creates a transaction invoking `deauthorizeCaller` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeauthorizeCaller(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deauthorizeCaller", caller)
}

// DeauthorizeCallerTransaction creates a transaction invoking `deauthorizeCaller` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeauthorizeCallerTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deauthorizeCaller", caller)
}

// DeauthorizeCallerUnsigned creates a transaction invoking `deauthorizeCaller` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeauthorizeCallerUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deauthorizeCaller", nil, caller)
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

// Pay creates a transaction invoking `pay` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pay(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pay", account)
}

// PayTransaction creates a transaction invoking `pay` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PayTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pay", account)
}

// PayUnsigned creates a transaction invoking `pay` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PayUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pay", nil, account)
}

// RegisterAirline creates a transaction invoking `registerAirline` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterAirline(airline util.Uint160, endorsements *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerAirline", airline, endorsements)
}

// RegisterAirlineTransaction creates a transaction invoking `registerAirline` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterAirlineTransaction(airline util.Uint160, endorsements *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerAirline", airline, endorsements)
}

// RegisterAirlineUnsigned creates a transaction invoking `registerAirline` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterAirlineUnsigned(airline util.Uint160, endorsements *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerAirline", nil, airline, endorsements)
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

// SetOperatingStatus creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetOperatingStatus(mode bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setOperatingStatus", mode)
}

// SetOperatingStatusTransaction creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetOperatingStatusTransaction(mode bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setOperatingStatus", mode)
}

// SetOperatingStatusUnsigned creates a transaction invoking `setOperatingStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetOperatingStatusUnsigned(mode bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setOperatingStatus", nil, mode)
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

// UpdateFlightStatus creates a transaction invoking `updateFlightStatus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateFlightStatus(key util.Uint256, status *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateFlightStatus", key, status)
}

// UpdateFlightStatusTransaction creates a transaction invoking `updateFlightStatus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateFlightStatusTransaction(key util.Uint256, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateFlightStatus", key, status)
}

// UpdateFlightStatusUnsigned creates a transaction invoking `updateFlightStatus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateFlightStatusUnsigned(key util.Uint256, status *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateFlightStatus", nil, key, status)
}

// itemToSuretydataAirline converts stack item into *SuretydataAirline.
func itemToSuretydataAirline(item stackitem.Item, err error) (*SuretydataAirline, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SuretydataAirline)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SuretydataAirline from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SuretydataAirline) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Registered, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Registered: %w", err)
	}

	index++
	res.FeePaid, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field FeePaid: %w", err)
	}

	index++
	res.Endorsements, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Endorsements: %w", err)
	}

	index++
	res.Fund, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fund: %w", err)
	}

	return nil
}

// itemToSuretydataFlight converts stack item into *SuretydataFlight.
func itemToSuretydataFlight(item stackitem.Item, err error) (*SuretydataFlight, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SuretydataFlight)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SuretydataFlight from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SuretydataFlight) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 9 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Airline, err = func (item stackitem.Item) (util.Uint160, error) {
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
	res.Code, err = func (item stackitem.Item) (string, error) {
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
	res.Origin, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Origin: %w", err)
	}

	index++
	res.Destination, err = func (item stackitem.Item) (string, error) {
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
	res.Departure, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Departure: %w", err)
	}

	index++
	res.Landing, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Landing: %w", err)
	}

	index++
	res.TicketCost, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TicketCost: %w", err)
	}

	index++
	res.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	res.Credited, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Credited: %w", err)
	}

	return nil
}

// itemToSuretydataTicket converts stack item into *SuretydataTicket.
func itemToSuretydataTicket(item stackitem.Item, err error) (*SuretydataTicket, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SuretydataTicket)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SuretydataTicket from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SuretydataTicket) FromStackItem(item stackitem.Item) error {
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
	res.Purchased, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Purchased: %w", err)
	}

	index++
	res.Insurance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Insurance: %w", err)
	}

	index++
	res.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	return nil
}

// OperatingStatusChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "OperatingStatusChanged" name from the provided [result.ApplicationLog].
func OperatingStatusChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OperatingStatusChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OperatingStatusChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OperatingStatusChanged" {
				continue
			}
			event := new(OperatingStatusChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OperatingStatusChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OperatingStatusChangedEvent or
// returns an error if it's not possible to do to so.
func (e *OperatingStatusChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
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

	return nil
}

// CallerAuthorizedEventsFromApplicationLog retrieves a set of all emitted events
// with "CallerAuthorized" name from the provided [result.ApplicationLog].
func CallerAuthorizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CallerAuthorizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CallerAuthorizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CallerAuthorized" {
				continue
			}
			event := new(CallerAuthorizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CallerAuthorizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CallerAuthorizedEvent or
// returns an error if it's not possible to do to so.
func (e *CallerAuthorizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// CallerDeauthorizedEventsFromApplicationLog retrieves a set of all emitted events
// with "CallerDeauthorized" name from the provided [result.ApplicationLog].
func CallerDeauthorizedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CallerDeauthorizedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CallerDeauthorizedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CallerDeauthorized" {
				continue
			}
			event := new(CallerDeauthorizedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CallerDeauthorizedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CallerDeauthorizedEvent or
// returns an error if it's not possible to do to so.
func (e *CallerDeauthorizedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Caller, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Caller: %w", err)
	}

	return nil
}

// AirlineRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "AirlineRegistered" name from the provided [result.ApplicationLog].
func AirlineRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*AirlineRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AirlineRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AirlineRegistered" {
				continue
			}
			event := new(AirlineRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AirlineRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AirlineRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *AirlineRegisteredEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Endorsements, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Endorsements: %w", err)
	}

	return nil
}

// AirlineFundedEventsFromApplicationLog retrieves a set of all emitted events
// with "AirlineFunded" name from the provided [result.ApplicationLog].
func AirlineFundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AirlineFundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AirlineFundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AirlineFunded" {
				continue
			}
			event := new(AirlineFundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AirlineFundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AirlineFundedEvent or
// returns an error if it's not possible to do to so.
func (e *AirlineFundedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FlightRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "FlightRegistered" name from the provided [result.ApplicationLog].
func FlightRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*FlightRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FlightRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FlightRegistered" {
				continue
			}
			event := new(FlightRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FlightRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FlightRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *FlightRegisteredEvent) FromStackItem(item *stackitem.Array) error {
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

	return nil
}

// FlightStatusUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "FlightStatusUpdated" name from the provided [result.ApplicationLog].
func FlightStatusUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*FlightStatusUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FlightStatusUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FlightStatusUpdated" {
				continue
			}
			event := new(FlightStatusUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FlightStatusUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FlightStatusUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *FlightStatusUpdatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Status, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// TicketPurchasedEventsFromApplicationLog retrieves a set of all emitted events
// with "TicketPurchased" name from the provided [result.ApplicationLog].
func TicketPurchasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TicketPurchasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TicketPurchasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TicketPurchased" {
				continue
			}
			event := new(TicketPurchasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TicketPurchasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TicketPurchasedEvent or
// returns an error if it's not possible to do to so.
func (e *TicketPurchasedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Passenger, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Passenger: %w", err)
	}

	index++
	e.Insurance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Insurance: %w", err)
	}

	return nil
}

// InsureeCreditedEventsFromApplicationLog retrieves a set of all emitted events
// with "InsureeCredited" name from the provided [result.ApplicationLog].
func InsureeCreditedEventsFromApplicationLog(log *result.ApplicationLog) ([]*InsureeCreditedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*InsureeCreditedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "InsureeCredited" {
				continue
			}
			event := new(InsureeCreditedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize InsureeCreditedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to InsureeCreditedEvent or
// returns an error if it's not possible to do to so.
func (e *InsureeCreditedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Passenger, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Passenger: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// AmountClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "AmountClaimed" name from the provided [result.ApplicationLog].
func AmountClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AmountClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AmountClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AmountClaimed" {
				continue
			}
			event := new(AmountClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AmountClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AmountClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *AmountClaimedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.Account, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Account: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
