package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flightsurety/flightsurety-contract/common"
)

// Errors returned by Client when the contracts reject an operation.
var (
	ErrNotOperational      = errors.New("contract is not operational")
	ErrNotFunded           = errors.New("airline is not funded")
	ErrAlreadyEndorsed     = errors.New("already endorsed")
	ErrQuorumNotReached    = errors.New("quorum not reached")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrNoCredit            = errors.New("no credit")
	ErrAccessDenied        = errors.New("access denied")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrUnknownAirline      = errors.New("unknown airline")
	ErrUnknownFlight       = errors.New("unknown flight")
	ErrUnknownOracle       = errors.New("unknown oracle")
	ErrFlightSettled       = errors.New("flight status is settled")
	ErrTicketPurchased     = errors.New("ticket is already purchased")
	ErrInsuranceLimit      = errors.New("insurance exceeds the limit")
	ErrInvalidStatus       = errors.New("invalid flight status")
	ErrOracleRequest       = errors.New("oracle request rejected")
	ErrRequestClosed       = errors.New("oracle request is closed")
	ErrGasLimitExceeded    = errors.New("gas limit exceeded")
)

var faultSentinels = []struct {
	msg string
	err error
}{
	{common.ErrNotOperational, ErrNotOperational},
	{common.ErrNotFunded, ErrNotFunded},
	{common.ErrAlreadyEndorsed, ErrAlreadyEndorsed},
	{common.ErrInsufficientPayment, ErrInsufficientPayment},
	{common.ErrNoCredit, ErrNoCredit},
	{common.ErrAccessDenied, ErrAccessDenied},
	{common.ErrOwnerWitnessFailed, ErrAccessDenied},
	{common.ErrWitnessFailed, ErrAccessDenied},
	{common.ErrAirlineRegistered, ErrAlreadyRegistered},
	{common.ErrFlightRegistered, ErrAlreadyRegistered},
	{common.ErrOracleRegistered, ErrAlreadyRegistered},
	{common.ErrUnknownAirline, ErrUnknownAirline},
	{common.ErrUnknownFlight, ErrUnknownFlight},
	{common.ErrUnknownOracle, ErrUnknownOracle},
	{common.ErrFlightSettled, ErrFlightSettled},
	{common.ErrFlightCredited, ErrFlightSettled},
	{common.ErrTicketPurchased, ErrTicketPurchased},
	{common.ErrInsuranceLimit, ErrInsuranceLimit},
	{common.ErrInvalidStatus, ErrInvalidStatus},
	{common.ErrIndexMismatch, ErrOracleRequest},
	{common.ErrRequestClosed, ErrRequestClosed},
	{common.ErrAlreadyResponded, ErrOracleRequest},
}

// FaultError describes a contract invocation finished in FAULT state.
type FaultError struct {
	// Method is the contract method that failed.
	Method string
	// Exception is the raw VM exception message.
	Exception string

	cause error
}

// Error implements the error interface.
func (e *FaultError) Error() string {
	return fmt.Sprintf("%s: contract fault: %s", e.Method, e.Exception)
}

// Unwrap returns one of the package errors recognized in the exception or nil.
func (e *FaultError) Unwrap() error {
	return e.cause
}

func newFaultError(method, exception string) *FaultError {
	res := &FaultError{Method: method, Exception: exception}
	for _, s := range faultSentinels {
		if strings.Contains(exception, s.msg) {
			res.cause = s.err
			break
		}
	}
	return res
}

// QuorumError is returned when a vote is accepted but the action is still
// pending.
type QuorumError struct {
	// Votes is the number of votes the action has collected so far.
	Votes int64
}

// Error implements the error interface.
func (e *QuorumError) Error() string {
	return fmt.Sprintf("%s: %d vote(s) collected", ErrQuorumNotReached, e.Votes)
}

// Unwrap returns ErrQuorumNotReached.
func (e *QuorumError) Unwrap() error {
	return ErrQuorumNotReached
}
