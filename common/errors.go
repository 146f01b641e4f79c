package common

// Exception messages of the FlightSurety contracts. Off-chain code matches
// fault exceptions against these values, so they must stay stable between
// releases.
const (
	// ErrNotOperational is thrown by every state-changing method while the
	// operational flag is off.
	ErrNotOperational = "contract is currently not operational"
	// ErrNotFunded is thrown when an airline acts before paying the
	// participation fund.
	ErrNotFunded = "airline must fund before able to perform this action"
	// ErrAlreadyEndorsed is thrown on a repeated vote for the same action.
	ErrAlreadyEndorsed = "the endorser has already endorsed once"
	// ErrInsufficientPayment is thrown when attached GAS does not cover the
	// required amount.
	ErrInsufficientPayment = "insufficient payment"
	// ErrNoCredit is thrown on withdrawal with a zero credit balance.
	ErrNoCredit = "no credit to withdraw"
	// ErrAccessDenied is thrown when the caller lacks the required role.
	ErrAccessDenied = "access denied"

	ErrAirlineRegistered = "airline is already registered"
	ErrUnknownAirline    = "airline is not registered"
	ErrFlightRegistered  = "flight is already registered"
	ErrUnknownFlight     = "flight is not registered"
	ErrFlightSettled     = "flight status is already settled"
	ErrFlightCredited    = "insurees of the flight are already credited"
	ErrTicketPurchased   = "ticket is already purchased"
	ErrInsuranceLimit    = "insurance exceeds the limit"
	ErrInvalidStatus     = "invalid flight status"

	ErrOracleRegistered = "oracle is already registered"
	ErrUnknownOracle    = "oracle is not registered"
	ErrIndexMismatch    = "index does not match oracle request"
	ErrRequestClosed    = "flight status request is not open"
	ErrAlreadyResponded = "oracle has already responded"
)
