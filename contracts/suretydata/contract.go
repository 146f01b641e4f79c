package suretydata

import (
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Airline stores registration and funding state of an airline.
	Airline struct {
		Registered bool
		FeePaid    bool
		// Number of votes the airline was admitted with.
		Endorsements int
		// Total amount of GAS paid to the contract by the airline.
		Fund int
	}

	// Flight is a flight registered by a funded airline.
	Flight struct {
		Airline     interop.Hash160
		Code        string
		Origin      string
		Destination string
		// Departure and Landing are Unix timestamps in seconds.
		Departure  int
		Landing    int
		TicketCost int
		Status     int
		// Credited is set after insurees of the flight got their payouts.
		Credited bool
	}

	// Ticket is a passenger's ticket with an optional insurance.
	Ticket struct {
		Purchased bool
		Insurance int
		// Payout is set once the insurance is credited.
		Payout int
	}
)

const (
	ownerKey           = 'O'
	operationalKey     = 'S'
	registeredCountKey = 'R'
	fundedCountKey     = 'F'

	airlinePrefix = 'a'
	callerPrefix  = 'c'
	flightPrefix  = 'f'
	ticketPrefix  = 't'
	creditPrefix  = 'r'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner        interop.Hash160
		firstAirline interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner address")
	}

	if len(args.firstAirline) != interop.Hash160Len {
		panic("incorrect length of first airline address")
	}

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, operationalKey, true)

	putAirline(ctx, args.firstAirline, Airline{Registered: true, Endorsements: 1})
	storage.Put(ctx, registeredCountKey, 1)

	runtime.Log("flightsurety data contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Airline funds and ticket payments are accepted through it.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	common.AcceptGASOnly()
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.Update(getOwner(ctx), nefFile, manifest, data)
	runtime.Log("flightsurety data contract updated")
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

// Owner returns the address of the contract owner.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// IsOperational returns the state of the operational flag.
func IsOperational() bool {
	return storage.Get(storage.GetReadOnlyContext(), operationalKey).(bool)
}

// SetOperatingStatus sets the operational flag. It can be invoked by the
// owner or by an authorized contract and works in non-operational mode too.
//
// It produces OperatingStatusChanged notification.
func SetOperatingStatus(mode bool) {
	ctx := storage.GetContext()
	if !runtime.CheckWitness(getOwner(ctx)) {
		checkAuthorized(ctx)
	}

	storage.Put(ctx, operationalKey, mode)
	runtime.Notify("OperatingStatusChanged", mode)
}

// AuthorizeCaller allows the contract with the given hash to invoke
// state-changing methods. It can be invoked only by the owner.
func AuthorizeCaller(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	if len(caller) != interop.Hash160Len {
		panic("incorrect length of caller address")
	}

	storage.Put(ctx, callerKey(caller), true)
	runtime.Notify("CallerAuthorized", caller)
}

// DeauthorizeCaller revokes access granted by AuthorizeCaller. It can be
// invoked only by the owner.
func DeauthorizeCaller(caller interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckOwnerWitness(getOwner(ctx))

	storage.Delete(ctx, callerKey(caller))
	runtime.Notify("CallerDeauthorized", caller)
}

// IsAuthorizedCaller checks whether the contract is allowed to invoke
// state-changing methods.
func IsAuthorizedCaller(caller interop.Hash160) bool {
	return storage.Get(storage.GetReadOnlyContext(), callerKey(caller)) != nil
}

// RegisterAirline admits the airline to the registry with the given number of
// endorsements. Consensus is checked by the caller.
//
// It produces AirlineRegistered notification.
func RegisterAirline(airline interop.Hash160, endorsements int) {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	if len(airline) != interop.Hash160Len {
		panic("incorrect length of airline address")
	}

	if getAirline(ctx, airline).Registered {
		panic(common.ErrAirlineRegistered)
	}

	putAirline(ctx, airline, Airline{Registered: true, Endorsements: endorsements})
	storage.Put(ctx, registeredCountKey, common.GetInt(ctx, registeredCountKey)+1)

	runtime.Notify("AirlineRegistered", airline, endorsements)
}

// IsAirline checks whether the airline is registered.
func IsAirline(airline interop.Hash160) bool {
	return getAirline(storage.GetReadOnlyContext(), airline).Registered
}

// IsFundedAirline checks whether the airline is registered and has paid the
// participation fund.
func IsFundedAirline(airline interop.Hash160) bool {
	a := getAirline(storage.GetReadOnlyContext(), airline)
	return a.Registered && a.FeePaid
}

// GetAirline returns the airline structure. Unknown airlines are returned
// with the Registered field unset.
func GetAirline(airline interop.Hash160) Airline {
	return getAirline(storage.GetReadOnlyContext(), airline)
}

// NumRegisteredAirline returns the number of registered airlines.
func NumRegisteredAirline() int {
	return common.GetInt(storage.GetReadOnlyContext(), registeredCountKey)
}

// NumFundedAirline returns the number of airlines that paid the fund.
func NumFundedAirline() int {
	return common.GetInt(storage.GetReadOnlyContext(), fundedCountKey)
}

// Fund transfers amount of GAS from the airline to the contract. The first
// payment must be at least common.MinAirlineFund, it makes the airline a
// participant of consensus.
//
// It produces AirlineFunded notification.
func Fund(airline interop.Hash160, amount int) {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	a := getAirline(ctx, airline)
	if !a.Registered {
		panic(common.ErrUnknownAirline)
	}

	if amount <= 0 || (!a.FeePaid && amount < common.MinAirlineFund) {
		panic(common.ErrInsufficientPayment)
	}

	common.TransferFrom(airline, amount)

	if !a.FeePaid {
		a.FeePaid = true
		storage.Put(ctx, fundedCountKey, common.GetInt(ctx, fundedCountKey)+1)
	}
	a.Fund += amount
	putAirline(ctx, airline, a)

	runtime.Notify("AirlineFunded", airline, amount)
}

// RegisterFlight stores a new flight of the funded airline and returns its key.
//
// It produces FlightRegistered notification.
func RegisterFlight(airline interop.Hash160, code, origin, destination string,
	departure, landing, ticketCost int) interop.Hash256 {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	a := getAirline(ctx, airline)
	if !a.Registered || !a.FeePaid {
		panic(common.ErrNotFunded)
	}

	key := GetFlightIdentifier(code, destination, landing)
	if storage.Get(ctx, flightKey(key)) != nil {
		panic(common.ErrFlightRegistered)
	}

	putFlight(ctx, key, Flight{
		Airline:     airline,
		Code:        code,
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Landing:     landing,
		TicketCost:  ticketCost,
		Status:      common.StatusUnknown,
	})

	runtime.Notify("FlightRegistered", key, airline, code)

	return key
}

// GetFlightIdentifier returns the key of the flight: SHA256 of serialized
// code, destination and landing time.
func GetFlightIdentifier(code, destination string, landing int) interop.Hash256 {
	return crypto.Sha256(std.Serialize([]any{code, destination, landing}))
}

// GetFlight returns the flight by its key. It panics if the flight is unknown.
func GetFlight(key interop.Hash256) Flight {
	return getFlight(storage.GetReadOnlyContext(), key)
}

// ListFlights returns an iterator over all registered flights.
func ListFlights() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{flightPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// UpdateFlightStatus records the status reported for the flight.
//
// It produces FlightStatusUpdated notification.
func UpdateFlightStatus(key interop.Hash256, status int) {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	if !common.IsValidStatus(status) {
		panic(common.ErrInvalidStatus)
	}

	f := getFlight(ctx, key)
	f.Status = status
	putFlight(ctx, key, f)

	runtime.Notify("FlightStatusUpdated", key, status)
}

// Buy purchases a ticket of the flight for the passenger with an optional
// insurance. Payment must cover the ticket cost and the insurance, exactly
// that amount of GAS is transferred from the passenger. Ticket cost is
// credited to the airline of the flight.
//
// It produces TicketPurchased notification.
func Buy(key interop.Hash256, passenger interop.Hash160, insurance, payment int) {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	f := getFlight(ctx, key)
	if f.Status != common.StatusUnknown || f.Credited {
		panic(common.ErrFlightSettled)
	}

	if insurance < 0 || insurance > common.MaxInsurance {
		panic(common.ErrInsuranceLimit)
	}

	price := f.TicketCost + insurance
	if payment < price {
		panic(common.ErrInsufficientPayment)
	}

	tKey := ticketKey(key, passenger)
	if storage.Get(ctx, tKey) != nil {
		panic(common.ErrTicketPurchased)
	}

	common.TransferFrom(passenger, price)

	common.SetSerialized(ctx, tKey, Ticket{Purchased: true, Insurance: insurance})
	addCredit(ctx, f.Airline, f.TicketCost)

	runtime.Notify("TicketPurchased", key, passenger, insurance)
}

// GetTicket returns the ticket of the passenger. Missing tickets are returned
// with the Purchased field unset.
func GetTicket(key interop.Hash256, passenger interop.Hash160) Ticket {
	data := storage.Get(storage.GetReadOnlyContext(), ticketKey(key, passenger))
	if data == nil {
		return Ticket{}
	}

	return std.Deserialize(data.([]byte)).(Ticket)
}

// CreditInsurees credits every insured passenger of the flight with the
// payout. Flight can be credited only once. Returns the total credited amount.
//
// It produces InsureeCredited notification for every insuree.
func CreditInsurees(key interop.Hash256) int {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	f := getFlight(ctx, key)
	if f.Credited {
		panic(common.ErrFlightCredited)
	}

	var total int

	prefix := append([]byte{ticketPrefix}, key...)
	it := storage.Find(ctx, prefix, storage.RemovePrefix)
	for iterator.Next(it) {
		kv := iterator.Value(it).(struct {
			key []byte
			val []byte
		})

		t := std.Deserialize(kv.val).(Ticket)
		if t.Insurance == 0 || t.Payout != 0 {
			continue
		}

		passenger := interop.Hash160(kv.key)
		t.Payout = common.Payout(t.Insurance)
		common.SetSerialized(ctx, ticketKey(key, passenger), t)
		addCredit(ctx, passenger, t.Payout)
		total += t.Payout

		runtime.Notify("InsureeCredited", key, passenger, t.Payout)
	}

	f.Credited = true
	putFlight(ctx, key, f)

	return total
}

// GetCredit returns the amount of GAS the account can withdraw.
func GetCredit(account interop.Hash160) int {
	return common.GetInt(storage.GetReadOnlyContext(), creditKey(account))
}

// Pay transfers the whole credit of the account to it and returns the amount.
//
// It produces AmountClaimed notification.
func Pay(account interop.Hash160) int {
	ctx := storage.GetContext()
	checkAuthorized(ctx)
	checkOperational(ctx)

	key := creditKey(account)
	amount := common.GetInt(ctx, key)
	if amount == 0 {
		panic(common.ErrNoCredit)
	}

	storage.Delete(ctx, key)
	common.TransferTo(account, amount)

	runtime.Notify("AmountClaimed", account, amount)

	return amount
}

func checkOperational(ctx storage.Context) {
	if !storage.Get(ctx, operationalKey).(bool) {
		panic(common.ErrNotOperational)
	}
}

// checkAuthorized passes calls from authorized contracts only.
func checkAuthorized(ctx storage.Context) {
	if storage.Get(ctx, callerKey(runtime.GetCallingScriptHash())) == nil {
		panic(common.ErrAccessDenied)
	}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func callerKey(caller interop.Hash160) []byte {
	return append([]byte{callerPrefix}, caller...)
}

func flightKey(key interop.Hash256) []byte {
	return append([]byte{flightPrefix}, key...)
}

func ticketKey(key interop.Hash256, passenger interop.Hash160) []byte {
	return append(append([]byte{ticketPrefix}, key...), passenger...)
}

func creditKey(account interop.Hash160) []byte {
	return append([]byte{creditPrefix}, account...)
}

func getAirline(ctx storage.Context, airline interop.Hash160) Airline {
	data := storage.Get(ctx, append([]byte{airlinePrefix}, airline...))
	if data == nil {
		return Airline{}
	}

	return std.Deserialize(data.([]byte)).(Airline)
}

func putAirline(ctx storage.Context, airline interop.Hash160, a Airline) {
	common.SetSerialized(ctx, append([]byte{airlinePrefix}, airline...), a)
}

func getFlight(ctx storage.Context, key interop.Hash256) Flight {
	data := storage.Get(ctx, flightKey(key))
	if data == nil {
		panic(common.ErrUnknownFlight)
	}

	return std.Deserialize(data.([]byte)).(Flight)
}

func putFlight(ctx storage.Context, key interop.Hash256, f Flight) {
	common.SetSerialized(ctx, flightKey(key), f)
}

func addCredit(ctx storage.Context, account interop.Hash160, amount int) {
	if amount == 0 {
		return
	}

	key := creditKey(account)
	storage.Put(ctx, key, common.GetInt(ctx, key)+amount)
}
