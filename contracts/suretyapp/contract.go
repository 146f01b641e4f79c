package suretyapp

import (
	"github.com/flightsurety/flightsurety-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Oracle holds indexes assigned to a registered oracle.
	Oracle struct {
		Indexes []int
	}

	// Response is a flight status reported by an oracle.
	Response struct {
		Oracle interop.Hash160
		Status int
	}

	// ResponseInfo is a flight status request with oracle responses.
	ResponseInfo struct {
		Requester interop.Hash160
		Open      bool
		Responses []Response
	}

	// flight follows the layout of the flight structure returned by Data
	// contract.
	flight struct {
		Airline     interop.Hash160
		Code        string
		Origin      string
		Destination string
		Departure   int
		Landing     int
		TicketCost  int
		Status      int
		Credited    bool
	}
)

const (
	ownerKey        = 'O'
	dataContractKey = 'D'

	oraclePrefix  = 'o'
	requestPrefix = 'q'

	airlineBallotPrefix     = "airline"
	operationalBallotPrefix = "operational"
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
		dataContract interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner address")
	}

	if len(args.dataContract) != interop.Hash160Len {
		panic("incorrect length of data contract address")
	}

	storage.Put(ctx, ownerKey, args.owner)
	storage.Put(ctx, dataContractKey, args.dataContract)

	runtime.Log("flightsurety app contract initialized")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Oracle registration fees are accepted through it.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	common.AcceptGASOnly()
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.Update(getOwner(ctx), nefFile, manifest, data)
	runtime.Log("flightsurety app contract updated")
}

// Version returns version of the contract.
func Version() int {
	return common.Version
}

// Owner returns the address of the contract owner.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// DataContract returns the address of Data contract.
func DataContract() interop.Hash160 {
	return getDataContract(storage.GetReadOnlyContext())
}

// IsOperational returns the operational flag of Data contract.
func IsOperational() bool {
	return isOperational(getDataContract(storage.GetReadOnlyContext()))
}

// SetOperatingStatus votes for setting the operational flag to mode. While
// fewer than common.ConsensusThreshold airlines are registered, only the
// owner can change the flag and it is applied at once. Afterwards funded
// airlines vote and the flag is changed when a half of them agree. Returns
// true if the flag has been changed.
//
// It produces OperatingStatusVote notification for every accepted vote.
func SetOperatingStatus(mode bool, caller interop.Hash160) bool {
	ctx := storage.GetContext()
	common.CheckWitness(caller)

	data := getDataContract(ctx)
	if numRegistered(data) < common.ConsensusThreshold {
		if !caller.Equals(getOwner(ctx)) {
			panic(common.ErrAccessDenied)
		}

		contract.Call(data, "setOperatingStatus", contract.All, mode)
		return true
	}

	if !isFunded(data, caller) {
		panic(common.ErrNotFunded)
	}

	if isOperational(data) == mode {
		panic("operating status is already set")
	}

	id := operationalBallotID(mode)
	votes := common.Vote(ctx, id, caller)
	runtime.Notify("OperatingStatusVote", mode, caller, votes)

	if !common.QuorumReached(votes, numFunded(data)) {
		return false
	}

	common.RemoveVotes(ctx, id)
	contract.Call(data, "setOperatingStatus", contract.All, mode)

	return true
}

// RegisterAirline registers the airline on behalf of the funded caller. While
// fewer than common.ConsensusThreshold airlines are registered, a single call
// is enough. Afterwards every call is an endorsement and the airline is
// admitted when a half of funded airlines endorse it. Returns true if the
// airline has been registered.
//
// It produces AirlineEndorsed notification for every endorsement.
func RegisterAirline(airline, caller interop.Hash160) bool {
	ctx := storage.GetContext()
	data := getDataContract(ctx)
	checkOperational(data)
	common.CheckWitness(caller)

	if !isFunded(data, caller) {
		panic(common.ErrNotFunded)
	}

	if contract.Call(data, "isAirline", contract.ReadOnly, airline).(bool) {
		panic(common.ErrAirlineRegistered)
	}

	if numRegistered(data) < common.ConsensusThreshold {
		contract.Call(data, "registerAirline", contract.All, airline, 1)
		return true
	}

	id := airlineBallotID(airline)
	votes := common.Vote(ctx, id, caller)
	runtime.Notify("AirlineEndorsed", airline, caller, votes)

	if !common.QuorumReached(votes, numFunded(data)) {
		return false
	}

	common.RemoveVotes(ctx, id)
	contract.Call(data, "registerAirline", contract.All, airline, votes)

	return true
}

// Endorsements returns the number of endorsements the airline has got.
func Endorsements(airline interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.Votes(ctx, airlineBallotID(airline))
}

// EndorsementNeeded returns the number of endorsements still required to
// admit the airline. It is zero for registered airlines.
func EndorsementNeeded(airline interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	data := getDataContract(ctx)

	if contract.Call(data, "isAirline", contract.ReadOnly, airline).(bool) {
		return 0
	}

	if numRegistered(data) < common.ConsensusThreshold {
		return 1
	}

	votes := common.Votes(ctx, airlineBallotID(airline))
	return common.VotesNeeded(votes, numFunded(data))
}

// Fund transfers amount of GAS from the airline to Data contract.
func Fund(airline interop.Hash160, amount int) {
	data := getDataContract(storage.GetReadOnlyContext())
	checkOperational(data)
	common.CheckWitness(airline)

	contract.Call(data, "fund", contract.All, airline, amount)
}

// RegisterFlight registers a flight of the funded airline and returns
// the flight key.
func RegisterFlight(airline interop.Hash160, code, origin, destination string,
	departure, landing, ticketCost int) interop.Hash256 {
	data := getDataContract(storage.GetReadOnlyContext())
	checkOperational(data)
	common.CheckWitness(airline)

	if !isFunded(data, airline) {
		panic(common.ErrNotFunded)
	}

	if len(code) == 0 || len(destination) == 0 {
		panic("flight code and destination must be set")
	}

	if landing <= departure {
		panic("landing must be after departure")
	}

	if ticketCost <= 0 {
		panic("ticket cost must be positive")
	}

	return contract.Call(data, "registerFlight", contract.All,
		airline, code, origin, destination, departure, landing, ticketCost).(interop.Hash256)
}

// BookTicketAndBuyInsurance books a ticket of the flight for the passenger
// and buys the insurance. Insurance can be zero.
func BookTicketAndBuyInsurance(passenger interop.Hash160, code, destination string,
	landing, insurance, payment int) {
	data := getDataContract(storage.GetReadOnlyContext())
	checkOperational(data)
	common.CheckWitness(passenger)

	key := flightIdentifier(data, code, destination, landing)
	contract.Call(data, "buy", contract.All, key, passenger, insurance, payment)
}

// ClaimAmount withdraws the whole credit of the account and returns the amount.
func ClaimAmount(account interop.Hash160) int {
	data := getDataContract(storage.GetReadOnlyContext())
	checkOperational(data)
	common.CheckWitness(account)

	return contract.Call(data, "pay", contract.All, account).(int)
}

// RegisterOracle registers the oracle for common.OracleRegistrationFee and
// assigns three distinct indexes to it.
//
// It produces OracleRegistered notification.
func RegisterOracle(oracle interop.Hash160) {
	ctx := storage.GetContext()
	checkOperational(getDataContract(ctx))
	common.CheckWitness(oracle)

	key := oracleKey(oracle)
	if storage.Get(ctx, key) != nil {
		panic(common.ErrOracleRegistered)
	}

	common.TransferFrom(oracle, common.OracleRegistrationFee)

	o := Oracle{Indexes: generateIndexes()}
	common.SetSerialized(ctx, key, o)

	runtime.Notify("OracleRegistered", oracle, o.Indexes)
}

// IsOracleRegistered checks whether the oracle is registered.
func IsOracleRegistered(oracle interop.Hash160) bool {
	return storage.Get(storage.GetReadOnlyContext(), oracleKey(oracle)) != nil
}

// GetMyIndexes returns indexes assigned to the oracle.
func GetMyIndexes(oracle interop.Hash160) []int {
	return getOracle(storage.GetReadOnlyContext(), oracle).Indexes
}

// FetchFlightStatus opens a status request of the flight for oracles with
// a random index and returns the index. Repeated requests with the same index
// reuse an open request. Settled flights are rejected.
//
// It produces OracleRequest notification.
func FetchFlightStatus(caller interop.Hash160, code, destination string, landing int) int {
	ctx := storage.GetContext()
	data := getDataContract(ctx)
	checkOperational(data)
	common.CheckWitness(caller)

	key := flightIdentifier(data, code, destination, landing)
	if isSettled(getFlight(data, key)) {
		panic(common.ErrFlightSettled)
	}

	index := randomIndex()
	rKey := requestKey(index, key)
	if !getRequest(ctx, rKey).Open {
		common.SetSerialized(ctx, rKey, ResponseInfo{
			Requester: caller,
			Open:      true,
			Responses: []Response{},
		})
	}

	runtime.Notify("OracleRequest", index, key, code, destination, landing)

	return index
}

// SubmitOracleResponse accepts the status of the flight reported by the oracle
// for the request with the index. Once common.MinOracleResponses oracles report
// the same status, the request is closed, the status is stored in Data
// contract and, for flights delayed because of the airline, insurees are
// credited. Requests of already settled flights are closed without effect.
//
// It produces OracleReport notification and FlightStatusInfo notification when
// the status is recorded.
func SubmitOracleResponse(oracle interop.Hash160, index int, code, destination string,
	landing, status int) {
	ctx := storage.GetContext()
	data := getDataContract(ctx)
	checkOperational(data)
	common.CheckWitness(oracle)

	if !common.IsValidStatus(status) {
		panic(common.ErrInvalidStatus)
	}

	if !hasIndex(getOracle(ctx, oracle).Indexes, index) {
		panic(common.ErrIndexMismatch)
	}

	key := flightIdentifier(data, code, destination, landing)
	rKey := requestKey(index, key)

	info := getRequest(ctx, rKey)
	if !info.Open {
		panic(common.ErrRequestClosed)
	}

	var matched int
	for i := range info.Responses {
		if info.Responses[i].Oracle.Equals(oracle) {
			panic(common.ErrAlreadyResponded)
		}
		if info.Responses[i].Status == status {
			matched++
		}
	}

	info.Responses = append(info.Responses, Response{Oracle: oracle, Status: status})
	matched++

	runtime.Notify("OracleReport", key, code, destination, landing, status)

	if matched < common.MinOracleResponses {
		common.SetSerialized(ctx, rKey, info)
		return
	}

	info.Open = false
	common.SetSerialized(ctx, rKey, info)

	if isSettled(getFlight(data, key)) {
		return
	}

	runtime.Notify("FlightStatusInfo", key, code, destination, landing, status)

	contract.Call(data, "updateFlightStatus", contract.All, key, status)
	if status == common.StatusLateAirline {
		contract.Call(data, "creditInsurees", contract.All, key)
	}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func getDataContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, dataContractKey).(interop.Hash160)
}

func isOperational(data interop.Hash160) bool {
	return contract.Call(data, "isOperational", contract.ReadOnly).(bool)
}

func checkOperational(data interop.Hash160) {
	if !isOperational(data) {
		panic(common.ErrNotOperational)
	}
}

func isFunded(data, airline interop.Hash160) bool {
	return contract.Call(data, "isFundedAirline", contract.ReadOnly, airline).(bool)
}

func numRegistered(data interop.Hash160) int {
	return contract.Call(data, "numRegisteredAirline", contract.ReadOnly).(int)
}

func numFunded(data interop.Hash160) int {
	return contract.Call(data, "numFundedAirline", contract.ReadOnly).(int)
}

func getFlight(data interop.Hash160, key interop.Hash256) flight {
	return contract.Call(data, "getFlight", contract.ReadOnly, key).(flight)
}

func isSettled(f flight) bool {
	return f.Status != common.StatusUnknown || f.Credited
}

func flightIdentifier(data interop.Hash160, code, destination string, landing int) interop.Hash256 {
	return contract.Call(data, "getFlightIdentifier", contract.ReadOnly,
		code, destination, landing).(interop.Hash256)
}

func airlineBallotID(airline interop.Hash160) []byte {
	return append([]byte(airlineBallotPrefix), airline...)
}

func operationalBallotID(mode bool) []byte {
	if mode {
		return []byte(operationalBallotPrefix + "+")
	}
	return []byte(operationalBallotPrefix + "-")
}

func oracleKey(oracle interop.Hash160) []byte {
	return append([]byte{oraclePrefix}, oracle...)
}

func getOracle(ctx storage.Context, oracle interop.Hash160) Oracle {
	data := storage.Get(ctx, oracleKey(oracle))
	if data == nil {
		panic(common.ErrUnknownOracle)
	}

	return std.Deserialize(data.([]byte)).(Oracle)
}

func requestKey(index int, key interop.Hash256) []byte {
	return append(append([]byte{requestPrefix}, key...), []byte(std.Itoa(index, 10))...)
}

func getRequest(ctx storage.Context, rKey []byte) ResponseInfo {
	data := storage.Get(ctx, rKey)
	if data == nil {
		return ResponseInfo{}
	}

	return std.Deserialize(data.([]byte)).(ResponseInfo)
}

func randomIndex() int {
	return runtime.GetRandom() % common.OracleIndexRange
}

// generateIndexes returns common.OracleIndexCount distinct indexes derived
// from a single random number.
func generateIndexes() []int {
	const n = common.OracleIndexRange

	r := runtime.GetRandom()
	first := r % n
	r /= n
	// Offsets from the first index: [1, n-1] for the second one and
	// [1, n-2] for the third one, n-1 replaces the clashing offset.
	second := (first + 1 + r%(n-1)) % n
	r /= n - 1
	third := (first + 1 + r%(n-2)) % n
	if third == second {
		third = (first + n - 1) % n
	}

	return []int{first, second, third}
}

func hasIndex(indexes []int, index int) bool {
	for i := range indexes {
		if indexes[i] == index {
			return true
		}
	}

	return false
}
