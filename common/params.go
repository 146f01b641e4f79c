package common

// GAS amounts are expressed in the smallest units, 1 GAS is 10^8 units.
const (
	GASFactor = 1_0000_0000

	// MinAirlineFund is the minimal participation fund of an airline.
	MinAirlineFund = 10 * GASFactor
	// MaxInsurance is the maximal premium per ticket.
	MaxInsurance = 1 * GASFactor
	// OracleRegistrationFee is paid by an oracle on registration.
	OracleRegistrationFee = 1 * GASFactor

	// ConsensusThreshold is the number of registered airlines from which
	// actions require multi-party consensus.
	ConsensusThreshold = 4
	// MinOracleResponses is the number of matching oracle responses that
	// settles a flight status request.
	MinOracleResponses = 3
	// OracleIndexRange bounds oracle indexes to [0, OracleIndexRange).
	OracleIndexRange = 10
	// OracleIndexCount is the number of indexes given to an oracle.
	OracleIndexCount = 3

	// PayoutNumerator and PayoutDenominator define the insurance payout
	// multiplier (3/2 of the premium).
	PayoutNumerator   = 3
	PayoutDenominator = 2
)

// Flight status codes reported by oracles.
const (
	StatusUnknown        = 0
	StatusOnTime         = 10
	StatusLateAirline    = 20
	StatusLateWeather    = 30
	StatusLateTechnical  = 40
	StatusLateOther      = 50
	statusCodeStep       = 10
	statusCodeUpperBound = StatusLateOther
)

// IsValidStatus checks whether code is one of the known flight status codes.
func IsValidStatus(code int) bool {
	return code >= StatusUnknown && code <= statusCodeUpperBound && code%statusCodeStep == 0
}

// Payout returns the amount credited to an insuree for the given premium.
func Payout(insurance int) int {
	return insurance * PayoutNumerator / PayoutDenominator
}
