/*
Package suretyapp implements FlightSurety App contract.

App contract holds the business rules of FlightSurety and keeps no registry
data itself: airlines, flights, tickets and funds are stored in Data contract,
which must authorize App contract as a caller.

Admission of airlines and changes of the operational flag go through
multi-party consensus once common.ConsensusThreshold airlines are registered:
every funded airline votes once per decision and the decision is applied when
at least a half of funded airlines voted. Below the threshold any funded
airline admits new airlines and only the owner switches the operational flag.

App contract also manages flight status oracles. An oracle pays a
registration fee and gets three random indexes. A status request is published
with a random index and only oracles holding that index may answer it. When
common.MinOracleResponses oracles agree, the status is accepted.

# Contract notifications

OperatingStatusVote notification. This notification is produced when a funded
airline votes for the operational flag.

	OperatingStatusVote:
	  - name: mode
	    type: Boolean
	  - name: voter
	    type: Hash160
	  - name: votes
	    type: Integer

AirlineEndorsed notification. This notification is produced when a funded
airline endorses a new one.

	AirlineEndorsed:
	  - name: airline
	    type: Hash160
	  - name: endorser
	    type: Hash160
	  - name: votes
	    type: Integer

OracleRegistered notification.

	OracleRegistered:
	  - name: oracle
	    type: Hash160
	  - name: indexes
	    type: Array

OracleRequest notification. Oracles holding the index are expected to
answer with SubmitOracleResponse.

	OracleRequest:
	  - name: index
	    type: Integer
	  - name: key
	    type: Hash256
	  - name: code
	    type: String
	  - name: destination
	    type: String
	  - name: landing
	    type: Integer

OracleReport notification. This notification is produced for every accepted
oracle response.

	OracleReport:
	  - name: key
	    type: Hash256
	  - name: code
	    type: String
	  - name: destination
	    type: String
	  - name: landing
	    type: Integer
	  - name: status
	    type: Integer

FlightStatusInfo notification. This notification is produced when the flight
status is accepted.

	FlightStatusInfo:
	  - name: key
	    type: Hash256
	  - name: code
	    type: String
	  - name: destination
	    type: String
	  - name: landing
	    type: Integer
	  - name: status
	    type: Integer
*/
package suretyapp

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'O' -> interop.Hash160
    contract owner
  - 'D' -> interop.Hash160
    Data contract address
  - 'v' + "airline" + interop.Hash160 -> std.Serialize(common.Ballot)
    endorsements of an airline waiting for admission
  - 'v' + "operational+" | "operational-" -> std.Serialize(common.Ballot)
    votes for switching the operational flag on or off
  - 'o' + interop.Hash160 -> std.Serialize(Oracle)
    registered oracles
  - 'q' + interop.Hash256 + decimal index -> std.Serialize(ResponseInfo)
    flight status requests
*/
