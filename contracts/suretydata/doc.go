/*
Package suretydata implements FlightSurety Data contract.

Data contract is the system of record of FlightSurety: it keeps the registry
of airlines, registered flights, purchased tickets with insurances, credit
balances and all the GAS paid by airlines and passengers. It does not decide
anything on its own. Business rules and multi-party consensus live in App
contract, which is the only authorized caller of state-changing methods in a
regular setup. The contract owner can invoke them directly too.

All state-changing methods except SetOperatingStatus fail while the contract
is not operational.

# Contract notifications

OperatingStatusChanged notification. This notification is produced when the
operational flag is set.

	OperatingStatusChanged:
	  - name: mode
	    type: Boolean

CallerAuthorized and CallerDeauthorized notifications. These notifications are
produced when the owner changes the list of authorized contracts.

	CallerAuthorized:
	  - name: caller
	    type: Hash160
	CallerDeauthorized:
	  - name: caller
	    type: Hash160

AirlineRegistered notification. This notification is produced when an airline
is admitted to the registry.

	AirlineRegistered:
	  - name: airline
	    type: Hash160
	  - name: endorsements
	    type: Integer

AirlineFunded notification. This notification is produced when an airline
transfers GAS to the contract.

	AirlineFunded:
	  - name: airline
	    type: Hash160
	  - name: amount
	    type: Integer

FlightRegistered notification. This notification is produced when a funded
airline registers a flight. Key is the flight identifier.

	FlightRegistered:
	  - name: key
	    type: Hash256
	  - name: airline
	    type: Hash160
	  - name: code
	    type: String

FlightStatusUpdated notification. This notification is produced when the
status of the flight is resolved by oracles.

	FlightStatusUpdated:
	  - name: key
	    type: Hash256
	  - name: status
	    type: Integer

TicketPurchased notification.

	TicketPurchased:
	  - name: key
	    type: Hash256
	  - name: passenger
	    type: Hash160
	  - name: insurance
	    type: Integer

InsureeCredited notification. This notification is produced for every insured
passenger of a flight delayed because of the airline.

	InsureeCredited:
	  - name: key
	    type: Hash256
	  - name: passenger
	    type: Hash160
	  - name: amount
	    type: Integer

AmountClaimed notification. This notification is produced when credit is
transferred to its owner.

	AmountClaimed:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package suretydata

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'O' -> interop.Hash160
    contract owner
  - 'S' -> bool
    operational flag
  - 'R' -> int
    number of registered airlines
  - 'F' -> int
    number of funded airlines
  - 'c' + interop.Hash160 -> bool
    authorized callers
  - 'a' + interop.Hash160 -> std.Serialize(Airline)
    airline registry
  - 'f' + interop.Hash256 -> std.Serialize(Flight)
    flight registry
  - 't' + interop.Hash256 + interop.Hash160 -> std.Serialize(Ticket)
    tickets of a flight by passenger
  - 'r' + interop.Hash160 -> int
    withdrawable credit of passengers and airlines
*/
