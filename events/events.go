/*
Package events decodes and delivers notifications of the FlightSurety
contracts.

Notifications are decoded into the event types of the rpc/suretyapp and
rpc/suretydata packages. Listener receives them from a WebSocket RPC
endpoint and passes them to a Handler, Relay is a Handler publishing events
to Kafka.
*/
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ErrUnknownEvent is returned by Decoder for notifications it can't decode.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a decoded contract notification.
type Event struct {
	// Contract is the address of the emitting contract.
	Contract util.Uint160 `json:"contract"`
	// Container is the hash of the transaction or block.
	Container util.Uint256 `json:"container"`
	// Name is the notification name.
	Name string `json:"name"`
	// Value is a pointer to one of the event types of the rpc packages.
	Value any `json:"value"`
}

// Handler processes decoded events.
type Handler interface {
	Handle(ctx context.Context, ev *Event) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, ev *Event) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, ev *Event) error {
	return f(ctx, ev)
}

type itemDecoder interface {
	FromStackItem(*stackitem.Array) error
}

var appEvents = map[string]func() itemDecoder{
	"OperatingStatusVote": func() itemDecoder { return new(suretyapp.OperatingStatusVoteEvent) },
	"AirlineEndorsed":     func() itemDecoder { return new(suretyapp.AirlineEndorsedEvent) },
	"OracleRegistered":    func() itemDecoder { return new(suretyapp.OracleRegisteredEvent) },
	"OracleRequest":       func() itemDecoder { return new(suretyapp.OracleRequestEvent) },
	"OracleReport":        func() itemDecoder { return new(suretyapp.OracleReportEvent) },
	"FlightStatusInfo":    func() itemDecoder { return new(suretyapp.FlightStatusInfoEvent) },
}

var dataEvents = map[string]func() itemDecoder{
	"OperatingStatusChanged": func() itemDecoder { return new(suretydata.OperatingStatusChangedEvent) },
	"CallerAuthorized":       func() itemDecoder { return new(suretydata.CallerAuthorizedEvent) },
	"CallerDeauthorized":     func() itemDecoder { return new(suretydata.CallerDeauthorizedEvent) },
	"AirlineRegistered":      func() itemDecoder { return new(suretydata.AirlineRegisteredEvent) },
	"AirlineFunded":          func() itemDecoder { return new(suretydata.AirlineFundedEvent) },
	"FlightRegistered":       func() itemDecoder { return new(suretydata.FlightRegisteredEvent) },
	"FlightStatusUpdated":    func() itemDecoder { return new(suretydata.FlightStatusUpdatedEvent) },
	"TicketPurchased":        func() itemDecoder { return new(suretydata.TicketPurchasedEvent) },
	"InsureeCredited":        func() itemDecoder { return new(suretydata.InsureeCreditedEvent) },
	"AmountClaimed":          func() itemDecoder { return new(suretydata.AmountClaimedEvent) },
}

// Decoder decodes notifications of the App and Data contracts.
type Decoder struct {
	App  util.Uint160
	Data util.Uint160
}

// Decode converts the notification to Event. ErrUnknownEvent is returned for
// notifications of other contracts and for unknown names.
func (d Decoder) Decode(n *state.ContainedNotificationEvent) (*Event, error) {
	var known map[string]func() itemDecoder

	switch {
	case n.ScriptHash.Equals(d.App):
		known = appEvents
	case n.ScriptHash.Equals(d.Data):
		known = dataEvents
	default:
		return nil, fmt.Errorf("%w: contract %s", ErrUnknownEvent, n.ScriptHash.StringLE())
	}

	newValue, ok := known[n.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, n.Name)
	}

	v := newValue()
	err := v.FromStackItem(n.Item)
	if err != nil {
		return nil, fmt.Errorf("decode %s event: %w", n.Name, err)
	}

	return &Event{
		Contract:  n.ScriptHash,
		Container: n.Container,
		Name:      n.Name,
		Value:     v,
	}, nil
}

// DecodeAll decodes all known events of the execution. Unknown notifications
// are skipped.
func (d Decoder) DecodeAll(res *state.AppExecResult) ([]*Event, error) {
	var evs []*Event
	for i := range res.Events {
		ev, err := d.Decode(&state.ContainedNotificationEvent{
			Container:         res.Container,
			NotificationEvent: res.Events[i],
		})
		if errors.Is(err, ErrUnknownEvent) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("event #%d: %w", i, err)
		}
		evs = append(evs, ev)
	}
	return evs, nil
}
