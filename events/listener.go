package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// ErrConnectionLost is returned by Listener when the notification stream is
// closed by the RPC client.
var ErrConnectionLost = errors.New("notification stream closed")

// Subscriber opens notification streams, rpcclient.WSClient implements it.
type Subscriber interface {
	ReceiveExecutionNotifications(flt *neorpc.NotificationFilter, rcvr chan<- *state.ContainedNotificationEvent) (string, error)
	Unsubscribe(id string) error
}

// DefaultQueueSize is the default number of decoded events waiting for the
// handler.
const DefaultQueueSize = 1024

// ListenerPrm groups Listener parameters.
type ListenerPrm struct {
	Logger     *zap.Logger
	Subscriber Subscriber
	Decoder    Decoder
	Handler    Handler

	// QueueSize limits events waiting for the handler, DefaultQueueSize if
	// not positive. Events received while the queue is full are dropped.
	QueueSize int
}

// Listener passes decoded notifications of the App and Data contracts to the
// handler. Handler is called from a single goroutine, so slow handlers never
// block the notification stream.
type Listener struct {
	log       *zap.Logger
	sub       Subscriber
	decoder   Decoder
	handler   Handler
	queueSize int
}

// NewListener returns a Listener with the given parameters.
func NewListener(prm ListenerPrm) (*Listener, error) {
	if prm.Subscriber == nil {
		return nil, errors.New("missing subscriber")
	}
	if prm.Handler == nil {
		return nil, errors.New("missing handler")
	}

	log := prm.Logger
	if log == nil {
		log = zap.NewNop()
	}

	queueSize := prm.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Listener{
		log:       log,
		sub:       prm.Subscriber,
		decoder:   prm.Decoder,
		handler:   prm.Handler,
		queueSize: queueSize,
	}, nil
}

// Run subscribes to notifications and blocks until the context is done or the
// stream is closed. Handler errors are logged and do not stop the listener.
func (l *Listener) Run(ctx context.Context) error {
	ch := make(chan *state.ContainedNotificationEvent, 64)

	var ids []string
	defer func() {
		for _, id := range ids {
			if err := l.sub.Unsubscribe(id); err != nil {
				l.log.Debug("failed to unsubscribe", zap.String("id", id), zap.Error(err))
			}
		}
	}()

	for _, h := range []util.Uint160{l.decoder.App, l.decoder.Data} {
		contract := h
		id, err := l.sub.ReceiveExecutionNotifications(&neorpc.NotificationFilter{Contract: &contract}, ch)
		if err != nil {
			return fmt.Errorf("subscribe to notifications of %s: %w", h.StringLE(), err)
		}
		ids = append(ids, id)
	}

	l.log.Info("listening for contract notifications",
		zap.Stringer("app", l.decoder.App), zap.Stringer("data", l.decoder.Data))

	queue := make(chan *Event, l.queueSize)
	handled := make(chan struct{})
	go func() {
		defer close(handled)
		for ev := range queue {
			l.handle(ctx, ev)
		}
	}()
	defer func() {
		close(queue)
		<-handled
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-ch:
			if !ok {
				return ErrConnectionLost
			}

			ev, err := l.decoder.Decode(n)
			if err != nil {
				l.log.Warn("skip notification", zap.String("name", n.Name), zap.Error(err))
				continue
			}

			l.log.Debug("notification received",
				zap.String("name", ev.Name), zap.Stringer("container", ev.Container))

			select {
			case queue <- ev:
			default:
				l.log.Warn("handler queue is full, event dropped",
					zap.String("name", ev.Name), zap.Stringer("container", ev.Container))
			}
		}
	}
}

func (l *Listener) handle(ctx context.Context, ev *Event) {
	if ctx.Err() != nil {
		return
	}

	err := l.handler.Handle(ctx, ev)
	if err != nil {
		l.log.Error("failed to handle event",
			zap.String("name", ev.Name), zap.Stringer("container", ev.Container), zap.Error(err))
	}
}
