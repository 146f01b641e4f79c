package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flightsurety/flightsurety-contract/rpc/suretyapp"
	"github.com/flightsurety/flightsurety-contract/rpc/suretydata"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	testApp  = util.Uint160{1}
	testData = util.Uint160{2}
	testTx   = util.Uint256{3}
)

func oracleRequest(index int64, key util.Uint256) *state.ContainedNotificationEvent {
	return &state.ContainedNotificationEvent{
		Container: testTx,
		NotificationEvent: state.NotificationEvent{
			ScriptHash: testApp,
			Name:       "OracleRequest",
			Item: stackitem.NewArray([]stackitem.Item{
				stackitem.Make(index),
				stackitem.NewByteArray(key.BytesBE()),
				stackitem.NewByteArray([]byte("ND1309")),
				stackitem.NewByteArray([]byte("LAX")),
				stackitem.Make(1700005400),
			}),
		},
	}
}

func amountClaimed(acc util.Uint160, amount int64) *state.ContainedNotificationEvent {
	return &state.ContainedNotificationEvent{
		Container: testTx,
		NotificationEvent: state.NotificationEvent{
			ScriptHash: testData,
			Name:       "AmountClaimed",
			Item: stackitem.NewArray([]stackitem.Item{
				stackitem.NewByteArray(acc.BytesBE()),
				stackitem.Make(amount),
			}),
		},
	}
}

func TestDecoder(t *testing.T) {
	d := Decoder{App: testApp, Data: testData}

	ev, err := d.Decode(oracleRequest(7, util.Uint256{9}))
	require.NoError(t, err)
	require.Equal(t, "OracleRequest", ev.Name)
	require.Equal(t, testApp, ev.Contract)
	require.Equal(t, testTx, ev.Container)

	req, ok := ev.Value.(*suretyapp.OracleRequestEvent)
	require.True(t, ok)
	require.EqualValues(t, 7, req.Index.Int64())
	require.Equal(t, util.Uint256{9}, req.Key)
	require.Equal(t, "LAX", req.Destination)

	ev, err = d.Decode(amountClaimed(util.Uint160{5}, 150))
	require.NoError(t, err)
	claimed, ok := ev.Value.(*suretydata.AmountClaimedEvent)
	require.True(t, ok)
	require.EqualValues(t, 150, claimed.Amount.Int64())

	t.Run("unknown", func(t *testing.T) {
		n := oracleRequest(1, util.Uint256{})
		n.ScriptHash = util.Uint160{42}
		_, err := d.Decode(n)
		require.ErrorIs(t, err, ErrUnknownEvent)

		n = amountClaimed(util.Uint160{}, 1)
		n.Name = "Transfer"
		_, err = d.Decode(n)
		require.ErrorIs(t, err, ErrUnknownEvent)

		// same name emitted by the other contract
		n = oracleRequest(1, util.Uint256{})
		n.ScriptHash = testData
		_, err = d.Decode(n)
		require.ErrorIs(t, err, ErrUnknownEvent)
	})
	t.Run("malformed", func(t *testing.T) {
		n := amountClaimed(util.Uint160{}, 1)
		n.Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
		_, err := d.Decode(n)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrUnknownEvent)
	})
}

func TestDecoder_DecodeAll(t *testing.T) {
	d := Decoder{App: testApp, Data: testData}
	transfer := amountClaimed(util.Uint160{}, 1).NotificationEvent
	transfer.ScriptHash = util.Uint160{0xcf}
	transfer.Name = "Transfer"

	evs, err := d.DecodeAll(&state.AppExecResult{
		Container: testTx,
		Execution: state.Execution{
			Events: []state.NotificationEvent{
				transfer,
				oracleRequest(1, util.Uint256{}).NotificationEvent,
				amountClaimed(util.Uint160{1}, 2).NotificationEvent,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, evs, 2)
	require.Equal(t, "OracleRequest", evs[0].Name)
	require.Equal(t, "AmountClaimed", evs[1].Name)
}

type testSubscriber struct {
	mtx          sync.Mutex
	filters      []util.Uint160
	rcvr         chan<- *state.ContainedNotificationEvent
	unsubscribed []string
	err          error
}

func (s *testSubscriber) ReceiveExecutionNotifications(flt *neorpc.NotificationFilter, rcvr chan<- *state.ContainedNotificationEvent) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.filters = append(s.filters, *flt.Contract)
	s.rcvr = rcvr
	return string(rune('0' + len(s.filters))), nil
}

func (s *testSubscriber) Unsubscribe(id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.unsubscribed = append(s.unsubscribed, id)
	return nil
}

func (s *testSubscriber) receiver() chan<- *state.ContainedNotificationEvent {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.rcvr
}

func TestListener(t *testing.T) {
	_, err := NewListener(ListenerPrm{Handler: HandlerFunc(func(context.Context, *Event) error { return nil })})
	require.Error(t, err)
	_, err = NewListener(ListenerPrm{Subscriber: new(testSubscriber)})
	require.Error(t, err)

	t.Run("subscription failure", func(t *testing.T) {
		sub := &testSubscriber{err: errors.New("no websocket")}
		l, err := NewListener(ListenerPrm{
			Subscriber: sub,
			Handler:    HandlerFunc(func(context.Context, *Event) error { return nil }),
		})
		require.NoError(t, err)
		require.Error(t, l.Run(context.Background()))
	})

	sub := new(testSubscriber)
	received := make(chan *Event, 4)
	l, err := NewListener(ListenerPrm{
		Logger:     zaptest.NewLogger(t),
		Subscriber: sub,
		Decoder:    Decoder{App: testApp, Data: testData},
		Handler: HandlerFunc(func(_ context.Context, ev *Event) error {
			received <- ev
			if ev.Name == "AmountClaimed" {
				return errors.New("handler failure")
			}
			return nil
		}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool { return sub.receiver() != nil }, time.Second, 10*time.Millisecond)
	rcvr := sub.receiver()

	unknown := oracleRequest(1, util.Uint256{})
	unknown.Name = "Unknown"
	rcvr <- unknown
	rcvr <- amountClaimed(util.Uint160{1}, 1)
	rcvr <- oracleRequest(2, util.Uint256{})

	require.Equal(t, "AmountClaimed", (<-received).Name)
	require.Equal(t, "OracleRequest", (<-received).Name)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	require.Equal(t, []util.Uint160{testApp, testData}, sub.filters)
	require.Equal(t, []string{"1", "2"}, sub.unsubscribed)

	t.Run("stream closed", func(t *testing.T) {
		sub := new(testSubscriber)
		l, err := NewListener(ListenerPrm{
			Subscriber: sub,
			Handler:    HandlerFunc(func(context.Context, *Event) error { return nil }),
		})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() { done <- l.Run(context.Background()) }()

		require.Eventually(t, func() bool { return sub.receiver() != nil }, time.Second, 10*time.Millisecond)
		close(sub.receiver())
		require.ErrorIs(t, <-done, ErrConnectionLost)
	})
}

func TestListener_SlowHandler(t *testing.T) {
	const queueSize = 4

	sub := new(testSubscriber)
	release := make(chan struct{})
	var handled atomic.Int32
	l, err := NewListener(ListenerPrm{
		Logger:     zaptest.NewLogger(t),
		Subscriber: sub,
		Decoder:    Decoder{App: testApp, Data: testData},
		QueueSize:  queueSize,
		Handler: HandlerFunc(func(ctx context.Context, _ *Event) error {
			select {
			case <-release:
			case <-ctx.Done():
			}
			handled.Add(1)
			return nil
		}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool { return sub.receiver() != nil }, time.Second, 10*time.Millisecond)
	rcvr := sub.receiver()

	// Far more notifications than the stream buffer holds arrive while the
	// handler is blocked.
	const total = 200
	sent := make(chan struct{})
	go func() {
		for i := 0; i < total; i++ {
			rcvr <- oracleRequest(int64(i%10), util.Uint256{})
		}
		close(sent)
	}()

	select {
	case <-sent:
	case <-time.After(5 * time.Second):
		t.Fatal("notification stream is blocked by the handler")
	}

	close(release)
	require.Eventually(t, func() bool { return handled.Load() >= queueSize }, time.Second, 10*time.Millisecond)
	require.LessOrEqual(t, handled.Load(), int32(queueSize+1))

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

type testWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *testWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *testWriter) Close() error {
	w.closed = true
	return nil
}

func TestRelay(t *testing.T) {
	_, err := NewRelay(nil, nil)
	require.Error(t, err)

	w := new(testWriter)
	r, err := NewRelay(zaptest.NewLogger(t), w)
	require.NoError(t, err)

	ev, err := Decoder{App: testApp, Data: testData}.Decode(amountClaimed(util.Uint160{5}, 150))
	require.NoError(t, err)

	require.NoError(t, r.Handle(context.Background(), ev))
	require.Len(t, w.msgs, 1)
	require.Equal(t, testData.StringLE()+".AmountClaimed", string(w.msgs[0].Key))
	require.Equal(t, "event", w.msgs[0].Headers[0].Key)

	var decoded struct {
		Contract string `json:"contract"`
		Name     string `json:"name"`
		Value    struct {
			Account string `json:"Account"`
			Amount  int64  `json:"Amount"`
		} `json:"value"`
	}
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	require.Equal(t, "AmountClaimed", decoded.Name)
	require.Equal(t, "0x"+testData.StringLE(), decoded.Contract)
	require.EqualValues(t, 150, decoded.Value.Amount)

	w.err = errors.New("broker is down")
	require.Error(t, r.Handle(context.Background(), ev))

	require.NoError(t, r.Close())
	require.True(t, w.closed)

	kw := NewKafkaWriter([]string{"localhost:9092"}, "topic")
	require.Equal(t, "topic", kw.Topic)
}
