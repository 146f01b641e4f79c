package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer writes messages to a Kafka topic, *kafka.Writer implements it.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter returns a synchronous writer to the topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// Relay is a Handler publishing events to Kafka. Messages are keyed by the
// emitting contract and the event name, so events of one kind stay ordered.
type Relay struct {
	log    *zap.Logger
	writer Writer
}

// NewRelay returns a Relay over the writer.
func NewRelay(log *zap.Logger, w Writer) (*Relay, error) {
	if w == nil {
		return nil, errors.New("missing writer")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Relay{log: log, writer: w}, nil
}

// Handle implements Handler.
func (r *Relay) Handle(ctx context.Context, ev *Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Contract.StringLE() + "." + ev.Name),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(ev.Name)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write event to Kafka: %w", err)
	}

	r.log.Debug("event published", zap.String("name", ev.Name), zap.Stringer("container", ev.Container))
	return nil
}

// Close closes the underlying writer.
func (r *Relay) Close() error {
	return r.writer.Close()
}
