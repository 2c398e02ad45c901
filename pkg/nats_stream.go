package pkg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/appetiteclub/apt/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// MenuStreamName is the JetStream stream holding menu change events.
	MenuStreamName = "MENU_EVENTS"
	// DefaultMenuStreamMaxAge bounds how long menu events are retained.
	DefaultMenuStreamMaxAge = 24 * time.Hour
)

// NATSStream publishes to and consumes from a JetStream stream.
type NATSStream struct {
	conn     *nats.Conn
	js       jetstream.JetStream
	stream   jetstream.Stream
	consumer jetstream.Consumer
	consCtx  jetstream.ConsumeContext
	topic    string
}

// NATSStreamConfig configures a NATSStream instance.
type NATSStreamConfig struct {
	URL          string        // NATS server URL
	StreamName   string        // JetStream stream name, e.g. MENU_EVENTS
	Topic        string        // Subject bound to the stream, e.g. menu.items
	ConsumerName string        // Durable consumer; empty for publish-only use
	MaxAge       time.Duration // Retention window
	MaxMsgs      int64         // 0 means unlimited
}

// NewNATSStream connects and ensures the stream (and consumer, when named) exist.
func NewNATSStream(cfg NATSStreamConfig) (*NATSStream, error) {
	if cfg.StreamName == "" || cfg.Topic == "" {
		return nil, errors.New("stream name and topic are required")
	}

	conn, err := nats.Connect(cfg.URL, nats.Name("chefsmenu-stream"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMenuStreamMaxAge
	}

	streamConfig := jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Topic},
		MaxAge:   maxAge,
	}
	if cfg.MaxMsgs > 0 {
		streamConfig.MaxMsgs = cfg.MaxMsgs
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := js.CreateOrUpdateStream(ctx, streamConfig)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create/update stream %s: %w", cfg.StreamName, err)
	}

	s := &NATSStream{
		conn:   conn,
		js:     js,
		stream: stream,
		topic:  cfg.Topic,
	}

	if cfg.ConsumerName == "" {
		return s, nil
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Name:          cfg.ConsumerName,
		Durable:       cfg.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		FilterSubject: cfg.Topic,
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create/update consumer %s: %w", cfg.ConsumerName, err)
	}
	s.consumer = consumer

	return s, nil
}

func (s *NATSStream) Publish(ctx context.Context, topic string, msg []byte) error {
	if _, err := s.js.Publish(ctx, topic, msg); err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}
	return nil
}

// Subscribe consumes the stream through the durable consumer. The topic
// argument is ignored: the consumer is already bound to its subject.
func (s *NATSStream) Subscribe(ctx context.Context, topic string, handler events.HandlerFunc) error {
	if s.consumer == nil {
		return errors.New("stream has no consumer configured")
	}
	consCtx, err := s.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(ctx, msg.Data()); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	})
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}
	s.consCtx = consCtx
	return nil
}

func (s *NATSStream) Close() error {
	if s.consCtx != nil {
		s.consCtx.Stop()
	}
	s.conn.Close()
	return nil
}
