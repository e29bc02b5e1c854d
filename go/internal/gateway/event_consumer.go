package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mcdev12/faauction/go/internal/bidfeed"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// errMalformedEvent marks messages that can never be processed; they are terminated
// instead of redelivered.
var errMalformedEvent = errors.New("malformed bid event")

type JetStreamConsumerConfig struct {
	Stream        bidfeed.JetStreamConfig
	ConsumerName  string
	SubjectFilter string // e.g., "auction.bids.>"
	MaxDeliver    int
	AckWait       time.Duration
	MaxAckPending int
}

func DefaultJetStreamConsumerConfig() JetStreamConsumerConfig {
	stream := bidfeed.DefaultJetStreamConfig()
	return JetStreamConsumerConfig{
		Stream:        stream,
		ConsumerName:  "auction-gateway",
		SubjectFilter: stream.SubjectPrefix + ".>",
		MaxDeliver:    5,
		AckWait:       30 * time.Second,
		MaxAckPending: 100,
	}
}

// Broadcaster receives decoded bid events. *ConnectionManager satisfies it.
type Broadcaster interface {
	BroadcastBid(event bidfeed.BidPlacedEvent)
}

// EventConsumer reads bid events from JetStream and hands them to the connection manager.
type EventConsumer struct {
	broadcaster Broadcaster
	nc          *nats.Conn
	consumer    jetstream.Consumer
	config      JetStreamConsumerConfig
}

func NewEventConsumer(ctx context.Context, b Broadcaster, config JetStreamConsumerConfig) (*EventConsumer, error) {
	nc, err := bidfeed.Connect(config.Stream)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	// The gateway may start before the relay has created the stream.
	if err := bidfeed.EnsureStream(ctx, js, config.Stream); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	consumer, err := js.CreateOrUpdateConsumer(ctx, config.Stream.StreamName, jetstream.ConsumerConfig{
		Name:          config.ConsumerName,
		Durable:       config.ConsumerName,
		Description:   "Auction gateway websocket consumer",
		FilterSubject: config.SubjectFilter,
		DeliverPolicy: jetstream.DeliverNewPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		MaxDeliver:    config.MaxDeliver,
		AckWait:       config.AckWait,
		MaxAckPending: config.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create consumer: %w", err)
	}

	log.Info().
		Str("consumer", config.ConsumerName).
		Str("stream", config.Stream.StreamName).
		Msg("JetStream consumer ready")

	return &EventConsumer{
		broadcaster: b,
		nc:          nc,
		consumer:    consumer,
		config:      config,
	}, nil
}

// Start consumes until ctx is done.
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("consumer", ec.config.ConsumerName).
		Str("stream", ec.config.Stream.StreamName).
		Msg("starting JetStream event consumer")

	messageCh := make(chan jetstream.Msg, 100)
	consumeCtx, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		select {
		case messageCh <- msg:
		case <-ctx.Done():
			msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	defer consumeCtx.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("event consumer shutting down")
			return nil
		case msg := <-messageCh:
			ec.settle(msg, ec.handle(msg.Data()))
		}
	}
}

func (ec *EventConsumer) settle(msg jetstream.Msg, err error) {
	switch {
	case err == nil:
		if ackErr := msg.Ack(); ackErr != nil {
			log.Error().Err(ackErr).Msg("failed to ACK message")
		}
	case errors.Is(err, errMalformedEvent):
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping malformed message")
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to TERM message")
		}
	default:
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("failed to process message")
		if nakErr := msg.Nak(); nakErr != nil {
			log.Error().Err(nakErr).Msg("failed to NAK message")
		}
	}
}

func (ec *EventConsumer) handle(data []byte) error {
	var event bidfeed.BidPlacedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if event.EventType != bidfeed.EventTypeBidPlaced {
		return fmt.Errorf("%w: unknown event type %q", errMalformedEvent, event.EventType)
	}

	ec.broadcaster.BroadcastBid(event)

	log.Debug().
		Str("bid_id", event.EventID.String()).
		Str("player_id", event.PlayerID.String()).
		Int64("seq", event.Seq).
		Msg("bid event broadcasted")
	return nil
}

func (ec *EventConsumer) Stop() error {
	log.Info().Msg("stopping event consumer")
	if ec.nc != nil {
		ec.nc.Close()
	}
	return nil
}
