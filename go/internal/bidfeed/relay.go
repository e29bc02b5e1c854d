package bidfeed

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// NotifyChannel is the Postgres channel the bids insert trigger notifies on.
const NotifyChannel = "bid_events"

type RelayConfig struct {
	FallbackInterval time.Duration // How often to scan for bids whose notification was missed
	PingInterval     time.Duration
	BatchSize        int
	MaxRetries       int
	RetryDelay       time.Duration
}

func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		FallbackInterval: 30 * time.Second,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
	}
}

// Store is the relay's view of the bid outbox.
type Store interface {
	// FetchUnsentBids returns committed bids not yet marked sent, lowest seq first.
	FetchUnsentBids(ctx context.Context, limit int) ([]BidPlacedEvent, error)
	MarkBidSent(ctx context.Context, bidID uuid.UUID) error
	CountUnsentBids(ctx context.Context) (int64, error)
}

// Publisher delivers one bid event.
type Publisher interface {
	Publish(ctx context.Context, event BidPlacedEvent) error
}

// Notifier wakes the relay when bids are inserted. *pq.Listener satisfies it.
type Notifier interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// NewPQListener listens on the bid notification channel.
func NewPQListener(databaseURL string) (*pq.Listener, error) {
	l := pq.NewListener(
		databaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(NotifyChannel); err != nil {
		l.Close()
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().Str("channel", NotifyChannel).Msg("listening for notifications")
	return l, nil
}

// Relay publishes every stored bid, marking each one sent after JetStream accepts it.
// Bids on one player commit in seq order, so they go out in seq order; bids on different
// players can commit out of seq order and are sent as they become visible. A bid that was
// published but not marked is sent again and dropped by the stream's Nats-Msg-Id
// deduplication. Notifications only wake the relay; the outbox scan decides what to send,
// so a lost notification is picked up by the next notification or fallback tick.
type Relay struct {
	store     Store
	publisher Publisher
	notifier  Notifier
	clock     clockwork.Clock
	metrics   MetricsCollector
	cfg       RelayConfig

	published     atomic.Uint64
	lastPublished atomic.Int64
}

type RelayOption func(*Relay)

func WithRelayClock(c clockwork.Clock) RelayOption {
	return func(r *Relay) { r.clock = c }
}

func WithRelayMetrics(m MetricsCollector) RelayOption {
	return func(r *Relay) { r.metrics = m }
}

func NewRelay(store Store, publisher Publisher, notifier Notifier, cfg RelayConfig, opts ...RelayOption) *Relay {
	r := &Relay{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		clock:     clockwork.NewRealClock(),
		metrics:   NoOpMetricsCollector{},
		cfg:       cfg,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start runs until ctx is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	log.Info().
		Dur("ping_interval", r.cfg.PingInterval).
		Dur("fallback_interval", r.cfg.FallbackInterval).
		Msg("bid feed relay started")

	pingTicker := r.clock.NewTicker(r.cfg.PingInterval)
	fallbackTicker := r.clock.NewTicker(r.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	if err := r.drain(ctx); err != nil {
		log.Error().Err(err).Msg("initial drain failed")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("bid feed relay shutting down")
			return r.notifier.Close()
		case note := <-r.notifier.NotificationChannel():
			if note == nil {
				// connection was re-established; anything missed is still unsent
				log.Warn().Msg("listener reconnected")
			}
			if err := r.drain(ctx); err != nil {
				log.Error().Err(err).Msg("failed to relay bids after notification")
			}
		case <-fallbackTicker.Chan():
			if err := r.drain(ctx); err != nil {
				log.Error().Err(err).Msg("failed to relay bids on fallback scan")
			}
		case <-pingTicker.Chan():
			if err := r.notifier.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

// drain publishes everything unsent. It stops at the first bid that cannot be published
// so later bids on the same player never overtake it.
func (r *Relay) drain(ctx context.Context) error {
	for {
		events, err := r.store.FetchUnsentBids(ctx, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.publishWithRetry(ctx, event); err != nil {
				r.recordLag(ctx)
				return fmt.Errorf("failed to publish bid %s: %w", event.EventID, err)
			}
			if err := r.store.MarkBidSent(ctx, event.EventID); err != nil {
				return err
			}
			r.published.Add(1)
			r.lastPublished.Store(r.clock.Now().UnixNano())
			r.metrics.RecordPublished()
		}

		if len(events) < r.cfg.BatchSize {
			r.recordLag(ctx)
			return nil
		}
	}
}

func (r *Relay) recordLag(ctx context.Context) {
	unsent, err := r.store.CountUnsentBids(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to measure relay lag")
		return
	}
	r.metrics.RecordLag(unsent)
}

// publishWithRetry backs off linearly between attempts.
func (r *Relay) publishWithRetry(ctx context.Context, event BidPlacedEvent) error {
	var lastErr error

	for attempt := 0; attempt <= r.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-r.clock.After(r.cfg.RetryDelay * time.Duration(attempt)):
			}
		}

		if err := r.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			r.metrics.RecordPublishAttempt(false)
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("bid_id", event.EventID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		r.metrics.RecordPublishAttempt(true)
		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("bid_id", event.EventID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", r.cfg.MaxRetries+1, lastErr)
}

// Stats reports how many bids this relay has published and when it last did.
func (r *Relay) Stats() (uint64, time.Time) {
	last := r.lastPublished.Load()
	if last == 0 {
		return r.published.Load(), time.Time{}
	}
	return r.published.Load(), time.Unix(0, last).UTC()
}
