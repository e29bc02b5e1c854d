package bidfeed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory outbox. Bids added uncommitted stay invisible to the relay
// until commit, the way a row is invisible until its inserting transaction commits.
type memoryStore struct {
	mu   sync.Mutex
	bids []outboxBid
}

type outboxBid struct {
	event     BidPlacedEvent
	committed bool
	sent      bool
}

func newMemoryStore(n int) *memoryStore {
	s := &memoryStore{}
	for i := 0; i < n; i++ {
		s.add()
	}
	return s
}

func (s *memoryStore) add() BidPlacedEvent {
	ev := s.addUncommitted()
	s.commit(ev.Seq)
	return ev
}

func (s *memoryStore) addUncommitted() BidPlacedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev := BidPlacedEvent{
		EventID:       uuid.New(),
		EventType:     EventTypeBidPlaced,
		Seq:           int64(len(s.bids) + 1),
		PlayerID:      uuid.New(),
		AmountPerYear: decimal.NewFromInt(1000),
		Years:         1,
		TotalValue:    decimal.NewFromInt(1000),
	}
	s.bids = append(s.bids, outboxBid{event: ev})
	return ev
}

func (s *memoryStore) commit(seq int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bids[seq-1].committed = true
}

func (s *memoryStore) unsent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bids {
		if !b.sent {
			n++
		}
	}
	return n
}

func (s *memoryStore) FetchUnsentBids(_ context.Context, limit int) ([]BidPlacedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []BidPlacedEvent
	for _, b := range s.bids {
		if b.committed && !b.sent && len(out) < limit {
			out = append(out, b.event)
		}
	}
	return out, nil
}

func (s *memoryStore) MarkBidSent(_ context.Context, bidID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bids {
		if s.bids[i].event.EventID == bidID {
			s.bids[i].sent = true
		}
	}
	return nil
}

func (s *memoryStore) CountUnsentBids(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.bids {
		if b.committed && !b.sent {
			n++
		}
	}
	return n, nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	sent     []int64
	failNext int
	failSeq  int64
}

func (p *recordingPublisher) Publish(_ context.Context, ev BidPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failSeq != 0 && ev.Seq == p.failSeq {
		return errors.New("stream unavailable")
	}
	if p.failNext > 0 {
		p.failNext--
		return errors.New("nats: timeout")
	}
	p.sent = append(p.sent, ev.Seq)
	return nil
}

func (p *recordingPublisher) seqs() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.sent...)
}

type chanNotifier struct {
	ch     chan *pq.Notification
	closed bool
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{ch: make(chan *pq.Notification, 8)}
}

func (n *chanNotifier) NotificationChannel() <-chan *pq.Notification { return n.ch }
func (n *chanNotifier) Ping() error                                   { return nil }
func (n *chanNotifier) Close() error {
	n.closed = true
	return nil
}

func testConfig() RelayConfig {
	cfg := DefaultRelayConfig()
	cfg.BatchSize = 2
	cfg.MaxRetries = 2
	cfg.RetryDelay = time.Millisecond
	return cfg
}

func TestRelay_DrainPublishesInOrderAcrossBatches(t *testing.T) {
	store := newMemoryStore(5)
	pub := &recordingPublisher{}
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	relay := NewRelay(store, pub, newChanNotifier(), testConfig(), WithRelayMetrics(metrics))
	ctx := context.Background()

	require.NoError(t, relay.drain(ctx))

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, pub.seqs())
	assert.Zero(t, store.unsent())
	assert.Equal(t, 5.0, testutil.ToFloat64(metrics.published))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.lag))

	// nothing new: a second drain publishes nothing
	require.NoError(t, relay.drain(ctx))
	assert.Len(t, pub.seqs(), 5)

	published, last := relay.Stats()
	assert.Equal(t, uint64(5), published)
	assert.False(t, last.IsZero())
}

func TestRelay_RetriesTransientFailures(t *testing.T) {
	store := newMemoryStore(1)
	pub := &recordingPublisher{failNext: 2}
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	relay := NewRelay(store, pub, newChanNotifier(), testConfig(), WithRelayMetrics(metrics))

	require.NoError(t, relay.drain(context.Background()))
	assert.Equal(t, []int64{1}, pub.seqs())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.attempts.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.attempts.WithLabelValues("success")))
}

func TestRelay_StopsAtFailingBidAndKeepsItUnsent(t *testing.T) {
	store := newMemoryStore(4)
	pub := &recordingPublisher{failSeq: 3}
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	relay := NewRelay(store, pub, newChanNotifier(), testConfig(), WithRelayMetrics(metrics))
	ctx := context.Background()

	err := relay.drain(ctx)
	require.Error(t, err)
	assert.Equal(t, []int64{1, 2}, pub.seqs())
	assert.Equal(t, 2, store.unsent())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.lag))

	pub.mu.Lock()
	pub.failSeq = 0
	pub.mu.Unlock()
	require.NoError(t, relay.drain(ctx))
	assert.Equal(t, []int64{1, 2, 3, 4}, pub.seqs())
}

func TestRelay_StartWakesOnNotification(t *testing.T) {
	store := newMemoryStore(1)
	pub := &recordingPublisher{}
	notifier := newChanNotifier()
	cfg := testConfig()
	cfg.FallbackInterval = time.Hour
	relay := NewRelay(store, pub, notifier, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay.Start(ctx) }()

	assert.Eventually(t, func() bool { return len(pub.seqs()) == 1 }, time.Second, 5*time.Millisecond)

	store.add()
	notifier.ch <- &pq.Notification{Channel: NotifyChannel, Extra: "2"}
	assert.Eventually(t, func() bool { return len(pub.seqs()) == 2 }, time.Second, 5*time.Millisecond)

	// a reconnect delivers nil and still triggers a scan
	store.add()
	notifier.ch <- nil
	assert.Eventually(t, func() bool { return len(pub.seqs()) == 3 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.True(t, notifier.closed)
}

func TestRelay_FallbackScanCatchesMissedNotifications(t *testing.T) {
	store := newMemoryStore(0)
	pub := &recordingPublisher{}
	clock := clockwork.NewFakeClock()
	cfg := testConfig()
	cfg.FallbackInterval = 30 * time.Second
	cfg.PingInterval = time.Hour
	relay := NewRelay(store, pub, newChanNotifier(), cfg, WithRelayClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = relay.Start(ctx) }()

	require.NoError(t, clock.BlockUntilContext(ctx, 2))
	store.add()
	clock.Advance(30 * time.Second)

	assert.Eventually(t, func() bool { return len(pub.seqs()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestRelay_PublishesBidCommittedAfterLaterSeq(t *testing.T) {
	store := newMemoryStore(0)
	pub := &recordingPublisher{}
	relay := NewRelay(store, pub, newChanNotifier(), testConfig())
	ctx := context.Background()

	// seq 1 is inserted first but its transaction commits after seq 2's
	early := store.addUncommitted()
	store.add()

	require.NoError(t, relay.drain(ctx))
	assert.Equal(t, []int64{2}, pub.seqs())

	store.commit(early.Seq)
	require.NoError(t, relay.drain(ctx))
	assert.Equal(t, []int64{2, 1}, pub.seqs())
	assert.Zero(t, store.unsent())

	require.NoError(t, relay.drain(ctx))
	assert.Len(t, pub.seqs(), 2, "each bid is published once")
}
