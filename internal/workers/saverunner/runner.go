package saverunner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wspwll/risk-radar/internal/ports"
)

// Runner writes values to a key-value store on a background goroutine.
// Pending values are coalesced per key: only the latest value enqueued for
// a key is written. Write failures are logged and dropped.
type Runner struct {
	store        ports.KeyValueStore
	log          *zap.Logger
	writeTimeout time.Duration

	mu      sync.Mutex
	pending map[string][]byte
	order   []string
	busy    bool
	closed  bool
	waiters []chan struct{}

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

type Option func(*Runner)

func WithLogger(l *zap.Logger) Option           { return func(r *Runner) { r.log = l } }
func WithWriteTimeout(d time.Duration) Option { return func(r *Runner) { r.writeTimeout = d } }

// Start launches the writer. It stops when ctx is cancelled or Close is
// called, writing whatever is still pending first.
func Start(ctx context.Context, store ports.KeyValueStore, opts ...Option) *Runner {
	r := &Runner{
		store:        store,
		log:          zap.NewNop(),
		writeTimeout: 5 * time.Second,
		pending:      make(map[string][]byte),
		wake:         make(chan struct{}, 1),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.loop(ctx)
	return r
}

// Enqueue schedules value to be written under key. It never blocks.
func (r *Runner) Enqueue(key string, value []byte) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.log.Warn("save dropped after close", zap.String("slot", key))
		return
	}
	if _, ok := r.pending[key]; !ok {
		r.order = append(r.order, key)
	}
	r.pending[key] = value
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Flush waits until every value enqueued so far has been attempted.
func (r *Runner) Flush(ctx context.Context) error {
	r.mu.Lock()
	if len(r.pending) == 0 && !r.busy {
		r.mu.Unlock()
		return nil
	}
	w := make(chan struct{})
	r.waiters = append(r.waiters, w)
	r.mu.Unlock()

	select {
	case <-w:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting values, drains what is pending and waits for the
// writer to exit or ctx to end.
func (r *Runner) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.stop)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)
	for {
		select {
		case <-r.wake:
			r.drain()
		case <-r.stop:
			r.drain()
			return
		case <-ctx.Done():
			r.mu.Lock()
			r.closed = true
			r.mu.Unlock()
			r.drain()
			return
		}
	}
}

func (r *Runner) drain() {
	for {
		r.mu.Lock()
		if len(r.pending) == 0 {
			r.busy = false
			for _, w := range r.waiters {
				close(w)
			}
			r.waiters = nil
			r.mu.Unlock()
			return
		}
		batch, order := r.pending, r.order
		r.pending = make(map[string][]byte)
		r.order = nil
		r.busy = true
		r.mu.Unlock()

		for _, key := range order {
			r.write(key, batch[key])
		}
	}
}

func (r *Runner) write(key string, value []byte) {
	// detached from the caller's context so a shutdown still flushes
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()
	if err := r.store.Put(ctx, key, value); err != nil {
		r.log.Warn("save failed", zap.String("slot", key), zap.Error(err))
		return
	}
	r.log.Debug("saved", zap.String("slot", key), zap.Int("bytes", len(value)))
}
