package loadstate

import (
	"context"

	"github.com/osse101/cardtable/internal/logger"
)

// FetchFunc performs the load. It runs on its own goroutine.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Poster schedules a task on the UI goroutine (see ui.Loop)
type Poster interface {
	Post(task func()) bool
}

// Log messages
const (
	LogMsgFetchStarted    = "Load started"
	LogMsgFetchResolved   = "Load resolved"
	LogMsgResultDiscarded = "Load result discarded after unmount"
	LogMsgResultDropped   = "Load result dropped, UI loop not running"
)

// Loader owns the load state of one component instance. Every method must
// be called from the UI goroutine.
type Loader[T any] struct {
	fetch     FetchFunc[T]
	state     State[T]
	cancel    context.CancelFunc
	unmounted bool
}

// New creates an Unloaded loader
func New[T any](fetch FetchFunc[T]) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// State returns the current snapshot
func (l *Loader[T]) State() State[T] {
	return l.state
}

// Pending reports an outstanding fetch
func (l *Loader[T]) Pending() bool {
	return l.state.Phase == Loading
}

// Effect runs after every render. Only the first call on an Unloaded
// loader starts a fetch; the result is posted back through poster, stored
// as Loaded and followed by rerender.
func (l *Loader[T]) Effect(ctx context.Context, poster Poster, rerender func()) {
	if l.unmounted || l.state.Phase != Unloaded {
		return
	}

	l.state.Phase = Loading
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	logger.FromContext(ctx).Debug(LogMsgFetchStarted)

	go func() {
		value, err := l.fetch(fetchCtx)
		posted := poster.Post(func() {
			l.resolve(fetchCtx, value, err, rerender)
		})
		if !posted {
			// UI loop is gone; nothing will resolve this load
			cancel()
			logger.FromContext(ctx).Debug(LogMsgResultDropped)
		}
	}()
}

func (l *Loader[T]) resolve(ctx context.Context, value T, err error, rerender func()) {
	log := logger.FromContext(ctx)
	if l.unmounted {
		log.Debug(LogMsgResultDiscarded)
		return
	}

	l.state = State[T]{Phase: Loaded, Value: value, Err: err}
	l.cancel()
	log.Debug(LogMsgFetchResolved, "failed", err != nil)

	if rerender != nil {
		rerender()
	}
}

// Unmount cancels an outstanding fetch. Results arriving later are dropped
// without a rerender.
func (l *Loader[T]) Unmount() {
	l.unmounted = true
	if l.cancel != nil {
		l.cancel()
	}
}
