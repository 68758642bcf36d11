package form

import (
	"context"
	"errors"
	"sync"
)

// gate is a one-shot completion signal carrying the final working set.
type gate struct {
	once  sync.Once
	done  chan struct{}
	items []any
}

func newGate() *gate {
	return &gate{done: make(chan struct{})}
}

// fire records items and releases every waiter. Only the first call has an
// effect.
func (g *gate) fire(items []any) bool {
	fired := false
	g.once.Do(func() {
		g.items = items
		close(g.done)
		fired = true
	})
	return fired
}

// WaitForCompletion blocks until the user activates the completion button of
// a standalone engine and returns the working set as it was at that moment.
// The window is already torn down by then. A context without a deadline waits
// indefinitely; cancellation returns ctx.Err() and leaves the window open.
//
// Calling it on an embedded engine is a programming error: it is logged and
// ErrEmbedded is returned.
func (e *Engine) WaitForCompletion(ctx context.Context) ([]any, error) {
	if ctx == nil {
		return nil, errors.New("form: context is required")
	}
	if !e.standalone {
		e.logger.Error("form: WaitForCompletion called on an embedded engine")
		return nil, ErrEmbedded
	}

	if !e.state.CompareAndSwap(int32(StateReady), int32(StateAwaitingCompletion)) {
		e.state.CompareAndSwap(int32(StateConstructing), int32(StateAwaitingCompletion))
	}

	select {
	case <-e.gate.done:
	case <-ctx.Done():
		e.state.CompareAndSwap(int32(StateAwaitingCompletion), int32(StateReady))
		return nil, ctx.Err()
	}

	return e.gate.items, nil
}
