package headless

import (
	"sync"

	"github.com/goliatone/go-formbind/pkg/surface"
)

// Host runs a single goroutine that plays the role of a toolkit's UI loop.
// Functions passed to Dispatch run there one at a time, in order.
type Host struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	stop    sync.Once
	windows []*Window
}

var _ surface.Host = (*Host)(nil)

// NewHost starts the UI loop. Call Stop to end it.
func NewHost() *Host {
	h := &Host{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go h.loop()
	return h
}

// Dispatch queues fn on the UI loop. It never blocks, so it is safe to call
// from the loop itself.
func (h *Host) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// Do runs fn on the UI loop and waits for it to return. It must not be called
// from the loop.
func (h *Host) Do(fn func()) {
	finished := make(chan struct{})
	h.Dispatch(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
	case <-h.done:
	}
}

// Window creates a top-level window. Call it on the UI loop.
func (h *Host) Window(title string) surface.Window {
	w := &Window{Canvas: NewCanvas(title), title: title}
	h.windows = append(h.windows, w)
	return w
}

// Windows returns the windows created so far. Call it on the UI loop.
func (h *Host) Windows() []*Window {
	return append([]*Window(nil), h.windows...)
}

// Stop ends the UI loop. Queued functions that have not started are dropped.
func (h *Host) Stop() {
	h.stop.Do(func() {
		close(h.done)
	})
}

func (h *Host) loop() {
	for {
		select {
		case <-h.done:
			return
		case <-h.wake:
		}
		for {
			fn := h.next()
			if fn == nil {
				break
			}
			fn()
		}
	}
}

func (h *Host) next() func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		return nil
	}
	fn := h.queue[0]
	h.queue = h.queue[1:]
	return fn
}

// Window is a top-level headless canvas.
type Window struct {
	*Canvas
	title  string
	closed bool
}

// Title reports the window title.
func (w *Window) Title() string { return w.title }

// Close marks the window as torn down.
func (w *Window) Close() { w.closed = true }

// Closed reports whether Close has been called.
func (w *Window) Closed() bool { return w.closed }
