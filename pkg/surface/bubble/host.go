package bubble

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formbind/pkg/surface"
)

// ErrAborted signals the user quit with ctrl+c or esc while a window was
// still open.
var ErrAborted = errors.New("bubble: aborted")

// dispatchMsg wakes the app to run queued functions.
type dispatchMsg struct{}

// Host runs windows inside a bubbletea program. The program's update loop is
// the UI loop: queued functions and widget callbacks run there.
type Host struct {
	options []tea.ProgramOption

	mu      sync.Mutex
	queue   []func()
	program *tea.Program

	windows []*Window
}

var _ surface.Host = (*Host)(nil)

// NewHost builds a host. Program options are passed to tea.NewProgram, for
// example tea.WithAltScreen or tea.WithInput in tests.
func NewHost(options ...tea.ProgramOption) *Host {
	return &Host{options: options}
}

// Dispatch queues fn for the update loop. It never blocks.
func (h *Host) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	program := h.program
	h.mu.Unlock()
	if program != nil {
		go program.Send(dispatchMsg{})
	}
}

// Window creates a top-level window. Call it on the update loop.
func (h *Host) Window(title string) surface.Window {
	w := &Window{Canvas: newCanvas(title)}
	h.windows = append(h.windows, w)
	return w
}

// Run starts the program and blocks until every window is closed, the user
// quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	m := newApp(h)
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, h.options...)
	program := tea.NewProgram(m, options...)

	h.mu.Lock()
	h.program = program
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.program = nil
		h.mu.Unlock()
	}()

	if _, err := program.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	if m.aborted {
		return ErrAborted
	}
	return nil
}

func (h *Host) drain() {
	for {
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.mu.Unlock()
			return
		}
		fn := h.queue[0]
		h.queue = h.queue[1:]
		h.mu.Unlock()
		fn()
	}
}

func (h *Host) active() *Window {
	for i := len(h.windows) - 1; i >= 0; i-- {
		if !h.windows[i].closed {
			return h.windows[i]
		}
	}
	return nil
}

// Window is a top-level screen.
type Window struct {
	*Canvas
	closed bool
}

// Close removes the window; the program quits once none are left.
func (w *Window) Close() { w.closed = true }
