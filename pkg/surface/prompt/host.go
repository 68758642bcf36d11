package prompt

import (
	"context"
	"sync"

	"github.com/goliatone/go-formbind/pkg/surface"
)

const clearSelection = "(clear selection)"

// Host is a terminal UI loop. Run drives it on the calling goroutine: queued
// functions run first, then the newest open window is shown as a menu and one
// user action is handled per iteration.
type Host struct {
	driver    PromptDriver
	pageSize  int
	backLabel string

	mu      sync.Mutex
	queue   []func()
	windows []*Window
}

var _ surface.Host = (*Host)(nil)

// NewHost builds a host. Without WithPromptDriver it prompts through survey.
func NewHost(options ...Option) *Host {
	h := &Host{backLabel: "< Back"}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if h.driver == nil {
		h.driver = NewSurveyDriver()
	}
	return h
}

// Dispatch queues fn for the loop. It never blocks.
func (h *Host) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
}

// Window creates a top-level menu. Call it on the loop.
func (h *Host) Window(title string) surface.Window {
	w := &Window{Canvas: newCanvas(title)}
	h.windows = append(h.windows, w)
	return w
}

// Run processes queued work and user actions until every window is closed,
// ctx is cancelled or the driver fails. An interrupt surfaces as ErrAborted.
func (h *Host) Run(ctx context.Context) error {
	h.drain()
	if len(h.windows) == 0 {
		return ErrNoWindow
	}
	var shown *Window
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		win := h.active()
		if win == nil {
			return nil
		}
		if win != shown {
			if err := h.driver.Info(ctx, win.label); err != nil {
				return err
			}
			shown = win
		}
		if err := h.step(ctx, win.Canvas, true); err != nil {
			return err
		}
		h.drain()
	}
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

// step shows one menu and handles the chosen entry. Nested panels loop until
// the user goes back.
func (h *Host) step(ctx context.Context, c *Canvas, top bool) error {
	options := c.entries()
	if !top {
		options = append(options, h.backLabel)
	}
	index, err := h.driver.Select(ctx, SelectConfig{
		Message:  c.label,
		Options:  options,
		PageSize: h.pageSize,
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(c.widgets) {
		if !top && index == len(c.widgets) {
			return errBack
		}
		return nil
	}
	return h.edit(ctx, c.widgets[index])
}

func (h *Host) edit(ctx context.Context, w widget) error {
	switch w := w.(type) {
	case *textWidget:
		text, err := h.driver.Input(ctx, InputConfig{Message: w.label, Default: w.text})
		if err != nil {
			return err
		}
		w.text = text
	case *toggleWidget:
		checked, err := h.driver.Confirm(ctx, ConfirmConfig{Message: w.label, Default: w.checked})
		if err != nil {
			return err
		}
		w.checked = checked
	case *choiceWidget:
		if len(w.options) == 0 {
			return nil
		}
		index, err := h.driver.Select(ctx, SelectConfig{
			Message:      w.label,
			Options:      w.options,
			DefaultIndex: w.selected,
			PageSize:     h.pageSize,
		})
		if err != nil {
			return err
		}
		w.Select(index)
	case *listWidget:
		if len(w.entries) == 0 {
			return nil
		}
		options := append(append([]string(nil), w.entries...), clearSelection)
		index, err := h.driver.Select(ctx, SelectConfig{
			Message:      w.label,
			Options:      options,
			DefaultIndex: w.selected,
			PageSize:     h.pageSize,
		})
		if err != nil {
			return err
		}
		if index < 0 || index >= len(w.entries) {
			index = -1
		}
		w.selected = index
	case *buttonWidget:
		if w.activate != nil {
			w.activate()
		}
	case *panelWidget:
		for {
			err := h.step(ctx, w.canvas, false)
			if err == errBack {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Window is a top-level menu.
type Window struct {
	*Canvas
	closed bool
}

// Close removes the window from the loop.
func (w *Window) Close() { w.closed = true }
