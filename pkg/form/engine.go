package form

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/surface"
)

// Engine binds one model type to a set of surface inputs and keeps the
// working set of instances the user has submitted.
//
// An engine is either embedded in a caller-supplied surface (New) or owns a
// window on a UI host (Open). Input handling, Submit, DeleteSelected, SetItems
// and Fill run on the UI loop; State, Items and WaitForCompletion may be
// called from any goroutine.
type Engine struct {
	typ    *model.Type
	cfg    config
	logger *slog.Logger

	fields   []model.Field
	bindings []Binding
	view     *collection
	nested   bool

	window     surface.Window
	standalone bool
	gate       *gate

	state atomic.Int32
}

// New builds an embedded engine: the inputs for every editable field of typ,
// a submit button, the collection view and a delete button are placed on s.
// The caller owns s and the UI loop; WaitForCompletion is unavailable.
func New(typ *model.Type, s surface.Surface, options ...Option) (*Engine, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	e, err := newEngine(typ, options)
	if err != nil {
		return nil, err
	}
	e.build(s, nil)
	return e, nil
}

// Open builds a standalone engine in a new window on host. Window creation
// and input generation are dispatched to the UI loop; Open returns without
// waiting for them. The window carries a completion button that releases
// WaitForCompletion.
func Open(host surface.Host, typ *model.Type, options ...Option) (*Engine, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	e, err := newEngine(typ, options)
	if err != nil {
		return nil, err
	}
	e.standalone = true
	e.gate = newGate()

	host.Dispatch(func() {
		win := host.Window(e.cfg.title)
		e.window = win
		e.build(win, nil)
	})
	return e, nil
}

func newEngine(typ *model.Type, options []Option) (*Engine, error) {
	if typ == nil || typ.New == nil {
		return nil, ErrInvalidType
	}
	cfg := newConfig(typ, options)
	return newEngineWith(typ, cfg)
}

func newEngineWith(typ *model.Type, cfg config) (*Engine, error) {
	e := &Engine{
		typ:    typ,
		cfg:    cfg,
		logger: cfg.logger.With("type", typ.Name),
		view:   newCollection(nil, cfg.itemLabeler),
	}
	e.state.Store(int32(StateConstructing))

	fields, err := model.Resolve(typ, cfg.decorators...)
	switch {
	case errors.Is(err, model.ErrUnmarkedType):
		e.logger.Warn("form: type is not marked as an editable item; binding its fields anyway")
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidType, err)
	}
	e.fields = fields
	return e, nil
}

// build generates the inputs on s. path lists the types already being built
// above this engine, used to stop nested recursion.
func (e *Engine) build(s surface.Surface, path []*model.Type) {
	path = append(slices.Clone(path), e.typ)

	e.bindings = make([]Binding, 0, len(e.fields))
	for _, field := range e.fields {
		e.bindings = append(e.bindings, e.bind(s, field, path))
	}

	if !e.nested {
		s.Button(e.cfg.submitLabel, e.Submit)
		e.view.attach(s.List(e.cfg.listLabel))
		s.Button(e.cfg.deleteLabel, e.DeleteSelected)
	}
	if e.standalone {
		s.Button(e.cfg.doneLabel, e.complete)
	}

	e.state.CompareAndSwap(int32(StateConstructing), int32(StateReady))
	e.logger.Debug("form: inputs ready", "fields", len(e.fields))
}

// Type returns the bound model type.
func (e *Engine) Type() *model.Type {
	return e.typ
}

// State reports the lifecycle stage.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Fields returns the resolved editable fields in display order.
func (e *Engine) Fields() []model.Field {
	return slices.Clone(e.fields)
}

// Bindings returns the field-to-input bindings, aligned with Fields.
func (e *Engine) Bindings() []Binding {
	return slices.Clone(e.bindings)
}

// Submit builds an instance from the current inputs and appends it to the
// working set and the collection view. Inputs keep their values. When the
// instance cannot be constructed nothing is appended.
func (e *Engine) Submit() {
	item := e.BuildInstance()
	if item == nil {
		e.logger.Warn("form: submit skipped; instance could not be built")
		return
	}
	e.view.append(item)
	e.logger.Debug("form: item added", "count", e.view.len())
}

// DeleteSelected removes the entry selected in the collection view. It does
// nothing when no entry is selected.
func (e *Engine) DeleteSelected() {
	if removed, ok := e.view.removeSelected(); ok {
		e.logger.Debug("form: item removed", "id", removed.ID, "count", e.view.len())
	}
}

// Items returns a snapshot of the working set in insertion order.
func (e *Engine) Items() []any {
	return e.view.items()
}

// SetItems replaces the working set and rebuilds the collection view.
func (e *Engine) SetItems(items []any) {
	e.view.reset(items)
}

// Entries returns the working set with the stable identifiers assigned to
// each entry.
func (e *Engine) Entries() []Entry {
	return e.view.snapshot()
}

// Remove deletes the entry with the given identifier from the working set
// and the collection view.
func (e *Engine) Remove(id uuid.UUID) bool {
	return e.view.remove(id)
}

// ItemsOf returns the working set entries that are of type T. Instances built
// by an engine are pointers, so T is usually a pointer type.
func ItemsOf[T any](e *Engine) []T {
	var out []T
	for _, item := range e.Items() {
		if typed, ok := item.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// complete runs on the UI loop when the completion button is activated. The
// window is torn down before waiters are released.
func (e *Engine) complete() {
	items := e.Items()
	if e.State() == StateDone {
		return
	}
	e.state.Store(int32(StateDone))
	if e.window != nil {
		e.window.Close()
	}
	e.gate.fire(items)
	e.logger.Debug("form: completed", "count", len(items))
}
