package formbind

import (
	"context"

	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/surface"
)

// Engine aliases form.Engine so callers can stay on the root package.
type Engine = form.Engine

// Option aliases form.Option.
type Option = form.Option

// Type aliases model.Type.
type Type = model.Type

// NewForm embeds a form for typ in s, mirroring form.New.
func NewForm(typ *model.Type, s surface.Surface, options ...form.Option) (*form.Engine, error) {
	return form.New(typ, s, options...)
}

// OpenForm opens a standalone form window on host, mirroring form.Open.
func OpenForm(host surface.Host, typ *model.Type, options ...form.Option) (*form.Engine, error) {
	return form.Open(host, typ, options...)
}

// Collect opens a standalone form on host and blocks until the user finishes.
// It returns the working set entries of type T. The host's UI loop must be
// running on another goroutine.
func Collect[T any](ctx context.Context, host surface.Host, typ *model.Type, options ...form.Option) ([]T, error) {
	engine, err := form.Open(host, typ, options...)
	if err != nil {
		return nil, err
	}
	items, err := engine.WaitForCompletion(ctx)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range items {
		if typed, ok := item.(T); ok {
			out = append(out, typed)
		}
	}
	return out, nil
}
