package form

import (
	"fmt"
	"log/slog"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/uischema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

const (
	defaultSubmitLabel = "Add Item"
	defaultDeleteLabel = "Delete Selected Item"
	defaultDoneLabel   = "DONE"
	defaultListLabel   = "Items"
	defaultTitlePrefix = "Input "
)

// Option customises an engine.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	labeler     model.Labeler
	registry    *widgets.Registry
	decorators  []model.Decorator
	overlay     *uischema.Store
	itemLabeler func(any) string
	clearOnAdd  bool
	title       string
	submitLabel string
	deleteLabel string
	doneLabel   string
	listLabel   string
}

// WithLogger routes diagnostics to logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLabeler sets the fallback used for fields without an explicit label.
// Defaults to the field name.
func WithLabeler(labeler model.Labeler) Option {
	return func(c *config) {
		if labeler != nil {
			c.labeler = labeler
		}
	}
}

// WithWidgetRegistry replaces the registry that maps fields to widgets.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithDecorators registers field decorators applied while resolving every
// type the engine binds, nested types included.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(c *config) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// WithOverlay applies a UI schema overlay: field labels and order for every
// bound type, plus the captions configured for the root type.
func WithOverlay(store *uischema.Store) Option {
	return func(c *config) {
		if store == nil || store.Empty() {
			return
		}
		c.overlay = store
		c.decorators = append(c.decorators, store)
	}
}

// WithItemLabeler controls how working set entries are shown in the
// collection view. Defaults to fmt.Sprint.
func WithItemLabeler(fn func(any) string) Option {
	return func(c *config) {
		if fn != nil {
			c.itemLabeler = fn
		}
	}
}

// WithClearOnAdd is accepted for compatibility. Submitting never clears the
// inputs; the flag is recorded and has no effect.
func WithClearOnAdd(clear bool) Option {
	return func(c *config) {
		c.clearOnAdd = clear
	}
}

// WithTitle sets the standalone window title. Defaults to "Input <type>".
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSubmitLabel sets the caption of the submit button.
func WithSubmitLabel(label string) Option {
	return func(c *config) {
		c.submitLabel = label
	}
}

// WithDeleteLabel sets the caption of the delete-selected button.
func WithDeleteLabel(label string) Option {
	return func(c *config) {
		c.deleteLabel = label
	}
}

// WithDoneLabel sets the caption of the completion button on standalone
// engines.
func WithDoneLabel(label string) Option {
	return func(c *config) {
		c.doneLabel = label
	}
}

// WithListLabel sets the caption of the collection view.
func WithListLabel(label string) Option {
	return func(c *config) {
		c.listLabel = label
	}
}

func newConfig(typ *model.Type, options []Option) config {
	cfg := config{clearOnAdd: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.overlay != nil {
		if form, ok := cfg.overlay.Form(typ.Name); ok {
			cfg.title = firstNonEmpty(cfg.title, form.Title)
			cfg.submitLabel = firstNonEmpty(cfg.submitLabel, form.SubmitLabel)
			cfg.deleteLabel = firstNonEmpty(cfg.deleteLabel, form.DeleteLabel)
			cfg.doneLabel = firstNonEmpty(cfg.doneLabel, form.DoneLabel)
			cfg.listLabel = firstNonEmpty(cfg.listLabel, form.ListLabel)
			if form.ClearOnAdd != nil {
				cfg.clearOnAdd = *form.ClearOnAdd
			}
		}
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.labeler == nil {
		cfg.labeler = model.FieldName
	}
	if cfg.registry == nil {
		cfg.registry = widgets.NewRegistry()
	}
	if cfg.itemLabeler == nil {
		cfg.itemLabeler = func(item any) string { return fmt.Sprint(item) }
	}
	cfg.title = firstNonEmpty(cfg.title, defaultTitlePrefix+typ.Name)
	cfg.submitLabel = firstNonEmpty(cfg.submitLabel, defaultSubmitLabel)
	cfg.deleteLabel = firstNonEmpty(cfg.deleteLabel, defaultDeleteLabel)
	cfg.doneLabel = firstNonEmpty(cfg.doneLabel, defaultDoneLabel)
	cfg.listLabel = firstNonEmpty(cfg.listLabel, defaultListLabel)
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
