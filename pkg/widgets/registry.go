package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetText   = "text"
	WidgetToggle = "toggle"
	WidgetNested = "nested"
	WidgetChoice = "choice"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on registered matchers. Higher
// priority wins; ties fall back to registration order. An empty registry never
// resolves a widget, which leaves the field without an input.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered. Their priorities encode the precedence text, toggle, nested,
// choice.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence; among equal priorities the earliest
// registration wins.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetText, 100, func(field model.Field) bool {
		switch field.Kind.(type) {
		case model.Text, model.Number:
			return true
		}
		return false
	})

	r.Register(WidgetToggle, 90, func(field model.Field) bool {
		_, ok := field.Kind.(model.Toggle)
		return ok
	})

	r.Register(WidgetNested, 80, func(field model.Field) bool {
		nested, ok := field.Kind.(model.Nested)
		return ok && nested.Type != nil && nested.Type.Marked
	})

	r.Register(WidgetChoice, 70, func(field model.Field) bool {
		_, ok := field.Kind.(model.Choice)
		return ok
	})
}
