package model

import "fmt"

// FieldOption customises a field descriptor built by the typed constructors.
type FieldOption func(*Field)

// Label sets the display label. An empty label falls back to the labeler.
func Label(label string) FieldOption {
	return func(f *Field) {
		f.Label = label
	}
}

// Order sets the ordering key. Fields sort ascending; equal keys keep their
// declaration order.
func Order(order int) FieldOption {
	return func(f *Field) {
		f.Order = order
	}
}

// String declares a text field.
func String[T any](name string, get func(*T) string, set func(*T, string), opts ...FieldOption) Field {
	return accessor(name, Text{}, get, set, exact[string], opts)
}

// Int declares an integer field edited as text.
func Int[T any](name string, get func(*T) int, set func(*T, int), opts ...FieldOption) Field {
	return accessor(name, Number{Integer: true}, get, set, exact[int], opts)
}

// Float declares a floating point field edited as text.
func Float[T any](name string, get func(*T) float64, set func(*T, float64), opts ...FieldOption) Field {
	return accessor(name, Number{}, get, set, exact[float64], opts)
}

// Bool declares a toggle field.
func Bool[T any](name string, get func(*T) bool, set func(*T, bool), opts ...FieldOption) Field {
	return accessor(name, Toggle{}, get, set, exact[bool], opts)
}

// Select declares a choice field offering options in the given order. Option
// labels use fmt.Sprint, so Stringer implementations are honoured.
func Select[T any, E comparable](name string, options []E, get func(*T) E, set func(*T, E), opts ...FieldOption) Field {
	choice := Choice{Options: make([]Option, 0, len(options))}
	for _, option := range options {
		choice.Options = append(choice.Options, Option{Label: fmt.Sprint(option), Value: option})
	}
	return accessor(name, choice, get, set, exact[E], opts)
}

// Object declares a nested editable field backed by another descriptor. The
// setter accepts either the value or a pointer to it, since nested forms
// produce pointer instances.
func Object[T, N any](name string, nested *Type, get func(*T) N, set func(*T, N), opts ...FieldOption) Field {
	return accessor(name, Nested{Type: nested}, get, set, func(value any) (N, bool) {
		if v, ok := value.(N); ok {
			return v, true
		}
		if ptr, ok := value.(*N); ok && ptr != nil {
			return *ptr, true
		}
		var zero N
		return zero, false
	}, opts)
}

// Unsupported declares a field that is listed but never receives an input.
func Unsupported(name string, opts ...FieldOption) Field {
	f := Field{Name: name}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

func accessor[T, V any](name string, kind Kind, get func(*T) V, set func(*T, V), convert func(any) (V, bool), opts []FieldOption) Field {
	f := Field{Name: name, Kind: kind}
	if set != nil {
		f.Set = func(target, value any) error {
			t, ok := target.(*T)
			if !ok || t == nil {
				return fmt.Errorf("%w: field %q target %T", ErrTypeMismatch, name, target)
			}
			v, ok := convert(value)
			if !ok {
				return fmt.Errorf("%w: field %q value %T", ErrTypeMismatch, name, value)
			}
			set(t, v)
			return nil
		}
	}
	if get != nil {
		f.Get = func(target any) (any, error) {
			t, ok := target.(*T)
			if !ok || t == nil {
				return nil, fmt.Errorf("%w: field %q target %T", ErrTypeMismatch, name, target)
			}
			return get(t), nil
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

func exact[V any](value any) (V, bool) {
	v, ok := value.(V)
	return v, ok
}

// TypeOption customises a type descriptor built by Define.
type TypeOption func(*Type)

// Marked attaches the editable item marker.
func Marked() TypeOption {
	return func(t *Type) {
		t.Marked = true
	}
}

// Extends links the type to an embedded ancestor. project returns the
// ancestor value embedded in the child instance.
func Extends[T, P any](parent *Type, project func(*T) *P) TypeOption {
	return func(t *Type) {
		if parent == nil || project == nil {
			return
		}
		t.Parent = &Ancestor{
			Type: parent,
			Project: func(target any) any {
				child, ok := target.(*T)
				if !ok || child == nil {
					return nil
				}
				return project(child)
			},
		}
	}
}

// Define builds a descriptor table for T. New returns *T.
func Define[T any](name string, fields []Field, opts ...TypeOption) *Type {
	if name == "" {
		var zero T
		name = fmt.Sprintf("%T", zero)
	}
	t := &Type{
		Name:   name,
		Fields: fields,
		New: func() any {
			return new(T)
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}
