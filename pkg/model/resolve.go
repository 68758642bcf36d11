package model

import (
	"fmt"
	"sort"
)

// Resolve returns the ordered list of editable fields for t: its own fields
// followed by the fields of each marked ancestor, sorted by Order with ties
// kept in discovery order.
//
// The ancestor walk stops at the first unmarked ancestor. A marked type above
// an unmarked one never contributes fields.
//
// Inherited fields are returned with accessors that project the child
// instance onto the ancestor, so callers can apply every field to an instance
// of t directly. When t itself is unmarked the fields are still returned
// together with ErrUnmarkedType.
func Resolve(t *Type, decorators ...Decorator) ([]Field, error) {
	if t == nil || t.New == nil {
		return nil, ErrInvalidType
	}

	fields := declared(t, nil, decorators)

	visited := map[*Type]struct{}{t: {}}
	var project func(any) any
	for anc := t.Parent; anc != nil && anc.Type != nil && anc.Type.Marked; anc = anc.Type.Parent {
		if _, seen := visited[anc.Type]; seen {
			break
		}
		visited[anc.Type] = struct{}{}
		project = compose(project, anc.Project)
		fields = append(fields, declared(anc.Type, project, decorators)...)
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	if !t.Marked {
		return fields, ErrUnmarkedType
	}
	return fields, nil
}

func declared(owner *Type, project func(any) any, decorators []Decorator) []Field {
	out := make([]Field, 0, len(owner.Fields))
	seen := make(map[string]struct{}, len(owner.Fields))
	for _, field := range owner.Fields {
		if _, dup := seen[field.Name]; dup {
			continue
		}
		seen[field.Name] = struct{}{}
		for _, decorator := range decorators {
			if decorator != nil {
				decorator.DecorateField(owner, &field)
			}
		}
		if project != nil {
			field = projected(field, project)
		}
		out = append(out, field)
	}
	return out
}

func compose(inner, outer func(any) any) func(any) any {
	if outer == nil {
		outer = func(any) any { return nil }
	}
	if inner == nil {
		return outer
	}
	return func(target any) any {
		mid := inner(target)
		if mid == nil {
			return nil
		}
		return outer(mid)
	}
}

func projected(field Field, project func(any) any) Field {
	set, get, name := field.Set, field.Get, field.Name
	if set != nil {
		field.Set = func(target, value any) error {
			anc := project(target)
			if anc == nil {
				return fmt.Errorf("%w: field %q cannot reach ancestor of %T", ErrTypeMismatch, name, target)
			}
			return set(anc, value)
		}
	}
	if get != nil {
		field.Get = func(target any) (any, error) {
			anc := project(target)
			if anc == nil {
				return nil, fmt.Errorf("%w: field %q cannot reach ancestor of %T", ErrTypeMismatch, name, target)
			}
			return get(anc)
		}
	}
	return field
}
