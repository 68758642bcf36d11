package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/model"
)

type grand struct{ G string }

type root struct {
	grand
	R string
}

type parent struct {
	root
	A string
}

type child struct {
	parent
	B string
}

func text[T any](name string, ptr func(*T) *string, opts ...model.FieldOption) model.Field {
	return model.String(name,
		func(t *T) string { return *ptr(t) },
		func(t *T, v string) { *ptr(t) = v },
		opts...,
	)
}

func lineage() *model.Type {
	grandType := model.Define[grand]("grand", []model.Field{
		text("g", func(g *grand) *string { return &g.G }),
	}, model.Marked())
	rootType := model.Define[root]("root", []model.Field{
		text("r", func(r *root) *string { return &r.R }),
	}, model.Extends(grandType, func(r *root) *grand { return &r.grand }))
	parentType := model.Define[parent]("parent", []model.Field{
		text("a", func(p *parent) *string { return &p.A }),
	}, model.Marked(), model.Extends(rootType, func(p *parent) *root { return &p.root }))
	return model.Define[child]("child", []model.Field{
		text("b", func(c *child) *string { return &c.B }),
	}, model.Marked(), model.Extends(parentType, func(c *child) *parent { return &c.parent }))
}

func names(fields []model.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}
	return out
}

func TestResolve_StopsAtFirstUnmarkedAncestor(t *testing.T) {
	fields, err := model.Resolve(lineage())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, names(fields)); diff != "" {
		t.Fatalf("resolved fields mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_InheritedSetterReachesAncestor(t *testing.T) {
	typ := lineage()
	fields, err := model.Resolve(typ)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	instance := typ.New().(*child)
	for _, f := range fields {
		if err := f.Set(instance, "v-"+f.Name); err != nil {
			t.Fatalf("set %s: %v", f.Name, err)
		}
	}
	if instance.B != "v-b" || instance.A != "v-a" {
		t.Fatalf("unexpected instance %+v", instance)
	}

	got, err := fields[1].Get(instance)
	if err != nil || got != "v-a" {
		t.Fatalf("inherited getter returned %v (err=%v)", got, err)
	}
}

func TestResolve_StableOrder(t *testing.T) {
	type rec struct{ A, B, C, D string }
	base := model.Define[rec]("base", []model.Field{
		text("c", func(r *rec) *string { return &r.C }, model.Order(1)),
		text("d", func(r *rec) *string { return &r.D }),
	}, model.Marked())
	type wrap struct {
		rec
		E string
	}
	typ := model.Define[wrap]("wrap", []model.Field{
		text("e", func(w *wrap) *string { return &w.E }, model.Order(1)),
		text("a", func(w *wrap) *string { return &w.A }, model.Order(-1)),
		text("b", func(w *wrap) *string { return &w.B }),
	}, model.Marked(), model.Extends(base, func(w *wrap) *rec { return &w.rec }))

	fields, err := model.Resolve(typ)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"a", "b", "d", "e", "c"}
	if diff := cmp.Diff(want, names(fields)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UnmarkedRootWarns(t *testing.T) {
	type plain struct{ Name string }
	typ := model.Define[plain]("plain", []model.Field{
		text("name", func(p *plain) *string { return &p.Name }),
	})

	fields, err := model.Resolve(typ)
	if !errors.Is(err, model.ErrUnmarkedType) {
		t.Fatalf("expected ErrUnmarkedType, got %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected fields despite warning, got %d", len(fields))
	}
}

func TestResolve_InvalidType(t *testing.T) {
	if _, err := model.Resolve(nil); !errors.Is(err, model.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType for nil, got %v", err)
	}
	if _, err := model.Resolve(&model.Type{Name: "ctorless", Marked: true}); !errors.Is(err, model.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType without constructor, got %v", err)
	}
}

func TestResolve_EmptyType(t *testing.T) {
	type empty struct{}
	fields, err := model.Resolve(model.Define[empty]("empty", nil, model.Marked()))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected no fields, got %d", len(fields))
	}
}

func TestResolve_DecoratorsRunBeforeSort(t *testing.T) {
	type rec struct{ A, B string }
	typ := model.Define[rec]("rec", []model.Field{
		text("a", func(r *rec) *string { return &r.A }),
		text("b", func(r *rec) *string { return &r.B }),
	}, model.Marked())

	bump := model.DecoratorFunc(func(owner *model.Type, field *model.Field) {
		if owner.Name == "rec" && field.Name == "a" {
			field.Order = 5
			field.Label = "Alpha"
		}
	})

	fields, err := model.Resolve(typ, bump)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, names(fields)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if fields[1].Label != "Alpha" {
		t.Fatalf("decorator label not applied: %q", fields[1].Label)
	}
	if typ.Fields[0].Label != "" {
		t.Fatalf("decorator must not mutate the declared descriptor")
	}
}
