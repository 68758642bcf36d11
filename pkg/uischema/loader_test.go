package uischema_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/internal/samples"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/uischema"
)

func TestLoadFS_JSON(t *testing.T) {
	store := loadStore(t, "basic")
	if store.Empty() {
		t.Fatalf("expected store to contain forms")
	}

	form, ok := store.Form("Point")
	if !ok {
		t.Fatalf("form Point not found")
	}
	if form.Title != "Plot points" {
		t.Fatalf("title markup should be stripped, got %q", form.Title)
	}
	if form.SubmitLabel != "Add Point" || form.DoneLabel != "Finish" {
		t.Fatalf("captions mismatch: %#v", form)
	}
	if form.ClearOnAdd == nil || *form.ClearOnAdd {
		t.Fatalf("clearOnAdd not parsed: %#v", form.ClearOnAdd)
	}

	overlay, _ := store.Lookup("Point")
	x, ok := overlay.Fields["x"]
	if !ok {
		t.Fatalf("x field missing")
	}
	if x.Label != "Horizontal" || x.Order == nil || *x.Order != 2 {
		t.Fatalf("x overlay mismatch: %#v", x)
	}
	y, ok := overlay.Fields["y"]
	if !ok {
		t.Fatalf("y key should be trimmed: %#v", overlay.Fields)
	}
	if y.Label != "Vertical & up" || y.OriginalName != " y " {
		t.Fatalf("y overlay mismatch: %#v", y)
	}
}

func TestLoadFS_YAML(t *testing.T) {
	store := loadStore(t, "yaml")
	form, ok := store.Form("Card")
	if !ok {
		t.Fatalf("form Card not found")
	}
	if form.ListLabel != "Hand" {
		t.Fatalf("list label mismatch: %q", form.ListLabel)
	}
	if _, ok := store.Form("Point"); ok {
		t.Fatalf("unexpected Point form")
	}
}

func TestLoadFS_DuplicateForm(t *testing.T) {
	_, err := uischema.LoadFS(subDirFS(t, "invalid_duplicate"))
	if err == nil {
		t.Fatalf("expected duplicate form error")
	}
}

func TestLoadFS_Nil(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadPath_File(t *testing.T) {
	store, err := uischema.LoadPath(filepath.Join(testdataRoot(), "yaml", "card.yaml"))
	if err != nil {
		t.Fatalf("load path: %v", err)
	}
	if diff := cmp.Diff([]string{"Card"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, err := uischema.LoadPath(filepath.Join(testdataRoot(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEmbeddedFS(t *testing.T) {
	store, err := uischema.LoadFS(uischema.EmbeddedFS())
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if diff := cmp.Diff([]string{"Card", "Point"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_DecoratesResolvedFields(t *testing.T) {
	store := loadStore(t, "basic")

	fields, err := model.Resolve(samples.PointType, store)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	type summary struct {
		Name  string
		Label string
		Order int
	}
	var got []summary
	for _, f := range fields {
		got = append(got, summary{f.Name, f.Label, f.Order})
	}
	want := []summary{
		{"y", "Vertical & up", 1},
		{"x", "Horizontal", 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decorated fields mismatch (-want +got):\n%s", diff)
	}
	if samples.PointType.Fields[0].Label != "" {
		t.Fatalf("decorating must not mutate the descriptor")
	}
}

func loadStore(t *testing.T, subdir string) *uischema.Store {
	t.Helper()
	store, err := uischema.LoadFS(subDirFS(t, subdir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	base := os.DirFS(testdataRoot())
	fsys, err := fs.Sub(base, subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}

func testdataRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}
