package form_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	reflectmodel "github.com/goliatone/go-formbind/internal/model"
	"github.com/goliatone/go-formbind/internal/samples"
	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/surface/headless"
)

func newPointForm(t *testing.T, opts ...form.Option) (*form.Engine, *headless.Canvas) {
	t.Helper()
	canvas := headless.NewCanvas("root")
	engine, err := form.New(samples.PointType, canvas, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine, canvas
}

func TestEngine_SubmitBuildsPoint(t *testing.T) {
	engine, canvas := newPointForm(t)
	if engine.State() != form.StateReady {
		t.Fatalf("expected ready state, got %s", engine.State())
	}

	canvas.FindText("x").SetText("3.5")
	canvas.FindText("y").SetText("-2")
	if !canvas.Press("Add Item") {
		t.Fatalf("submit button missing")
	}

	got := form.ItemsOf[*samples.Point](engine)
	want := []*samples.Point{{X: 3.5, Y: -2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"(3.5, -2.0)"}, canvas.FindList("Items").Entries()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if canvas.FindText("x").Text() != "3.5" {
		t.Fatalf("inputs must keep their values after submit")
	}
}

func TestEngine_SubmitAppendsEachTime(t *testing.T) {
	engine, canvas := newPointForm(t)
	for i := 0; i < 3; i++ {
		canvas.Press("Add Item")
	}
	items := engine.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0] == items[1] {
		t.Fatalf("each submit must build a fresh instance")
	}
	if len(canvas.FindList("Items").Entries()) != 3 {
		t.Fatalf("list must mirror the working set")
	}
}

func TestEngine_ExtractFieldValue(t *testing.T) {
	engine, canvas := newPointForm(t)

	cases := []struct {
		text string
		want any
	}{
		{text: "abc", want: float64(0)},
		{text: "", want: float64(0)},
		{text: " 1.5 ", want: 1.5},
		{text: "1e3", want: float64(1000)},
	}
	for _, tc := range cases {
		canvas.FindText("x").SetText(tc.text)
		if got := engine.ExtractFieldValue(0); got != tc.want {
			t.Fatalf("ExtractFieldValue(%q) = %#v, want %#v", tc.text, got, tc.want)
		}
	}
	if got := engine.ExtractFieldValue(7); got != nil {
		t.Fatalf("out of range index should yield nil, got %v", got)
	}
}

func TestEngine_ReflectedCardWithNestedPiece(t *testing.T) {
	typ, err := reflectmodel.New(reflectmodel.Options{}).Build(reflect.TypeOf(samples.Card{}))
	if err != nil {
		t.Fatalf("build card type: %v", err)
	}
	canvas := headless.NewCanvas("root")
	engine, err := form.New(typ, canvas)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	canvas.FindText("Enter the rank").SetText("Queen")
	canvas.FindText("Enter the suit").SetText("Hearts")
	if canvas.FindPanel("piece") == nil {
		t.Fatalf("nested piece should get its own panel")
	}
	if nested, ok := engine.Bindings()[2].Nested(); !ok || len(nested.Fields()) != 0 {
		t.Fatalf("piece binding should be an empty nested form")
	}
	canvas.Press("Add Item")

	cards := form.ItemsOf[*samples.Card](engine)
	if len(cards) != 1 {
		t.Fatalf("expected one card, got %d", len(cards))
	}
	if got := cards[0].String(); got != "Queen of Hearts with piece: PAWN" {
		t.Fatalf("unexpected card %q", got)
	}
}

func TestEngine_DeleteSelected(t *testing.T) {
	engine, canvas := newPointForm(t)
	canvas.FindText("x").SetText("1")
	canvas.Press("Add Item")
	canvas.FindText("x").SetText("2")
	canvas.Press("Add Item")

	canvas.Press("Delete Selected Item")
	if len(engine.Items()) != 2 {
		t.Fatalf("delete without a selection must be a no-op")
	}

	list := canvas.FindList("Items")
	list.SelectIndex(0)
	canvas.Press("Delete Selected Item")

	got := form.ItemsOf[*samples.Point](engine)
	if len(got) != 1 || got[0].X != 2 {
		t.Fatalf("unexpected remaining items %v", got)
	}
	if diff := cmp.Diff([]string{"(2.0, 0.0)"}, list.Entries()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_SetItemsAndRemove(t *testing.T) {
	engine, canvas := newPointForm(t)
	engine.SetItems([]any{&samples.Point{X: 1}, &samples.Point{Y: 1}})

	if diff := cmp.Diff([]string{"(1.0, 0.0)", "(0.0, 1.0)"}, canvas.FindList("Items").Entries()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	entries := engine.Entries()
	if entries[0].ID == entries[1].ID {
		t.Fatalf("entries must carry distinct identifiers")
	}
	if !engine.Remove(entries[0].ID) {
		t.Fatalf("remove by id failed")
	}
	if engine.Remove(entries[0].ID) {
		t.Fatalf("second remove of the same id must fail")
	}
	if len(engine.Items()) != 1 {
		t.Fatalf("expected one item left, got %d", len(engine.Items()))
	}
}

func TestEngine_ItemsIsSnapshot(t *testing.T) {
	engine, canvas := newPointForm(t)
	canvas.Press("Add Item")

	items := engine.Items()
	items[0] = nil
	if engine.Items()[0] == nil {
		t.Fatalf("Items must return a copy")
	}
}

func TestEngine_FillRoundTrip(t *testing.T) {
	engine, canvas := newPointForm(t)
	if err := engine.Fill(&samples.Point{X: 1.25, Y: 4}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if canvas.FindText("x").Text() != "1.25" || canvas.FindText("y").Text() != "4" {
		t.Fatalf("unexpected inputs %q %q", canvas.FindText("x").Text(), canvas.FindText("y").Text())
	}

	got := engine.BuildInstance()
	if diff := cmp.Diff(&samples.Point{X: 1.25, Y: 4}, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

type settings struct {
	Name    string
	Size    int
	Enabled bool
	Suit    string
}

func settingsType() *model.Type {
	return model.Define[settings]("settings", []model.Field{
		model.Unsupported("blob"),
		model.String("name", func(s *settings) string { return s.Name }, func(s *settings, v string) { s.Name = v }),
		model.Int("size", func(s *settings) int { return s.Size }, func(s *settings, v int) { s.Size = v }),
		model.Bool("enabled", func(s *settings) bool { return s.Enabled }, func(s *settings, v bool) { s.Enabled = v }),
		model.Select("suit", samples.Suits, func(s *settings) string { return s.Suit }, func(s *settings, v string) { s.Suit = v }),
	}, model.Marked())
}

func TestEngine_InputKinds(t *testing.T) {
	canvas := headless.NewCanvas("root")
	engine, err := form.New(settingsType(), canvas)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	bindings := engine.Bindings()
	if len(bindings) != 5 || bindings[0].Supported() {
		t.Fatalf("unsupported field must keep an empty binding slot: %+v", bindings)
	}
	if engine.ExtractFieldValue(0) != nil {
		t.Fatalf("unsupported field must yield nil")
	}

	canvas.FindText("name").SetText("  spaced  ")
	canvas.FindText("size").SetText("12")
	canvas.FindToggle("enabled").SetChecked(true)
	canvas.FindChoice("suit").Select(2)

	if got := engine.ExtractFieldValue(1); got != "  spaced  " {
		t.Fatalf("text values are not trimmed, got %q", got)
	}
	got := engine.BuildInstance().(*settings)
	want := &settings{Name: "  spaced  ", Size: 12, Enabled: true, Suit: "Hearts"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("instance mismatch (-want +got):\n%s", diff)
	}

	if err := engine.Fill(&settings{Suit: "Spades", Size: 3}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if canvas.FindChoice("suit").Selected() != 3 || canvas.FindToggle("enabled").Checked() {
		t.Fatalf("fill did not update choice and toggle")
	}
	if err := engine.Fill(&settings{Suit: "Stars"}); !errors.Is(err, model.ErrTypeMismatch) {
		t.Fatalf("expected mismatch for unknown option, got %v", err)
	}
}

type gauge struct {
	model.ItemMarker
	Level int8    `form:""`
	Count int64   `form:""`
	Ratio float32 `form:""`
}

func TestEngine_NarrowNumbersOutOfRangeYieldZero(t *testing.T) {
	typ, err := reflectmodel.New(reflectmodel.Options{}).Build(reflect.TypeOf(gauge{}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	canvas := headless.NewCanvas("root")
	engine, err := form.New(typ, canvas)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	cases := []struct {
		level, count, ratio string
		want                *gauge
	}{
		{level: "300", count: "99999999999999999999", ratio: "1e40", want: &gauge{}},
		{level: "-128", count: "-9000000000", ratio: " 2.5 ", want: &gauge{Level: -128, Count: -9000000000, Ratio: 2.5}},
		{level: "127", count: "x", ratio: "-1e39", want: &gauge{Level: 127}},
	}
	for _, tc := range cases {
		canvas.FindText("Level").SetText(tc.level)
		canvas.FindText("Count").SetText(tc.count)
		canvas.FindText("Ratio").SetText(tc.ratio)
		canvas.Press("Add Item")
	}

	got := form.ItemsOf[*gauge](engine)
	want := make([]*gauge, 0, len(cases))
	for _, tc := range cases {
		want = append(want, tc.want)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_ConstructionFailureSkipsSubmit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	typ := model.Define[settings]("broken", nil, model.Marked())
	typ.New = func() any { panic("no instances today") }

	canvas := headless.NewCanvas("root")
	engine, err := form.New(typ, canvas, form.WithLogger(logger))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	canvas.Press("Add Item")
	if len(engine.Items()) != 0 {
		t.Fatalf("failed construction must not append")
	}
	if !strings.Contains(buf.String(), "instance construction failed") {
		t.Fatalf("expected construction error log, got %q", buf.String())
	}
}

func TestEngine_SetterFailureStillAppends(t *testing.T) {
	typ := model.Define[settings]("settings", []model.Field{
		{
			Name: "name",
			Kind: model.Text{},
			Set:  func(any, any) error { return model.ErrNoSetter },
		},
	}, model.Marked())
	canvas := headless.NewCanvas("root")
	engine, err := form.New(typ, canvas, form.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	canvas.Press("Add Item")
	if len(engine.Items()) != 1 {
		t.Fatalf("setter failure leaves the field unset but still appends")
	}
}

func TestEngine_UnmarkedTypeWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	typ := model.Define[settings]("settings", []model.Field{
		model.String("name", func(s *settings) string { return s.Name }, func(s *settings, v string) { s.Name = v }),
	})

	canvas := headless.NewCanvas("root")
	if _, err := form.New(typ, canvas, form.WithLogger(logger)); err != nil {
		t.Fatalf("unmarked types still bind: %v", err)
	}
	if canvas.FindText("name") == nil {
		t.Fatalf("expected name input")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

type node struct {
	model.ItemMarker
	Name string `form:""`
	Next *node  `form:""`
}

func TestEngine_RecursiveNestedTypeIsCut(t *testing.T) {
	typ, err := reflectmodel.New(reflectmodel.Options{}).Build(reflect.TypeOf(node{}))
	if err != nil {
		t.Fatalf("build node type: %v", err)
	}
	canvas := headless.NewCanvas("root")
	engine, err := form.New(typ, canvas, form.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if engine.Bindings()[1].Supported() {
		t.Fatalf("self-referencing field must not get an input")
	}
	if canvas.FindPanel("Next") != nil {
		t.Fatalf("no panel expected for the recursive field")
	}

	canvas.FindText("Name").SetText("head")
	canvas.Press("Add Item")
	got := form.ItemsOf[*node](engine)
	if len(got) != 1 || got[0].Name != "head" || got[0].Next != nil {
		t.Fatalf("unexpected node %+v", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	canvas := headless.NewCanvas("root")
	if _, err := form.New(nil, canvas); !errors.Is(err, form.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if _, err := form.New(samples.PointType, nil); !errors.Is(err, form.ErrNilSurface) {
		t.Fatalf("expected ErrNilSurface, got %v", err)
	}
	if _, err := form.Open(nil, samples.PointType); !errors.Is(err, form.ErrNilHost) {
		t.Fatalf("expected ErrNilHost, got %v", err)
	}
}

func TestEngine_CaptionOptions(t *testing.T) {
	_, canvas := newPointForm(t,
		form.WithSubmitLabel("Save"),
		form.WithDeleteLabel("Drop"),
		form.WithListLabel("Saved"),
		form.WithLabeler(model.HumanLabel),
		form.WithItemLabeler(func(item any) string { return "point" }),
	)
	if canvas.FindButton("Save") == nil || canvas.FindButton("Drop") == nil {
		t.Fatalf("custom captions not applied")
	}
	if canvas.FindText("X") == nil {
		t.Fatalf("labeler not applied")
	}
	canvas.Press("Save")
	if diff := cmp.Diff([]string{"point"}, canvas.FindList("Saved").Entries()); diff != "" {
		t.Fatalf("item labeler mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_WaitOnEmbeddedEngine(t *testing.T) {
	var buf bytes.Buffer
	engine, _ := newPointForm(t, form.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	items, err := engine.WaitForCompletion(context.Background())
	if !errors.Is(err, form.ErrEmbedded) || items != nil {
		t.Fatalf("expected ErrEmbedded, got %v %v", items, err)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected error log, got %q", buf.String())
	}
}

func TestEngine_StandaloneCompletion(t *testing.T) {
	host := headless.NewHost()
	defer host.Stop()

	engine, err := form.Open(host, samples.PointType)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var title string
	host.Do(func() {
		win := host.Windows()[0]
		title = win.Title()
		win.FindText("x").SetText("3.5")
		win.FindText("y").SetText("-2")
		win.Press("Add Item")
		win.Press("DONE")
	})
	if title != "Input Point" {
		t.Fatalf("unexpected window title %q", title)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	items, err := engine.WaitForCompletion(ctx)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if diff := cmp.Diff([]any{&samples.Point{X: 3.5, Y: -2}}, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if engine.State() != form.StateDone {
		t.Fatalf("expected done state, got %s", engine.State())
	}

	var closed bool
	host.Do(func() { closed = host.Windows()[0].Closed() })
	if !closed {
		t.Fatalf("window must be torn down after completion")
	}
}

func TestEngine_CompletionBeforeWait(t *testing.T) {
	host := headless.NewHost()
	defer host.Stop()

	engine, err := form.Open(host, samples.PointType)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	host.Do(func() {
		win := host.Windows()[0]
		win.Press("DONE")
		win.Press("DONE")
	})

	items, err := engine.WaitForCompletion(context.Background())
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty result, got %v %v", items, err)
	}
}

func TestEngine_WaitCancelled(t *testing.T) {
	host := headless.NewHost()
	defer host.Stop()

	engine, err := form.Open(host, samples.PointType)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	host.Do(func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := engine.WaitForCompletion(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if engine.State() != form.StateReady {
		t.Fatalf("cancelled wait should return to ready, got %s", engine.State())
	}
}
