package headless

import "github.com/goliatone/go-formbind/pkg/surface"

// Widget is any element placed on a Canvas.
type Widget interface {
	Label() string
}

// Canvas is an in-memory surface. Widgets are kept in creation order and can
// be looked up by label, which is how tests and scripted callers drive forms.
type Canvas struct {
	label   string
	widgets []Widget
}

var _ surface.Surface = (*Canvas)(nil)

// NewCanvas creates an empty canvas.
func NewCanvas(label string) *Canvas {
	return &Canvas{label: label}
}

// Label reports the canvas caption.
func (p *Canvas) Label() string { return p.label }

// Widgets returns the widgets in creation order.
func (p *Canvas) Widgets() []Widget {
	return append([]Widget(nil), p.widgets...)
}

func (p *Canvas) TextInput(label string) surface.TextInput {
	w := &Text{label: label}
	p.widgets = append(p.widgets, w)
	return w
}

func (p *Canvas) Toggle(label string, initial bool) surface.Toggle {
	w := &Toggle{label: label, checked: initial}
	p.widgets = append(p.widgets, w)
	return w
}

func (p *Canvas) ChoiceList(label string, options []string) surface.ChoiceList {
	w := &Choice{label: label, options: append([]string(nil), options...), selected: -1}
	if len(options) > 0 {
		w.selected = 0
	}
	p.widgets = append(p.widgets, w)
	return w
}

func (p *Canvas) Button(label string, onActivate func()) {
	p.widgets = append(p.widgets, &Button{label: label, onActivate: onActivate})
}

func (p *Canvas) Panel(label string) surface.Surface {
	child := NewCanvas(label)
	p.widgets = append(p.widgets, child)
	return child
}

func (p *Canvas) List(label string) surface.ListView {
	w := &List{label: label, selected: -1}
	p.widgets = append(p.widgets, w)
	return w
}

// FindText returns the first text input with the given label.
func (p *Canvas) FindText(label string) *Text { return find[*Text](p, label) }

// FindToggle returns the first toggle with the given label.
func (p *Canvas) FindToggle(label string) *Toggle { return find[*Toggle](p, label) }

// FindChoice returns the first choice list with the given label.
func (p *Canvas) FindChoice(label string) *Choice { return find[*Choice](p, label) }

// FindButton returns the first button with the given label.
func (p *Canvas) FindButton(label string) *Button { return find[*Button](p, label) }

// FindList returns the first list with the given label.
func (p *Canvas) FindList(label string) *List { return find[*List](p, label) }

// FindPanel returns the first embedded panel with the given label.
func (p *Canvas) FindPanel(label string) *Canvas { return find[*Canvas](p, label) }

// Press activates the button with the given label. It reports false when no
// such button exists.
func (p *Canvas) Press(label string) bool {
	button := p.FindButton(label)
	if button == nil {
		return false
	}
	button.Press()
	return true
}

func find[W Widget](p *Canvas, label string) W {
	var zero W
	if p == nil {
		return zero
	}
	for _, w := range p.widgets {
		if typed, ok := w.(W); ok && w.Label() == label {
			return typed
		}
	}
	return zero
}

// Text is an in-memory text input.
type Text struct {
	label string
	text  string
}

func (t *Text) Label() string       { return t.label }
func (t *Text) Text() string        { return t.text }
func (t *Text) SetText(text string) { t.text = text }

// Toggle is an in-memory checkbox.
type Toggle struct {
	label   string
	checked bool
}

func (t *Toggle) Label() string           { return t.label }
func (t *Toggle) Checked() bool           { return t.checked }
func (t *Toggle) SetChecked(checked bool) { t.checked = checked }

// Choice is an in-memory option list.
type Choice struct {
	label    string
	options  []string
	selected int
}

func (c *Choice) Label() string { return c.label }
func (c *Choice) Selected() int { return c.selected }

// Options returns the option captions in order.
func (c *Choice) Options() []string { return append([]string(nil), c.options...) }

// Select changes the selection; out of range indexes clear it.
func (c *Choice) Select(index int) {
	if index < 0 || index >= len(c.options) {
		c.selected = -1
		return
	}
	c.selected = index
}

// Button is an in-memory action.
type Button struct {
	label      string
	onActivate func()
}

func (b *Button) Label() string { return b.label }

// Press runs the button's activation callback.
func (b *Button) Press() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// List is an in-memory selectable list.
type List struct {
	label    string
	entries  []string
	selected int
}

func (l *List) Label() string { return l.label }

// Entries returns the displayed entries in order.
func (l *List) Entries() []string { return append([]string(nil), l.entries...) }

func (l *List) Append(entry string) { l.entries = append(l.entries, entry) }

func (l *List) RemoveAt(index int) {
	if index < 0 || index >= len(l.entries) {
		return
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	switch {
	case l.selected == index:
		l.selected = -1
	case l.selected > index:
		l.selected--
	}
}

func (l *List) Reset(entries []string) {
	l.entries = append([]string(nil), entries...)
	l.selected = -1
}

func (l *List) Selected() int { return l.selected }

// SelectIndex selects an entry; out of range indexes clear the selection.
func (l *List) SelectIndex(index int) {
	if index < 0 || index >= len(l.entries) {
		l.selected = -1
		return
	}
	l.selected = index
}
