package bubble

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/goliatone/go-formbind/pkg/surface"
)

// widget is one row of a canvas.
type widget interface {
	focusable() bool
}

// Canvas is a surface laid out as a vertical list of rows. Panels nest their
// rows under a heading.
type Canvas struct {
	label   string
	widgets []widget
}

var _ surface.Surface = (*Canvas)(nil)

func newCanvas(label string) *Canvas {
	return &Canvas{label: label}
}

func (c *Canvas) TextInput(label string) surface.TextInput {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = label
	w := &textWidget{label: label, input: input}
	c.widgets = append(c.widgets, w)
	return w
}

func (c *Canvas) Toggle(label string, initial bool) surface.Toggle {
	w := &toggleWidget{label: label, checked: initial}
	c.widgets = append(c.widgets, w)
	return w
}

func (c *Canvas) ChoiceList(label string, options []string) surface.ChoiceList {
	w := &choiceWidget{label: label, options: append([]string(nil), options...), selected: -1}
	if len(options) > 0 {
		w.selected = 0
	}
	c.widgets = append(c.widgets, w)
	return w
}

func (c *Canvas) Button(label string, onActivate func()) {
	c.widgets = append(c.widgets, &buttonWidget{label: label, activate: onActivate})
}

func (c *Canvas) Panel(label string) surface.Surface {
	child := newCanvas(label)
	c.widgets = append(c.widgets, &panelWidget{canvas: child})
	return child
}

func (c *Canvas) List(label string) surface.ListView {
	w := &listWidget{label: label, selected: -1}
	c.widgets = append(c.widgets, w)
	return w
}

type textWidget struct {
	label string
	input textinput.Model
}

func (w *textWidget) Text() string        { return w.input.Value() }
func (w *textWidget) SetText(text string) { w.input.SetValue(text) }
func (w *textWidget) focusable() bool     { return true }

type toggleWidget struct {
	label   string
	checked bool
}

func (w *toggleWidget) Checked() bool           { return w.checked }
func (w *toggleWidget) SetChecked(checked bool) { w.checked = checked }
func (w *toggleWidget) focusable() bool         { return true }

type choiceWidget struct {
	label    string
	options  []string
	selected int
}

func (w *choiceWidget) Selected() int { return w.selected }

func (w *choiceWidget) Select(index int) {
	if index < 0 || index >= len(w.options) {
		w.selected = -1
		return
	}
	w.selected = index
}

func (w *choiceWidget) focusable() bool { return len(w.options) > 0 }

// cycle moves the selection by delta, wrapping around.
func (w *choiceWidget) cycle(delta int) {
	n := len(w.options)
	if n == 0 {
		return
	}
	w.selected = ((w.selected+delta)%n + n) % n
}

type buttonWidget struct {
	label    string
	activate func()
}

func (w *buttonWidget) focusable() bool { return true }

type panelWidget struct {
	canvas *Canvas
}

func (w *panelWidget) focusable() bool { return false }

type listWidget struct {
	label    string
	entries  []string
	selected int
}

func (w *listWidget) Append(entry string) { w.entries = append(w.entries, entry) }

func (w *listWidget) RemoveAt(index int) {
	if index < 0 || index >= len(w.entries) {
		return
	}
	w.entries = append(w.entries[:index], w.entries[index+1:]...)
	switch {
	case w.selected == index:
		w.selected = -1
	case w.selected > index:
		w.selected--
	}
}

func (w *listWidget) Reset(entries []string) {
	w.entries = append([]string(nil), entries...)
	w.selected = -1
}

func (w *listWidget) Selected() int   { return w.selected }
func (w *listWidget) focusable() bool { return true }

// move shifts the selection within the entries; moving before the first
// entry clears it.
func (w *listWidget) move(delta int) {
	if len(w.entries) == 0 {
		w.selected = -1
		return
	}
	next := w.selected + delta
	switch {
	case next < -1:
		next = -1
	case next >= len(w.entries):
		next = len(w.entries) - 1
	}
	w.selected = next
}
