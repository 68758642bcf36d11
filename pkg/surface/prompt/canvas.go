package prompt

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/surface"
)

// widget is one menu entry of a canvas.
type widget interface {
	entry() string
}

// Canvas is a surface rendered as a menu: every widget is one entry and
// picking an entry edits or activates it.
type Canvas struct {
	label   string
	widgets []widget
}

var _ surface.Surface = (*Canvas)(nil)

func newCanvas(label string) *Canvas {
	return &Canvas{label: label}
}

func (c *Canvas) TextInput(label string) surface.TextInput {
	w := &textWidget{label: label}
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

// entries numbers the menu lines so identical captions stay distinct.
func (c *Canvas) entries() []string {
	out := make([]string, 0, len(c.widgets))
	for i, w := range c.widgets {
		out = append(out, fmt.Sprintf("%d) %s", i+1, w.entry()))
	}
	return out
}

type textWidget struct {
	label string
	text  string
}

func (w *textWidget) Text() string        { return w.text }
func (w *textWidget) SetText(text string) { w.text = text }
func (w *textWidget) entry() string       { return fmt.Sprintf("%s: %s", w.label, w.text) }

type toggleWidget struct {
	label   string
	checked bool
}

func (w *toggleWidget) Checked() bool           { return w.checked }
func (w *toggleWidget) SetChecked(checked bool) { w.checked = checked }

func (w *toggleWidget) entry() string {
	mark := " "
	if w.checked {
		mark = "x"
	}
	return fmt.Sprintf("%s: [%s]", w.label, mark)
}

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

func (w *choiceWidget) entry() string {
	if w.selected < 0 {
		return w.label + ": -"
	}
	return fmt.Sprintf("%s: %s", w.label, w.options[w.selected])
}

type buttonWidget struct {
	label    string
	activate func()
}

func (w *buttonWidget) entry() string { return "[" + w.label + "]" }

type panelWidget struct {
	canvas *Canvas
}

func (w *panelWidget) entry() string { return w.canvas.label + " >" }

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

func (w *listWidget) Selected() int { return w.selected }

func (w *listWidget) entry() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)", w.label, len(w.entries))
	if w.selected >= 0 {
		fmt.Fprintf(&b, ": %s", w.entries[w.selected])
	}
	return b.String()
}
