package bubble

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// row is a widget flattened for display with its nesting depth.
type row struct {
	widget widget
	depth  int
}

type app struct {
	host    *Host
	window  *Window
	focus   int
	aborted bool
	width   int
}

func newApp(h *Host) *app {
	return &app{host: h}
}

func (m *app) Init() tea.Cmd {
	return func() tea.Msg { return dispatchMsg{} }
}

func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		m.host.drain()
		return m, m.sync()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if m.aborted {
			return m, tea.Quit
		}
		m.host.drain()
		return m, tea.Batch(cmd, m.sync())
	}

	return m, nil
}

// sync follows the active window and quits once none is left open.
func (m *app) sync() tea.Cmd {
	win := m.host.active()
	if win == nil {
		if len(m.host.windows) == 0 {
			return nil
		}
		return tea.Quit
	}
	if win != m.window {
		m.window = win
		m.focus = -1
		return m.moveFocus(1)
	}
	return nil
}

func (m *app) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return nil
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	focused := m.focused()
	switch w := focused.(type) {
	case *textWidget:
		if msg.String() == "enter" {
			return m.moveFocus(1)
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return cmd
	case *toggleWidget:
		if msg.String() == "enter" || msg.String() == " " {
			w.checked = !w.checked
		}
	case *choiceWidget:
		switch msg.String() {
		case "left", "h":
			w.cycle(-1)
		case "right", "l", "enter":
			w.cycle(1)
		}
	case *listWidget:
		switch msg.String() {
		case "left", "h":
			w.move(-1)
		case "right", "l":
			w.move(1)
		case "x":
			w.selected = -1
		}
	case *buttonWidget:
		if msg.String() == "enter" && w.activate != nil {
			w.activate()
		}
	}
	return nil
}

func (m *app) rows() []row {
	if m.window == nil {
		return nil
	}
	var out []row
	var walk func(c *Canvas, depth int)
	walk = func(c *Canvas, depth int) {
		for _, w := range c.widgets {
			out = append(out, row{widget: w, depth: depth})
			if panel, ok := w.(*panelWidget); ok {
				walk(panel.canvas, depth+1)
			}
		}
	}
	walk(m.window.Canvas, 0)
	return out
}

func (m *app) focused() widget {
	rows := m.rows()
	if m.focus < 0 || m.focus >= len(rows) {
		return nil
	}
	return rows[m.focus].widget
}

// moveFocus steps to the next focusable row in direction delta, wrapping
// around, and moves keyboard focus between text inputs.
func (m *app) moveFocus(delta int) tea.Cmd {
	rows := m.rows()
	if len(rows) == 0 {
		m.focus = -1
		return nil
	}
	if text, ok := m.focused().(*textWidget); ok {
		text.input.Blur()
	}

	next := m.focus
	for range rows {
		next = ((next+delta)%len(rows) + len(rows)) % len(rows)
		if rows[next].widget.focusable() {
			m.focus = next
			if text, ok := rows[next].widget.(*textWidget); ok {
				return text.input.Focus()
			}
			return nil
		}
	}
	m.focus = -1
	return nil
}

func (m *app) View() string {
	if m.window == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.window.label))
	b.WriteString("\n\n")

	for i, r := range m.rows() {
		line := m.render(r.widget)
		indent := strings.Repeat("  ", r.depth)
		if i == m.focus {
			line = selectedStyle.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(indent + line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("[tab] next  [enter] activate  [←/→] change  [x] clear selection  [esc] quit"))
	return b.String()
}

func (m *app) render(w widget) string {
	switch w := w.(type) {
	case *textWidget:
		return labelStyle.Render(w.label+": ") + w.input.View()
	case *toggleWidget:
		mark := "[ ]"
		if w.checked {
			mark = "[x]"
		}
		return labelStyle.Render(w.label+": ") + mark
	case *choiceWidget:
		if w.selected < 0 {
			return labelStyle.Render(w.label+": ") + dimStyle.Render("-")
		}
		return labelStyle.Render(w.label+": ") + "< " + w.options[w.selected] + " >"
	case *buttonWidget:
		return "[ " + w.label + " ]"
	case *panelWidget:
		return headingStyle.Render(w.canvas.label)
	case *listWidget:
		var b strings.Builder
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s (%d)", w.label, len(w.entries))))
		for i, entry := range w.entries {
			marker := "  "
			if i == w.selected {
				marker = "• "
			}
			b.WriteString("\n      " + marker + entry)
		}
		return b.String()
	default:
		return ""
	}
}
