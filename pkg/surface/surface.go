package surface

// Surface is the set of capabilities a form engine needs from a widget
// toolkit. Every method is called on the toolkit's UI loop; implementations
// do not need to synchronise beyond that.
type Surface interface {
	// TextInput creates a single-line text input.
	TextInput(label string) TextInput
	// Toggle creates a two-state input with the given initial state.
	Toggle(label string, initial bool) Toggle
	// ChoiceList creates a list of options. The first option starts selected.
	ChoiceList(label string, options []string) ChoiceList
	// Button creates an action. onActivate runs on the UI loop.
	Button(label string, onActivate func())
	// Panel embeds a child surface, used for nested sub-forms.
	Panel(label string) Surface
	// List creates a selectable list of entries.
	List(label string) ListView
}

// TextInput is a text entry handle.
type TextInput interface {
	Text() string
	SetText(text string)
}

// Toggle is a checkbox handle.
type Toggle interface {
	Checked() bool
	SetChecked(checked bool)
}

// ChoiceList is a single-selection option list. Selected returns -1 when
// nothing is selected.
type ChoiceList interface {
	Selected() int
	Select(index int)
}

// ListView is an ordered list of display entries with at most one selected
// entry. Selected returns -1 when nothing is selected.
type ListView interface {
	Append(entry string)
	RemoveAt(index int)
	Reset(entries []string)
	Selected() int
}

// Host owns the UI loop and creates top-level windows.
type Host interface {
	// Dispatch schedules fn on the UI loop and returns without waiting.
	Dispatch(fn func())
	// Window creates a top-level surface. It must be called on the UI loop.
	Window(title string) Window
}

// Window is a top-level surface that can be torn down.
type Window interface {
	Surface
	Close()
}
