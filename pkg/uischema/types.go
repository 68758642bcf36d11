package uischema

import "strings"

// Store keeps the parsed form overlays keyed by model type name. It is safe
// for concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]Form
}

// Form describes the overrides for one model type.
type Form struct {
	Name   string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig carries the captions of a form's window and buttons.
type FormConfig struct {
	Title       string `json:"title" yaml:"title"`
	SubmitLabel string `json:"submitLabel" yaml:"submitLabel"`
	DeleteLabel string `json:"deleteLabel" yaml:"deleteLabel"`
	DoneLabel   string `json:"doneLabel" yaml:"doneLabel"`
	ListLabel   string `json:"listLabel" yaml:"listLabel"`
	ClearOnAdd  *bool  `json:"clearOnAdd,omitempty" yaml:"clearOnAdd,omitempty"`
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	Order        *int   `json:"order,omitempty" yaml:"order,omitempty"`
	OriginalName string `json:"-" yaml:"-"`
}

// NormalizeFieldName trims a field key. Keys are matched case-sensitively
// against descriptor field names.
func NormalizeFieldName(name string) string {
	return strings.TrimSpace(name)
}
