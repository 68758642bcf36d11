package model

import "errors"

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString      FieldType = "string"
	FieldTypeInteger     FieldType = "integer"
	FieldTypeNumber      FieldType = "number"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeChoice      FieldType = "choice"
	FieldTypeObject      FieldType = "object"
	FieldTypeUnsupported FieldType = "unsupported"
)

var (
	// ErrInvalidType is returned when a descriptor is nil or has no
	// constructor.
	ErrInvalidType = errors.New("model: invalid type descriptor")
	// ErrUnmarkedType is returned alongside the resolved fields when the root
	// type lacks the editable item marker. It is a warning, not a failure.
	ErrUnmarkedType = errors.New("model: type is not marked as an editable item")
	// ErrNoSetter signals a field that has no way to receive a value.
	ErrNoSetter = errors.New("model: field has no setter")
	// ErrNoGetter signals a field whose value cannot be read back.
	ErrNoGetter = errors.New("model: field has no getter")
	// ErrTypeMismatch is returned by typed setters when the supplied target or
	// value does not match the declared Go types.
	ErrTypeMismatch = errors.New("model: type mismatch")
)

// Kind is the closed set of field kinds a form knows how to edit. The
// unexported method keeps implementations inside this package; a nil Kind
// means the field is unsupported.
type Kind interface {
	FieldType() FieldType
	isKind()
}

// Text is a single-line string input.
type Text struct{}

// Number is a numeric input entered as text. Integer selects whole numbers.
// Bits is the bit size of the destination type; zero means int or float64.
type Number struct {
	Integer bool
	Bits    int
}

// Toggle is a two-state boolean input.
type Toggle struct{}

// Choice is a list of fixed options presented in declaration order.
type Choice struct {
	Options []Option
}

// Nested is an editable sub-object rendered as its own sub-form.
type Nested struct {
	Type *Type
}

// Option is a single entry of a Choice.
type Option struct {
	Label string
	Value any
}

func (Text) FieldType() FieldType { return FieldTypeString }

func (n Number) FieldType() FieldType {
	if n.Integer {
		return FieldTypeInteger
	}
	return FieldTypeNumber
}

func (Toggle) FieldType() FieldType { return FieldTypeBoolean }
func (Choice) FieldType() FieldType { return FieldTypeChoice }
func (Nested) FieldType() FieldType { return FieldTypeObject }

func (Text) isKind()   {}
func (Number) isKind() {}
func (Toggle) isKind() {}
func (Choice) isKind() {}
func (Nested) isKind() {}

// TypeOf reports the FieldType for a kind, treating nil as unsupported.
func TypeOf(kind Kind) FieldType {
	if kind == nil {
		return FieldTypeUnsupported
	}
	return kind.FieldType()
}

// Field describes one user-editable field of a model type: its display label,
// ordering key, kind and the accessors used to move values in and out of an
// instance. Set and Get receive the instance pointer produced by Type.New.
type Field struct {
	Name  string
	Label string
	Order int
	Kind  Kind
	Set   func(target, value any) error
	Get   func(target any) (any, error)
}

// Type describes a model type whose instances can be built from a form.
type Type struct {
	Name string
	// Marked is the editable item marker. Only marked types are composed into
	// sub-forms and only marked ancestors contribute inherited fields.
	Marked bool
	Parent *Ancestor
	// Fields lists the type's own fields in declaration order.
	Fields []Field
	// New returns a pointer to a fresh zero-configured instance.
	New func() any
}

// Ancestor links a type to the type it embeds. Project maps an instance of the
// child to the embedded ancestor instance.
type Ancestor struct {
	Type    *Type
	Project func(target any) any
}

// Item is implemented by non-struct types (for example enumerations) that
// carry the editable item marker.
type Item interface {
	FormItem()
}

// ItemMarker is embedded by struct types to mark them as editable items.
type ItemMarker struct{}

// FormItem implements Item.
func (ItemMarker) FormItem() {}

// Enum is implemented by enumeration-like types so their constants can be
// offered as a Choice. Values are returned in declaration order.
type Enum interface {
	FormOptions() []any
}
