package form

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/surface"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Binding pairs a resolved field with the input generated for it. Fields
// without a matching widget keep a Binding with an empty Widget so bindings
// stay aligned with Fields.
type Binding struct {
	Field  model.Field
	Label  string
	Widget string
	input  input
}

// Supported reports whether an input was generated for the field.
func (b Binding) Supported() bool {
	return b.input != nil
}

// Nested returns the sub-form engine of a nested binding.
func (b Binding) Nested() (*Engine, bool) {
	in, ok := b.input.(nestedInput)
	if !ok {
		return nil, false
	}
	return in.engine, true
}

// input is the closed set of input variants an engine reads and writes.
type input interface {
	isInput()
}

type textInput struct {
	widget surface.TextInput
	number *model.Number
}

type toggleInput struct {
	widget surface.Toggle
}

type choiceInput struct {
	widget  surface.ChoiceList
	options []model.Option
}

type nestedInput struct {
	engine *Engine
}

func (textInput) isInput()   {}
func (toggleInput) isInput() {}
func (choiceInput) isInput() {}
func (nestedInput) isInput() {}

// bind creates the input for field on s using the widget registry.
func (e *Engine) bind(s surface.Surface, field model.Field, path []*model.Type) Binding {
	label := model.DisplayLabel(field, e.cfg.labeler)
	b := Binding{Field: field, Label: label}
	log := e.logger.With("field", field.Name)

	widget, ok := e.cfg.registry.Resolve(field)
	if !ok {
		log.Debug("form: no widget for field; skipping", "field_type", model.TypeOf(field.Kind))
		return b
	}

	switch widget {
	case widgets.WidgetText:
		in := textInput{widget: s.TextInput(label)}
		if number, ok := field.Kind.(model.Number); ok {
			in.number = &number
		}
		b.input = in
	case widgets.WidgetToggle:
		b.input = toggleInput{widget: s.Toggle(label, false)}
	case widgets.WidgetChoice:
		choice, ok := field.Kind.(model.Choice)
		if !ok {
			log.Warn("form: choice widget selected for a field without options", "field_type", model.TypeOf(field.Kind))
			return b
		}
		labels := make([]string, 0, len(choice.Options))
		for _, option := range choice.Options {
			labels = append(labels, option.Label)
		}
		b.input = choiceInput{widget: s.ChoiceList(label, labels), options: choice.Options}
	case widgets.WidgetNested:
		nested, ok := field.Kind.(model.Nested)
		if !ok || nested.Type == nil {
			log.Warn("form: nested widget selected for a field without a nested type", "field_type", model.TypeOf(field.Kind))
			return b
		}
		if slices.Contains(path, nested.Type) {
			log.Warn("form: recursive nested type; field left without an input", "nested", nested.Type.Name)
			return b
		}
		child, err := newEngineWith(nested.Type, e.cfg)
		if err != nil {
			log.Error("form: nested form could not be built", "nested", nested.Type.Name, "error", err)
			return b
		}
		child.nested = true
		child.build(s.Panel(label), path)
		b.input = nestedInput{engine: child}
	default:
		log.Warn("form: unknown widget; field left without an input", "widget", widget)
		return b
	}

	b.Widget = widget
	log.Debug("form: input created", "widget", widget, "label", label)
	return b
}

// ExtractFieldValue reads the input bound to the field at index and converts
// it to the field's value type: trimmed text parsed as int or float64 for
// numbers (0 when unparseable), raw text for strings, the toggle state, the
// selected option value, or a freshly built sub-instance. It returns nil for
// unsupported fields and out-of-range indexes.
func (e *Engine) ExtractFieldValue(index int) any {
	if index < 0 || index >= len(e.bindings) {
		return nil
	}
	b := e.bindings[index]
	switch in := b.input.(type) {
	case textInput:
		text := in.widget.Text()
		if in.number == nil {
			return text
		}
		return parseNumber(strings.TrimSpace(text), *in.number)
	case toggleInput:
		return in.widget.Checked()
	case choiceInput:
		selected := in.widget.Selected()
		if selected < 0 || selected >= len(in.options) {
			return nil
		}
		return in.options[selected].Value
	case nestedInput:
		return in.engine.BuildInstance()
	default:
		return nil
	}
}

// parseNumber parses text within the bit size of the destination type. Out
// of range values fail like any other parse error and yield zero.
func parseNumber(text string, number model.Number) any {
	if number.Integer {
		if number.Bits == 0 {
			v, err := strconv.Atoi(text)
			if err != nil {
				return 0
			}
			return v
		}
		v, err := strconv.ParseInt(text, 10, number.Bits)
		if err != nil {
			return int64(0)
		}
		return v
	}
	bits := number.Bits
	if bits == 0 {
		bits = 64
	}
	v, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return float64(0)
	}
	return v
}

// BuildInstance constructs a new instance of the bound type and applies every
// supported field's current value. A failing setter is logged and the field
// is left unset. It returns nil when construction itself fails.
func (e *Engine) BuildInstance() any {
	instance, err := e.construct()
	if err != nil {
		e.logger.Error("form: instance construction failed", "error", err)
		return nil
	}

	for i, field := range e.fields {
		value := e.ExtractFieldValue(i)
		if value == nil {
			continue
		}
		if err := assign(field, instance, value); err != nil {
			e.logger.Error("form: field could not be set", "field", field.Name, "error", err)
		}
	}
	return instance
}

func (e *Engine) construct() (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance, err = nil, fmt.Errorf("%w: %v", ErrConstruct, r)
		}
	}()
	instance = e.typ.New()
	if instance == nil {
		return nil, fmt.Errorf("%w: constructor returned nil", ErrConstruct)
	}
	return instance, nil
}

func assign(field model.Field, target, value any) (err error) {
	if field.Set == nil {
		return model.ErrNoSetter
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q panicked: %v", ErrSetField, field.Name, r)
		}
	}()
	return field.Set(target, value)
}

// Fill writes the field values of instance into the inputs, the reverse of
// BuildInstance. Fields without an input or a getter are skipped; read
// failures are joined into the returned error.
func (e *Engine) Fill(instance any) error {
	var errs []error
	for _, b := range e.bindings {
		if b.input == nil || b.Field.Get == nil {
			continue
		}
		value, err := read(b.Field, instance)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := b.fill(value); err != nil {
			errs = append(errs, fmt.Errorf("form: fill %q: %w", b.Field.Name, err))
		}
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		e.logger.Warn("form: fill incomplete", "error", err)
		return err
	}
	return nil
}

func read(field model.Field, target any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("form: read %q panicked: %v", field.Name, r)
		}
	}()
	return field.Get(target)
}

func (b Binding) fill(value any) error {
	switch in := b.input.(type) {
	case textInput:
		in.widget.SetText(formatText(value))
	case toggleInput:
		checked, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: want bool, got %T", model.ErrTypeMismatch, value)
		}
		in.widget.SetChecked(checked)
	case choiceInput:
		index := optionIndex(in.options, value)
		if index < 0 {
			return fmt.Errorf("%w: %v is not an option", model.ErrTypeMismatch, value)
		}
		in.widget.Select(index)
	case nestedInput:
		target := addressable(value)
		if target == nil {
			return nil
		}
		return in.engine.Fill(target)
	}
	return nil
}

func formatText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

func optionIndex(options []model.Option, value any) int {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return -1
	}
	return slices.IndexFunc(options, func(o model.Option) bool {
		return o.Value != nil && reflect.TypeOf(o.Value) == reflect.TypeOf(value) && o.Value == value
	})
}

// addressable returns a pointer to value when it is not one already; field
// accessors operate on instance pointers.
func addressable(value any) any {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return value
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	return ptr.Interface()
}
