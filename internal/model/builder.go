package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
	"unsafe"

	pkgmodel "github.com/goliatone/go-formbind/pkg/model"
)

var (
	markerType = reflect.TypeOf(pkgmodel.ItemMarker{})
	itemType   = reflect.TypeOf((*pkgmodel.Item)(nil)).Elem()
	enumType   = reflect.TypeOf((*pkgmodel.Enum)(nil)).Elem()
)

// Builder converts Go types annotated with `form` struct tags into type
// descriptors. Descriptors are cached per Go type so self-referential types
// terminate; the cache makes a Builder safe to reuse across calls.
type Builder struct {
	opts  Options
	mu    sync.Mutex
	cache map[reflect.Type]*pkgmodel.Type
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.TagName != "" {
		opts.TagName = options.TagName
	}
	return &Builder{
		opts:  opts,
		cache: make(map[reflect.Type]*pkgmodel.Type),
	}
}

// Build returns the descriptor for rt. Pointer types are dereferenced; the
// descriptor constructs pointers to the underlying type.
//
// Tag syntax is `form:"<label>,order=<n>"`. An empty tag marks the field as
// editable with defaults, `form:"-"` skips it. Struct types are marked when
// they embed pkgmodel.ItemMarker directly; other named types are marked when
// they implement pkgmodel.Item. The first embedded struct becomes the parent.
func (b *Builder) Build(rt reflect.Type) (*pkgmodel.Type, error) {
	if rt == nil {
		return nil, fmt.Errorf("model builder: %w: nil reflect type", pkgmodel.ErrInvalidType)
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	pending := make(map[reflect.Type]struct{})
	typ, err := b.build(rt, pending)
	if err != nil {
		for key := range pending {
			delete(b.cache, key)
		}
		return nil, err
	}
	return typ, nil
}

func (b *Builder) build(rt reflect.Type, pending map[reflect.Type]struct{}) (*pkgmodel.Type, error) {
	if cached, ok := b.cache[rt]; ok {
		return cached, nil
	}

	typ := &pkgmodel.Type{
		Name:   typeName(rt),
		Marked: isMarked(rt),
		New: func() any {
			return reflect.New(rt).Interface()
		},
	}
	b.cache[rt] = typ
	pending[rt] = struct{}{}

	if rt.Kind() != reflect.Struct {
		return typ, nil
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous {
			if sf.Type == markerType || typ.Parent != nil || sf.Type.Kind() != reflect.Struct {
				continue
			}
			parent, err := b.build(sf.Type, pending)
			if err != nil {
				return nil, err
			}
			typ.Parent = &pkgmodel.Ancestor{Type: parent, Project: projector(sf.Index)}
			continue
		}

		tag, ok := sf.Tag.Lookup(b.opts.TagName)
		if !ok || tag == "-" {
			continue
		}
		label, order, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("model builder: field %s.%s: %w", typ.Name, sf.Name, err)
		}

		kind, err := b.kindOf(sf.Type, pending)
		if err != nil {
			return nil, err
		}

		field := pkgmodel.Field{
			Name:  sf.Name,
			Label: label,
			Order: order,
			Kind:  kind,
		}
		field.Set, field.Get = accessors(sf)
		typ.Fields = append(typ.Fields, field)
	}

	return typ, nil
}

// kindOf applies the widget precedence: predeclared text-like types, booleans,
// marked nested types, enumerations, then named types over a text-like or
// boolean underlying kind.
func (b *Builder) kindOf(ft reflect.Type, pending map[reflect.Type]struct{}) (pkgmodel.Kind, error) {
	if ft.PkgPath() == "" && ft.Name() != "" {
		if kind := primitiveKind(ft); kind != nil {
			return kind, nil
		}
	}

	elem := ft
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if isMarked(elem) {
		nested, err := b.build(elem, pending)
		if err != nil {
			return nil, err
		}
		return pkgmodel.Nested{Type: nested}, nil
	}

	if options, ok := enumOptions(ft); ok {
		return pkgmodel.Choice{Options: options}, nil
	}

	return primitiveKind(ft), nil
}

func primitiveKind(ft reflect.Type) pkgmodel.Kind {
	switch ft.Kind() {
	case reflect.String:
		return pkgmodel.Text{}
	case reflect.Int:
		return pkgmodel.Number{Integer: true}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return pkgmodel.Number{Integer: true, Bits: ft.Bits()}
	case reflect.Float32:
		return pkgmodel.Number{Bits: 32}
	case reflect.Float64:
		return pkgmodel.Number{}
	case reflect.Bool:
		return pkgmodel.Toggle{}
	default:
		return nil
	}
}

func enumOptions(ft reflect.Type) ([]pkgmodel.Option, bool) {
	var enum pkgmodel.Enum
	switch {
	case ft.Implements(enumType):
		enum, _ = reflect.Zero(ft).Interface().(pkgmodel.Enum)
	case reflect.PointerTo(ft).Implements(enumType):
		enum, _ = reflect.New(ft).Interface().(pkgmodel.Enum)
	}
	if enum == nil {
		return nil, false
	}
	values := enum.FormOptions()
	options := make([]pkgmodel.Option, 0, len(values))
	for _, value := range values {
		options = append(options, pkgmodel.Option{Label: fmt.Sprint(value), Value: value})
	}
	return options, true
}

func isMarked(rt reflect.Type) bool {
	if rt.Kind() == reflect.Struct {
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if sf.Anonymous && sf.Type == markerType {
				return true
			}
		}
		return false
	}
	if rt.Name() == "" {
		return false
	}
	return rt.Implements(itemType) || reflect.PointerTo(rt).Implements(itemType)
}

func typeName(rt reflect.Type) string {
	if name := rt.Name(); name != "" {
		return name
	}
	return rt.String()
}

func parseTag(tag string) (string, int, error) {
	var (
		labelParts []string
		order      int
	)
	for _, segment := range strings.Split(tag, ",") {
		trimmed := strings.TrimSpace(segment)
		if value, ok := strings.CutPrefix(trimmed, "order="); ok {
			parsed, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return "", 0, fmt.Errorf("invalid order %q", value)
			}
			order = parsed
			continue
		}
		labelParts = append(labelParts, segment)
	}
	return strings.TrimSpace(strings.Join(labelParts, ",")), order, nil
}

func projector(index []int) func(any) any {
	return func(target any) any {
		v := reflect.ValueOf(target)
		if v.Kind() != reflect.Pointer || v.IsNil() {
			return nil
		}
		fv := v.Elem().FieldByIndex(index)
		if !fv.CanInterface() {
			// embedded unexported structs are read-only through reflection
			fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
		}
		return fv.Addr().Interface()
	}
}

func accessors(sf reflect.StructField) (func(target, value any) error, func(target any) (any, error)) {
	index, name := sf.Index, sf.Name
	if sf.IsExported() {
		set := func(target, value any) error {
			fv, err := fieldValue(target, index, name)
			if err != nil {
				return err
			}
			converted, ok := coerce(reflect.ValueOf(value), fv.Type())
			if !ok {
				return fmt.Errorf("%w: field %q value %T", pkgmodel.ErrTypeMismatch, name, value)
			}
			fv.Set(converted)
			return nil
		}
		get := func(target any) (any, error) {
			fv, err := fieldValue(target, index, name)
			if err != nil {
				return nil, err
			}
			return fv.Interface(), nil
		}
		return set, get
	}

	exported := capitalize(name)
	set := func(target, value any) error {
		method, err := methodOf(target, "Set"+exported)
		if err != nil {
			return fmt.Errorf("%w: field %q", pkgmodel.ErrNoSetter, name)
		}
		if method.Type().NumIn() != 1 {
			return fmt.Errorf("%w: field %q setter arity %d", pkgmodel.ErrNoSetter, name, method.Type().NumIn())
		}
		arg, ok := coerce(reflect.ValueOf(value), method.Type().In(0))
		if !ok {
			return fmt.Errorf("%w: field %q value %T", pkgmodel.ErrTypeMismatch, name, value)
		}
		method.Call([]reflect.Value{arg})
		return nil
	}
	get := func(target any) (any, error) {
		for _, candidate := range []string{exported, "Get" + exported} {
			method, err := methodOf(target, candidate)
			if err != nil || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
				continue
			}
			return method.Call(nil)[0].Interface(), nil
		}
		return nil, fmt.Errorf("%w: field %q", pkgmodel.ErrNoGetter, name)
	}
	return set, get
}

func fieldValue(target any, index []int, name string) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: field %q target %T", pkgmodel.ErrTypeMismatch, name, target)
	}
	return v.Elem().FieldByIndex(index), nil
}

func methodOf(target any, name string) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return reflect.Value{}, pkgmodel.ErrNoSetter
	}
	method := v.MethodByName(name)
	if !method.IsValid() {
		return reflect.Value{}, fmt.Errorf("method %s not found on %T", name, target)
	}
	return method, nil
}

// coerce adapts v to the destination type: direct assignment, pointer
// dereference or allocation for nested values, and numeric or string
// conversions within the same family.
func coerce(v reflect.Value, to reflect.Type) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	if v.Type().AssignableTo(to) {
		return v, true
	}
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Type().AssignableTo(to) {
		return v.Elem(), true
	}
	if to.Kind() == reflect.Pointer && v.Type().AssignableTo(to.Elem()) {
		ptr := reflect.New(to.Elem())
		ptr.Elem().Set(v)
		return ptr, true
	}
	if sameFamily(v.Kind(), to.Kind()) && v.Type().ConvertibleTo(to) {
		return v.Convert(to), true
	}
	return reflect.Value{}, false
}

func sameFamily(a, b reflect.Kind) bool {
	return family(a) != 0 && family(a) == family(b)
}

func family(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	case reflect.Bool:
		return 3
	default:
		return 0
	}
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
