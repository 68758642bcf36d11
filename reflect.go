package formbind

import (
	"reflect"
	"sync"

	internalmodel "github.com/goliatone/go-formbind/internal/model"
	"github.com/goliatone/go-formbind/pkg/model"
)

// ReflectOption customises reflection-based descriptor building.
type ReflectOption func(*internalmodel.Options)

// WithTagName reads field annotations from a struct tag other than `form`.
func WithTagName(name string) ReflectOption {
	return func(o *internalmodel.Options) {
		o.TagName = name
	}
}

var builders sync.Map // tag name -> *internalmodel.Builder

// Reflect builds the descriptor for T from its struct tags. Descriptors are
// cached per tag name, so repeated calls return the same *model.Type.
func Reflect[T any](options ...ReflectOption) (*model.Type, error) {
	return ReflectType(reflect.TypeOf((*T)(nil)).Elem(), options...)
}

// ReflectType is Reflect for a reflect.Type known only at runtime.
func ReflectType(rt reflect.Type, options ...ReflectOption) (*model.Type, error) {
	var opts internalmodel.Options
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}
	key := opts.TagName
	if key == "" {
		key = "form"
	}
	builder, _ := builders.LoadOrStore(key, internalmodel.New(opts))
	return builder.(*internalmodel.Builder).Build(rt)
}

// MustReflect is Reflect that panics on error, for package-level variables.
func MustReflect[T any](options ...ReflectOption) *model.Type {
	typ, err := Reflect[T](options...)
	if err != nil {
		panic(err)
	}
	return typ
}
