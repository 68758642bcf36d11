package model

// Decorator adjusts a field descriptor (label, order) before the resolved list
// is sorted. owner is the type that declares the field.
type Decorator interface {
	DecorateField(owner *Type, field *Field)
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(owner *Type, field *Field)

// DecorateField calls the underlying function.
func (fn DecoratorFunc) DecorateField(owner *Type, field *Field) {
	fn(owner, field)
}
