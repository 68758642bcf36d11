package form

import "errors"

var (
	// ErrInvalidType is returned when the engine is asked to bind a nil or
	// constructor-less type descriptor.
	ErrInvalidType = errors.New("form: invalid type descriptor")
	// ErrNilSurface is returned when an embedded engine has nowhere to place
	// its inputs.
	ErrNilSurface = errors.New("form: surface is required")
	// ErrNilHost is returned when a standalone engine has no UI host.
	ErrNilHost = errors.New("form: host is required")
	// ErrEmbedded is returned by WaitForCompletion on an engine that lives in
	// a caller-supplied surface.
	ErrEmbedded = errors.New("form: engine is embedded; completion wait requires a standalone engine")
	// ErrConstruct signals that the model constructor failed.
	ErrConstruct = errors.New("form: construct instance")
	// ErrSetField signals that a field setter failed or panicked.
	ErrSetField = errors.New("form: set field")
)
