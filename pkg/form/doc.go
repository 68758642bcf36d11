// Package form binds model type descriptors to surface inputs.
//
// An Engine resolves the editable fields of a type, asks the widget registry
// which input each field needs and creates it on a surface.Surface. Marked
// nested types become sub-forms with their own engine. Submitting builds a
// fresh instance from the inputs and appends it to the working set shown in
// the collection view.
//
//	engine, err := form.New(samples.PointType, canvas)
//	...
//	engine.Submit()
//	points := form.ItemsOf[*samples.Point](engine)
//
// Standalone engines own a window on a surface.Host and expose
// WaitForCompletion, which blocks the calling goroutine until the user
// activates the completion button.
package form
