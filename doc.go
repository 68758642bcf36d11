// Package formbind turns Go types into interactive input forms. Field
// descriptors come from explicit tables (pkg/model) or struct tags (Reflect);
// the form engine (pkg/form) generates inputs on any surface implementation
// and collects the instances the user submits.
//
//	type Point struct {
//		model.ItemMarker
//		X float64 `form:",order=0"`
//		Y float64 `form:",order=1"`
//	}
//
//	typ := formbind.MustReflect[Point]()
//	points, err := formbind.Collect[*Point](ctx, host, typ)
package formbind
