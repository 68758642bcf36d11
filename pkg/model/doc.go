// Package model defines the descriptors a form engine binds to: a Type lists
// its user-editable Fields, each carrying a display label, an ordering key, a
// Kind (text, number, toggle, choice or nested sub-form) and typed accessors.
//
// Descriptor tables are declared once per model type with the generic
// constructors, so values flow through compile-time checked setters instead of
// name-based lookup:
//
//	var pointType = model.Define[Point]("Point", []model.Field{
//		model.Float("x", func(p *Point) float64 { return p.X }, func(p *Point, v float64) { p.X = v }),
//		model.Float("y", func(p *Point) float64 { return p.Y }, func(p *Point, v float64) { p.Y = v }, model.Order(1)),
//	}, model.Marked())
//
// Resolve flattens a Type and its marked ancestors into the ordered field list
// the engine builds inputs from.
package model
