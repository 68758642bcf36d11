// Package uischema loads UI overlays that restyle forms without touching the
// model types: window and button captions per type, plus field labels and
// ordering. A Store is a model.Decorator, so the resolver applies field
// overrides before sorting.
package uischema
