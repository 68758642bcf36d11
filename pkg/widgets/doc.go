// Package widgets classifies form fields into the input widgets a surface
// provides. The built-in matchers follow a fixed precedence: text-like fields
// (strings and numbers) become text inputs, booleans become toggles, marked
// nested types become embedded sub-forms, and choices become choice lists.
// Fields no matcher accepts get no input.
package widgets
