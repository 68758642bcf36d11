// Package headless implements the form surface in memory. Canvases keep their
// widgets addressable by label so tests and scripted callers can fill inputs
// and press buttons, and Host provides a goroutine-backed UI loop for
// standalone engines.
package headless
