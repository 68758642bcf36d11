// Package samples holds the demo model types used by the CLI and tests: a
// playing card with an attached chess piece, and a 2-D point.
package samples
