package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoWindow is returned by Run when nothing was ever opened on the host.
	ErrNoWindow = errors.New("prompt: no window to run")
)

// errBack leaves a nested panel menu.
var errBack = errors.New("prompt: back")
