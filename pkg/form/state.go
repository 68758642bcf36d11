package form

// State is the lifecycle stage of an engine.
type State int32

const (
	// StateConstructing covers input generation. Standalone engines stay here
	// until the UI loop has built their window.
	StateConstructing State = iota
	// StateReady accepts submits and deletions.
	StateReady
	// StateAwaitingCompletion means a caller is blocked in WaitForCompletion.
	StateAwaitingCompletion
	// StateDone is terminal; the user has finished and the window is torn
	// down.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "constructing"
	case StateReady:
		return "ready"
	case StateAwaitingCompletion:
		return "awaiting-completion"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
