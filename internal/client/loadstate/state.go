// Package loadstate tracks one asynchronous fetch per component mount:
// Unloaded, then Loading, then Loaded with a value or an error.
package loadstate

// Phase of a load
type Phase int

const (
	Unloaded Phase = iota
	Loading
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// State is a snapshot of a load. Value is meaningful only when Phase is
// Loaded and Err is nil.
type State[T any] struct {
	Phase Phase
	Value T
	Err   error
}

// Ready reports a successful load
func (s State[T]) Ready() bool {
	return s.Phase == Loaded && s.Err == nil
}

// Failed reports a load that ended in an error
func (s State[T]) Failed() bool {
	return s.Phase == Loaded && s.Err != nil
}
