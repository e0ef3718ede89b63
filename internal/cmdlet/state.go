package cmdlet

// State is the adapter's position in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateConfirming
	StateRequesting
	StatePaginating
	StateSucceeded
	StateFailed
	StateDeclined
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfirming:
		return "confirming"
	case StateRequesting:
		return "requesting"
	case StatePaginating:
		return "paginating"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateDeclined:
		return "declined"
	default:
		return "unknown"
	}
}
