package core

// EventKind identifies something that happened during a tick that the
// platform may want to react to (sound cues, score saving).
type EventKind int

const (
	EventHit        EventKind = iota // Sprite hit the ground or an obstacle
	EventFlap                        // Sprite jumped
	EventPoint                       // Score counter advanced
	EventModeChange                  // Active screen switched
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventFlap:
		return "flap"
	case EventPoint:
		return "point"
	case EventModeChange:
		return "mode-change"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported in a StepResult.
type Event struct {
	Kind  EventKind
	Frame int // Tick on which the event fired
}
