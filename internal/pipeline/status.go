package pipeline

// State is the pipeline stage.
type State int

const (
	Idle State = iota
	Recording
	Finalizing
	Picking
	Uploading
	Done
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Finalizing:
		return "finalizing"
	case Picking:
		return "picking"
	case Uploading:
		return "uploading"
	case Done:
		return "done"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Busy reports whether a run is in flight.
func (s State) Busy() bool {
	return !s.canStart()
}

func (s State) canStart() bool {
	return s == Idle || s == Done || s == Error
}

// PersistState tracks the background history write of a finished run.
type PersistState int

const (
	PersistNone PersistState = iota
	PersistPending
	PersistSaved
	PersistFailed
)

func (s PersistState) String() string {
	switch s {
	case PersistPending:
		return "saving"
	case PersistSaved:
		return "saved"
	case PersistFailed:
		return "not saved"
	default:
		return ""
	}
}

// Status is what the pipeline exposes to the screen.
type Status struct {
	State      State
	Message    string
	Transcript string
	Model      string
	Err        error
	Persist    PersistState
}
