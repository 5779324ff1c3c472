package storage

// SaveState tracks the lifecycle of one report save.
type SaveState int

const (
	StateNoPriorReport SaveState = iota
	StatePriorReportAccessible
	StateArchived
	StateWritten
	StateVerified
	StateRolledBack
	StateFailed
)

func (s SaveState) String() string {
	switch s {
	case StateNoPriorReport:
		return "no_prior_report"
	case StatePriorReportAccessible:
		return "prior_accessible"
	case StateArchived:
		return "archived"
	case StateWritten:
		return "written"
	case StateVerified:
		return "verified"
	case StateRolledBack:
		return "rolled_back"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state can end a save operation.
func (s SaveState) IsTerminal() bool {
	switch s {
	case StateVerified, StateRolledBack, StateFailed:
		return true
	default:
		return false
	}
}
