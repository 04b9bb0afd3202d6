package betting

// State is a step of a single bet
type State int

// Bet states. Done and Aborted are terminal.
const (
	StateValidating State = iota
	StateStaking
	StateResolving
	StateSettling
	StateDone
	StateAborted
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateStaking:
		return "staking"
	case StateResolving:
		return "resolving"
	case StateSettling:
		return "settling"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can happen
func (s State) IsTerminal() bool {
	return s == StateDone || s == StateAborted
}
