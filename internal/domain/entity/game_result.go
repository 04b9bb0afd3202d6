package entity

// GameResult is the outcome of a single bet
type GameResult int

// Game results
const (
	Loss GameResult = iota
	SmallWin
	BigWin
)

// String returns the result name
func (r GameResult) String() string {
	switch r {
	case Loss:
		return "loss"
	case SmallWin:
		return "small_win"
	case BigWin:
		return "big_win"
	default:
		return "unknown"
	}
}

// IsWin reports whether the result pays out
func (r GameResult) IsWin() bool {
	return r == SmallWin || r == BigWin
}
