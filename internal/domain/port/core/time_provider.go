package core

import "time"

// TimeProvider abstracts the clock used to stamp players and wallet transactions
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
