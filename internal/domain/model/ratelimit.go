package model

import "time"

// RateLimit is a snapshot of the core GitHub API rate limit, logged before
// and after the processor runs.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
