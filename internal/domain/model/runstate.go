package model

import "time"

// RunState is the cross-run bookkeeping restored before the processor runs
// and persisted after it finishes. MarkedStale maps item numbers to the time
// this tool first marked them stale, so a later run can tell its own stale
// label applications apart from labels applied by hand.
type RunState struct {
	LastRun     time.Time
	MarkedStale map[int]time.Time
}

// NewRunState returns an empty state with an initialized MarkedStale map.
func NewRunState() *RunState {
	return &RunState{MarkedStale: make(map[int]time.Time)}
}

// StaleSince returns when the item was marked stale by a previous run, or
// the zero time when this tool never marked it.
func (s *RunState) StaleSince(number int) time.Time {
	return s.MarkedStale[number]
}

// MarkStale records that the item was marked stale at the given time.
func (s *RunState) MarkStale(number int, at time.Time) {
	if s.MarkedStale == nil {
		s.MarkedStale = make(map[int]time.Time)
	}
	s.MarkedStale[number] = at
}

// ClearStale forgets a previously recorded stale mark, used when an item is
// un-staled or closed.
func (s *RunState) ClearStale(number int) {
	delete(s.MarkedStale, number)
}
