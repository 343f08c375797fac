package options

import (
	"fmt"
	"math"
	"time"

	"github.com/ericfisherdev/stalesweep/internal/domain/model"
)

// startDateLayouts are the accepted start-date formats, tried in order.
var startDateLayouts = []string{time.RFC3339, "2006-01-02"}

// Validate runs a fixed, ordered battery of checks over the merged options
// and returns the first violation. No further checks run after a failure.
func (o *Options) Validate() error {
	if math.IsNaN(o.DaysBeforeStale) {
		return fmt.Errorf("option %q did not resolve to a number", "days-before-stale")
	}
	if math.IsNaN(o.DaysBeforeClose) {
		return fmt.Errorf("option %q did not resolve to a number", "days-before-close")
	}
	if math.IsNaN(o.OperationsPerRun) {
		return fmt.Errorf("option %q did not resolve to a number", "operations-per-run")
	}
	if o.StartDate != "" {
		if _, err := ParseStartDate(o.StartDate); err != nil {
			return fmt.Errorf("option %q has invalid date %q: %w", "start-date", o.StartDate, err)
		}
	}
	if !model.CloseReason(o.CloseIssueReason).Valid() {
		return fmt.Errorf(
			"option %q has unrecognized value %q: valid values are %q, %q, and %q",
			"close-issue-reason", o.CloseIssueReason,
			model.CloseReasonDefault, model.CloseReasonCompleted, model.CloseReasonNotPlanned,
		)
	}
	return nil
}

// ParseStartDate parses a start-date value, accepting RFC 3339 timestamps
// and plain calendar dates.
func ParseStartDate(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range startDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
