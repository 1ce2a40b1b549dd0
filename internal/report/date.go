package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for the reporting pipeline. Handlers translate these into
// HTTP statuses so callers can tell "system error" apart from "no data".
var (
	// ErrStoreUnavailable marks a failure to reach one of the backing stores.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidDate marks a missing or malformed summary date.
	ErrInvalidDate = errors.New("invalid summary date")
	// ErrSummaryNotFound marks a date with no persisted summary row.
	ErrSummaryNotFound = errors.New("summary not found")
)

const dateLayout = "2006-01-02"

// ParseDate validates a calendar date in the canonical YYYY-MM-DD form used
// by both stores and returns it normalized.
func ParseDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, value)
	}
	return parsed.Format(dateLayout), nil
}
