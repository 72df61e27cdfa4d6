package platform

import (
	"fmt"
	"time"
)

// TimestampLayout is the wire format for all business timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatError reports a timestamp string that does not match TimestampLayout.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp format %q, want YYYY-MM-DD HH:MM:SS", e.Value)
}

// Now returns the current wall-clock time formatted as YYYY-MM-DD HH:MM:SS.
func Now() string {
	return now().Format(TimestampLayout)
}

// ParseTimestamp parses a YYYY-MM-DD HH:MM:SS string.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return time.Time{}, &FormatError{Value: ts}
	}
	return t, nil
}

// AddDays returns a timestamp n whole days after ts, in the same format.
// Month and year boundaries roll over per the calendar.
func AddDays(ts string, n int) (string, error) {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(TimestampLayout), nil
}
