package utils

import (
	"fmt"
	"strings"
	"time"
)

// ZeroUptime is shown when there is no usable start time.
const ZeroUptime = "00:00:00"

// Layouts accepted for start_time, most specific first. The backend emits
// ISO-8601 without a zone, which is read as local time.
var uptimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseStartTime parses a start_time value from the status endpoint.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range uptimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", s)
}

// FormatUptime returns floor(now-start) as zero-padded HH:MM:SS. Hours are
// not wrapped at 24. A nil, empty, unparsable or future start yields ZeroUptime.
func FormatUptime(startTime *string, now time.Time) string {
	if startTime == nil || strings.TrimSpace(*startTime) == "" {
		return ZeroUptime
	}
	start, err := ParseStartTime(*startTime)
	if err != nil {
		return ZeroUptime
	}
	return FormatElapsed(now.Sub(start))
}

// FormatElapsed renders a duration as HH:MM:SS, truncating sub-second parts.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		return ZeroUptime
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
