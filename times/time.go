package times

import "time"

const (
	YearMonthDayLayout = "2006-01-02"

	// ReportTimestampLayout renders UTC timestamps for report headers with
	// an explicit Z marker.
	ReportTimestampLayout = "2006-01-02T15:04:05.000000Z"
)

const DayDuration = 24 * time.Hour

// FormatReportTimestamp renders t in UTC using ReportTimestampLayout.
func FormatReportTimestamp(t time.Time) string {
	return t.UTC().Format(ReportTimestampLayout)
}

// FormatNullable renders t as RFC 3339 in UTC, or the empty string for a
// zero time. Export code relies on this to keep absent timestamps empty
// instead of printing the zero time.
func FormatNullable(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

// CurrentDayUTC returns the current day in the UTC time zone.
func CurrentDayUTC() time.Time {
	return time.Now().UTC().Truncate(DayDuration)
}
