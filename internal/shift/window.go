// Package shift turns one resident's shift into a single text document for
// the summary prompt: civil-time window computation, per-category record
// formatting and fixed-order section assembly.
package shift

import (
	"fmt"
	"strings"
	"time"
)

// Care shifts run on Thai civil time regardless of where the service runs.
var Bangkok = time.FixedZone("UTC+7", 7*60*60)

const (
	ShiftMorning = "เวรเช้า"
	ShiftNight   = "เวรดึก"
)

// Window is the half-open interval [Start, End) of one shift.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow resolves (date, shift) to absolute instants.
// Morning: 07:00-19:00 same day. Night: 19:00 to 07:00 the next day.
// date is "YYYY-MM-DD" in Thai civil time. Day rollover is plain calendar
// arithmetic on the parsed date, never local-time mutation.
func ComputeWindow(date string, shiftName string) (Window, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Window{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	year, month, day := d.Date()

	if IsMorning(shiftName) {
		return Window{
			Start: time.Date(year, month, day, 7, 0, 0, 0, Bangkok),
			End:   time.Date(year, month, day, 19, 0, 0, 0, Bangkok),
		}, nil
	}

	return Window{
		Start: time.Date(year, month, day, 19, 0, 0, 0, Bangkok),
		End:   time.Date(year, month, day+1, 7, 0, 0, 0, Bangkok),
	}, nil
}

// IsMorning uses a contains-check so encoding variants of the shift name
// still match; anything else is treated as the night shift.
func IsMorning(shiftName string) bool {
	return strings.Contains(shiftName, "เช้า")
}

// FormatTime renders a timestamp as civil HH:MM for display lines.
func FormatTime(t time.Time) string {
	return t.In(Bangkok).Format("15:04")
}
