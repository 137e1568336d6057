package assistant

import "time"

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// Clock supplies the clinic-local wall clock. The current time is used only
// as extraction grounding (so "tomorrow at 3" resolves to a concrete date),
// never as decision input.
type Clock interface {
	Now() time.Time
}

type clinicClock struct {
	loc *time.Location
}

// NewClock returns a Clock pinned to the given IANA timezone. Falls back to
// UTC when the timezone is invalid or empty.
func NewClock(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return &clinicClock{loc: loc}
}

func (c *clinicClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FormatClinicTimestamp renders the context timestamp returned to callers.
func FormatClinicTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
