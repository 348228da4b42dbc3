package schedule

import (
	"errors"
	"fmt"
	"time"
)

// DefaultStepMinutes is the granularity at which bookable start times are
// offered. Slots only start on these boundaries within opening hours; this is
// a product policy, not an engine limitation.
const DefaultStepMinutes = 30

const minutesPerDay = 24 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a clock time expressed as minutes from midnight, [0, 1440).
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// NewTimeOfDay validates a minutes-from-midnight value.
func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(minutes), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Interval is a half-open time range [Start, End) within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval builds the interval occupied by a service of durationMin
// starting at start.
func NewInterval(start TimeOfDay, durationMin int) Interval {
	return Interval{Start: start, End: start.Add(durationMin)}
}

// Overlaps applies the unified half-open interval overlap test:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// IsFree reports whether the candidate interval conflicts with none of the
// busy intervals.
func IsFree(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}

// FreeSlots enumerates the bookable start times for a service of durationMin
// between open and close, stepping by stepMin minutes. A candidate is offered
// iff the whole interval [start, start+duration) fits before close and does
// not overlap any busy interval.
func FreeSlots(open, close TimeOfDay, durationMin, stepMin int, busy []Interval) []TimeOfDay {
	if stepMin <= 0 {
		stepMin = DefaultStepMinutes
	}
	if durationMin <= 0 || open >= close {
		return nil
	}

	var slots []TimeOfDay
	for start := open; start.Add(durationMin) <= close; start = start.Add(stepMin) {
		if IsFree(NewInterval(start, durationMin), busy) {
			slots = append(slots, start)
		}
	}
	return slots
}

// FormatSlots renders start times as zero-padded "HH:MM" strings.
func FormatSlots(slots []TimeOfDay) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
