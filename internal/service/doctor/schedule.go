package doctor

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// weekdays holds the canonical day names accepted in a weekly schedule.
var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// NormalizeSchedule validates a weekly template and returns a canonical copy:
// day names lowercased, slots deduplicated and sorted. Returns ErrInvalidSchedule
// wrapped with the offending entry.
func NormalizeSchedule(in map[string][]string) (map[string][]string, error) {
	out := make(map[string][]string, len(in))

	for day, slots := range in {
		key := strings.ToLower(strings.TrimSpace(day))
		if !weekdays[key] {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidSchedule, day)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: day %q listed twice", ErrInvalidSchedule, day)
		}

		seen := make(map[string]bool, len(slots))
		canonical := make([]string, 0, len(slots))
		for _, slot := range slots {
			s := strings.TrimSpace(slot)
			if _, err := time.Parse("15:04", s); err != nil {
				return nil, fmt.Errorf("%w: bad slot %q on %s", ErrInvalidSchedule, slot, key)
			}
			if seen[s] {
				continue
			}
			seen[s] = true
			canonical = append(canonical, s)
		}
		sort.Strings(canonical)
		out[key] = canonical
	}

	return out, nil
}

// SlotsForDate returns the template slots for the weekday of the given
// calendar date. The date must be "YYYY-MM-DD".
func SlotsForDate(schedule map[string][]string, date string) ([]string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	day := strings.ToLower(d.Weekday().String())
	slots := schedule[day]
	out := make([]string, len(slots))
	copy(out, slots)
	return out, nil
}
