package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/selim/coursereg/internal/pkg/apperrors"
)

// Weekly meeting window that courses must fit inside.
const (
	earliestStartMinutes = 8 * 60     // 08:00
	latestEndMinutes     = 17*60 + 50 // 17:50, inclusive
)

// weekdays are the only days a course may meet on.
var weekdays = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
}

// Schedule represents one weekly recurring course meeting.
type Schedule struct {
	Day   string `json:"day" example:"Monday"`
	Start string `json:"start" example:"11:00"`
	End   string `json:"end" example:"11:50"`

	// Minute forms are resolved once by NewSchedule so comparisons
	// never re-parse the clock strings.
	startMinutes int
	endMinutes   int
}

// NewSchedule builds a schedule from a day name and two "HH:MM" clock values.
// Malformed clock values are rejected with apperrors.ErrInvalidTimeFormat.
func NewSchedule(day, start, end string) (Schedule, error) {
	startMinutes, err := ToMinutes(start)
	if err != nil {
		return Schedule{}, err
	}
	endMinutes, err := ToMinutes(end)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		Day:          day,
		Start:        start,
		End:          end,
		startMinutes: startMinutes,
		endMinutes:   endMinutes,
	}, nil
}

// ToMinutes converts an "HH:MM" clock value to minutes since midnight.
func ToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidTimeFormat,
			fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidTimeFormat,
			fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidTimeFormat,
			fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, apperrors.NewCustomError(apperrors.ErrInvalidTimeFormat,
			fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}

	return hours*60 + minutes, nil
}

// Overlaps reports whether two schedules conflict: same day and
// intersecting intervals. An interval ending exactly when the other
// begins does not conflict.
func (s Schedule) Overlaps(other Schedule) bool {
	if s.Day != other.Day {
		return false
	}
	return s.startMinutes < other.endMinutes && other.startMinutes < s.endMinutes
}

// IsAllowed reports whether the schedule falls on a weekday within the
// allowed daily window (start at or after 08:00, end at or before 17:50).
func (s Schedule) IsAllowed() bool {
	if !weekdays[s.Day] {
		return false
	}
	if s.startMinutes < earliestStartMinutes {
		return false
	}
	if s.endMinutes > latestEndMinutes {
		return false
	}
	return true
}

// String renders the schedule the way it appears in course listings.
func (s Schedule) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}
