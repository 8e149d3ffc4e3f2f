package models

import (
	"errors"
	"testing"

	"github.com/selim/coursereg/internal/pkg/apperrors"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:30", 570},
		{"17:50", 1070},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ToMinutes(tt.value)
		if err != nil {
			t.Fatalf("ToMinutes(%q): unexpected error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestToMinutesMonotonic(t *testing.T) {
	ordered := []string{"08:00", "08:01", "09:00", "12:30", "17:49", "17:50"}

	prev := -1
	for _, value := range ordered {
		got, err := ToMinutes(value)
		if err != nil {
			t.Fatalf("ToMinutes(%q): unexpected error: %v", value, err)
		}
		if got <= prev {
			t.Errorf("ToMinutes(%q) = %d, not greater than previous %d", value, got, prev)
		}
		prev = got
	}
}

func TestToMinutesMalformed(t *testing.T) {
	malformed := []string{"", "8", "0800", "ab:cd", "25:00", "08:61", "-1:30", "08:00:00"}

	for _, value := range malformed {
		_, err := ToMinutes(value)
		if !errors.Is(err, apperrors.ErrInvalidTimeFormat) {
			t.Errorf("ToMinutes(%q): got %v, want ErrInvalidTimeFormat", value, err)
		}
	}
}

func mustSchedule(t *testing.T, day, start, end string) Schedule {
	t.Helper()
	schedule, err := NewSchedule(day, start, end)
	if err != nil {
		t.Fatalf("NewSchedule(%s, %s, %s): %v", day, start, end, err)
	}
	return schedule
}

func TestScheduleOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Schedule
		b    Schedule
		want bool
	}{
		{
			name: "touching boundary is no conflict",
			a:    mustSchedule(t, "Monday", "08:00", "09:00"),
			b:    mustSchedule(t, "Monday", "09:00", "10:00"),
			want: false,
		},
		{
			name: "partial overlap conflicts",
			a:    mustSchedule(t, "Monday", "08:00", "09:30"),
			b:    mustSchedule(t, "Monday", "09:00", "10:00"),
			want: true,
		},
		{
			name: "containment conflicts",
			a:    mustSchedule(t, "Tuesday", "09:00", "12:00"),
			b:    mustSchedule(t, "Tuesday", "10:00", "11:00"),
			want: true,
		},
		{
			name: "identical slots conflict",
			a:    mustSchedule(t, "Friday", "10:00", "10:50"),
			b:    mustSchedule(t, "Friday", "10:00", "10:50"),
			want: true,
		},
		{
			name: "different days never conflict",
			a:    mustSchedule(t, "Monday", "08:00", "09:30"),
			b:    mustSchedule(t, "Tuesday", "08:00", "09:30"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScheduleIsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     bool
	}{
		{"weekday in window", mustSchedule(t, "Monday", "11:00", "11:50"), true},
		{"full window boundary", mustSchedule(t, "Monday", "08:00", "17:50"), true},
		{"saturday rejected", mustSchedule(t, "Saturday", "09:00", "10:00"), false},
		{"sunday rejected", mustSchedule(t, "Sunday", "09:00", "10:00"), false},
		{"starts before eight", mustSchedule(t, "Monday", "07:00", "08:00"), false},
		{"ends after window", mustSchedule(t, "Friday", "17:00", "18:00"), false},
		{"unknown day rejected", mustSchedule(t, "Mondy", "09:00", "10:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schedule.IsAllowed(); got != tt.want {
				t.Errorf("IsAllowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCourseValidatesSchedule(t *testing.T) {
	_, err := NewCourse("CS101", "Computer Science 101", "Prof. Wilson", mustSchedule(t, "Saturday", "09:00", "10:00"))
	if !errors.Is(err, apperrors.ErrInvalidSchedule) {
		t.Fatalf("weekend course: got %v, want ErrInvalidSchedule", err)
	}

	course, err := NewCourse("CS101", "Computer Science 101", "Prof. Wilson", mustSchedule(t, "Monday", "08:00", "17:50"))
	if err != nil {
		t.Fatalf("boundary course: unexpected error: %v", err)
	}
	if course.MaxStudents != DefaultMaxStudents {
		t.Errorf("MaxStudents = %d, want %d", course.MaxStudents, DefaultMaxStudents)
	}
	if course.Credits != DefaultCredits {
		t.Errorf("Credits = %d, want %d", course.Credits, DefaultCredits)
	}
}
