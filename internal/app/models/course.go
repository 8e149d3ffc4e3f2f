package models

import "github.com/selim/coursereg/internal/pkg/apperrors"

// Catalog defaults applied when a course record does not specify them.
const (
	DefaultMaxStudents = 30
	DefaultCredits     = 3
)

// Course represents a catalog course with its weekly meeting slot.
type Course struct {
	ID          string   `json:"courseId" example:"CS101"`
	Name        string   `json:"name" example:"Computer Science 101"`
	Instructor  string   `json:"instructor" example:"Prof. Wilson"`
	Schedule    Schedule `json:"schedule"`
	MaxStudents int      `json:"maxStudents" example:"30"`
	Credits     int      `json:"credits" example:"3"`
}

// NewCourse constructs a course with default capacity and credits. The
// schedule is validated once here; a course outside the allowed weekday
// window cannot be constructed.
func NewCourse(id, name, instructor string, schedule Schedule) (*Course, error) {
	if !schedule.IsAllowed() {
		return nil, apperrors.NewInvalidScheduleError(id, schedule.String())
	}

	return &Course{
		ID:          id,
		Name:        name,
		Instructor:  instructor,
		Schedule:    schedule,
		MaxStudents: DefaultMaxStudents,
		Credits:     DefaultCredits,
	}, nil
}
