package seed

import (
	"github.com/rs/zerolog"

	appModels "github.com/selim/coursereg/internal/app/models"
)

// courseSeed is one entry of the built-in fallback catalog.
type courseSeed struct {
	id         string
	name       string
	instructor string
	day        string
	start      string
	end        string
}

var fallbackCatalog = []courseSeed{
	{"MATH101", "Math 101", "Dr. Smith", "Monday", "11:00", "11:50"},
	{"PHYS101", "Physics 101", "Dr. Johnson", "Tuesday", "10:00", "10:50"},
	{"CHEM101", "Chemistry 101", "Dr. Lee", "Wednesday", "09:00", "09:50"},
	{"ENG101", "English 101", "Prof. Brown", "Thursday", "12:00", "12:50"},
	{"HIST101", "History 101", "Dr. Davis", "Friday", "14:00", "14:50"},
	{"CS101", "Computer Science 101", "Prof. Wilson", "Monday", "13:00", "13:50"},
	{"BIO101", "Biology 101", "Dr. Martinez", "Tuesday", "14:00", "14:50"},
	{"PSY101", "Psychology 101", "Dr. Taylor", "Wednesday", "11:00", "11:50"},
	{"ECON101", "Economics 101", "Prof. Anderson", "Thursday", "09:00", "09:50"},
	{"ART101", "Art History 101", "Dr. White", "Friday", "10:00", "10:50"},
}

// DefaultCourses builds the fallback catalog used when the persisted
// course record set is empty: ten courses, one weekday slot each.
func DefaultCourses(lgr zerolog.Logger) []*appModels.Course {
	lgr.Info().Msg("Seeding default course catalog...")

	courses := make([]*appModels.Course, 0, len(fallbackCatalog))
	for _, s := range fallbackCatalog {
		schedule, err := appModels.NewSchedule(s.day, s.start, s.end)
		if err != nil {
			lgr.Error().Err(err).Str("courseId", s.id).Msg("Error building seed course schedule")
			continue
		}

		course, err := appModels.NewCourse(s.id, s.name, s.instructor, schedule)
		if err != nil {
			lgr.Error().Err(err).Str("courseId", s.id).Msg("Error creating seed course")
			continue
		}
		courses = append(courses, course)
	}

	return courses
}
