package repositories

import (
	"fmt"
	"strings"

	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/pkg/logger"
)

var courseHeader = []string{"course_id", "name", "instructor", "day", "time"}

// CourseRepository persists the course record set to courses.csv. The
// time column carries both clock values as "HH:MM-HH:MM".
type CourseRepository struct {
	path string
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(path string) *CourseRepository {
	return &CourseRepository{path: path}
}

// LoadAll reads every course record. Short rows and rows whose schedule
// fails construction-time validation are skipped with a diagnostic; a bad
// row never fails the whole load.
func (r *CourseRepository) LoadAll() ([]*models.Course, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	courses := make([]*models.Course, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			logger.Warn().Strs("row", row).Msg("Skipping short course row")
			continue
		}

		course, err := courseFromRow(row)
		if err != nil {
			logger.Warn().Err(err).Str("courseId", row[0]).Msg("Skipping invalid course row")
			continue
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// courseFromRow builds a validated course from one CSV row.
func courseFromRow(row []string) (*models.Course, error) {
	start, end, ok := strings.Cut(row[4], "-")
	if !ok {
		return nil, fmt.Errorf("invalid time range %q, expected HH:MM-HH:MM", row[4])
	}

	schedule, err := models.NewSchedule(row[3], start, end)
	if err != nil {
		return nil, err
	}

	return models.NewCourse(row[0], row[1], row[2], schedule)
}

// SaveAll overwrites courses.csv with the full course record set.
func (r *CourseRepository) SaveAll(courses []*models.Course) error {
	rows := make([][]string, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, []string{
			course.ID,
			course.Name,
			course.Instructor,
			course.Schedule.Day,
			course.Schedule.Start + "-" + course.Schedule.End,
		})
	}

	return writeRecords(r.path, courseHeader, rows)
}
