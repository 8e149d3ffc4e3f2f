package repositories

import (
	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/pkg/logger"
)

var enrollmentHeader = []string{"student_id", "course_id"}

// EnrollmentRepository persists the enrollment cross-links to
// enrollments.csv.
type EnrollmentRepository struct {
	path string
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(path string) *EnrollmentRepository {
	return &EnrollmentRepository{path: path}
}

// LoadAll reads every enrollment pair. Short rows are skipped; referential
// checks against the loaded students and courses are the store's job.
func (r *EnrollmentRepository) LoadAll() ([]models.Enrollment, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	enrollments := make([]models.Enrollment, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			logger.Warn().Strs("row", row).Msg("Skipping short enrollment row")
			continue
		}
		enrollments = append(enrollments, models.Enrollment{StudentID: row[0], CourseID: row[1]})
	}

	return enrollments, nil
}

// SaveAll overwrites enrollments.csv with the full enrollment relation.
func (r *EnrollmentRepository) SaveAll(enrollments []models.Enrollment) error {
	rows := make([][]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		rows = append(rows, []string{enrollment.StudentID, enrollment.CourseID})
	}

	return writeRecords(r.path, enrollmentHeader, rows)
}
