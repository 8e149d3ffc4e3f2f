package repositories

import (
	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/pkg/logger"
)

var studentHeader = []string{"student_id", "name"}

// StudentRepository persists the student record set to students.csv.
type StudentRepository struct {
	path string
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(path string) *StudentRepository {
	return &StudentRepository{path: path}
}

// LoadAll reads every student record. Short rows are skipped.
func (r *StudentRepository) LoadAll() ([]*models.Student, error) {
	rows, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	students := make([]*models.Student, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			logger.Warn().Strs("row", row).Msg("Skipping short student row")
			continue
		}
		students = append(students, &models.Student{ID: row[0], Name: row[1]})
	}

	return students, nil
}

// SaveAll overwrites students.csv with the full student record set.
func (r *StudentRepository) SaveAll(students []*models.Student) error {
	rows := make([][]string, 0, len(students))
	for _, student := range students {
		rows = append(rows, []string{student.ID, student.Name})
	}

	return writeRecords(r.path, studentHeader, rows)
}
