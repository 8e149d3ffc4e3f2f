package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/selim/coursereg/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories over a single data directory.
// The directory is created if it does not exist so that the first persist
// call never has to care about it.
func NewRepositories(dataDir string) (*Repositories, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	return &Repositories{
		StudentRepository:    NewStudentRepository(filepath.Join(dataDir, "students.csv")),
		CourseRepository:     NewCourseRepository(filepath.Join(dataDir, "courses.csv")),
		EnrollmentRepository: NewEnrollmentRepository(filepath.Join(dataDir, "enrollments.csv")),
	}, nil
}

// readRecords reads all data rows of a CSV file, skipping the header row.
// A missing file yields no rows: the record set simply does not exist yet.
// Rows that fail CSV parsing (stray quotes and the like) are skipped with a
// diagnostic; a bad row never fails the whole load.
func readRecords(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // short rows are skipped by callers, not fatal

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn().Err(err).Str("file", path).Msg("Skipping malformed row")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// writeRecords overwrites a CSV file with a header row followed by the
// given data rows. Writes are whole-file overwrites, never appends.
func writeRecords(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows to %s: %w", path, err)
	}

	return nil
}
