package store

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/app/repositories"
	"github.com/selim/coursereg/internal/seed"
)

// Store is the authoritative in-memory state: the student and course
// arenas plus the enrollment relation kept as two index maps that must
// always mirror each other. Only the enrollment service mutates it.
type Store struct {
	repos  *repositories.Repositories
	logger zerolog.Logger

	students map[string]*models.Student
	courses  map[string]*models.Course

	// Derived enrollment indexes. A pair is linked iff it appears in both.
	studentCourses map[string]map[string]struct{}
	courseStudents map[string]map[string]struct{}
}

// NewStore creates an empty store over the given repositories.
func NewStore(repos *repositories.Repositories, lgr zerolog.Logger) *Store {
	return &Store{
		repos:          repos,
		logger:         lgr,
		students:       make(map[string]*models.Student),
		courses:        make(map[string]*models.Course),
		studentCourses: make(map[string]map[string]struct{}),
		courseStudents: make(map[string]map[string]struct{}),
	}
}

// Load reads the persisted record sets in dependency order (students,
// courses, enrollments) and rebuilds the cross-linked relation. Enrollment
// rows referencing unknown ids are skipped. If no courses survive the
// load, the fallback catalog is seeded and persisted immediately.
func (s *Store) Load() error {
	students, err := s.repos.StudentRepository.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}
	for _, student := range students {
		s.students[student.ID] = student
	}

	courses, err := s.repos.CourseRepository.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load courses: %w", err)
	}
	for _, course := range courses {
		s.courses[course.ID] = course
	}

	enrollments, err := s.repos.EnrollmentRepository.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load enrollments: %w", err)
	}
	linked := 0
	for _, enrollment := range enrollments {
		if _, ok := s.students[enrollment.StudentID]; !ok {
			continue
		}
		if _, ok := s.courses[enrollment.CourseID]; !ok {
			continue
		}
		s.Link(enrollment.StudentID, enrollment.CourseID)
		linked++
	}

	s.logger.Info().
		Int("students", len(s.students)).
		Int("courses", len(s.courses)).
		Int("enrollments", linked).
		Msg("Store loaded")

	if len(s.courses) == 0 {
		for _, course := range seed.DefaultCourses(s.logger) {
			s.courses[course.ID] = course
		}
		if err := s.PersistCourses(); err != nil {
			return fmt.Errorf("failed to persist seeded courses: %w", err)
		}
	}

	return nil
}

// Student returns the student with the given id.
func (s *Store) Student(id string) (*models.Student, bool) {
	student, ok := s.students[id]
	return student, ok
}

// Course returns the course with the given id.
func (s *Store) Course(id string) (*models.Course, bool) {
	course, ok := s.courses[id]
	return course, ok
}

// Courses returns all courses in no guaranteed order.
func (s *Store) Courses() []*models.Course {
	courses := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, course)
	}
	return courses
}

// AddStudent places a new student in the arena. In-memory only; callers
// persist via PersistStudents.
func (s *Store) AddStudent(student *models.Student) {
	s.students[student.ID] = student
}

// RemoveStudent drops a student from the arena. Used only to roll back a
// registration whose persist failed.
func (s *Store) RemoveStudent(id string) {
	delete(s.students, id)
}

// CourseIDsOf returns the ids of the student's registered courses.
func (s *Store) CourseIDsOf(studentID string) []string {
	ids := make([]string, 0, len(s.studentCourses[studentID]))
	for id := range s.studentCourses[studentID] {
		ids = append(ids, id)
	}
	return ids
}

// CourseCountOf returns how many courses the student is registered in.
func (s *Store) CourseCountOf(studentID string) int {
	return len(s.studentCourses[studentID])
}

// EnrolledCount returns how many students the course currently holds.
func (s *Store) EnrolledCount(courseID string) int {
	return len(s.courseStudents[courseID])
}

// IsEnrolled reports whether the student/course pair is cross-linked.
func (s *Store) IsEnrolled(studentID, courseID string) bool {
	_, ok := s.studentCourses[studentID][courseID]
	return ok
}

// Link records the enrollment on both sides of the relation.
func (s *Store) Link(studentID, courseID string) {
	if s.studentCourses[studentID] == nil {
		s.studentCourses[studentID] = make(map[string]struct{})
	}
	if s.courseStudents[courseID] == nil {
		s.courseStudents[courseID] = make(map[string]struct{})
	}
	s.studentCourses[studentID][courseID] = struct{}{}
	s.courseStudents[courseID][studentID] = struct{}{}
}

// Unlink removes the enrollment from both sides of the relation.
func (s *Store) Unlink(studentID, courseID string) {
	delete(s.studentCourses[studentID], courseID)
	delete(s.courseStudents[courseID], studentID)
}

// PersistStudents overwrites the student record set from memory.
func (s *Store) PersistStudents() error {
	students := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student)
	}
	return s.repos.StudentRepository.SaveAll(students)
}

// PersistCourses overwrites the course record set from memory.
func (s *Store) PersistCourses() error {
	return s.repos.CourseRepository.SaveAll(s.Courses())
}

// PersistEnrollments overwrites the enrollment record set from memory.
func (s *Store) PersistEnrollments() error {
	enrollments := make([]models.Enrollment, 0)
	for studentID, courseIDs := range s.studentCourses {
		for courseID := range courseIDs {
			enrollments = append(enrollments, models.Enrollment{StudentID: studentID, CourseID: courseID})
		}
	}
	return s.repos.EnrollmentRepository.SaveAll(enrollments)
}
