package services

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/app/store"
	"github.com/selim/coursereg/internal/pkg/apperrors"
)

// Course-count bounds standing in for credit arithmetic: six courses at
// three credits each is the 18-credit ceiling, and a drop may not leave a
// student at or below the 9-credit floor of three courses.
const (
	maxCoursesPerStudent = 6
	minCoursesAfterDrop  = 3
)

// EnrollmentService is the rule engine over the store. Every operation
// validates against current state, fails fast on the first violated rule,
// and on success mutates memory then persists the affected record set
// before returning. The mutex serializes operations so the store keeps
// its single-active-session semantics under concurrent handlers.
type EnrollmentService struct {
	mu     sync.Mutex
	store  *store.Store
	logger zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(st *store.Store, lgr zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		store:  st,
		logger: lgr,
	}
}

// AddStudent registers a new student with an empty course set and
// persists the student record set.
func (s *EnrollmentService) AddStudent(id, name string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.store.Student(id); exists {
		return nil, apperrors.ErrStudentIDAlreadyExists
	}

	student := &models.Student{ID: id, Name: name}
	s.store.AddStudent(student)

	if err := s.store.PersistStudents(); err != nil {
		s.store.RemoveStudent(id)
		return nil, fmt.Errorf("failed to persist students: %w", err)
	}

	s.logger.Info().Str("studentId", id).Msg("Student registered")
	return student, nil
}

// GetStudent looks up a student by id.
func (s *EnrollmentService) GetStudent(id string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.store.Student(id)
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// EnrollStudent enrolls a student in a course. Rules are checked in
// order: student exists, course exists, not already enrolled, remaining
// capacity, no schedule conflict (reporting the first conflicting course
// encountered), and the post-enrollment course count stays within the
// credit ceiling.
func (s *EnrollmentService) EnrollStudent(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Student(studentID); !ok {
		return apperrors.ErrStudentNotFound
	}
	course, ok := s.store.Course(courseID)
	if !ok {
		return apperrors.ErrCourseNotFound
	}

	if s.store.IsEnrolled(studentID, courseID) {
		return apperrors.ErrAlreadyEnrolled
	}

	if s.store.EnrolledCount(courseID) >= course.MaxStudents {
		return apperrors.ErrCourseFull
	}

	for _, registeredID := range s.store.CourseIDsOf(studentID) {
		registered, ok := s.store.Course(registeredID)
		if !ok {
			continue
		}
		if course.Schedule.Overlaps(registered.Schedule) {
			return apperrors.NewScheduleConflictError(registered.ID, registered.Name)
		}
	}

	if s.store.CourseCountOf(studentID) >= maxCoursesPerStudent {
		return apperrors.ErrCreditLimitExceeded
	}

	s.store.Link(studentID, courseID)
	if err := s.store.PersistEnrollments(); err != nil {
		s.store.Unlink(studentID, courseID)
		return fmt.Errorf("failed to persist enrollments: %w", err)
	}

	s.logger.Info().Str("studentId", studentID).Str("courseId", courseID).Msg("Student enrolled")
	return nil
}

// DropCourse removes a student from a course. The drop is refused when it
// would leave the student at or below the minimum course count; a student
// with no courses fails the enrollment check first.
func (s *EnrollmentService) DropCourse(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Student(studentID); !ok {
		return apperrors.ErrStudentNotFound
	}

	if !s.store.IsEnrolled(studentID, courseID) {
		return apperrors.ErrNotEnrolled
	}

	if s.store.CourseCountOf(studentID) <= minCoursesAfterDrop {
		return apperrors.ErrCreditLimitBelowMinimum
	}

	s.store.Unlink(studentID, courseID)
	if err := s.store.PersistEnrollments(); err != nil {
		s.store.Link(studentID, courseID)
		return fmt.Errorf("failed to persist enrollments: %w", err)
	}

	s.logger.Info().Str("studentId", studentID).Str("courseId", courseID).Msg("Course dropped")
	return nil
}

// GetStudentCourses returns the student's registered courses in no
// guaranteed order.
func (s *EnrollmentService) GetStudentCourses(studentID string) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Student(studentID); !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	courseIDs := s.store.CourseIDsOf(studentID)
	courses := make([]*models.Course, 0, len(courseIDs))
	for _, id := range courseIDs {
		if course, ok := s.store.Course(id); ok {
			courses = append(courses, course)
		}
	}

	return courses, nil
}

// GetAvailableCourses returns all catalog courses in no guaranteed order.
func (s *EnrollmentService) GetAvailableCourses() []*models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Courses()
}

// EnrolledCount reports a course's current enrollment for capacity
// displays.
func (s *EnrollmentService) EnrolledCount(courseID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.EnrolledCount(courseID)
}
