package apperrors

import (
	"errors"
	"fmt"
)

// Time and schedule errors
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidSchedule   = errors.New("course schedule is out of allowed hours or on a weekend")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student does not exist")
	ErrStudentIDAlreadyExists = errors.New("student ID already exists")
)

// Enrollment errors
var (
	ErrCourseNotFound          = errors.New("course does not exist")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this course")
	ErrCourseFull              = errors.New("course is already full")
	ErrScheduleConflict        = errors.New("scheduling conflict")
	ErrCreditLimitExceeded     = errors.New("enrolling in this course would exceed the maximum allowed credits (18)")
	ErrCreditLimitBelowMinimum = errors.New("dropping this course would result in fewer than the minimum required credits (9)")
	ErrNotEnrolled             = errors.New("student is not enrolled in the specified course")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid name for this student ID")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewInvalidScheduleError creates the construction-time failure for a course
// whose weekly slot falls outside the allowed weekday window. The course id
// and the offending schedule are kept for diagnostics.
func NewInvalidScheduleError(courseID, schedule string) error {
	return NewCustomError(ErrInvalidSchedule,
		fmt.Sprintf("course %s schedule %s is out of allowed hours or on a weekend", courseID, schedule),
	).WithDetails(map[string]interface{}{
		"courseId": courseID,
		"schedule": schedule,
	})
}

// NewScheduleConflictError creates the enrollment failure reporting the
// first registered course whose slot overlaps the requested one.
func NewScheduleConflictError(courseID, courseName string) error {
	return NewCustomError(ErrScheduleConflict,
		fmt.Sprintf("scheduling conflict with %s (%s)", courseID, courseName),
	).WithDetails(map[string]interface{}{
		"conflictingCourseId": courseID,
	})
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
