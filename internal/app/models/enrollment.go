package models

// Enrollment is one student/course cross-link as persisted in
// enrollments.csv. In memory the relation lives in the store's two index
// maps; this pair form only exists for the persistence round-trip.
type Enrollment struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}
