package dto

import "github.com/selim/coursereg/internal/app/models"

// CourseResponse is a catalog course with its current enrollment count.
type CourseResponse struct {
	CourseID    string          `json:"courseId" example:"CS101"`
	Name        string          `json:"name" example:"Computer Science 101"`
	Instructor  string          `json:"instructor" example:"Prof. Wilson"`
	Schedule    models.Schedule `json:"schedule"`
	Enrolled    int             `json:"enrolled" example:"12"`
	MaxStudents int             `json:"maxStudents" example:"30"`
	Credits     int             `json:"credits" example:"3"`
}

// NewCourseResponse builds a course response from the model and its
// current enrollment count.
func NewCourseResponse(course *models.Course, enrolled int) CourseResponse {
	return CourseResponse{
		CourseID:    course.ID,
		Name:        course.Name,
		Instructor:  course.Instructor,
		Schedule:    course.Schedule,
		Enrolled:    enrolled,
		MaxStudents: course.MaxStudents,
		Credits:     course.Credits,
	}
}
