package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selim/coursereg/internal/app/models/dto"
	"github.com/selim/coursereg/internal/app/services"
	"github.com/selim/coursereg/internal/middleware"
)

// CourseController handles catalog listing and enrollment operations
type CourseController struct {
	enrollmentService *services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(enrollmentService *services.EnrollmentService) *CourseController {
	return &CourseController{
		enrollmentService: enrollmentService,
	}
}

// studentID reads the authenticated student's id from the request context.
func studentID(ctx *gin.Context) string {
	return ctx.GetString(middleware.ContextStudentID)
}

// GetAvailableCourses lists the whole catalog
// @Summary List available courses
// @Description Retrieves all catalog courses with their current enrollment counts
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAvailableCourses(ctx *gin.Context) {
	courses := c.enrollmentService.GetAvailableCourses()

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course, c.enrollmentService.EnrolledCount(course.ID)))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetRegisteredCourses lists the authenticated student's courses
// @Summary List registered courses
// @Description Retrieves the courses the authenticated student is enrolled in
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Registered courses retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /me/courses [get]
func (c *CourseController) GetRegisteredCourses(ctx *gin.Context) {
	courses, err := c.enrollmentService.GetStudentCourses(studentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course, c.enrollmentService.EnrolledCount(course.ID)))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// Enroll enrolls the authenticated student in a course
// @Summary Enroll in a course
// @Description Enrolls the authenticated student in the given course if every enrollment rule passes
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrolled successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Enrollment rule violated"
// @Router /me/courses/{courseId} [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID := ctx.Param("courseId")

	if err := c.enrollmentService.EnrollStudent(studentID(ctx), courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "enrolled in course " + courseID},
		Timestamp: time.Now(),
	})
}

// Drop removes the authenticated student from a course
// @Summary Drop a course
// @Description Drops the authenticated student from the given course if the credit floor allows it
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Dropped successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Not enrolled or below minimum credits"
// @Router /me/courses/{courseId} [delete]
func (c *CourseController) Drop(ctx *gin.Context) {
	courseID := ctx.Param("courseId")

	if err := c.enrollmentService.DropCourse(studentID(ctx), courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "dropped course " + courseID},
		Timestamp: time.Now(),
	})
}
