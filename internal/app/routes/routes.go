package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/selim/coursereg/internal/app/controllers"
	"github.com/selim/coursereg/internal/app/models/dto"
	"github.com/selim/coursereg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Catalog listing is public, like the welcome screen's course list
	v1.GET("/courses", courseController.GetAvailableCourses)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		me := authenticated.Group("/me")
		{
			me.GET("/courses", courseController.GetRegisteredCourses)
			me.POST("/courses/:courseId", courseController.Enroll)
			me.DELETE("/courses/:courseId", courseController.Drop)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
