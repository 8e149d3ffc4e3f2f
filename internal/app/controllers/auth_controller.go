package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selim/coursereg/internal/app/models/dto"
	"github.com/selim/coursereg/internal/app/services"
	"github.com/selim/coursereg/internal/middleware"
)

// AuthController handles student registration and login
type AuthController struct {
	authService *services.AuthService
	tokenExpiry time.Duration
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, tokenExpiry time.Duration, lgr zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		tokenExpiry: tokenExpiry,
		logger:      lgr,
	}
}

// Register handles new student registration
// @Summary Register a new student
// @Description Creates a student with an empty course set and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student ID and name"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "both student ID and name are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, token, err := c.authService.Register(req.StudentID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.AuthResponse{
			Token: dto.TokenResponse{
				AccessToken: token,
				TokenType:   "Bearer",
				ExpiresIn:   int64(c.tokenExpiry.Seconds()),
			},
			Student: student,
		},
		Timestamp: time.Now(),
	})
}

// Login handles student login by name/ID matching
// @Summary Log a student in
// @Description Matches the submitted name against the student record and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Student ID and name"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Name does not match the student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "both student ID and name are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, token, err := c.authService.Login(req.StudentID, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.AuthResponse{
			Token: dto.TokenResponse{
				AccessToken: token,
				TokenType:   "Bearer",
				ExpiresIn:   int64(c.tokenExpiry.Seconds()),
			},
			Student: student,
		},
		Timestamp: time.Now(),
	})
}
