package services

import (
	"github.com/rs/zerolog"

	"github.com/selim/coursereg/internal/app/models"
	"github.com/selim/coursereg/internal/pkg/apperrors"
	"github.com/selim/coursereg/internal/pkg/auth"
)

// AuthService handles student registration and login. There are no
// passwords: a login is a name/ID match against the student record, and
// the issued token only re-identifies that student across requests.
type AuthService struct {
	enrollmentService *EnrollmentService
	jwtService        *auth.JWTService
	logger            zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(enrollmentService *EnrollmentService, jwtService *auth.JWTService, lgr zerolog.Logger) *AuthService {
	return &AuthService{
		enrollmentService: enrollmentService,
		jwtService:        jwtService,
		logger:            lgr,
	}
}

// Register creates the student and issues a session token for them.
func (s *AuthService) Register(id, name string) (*models.Student, string, error) {
	student, err := s.enrollmentService.AddStudent(id, name)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, "", err
	}

	return student, token, nil
}

// Login matches the submitted name against the stored student record and
// issues a session token on success.
func (s *AuthService) Login(id, name string) (*models.Student, string, error) {
	student, err := s.enrollmentService.GetStudent(id)
	if err != nil {
		return nil, "", err
	}

	if student.Name != name {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(student)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("studentId", id).Msg("Student logged in")
	return student, token, nil
}
