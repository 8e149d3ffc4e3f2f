package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/selim/coursereg/internal/app/models/dto"
	"github.com/selim/coursereg/internal/pkg/apperrors"
)

// HandleAPIError maps engine errors to HTTP responses. The error text is
// surfaced verbatim in the message field; clients render it unchanged.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeAlreadyEnrolled, err.Error())))
	case errors.Is(err, apperrors.ErrCourseFull):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeCourseFull, err.Error())))
	case errors.Is(err, apperrors.ErrScheduleConflict):
		c.JSON(409, dto.NewErrorResponse(errorDetailWithContext(dto.ErrorCodeScheduleConflict, err)))
	case apperrors.Is(err, apperrors.ErrCreditLimitExceeded, apperrors.ErrCreditLimitBelowMinimum):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeCreditLimit, err.Error())))
	case errors.Is(err, apperrors.ErrNotEnrolled):
		c.JSON(409, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeNotEnrolled, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, err.Error())))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, err.Error())))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, err.Error())))
	case apperrors.Is(err, apperrors.ErrInvalidTimeFormat, apperrors.ErrInvalidSchedule):
		c.JSON(400, dto.NewErrorResponse(errorDetailWithContext(dto.ErrorCodeValidationFailed, err)))
	default:
		c.JSON(500, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}

// errorDetailWithContext carries a CustomError's details map through to
// the response when one is present.
func errorDetailWithContext(code dto.ErrorCode, err error) *dto.ErrorDetail {
	detail := dto.NewErrorDetail(code, err.Error())

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}

	return detail
}
