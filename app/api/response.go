package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelu/tote/models"
)

// Response represents a standardized API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ListMeta represents list metadata
type ListMeta struct {
	Count int `json:"count"`
}

// SuccessResponse sends a successful response
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *gin.Context,
	statusCode int,
	code string,
	message string,
	details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// ValidationErrorResponse sends a validation error response
func ValidationErrorResponse(c *gin.Context, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", details)
}

// NotFoundResponse sends a not found error response
func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found", nil)
}

// UnauthorizedResponse sends an unauthorized error response
func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized access", nil)
}

// ForbiddenResponse sends a forbidden error response
func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// InternalErrorResponse sends an internal server error response
func InternalErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

// ConflictResponse sends a conflict error response
func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message, nil)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

// ListResponse sends a list response with count metadata
func ListResponse(c *gin.Context, message string, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    ListMeta{Count: count},
	})
}

// domainStatus maps a business error to its HTTP status and error code.
func domainStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, models.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "INSUFFICIENT_BALANCE"
	case errors.Is(err, models.ErrVelocityLimitExceeded):
		return http.StatusTooManyRequests, "VELOCITY_LIMIT"
	case errors.Is(err, models.ErrMarketAlreadyResolved),
		errors.Is(err, models.ErrAlreadyClaimed),
		errors.Is(err, models.ErrMarketNotActive),
		errors.Is(err, models.ErrMarketEnded),
		errors.Is(err, models.ErrMarketNotEnded),
		errors.Is(err, models.ErrMarketNotResolved),
		errors.Is(err, models.ErrNoBetsPlaced),
		errors.Is(err, models.ErrNotWinner),
		errors.Is(err, models.ErrNothingToClaim):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, models.ErrInvalidQuestion),
		errors.Is(err, models.ErrQuestionTooLong),
		errors.Is(err, models.ErrInvalidOutcomes),
		errors.Is(err, models.ErrOutcomeTooLong),
		errors.Is(err, models.ErrBlankOutcome),
		errors.Is(err, models.ErrDuplicateOutcome),
		errors.Is(err, models.ErrEndTimeInPast),
		errors.Is(err, models.ErrMarketTooShort),
		errors.Is(err, models.ErrMarketTooLong),
		errors.Is(err, models.ErrInvalidOutcomeIndex),
		errors.Is(err, models.ErrOutcomeMismatch),
		errors.Is(err, models.ErrBetTooSmall),
		errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrMathOverflow),
		errors.Is(err, models.ErrInvalidMarketID),
		errors.Is(err, models.ErrInvalidAccountID):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// DomainErrorResponse translates a business error into the response envelope.
func DomainErrorResponse(c *gin.Context, err error) {
	status, code := domainStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "something went wrong"
	}
	ErrorResponse(c, status, code, msg, nil)
}
