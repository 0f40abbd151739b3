package apperrors

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error     ErrorCode   `json:"error"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewErrorResponse строит тело ответа. Для внутренних ошибок детали не раскрываются.
func NewErrorResponse(appErr *AppError) ErrorResponse {
	if appErr.Code == CodeInternal {
		return ErrorResponse{
			Error:     CodeInternal,
			Message:   "Internal server error",
			Timestamp: time.Now().UTC(),
		}
	}
	return ErrorResponse{
		Error:     appErr.Code,
		Message:   appErr.Message,
		Details:   appErr.Details,
		Timestamp: time.Now().UTC(),
	}
}

// HandleError - отправка ошибки в Gin контекст
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.Code == CodeInternal {
		slog.ErrorContext(c.Request.Context(), "Server error", "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), NewErrorResponse(appErr))
}
