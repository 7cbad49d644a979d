package helpers

import (
	"errors"
	"net/http"

	"github.com/farellandr/hostspot/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

// StatusForCode maps an AppError code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case models.CodeMissingField, models.CodeDuplicateEmail, models.CodeDuplicatePhone, models.CodeValidation:
		return http.StatusBadRequest
	case models.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case models.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func RespondWithError(c *gin.Context, statusCode int, code, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Code:    code,
		Message: customMessage,
	})
}

// RespondWithAppError writes err as an error body. Causes of internal errors are logged
// and never reach the client.
func RespondWithAppError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	status := StatusForCode(appErr.Code)
	if status == http.StatusInternalServerError {
		logger.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		}).Error("request failed")
		appErr = models.NewInternalError(nil)
	}

	_ = c.Error(err)
	RespondWithError(c, status, appErr.Code, appErr.Message)
}
