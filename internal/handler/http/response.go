// File: internal/handler/http/response.go

package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
)

// ResponseError представляет структуру ошибки в ответе API
type ResponseError struct {
	Error string `json:"error"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(c *gin.Context, statusCode int, message string, logger *zap.Logger) {
	logger.Warn("API error response",
		zap.Int("status_code", statusCode),
		zap.String("error_message", message),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ResponseError{Error: message})
}

// RespondWithMessage отправляет успешный ответ только с сообщением
func RespondWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.MessageResponse{Message: message})
}

// RespondWithData отправляет успешный ответ только с данными
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
