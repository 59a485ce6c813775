// File: internal/handler/http/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Zargham-Waheed/medicalCareBackend/internal/domain/errors"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/infrastructure/security"
	"github.com/Zargham-Waheed/medicalCareBackend/internal/utils/logger"
)

const (
	authHeaderKey  = "Authorization"
	authTypeBearer = "bearer"

	// GinContextUserIDKey holds the authenticated user's uuid.UUID.
	GinContextUserIDKey = "userID"
	// GinContextEmailKey holds the authenticated user's email.
	GinContextEmailKey = "email"
)

// AuthMiddleware validates the Bearer token and stores the claims in the gin
// context. Any verification failure aborts with 401.
func AuthMiddleware(tokens *security.JWTService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != authTypeBearer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			if domainErrors.IsUnauthorized(err) {
				log.Warn("AuthMiddleware: invalid access token", zap.Error(err))
			} else {
				log.Error("AuthMiddleware: token validation failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextUserIDKey, userID)
		c.Set(GinContextEmailKey, claims.Email)

		logger.WithUserID(log, claims.UserID).Debug("Request authenticated",
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user ID stored by AuthMiddleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(GinContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
