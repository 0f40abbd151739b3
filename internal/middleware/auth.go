package middleware

import (
	"strings"

	"jobportal/internal/auth"
	"jobportal/internal/logger"
	"jobportal/pkg/apperrors"
	"jobportal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware разбирает Bearer-токен, если он есть.
// Запрос без токена проходит дальше, с неверным токеном получает 401.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must use the Bearer scheme"))
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Invalid token", "error", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid or expired token"))
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.UsernameKey, claims.Username)
		c.Set(contextkeys.RoleKey, claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireAuth требует успешно разобранный токен, если enabled
func RequireAuth(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled && GetUserID(c) == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}
