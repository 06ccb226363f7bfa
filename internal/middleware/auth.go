package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bitskill_backend/internal/auth"
	"bitskill_backend/internal/logger"
	"bitskill_backend/pkg/apperrors"
	"bitskill_backend/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT.
// Отсутствие токена - 401, невалидная подпись или истекший срок - 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.NewUnauthorizedError("Access token required"),
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrInvalidToken,
			})
			return
		}

		// Сохраняем claims в контекст
		c.Set(string(contextkeys.UserIDContextKey), claims.UserID)
		c.Set(string(contextkeys.RoleContextKey), claims.Role)
		c.Set(string(contextkeys.EmailContextKey), claims.Email)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

