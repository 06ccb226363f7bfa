package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/middleware"
	"bitskill_backend/internal/validator"
)

// TestAuthRoutes_LimiterCoversMe - ужесточенный лимитер действует на весь
// /auth, включая защищенный /me
func TestAuthRoutes_LimiterCoversMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 0.001,
		Burst:             1,
	})
	defer rl.Stop()

	router := gin.New()
	h := NewAuthHandler(NewBaseHandler(validator.New()), nil)
	h.RegisterRoutes(router.Group("/api/v1"), rl.Middleware())

	// Первый запрос проходит лимитер и падает на аутентификации
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, first.Code)

	// Второй запрос сверх burst отбрасывается самим лимитером
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
