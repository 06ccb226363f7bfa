package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestRateLimiter_BurstAndStop - лимитер отбрасывает запросы сверх burst,
// Stop завершает очистку и безопасен при повторном вызове
func TestRateLimiter_BurstAndStop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		Burst:             2,
	})

	router := gin.New()
	router.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rl.Stop()
	rl.Stop()
}
