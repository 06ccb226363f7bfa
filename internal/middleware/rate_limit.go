package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bitskill_backend/pkg/apperrors"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	CleanupInterval   time.Duration
	TTL               time.Duration
}

// RateLimiter хранит лимитер на каждый IP; глобальный и auth-лимитер -
// отдельные экземпляры со своими картами. Stop завершает фоновую
// очистку; для процесс-долгоживущих экземпляров его можно не звать.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      float64
	burst    int
	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.CleanupInterval == 0 {
		config.CleanupInterval = time.Minute
	}
	if config.TTL == 0 {
		config.TTL = 15 * time.Minute
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      config.RequestsPerSecond,
		burst:    config.Burst,
		done:     make(chan struct{}),
	}
	go rl.cleanupVisitors(config.TTL, config.CleanupInterval)
	return rl
}

// Stop останавливает горутину очистки. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Limit(rl.rps), rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) cleanupVisitors(ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > ttl {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// RateLimiterMiddleware - обертка для лимитеров, живущих до конца
// процесса: глобального и auth. Лимиты задаются через rps+burst из
// конфига: по умолчанию ~100 запросов за 15 минут глобально и ~10 за
// 15 минут для /auth.
func RateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	return NewRateLimiter(config).Middleware()
}

// Middleware ограничивает частоту запросов по client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getVisitor(c.ClientIP())

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Error: apperrors.New(
					apperrors.CodeRateLimited,
					"edge",
					"Too many requests from this IP, please try again later.",
					http.StatusTooManyRequests,
				),
			})
			return
		}

		c.Next()
	}
}
