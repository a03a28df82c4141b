package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit builds an in-memory rate limiting middleware from a formatted
// rate such as "5-M" (five requests per minute per client IP).
func RateLimit(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		log.Fatalf("invalid rate limit format %q: %v", formatted, err)
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
