package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimiter builds an in-memory IP rate limiter middleware from a
// formatted rate such as "5-M" (5 requests per minute). Used on the auth
// endpoints to slow credential stuffing.
func NewRateLimiter(formatted string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		log.Printf("Invalid rate limit format '%s', rate limiting disabled: %v", formatted, err)
		return func(c *gin.Context) { c.Next() }
	}
	store := memory.NewStore()
	return limitergin.NewMiddleware(limiter.New(store, rate))
}
