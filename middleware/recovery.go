package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware keeps a panic scoped to the request that caused it.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v (request %s)", err, c.GetString("request_id"))
				TrackError("panic")
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
