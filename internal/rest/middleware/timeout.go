package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// SetRequestContextWithTimeout bounds every request's context.
// The store and cache calls downstream all take this context, so a slow
// backend cannot hold a handler forever.
func SetRequestContextWithTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
