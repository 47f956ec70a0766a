package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup. Policies are safe for concurrent use, so
// one instance serves every request.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizePath strips markup from the request path before routing.
func SanitizePath() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.URL.Path = strictPolicy.Sanitize(c.Request.URL.Path)
		c.Next()
	}
}
