package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenMiddleware guards mutating routes with a shared secret carried
// in X-Admin-Token. It is a stand-in for a real identity provider; the
// content store itself never inspects caller identity. An empty expected
// token rejects every request.
func AdminTokenMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")

		if expected == "" || token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid admin token",
			})
			return
		}

		c.Next()
	}
}
