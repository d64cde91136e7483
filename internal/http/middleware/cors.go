// README: CORS middleware; open to all origins per the public estimator API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS permits any origin and answers preflight requests with 200 and no
// body.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
