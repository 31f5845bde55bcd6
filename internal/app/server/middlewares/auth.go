package middlewares

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/app/pkg/ginx"
)

// AdminAuth requires "Authorization: Bearer <token>". An empty token disables the admin API.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			ginx.Forbidden(c, "admin API disabled")
			c.Abort()
			return
		}

		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			ginx.Error(c, http.StatusUnauthorized, "invalid admin token")
			c.Abort()
			return
		}
		c.Next()
	}
}
