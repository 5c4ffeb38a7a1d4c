package middlewares

import (
	"strings"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

// OptionalAuth populates the principal when a valid bearer token is present
// but lets anonymous requests through untouched.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret); err == nil {
				c.Set(utils.CtxPrincipalID, claims.PrincipalID)
				c.Set(utils.CtxRole, claims.Role)
			}
		}
		c.Next()
	}
}
