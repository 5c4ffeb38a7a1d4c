package middlewares

import (
	"strings"

	"backend/pkg/resp"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// invalidTokenMsg covers missing, malformed, mis-signed and expired tokens
// alike; the cause only shows up in internal logs.
const invalidTokenMsg = "missing or invalid token"

// AuthMiddleware verifies the bearer token and puts the principal into the
// request context. With requiredRoles set, the principal's role must match
// one of them.
func AuthMiddleware(secret string, log zerolog.Logger, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, invalidTokenMsg)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			resp.Unauthorized(c, invalidTokenMsg)
			c.Abort()
			return
		}

		c.Set(utils.CtxPrincipalID, claims.PrincipalID)
		c.Set(utils.CtxRole, claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
