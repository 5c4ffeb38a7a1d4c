package utils

import "github.com/gin-gonic/gin"

// Session keys set by the auth middleware.
const (
	CtxPrincipalID = "principalId"
	CtxRole        = "role"
)

func CurrentPrincipalID(c *gin.Context) uint {
	v, _ := c.Get(CtxPrincipalID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
