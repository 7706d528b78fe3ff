package middleware

import (
	"aurora/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by Identity.
const (
	ContextToken  = "bearerToken"
	ContextUserID = "userID"
)

// Identity extracts the bearer token, when present, and derives the caller's
// pseudo user id from it. It never rejects a request: the token is an input
// to a deterministic hash, not a credential to verify.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.BearerToken(c.GetHeader("Authorization"))
		if token != "" {
			c.Set(ContextToken, token)
			c.Set(ContextUserID, utils.DeriveUserID(token))
		}
		c.Next()
	}
}

// TokenFrom returns the bearer token stored by Identity, or "".
func TokenFrom(c *gin.Context) string {
	return c.GetString(ContextToken)
}

// UserIDFrom returns the derived pseudo user id, or "".
func UserIDFrom(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
