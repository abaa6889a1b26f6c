package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the acting participant id. It is set by the gateway
// that authenticated the request.
const ActorHeader = "X-User-ID"

const actorKey = "actor_id"

func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(ActorHeader)); id != "" {
			c.Set(actorKey, id)
		}
		c.Next()
	}
}

func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ActorHeader + " header is required"})
			return
		}
		c.Next()
	}
}

func ActorID(c *gin.Context) string {
	return c.GetString(actorKey)
}
