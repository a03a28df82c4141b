package middleware

import "github.com/gin-gonic/gin"

type contextKey string

const (
	loggerCtxKey contextKey = "logger"

	// ActorGinKey is the gin context key under which the authenticated
	// admin's username is stored by AuthMiddleware.
	ActorGinKey = "actor"
)

// GetActorFromContext returns the authenticated admin's username stored by
// AuthMiddleware, or an empty string when the request is unauthenticated.
func GetActorFromContext(c *gin.Context) string {
	if v, ok := c.Get(ActorGinKey); ok {
		if actor, ok := v.(string); ok {
			return actor
		}
	}
	return ""
}
