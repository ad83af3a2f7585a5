package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the acting user's ID in the context.
const userIDKey = contextKey("userID")

// userIDHeader carries the acting user's identifier. Authentication is
// handled upstream by the gateway; this service only attributes changes.
const userIDHeader = "X-User-ID"

// UserContextMiddleware extracts the acting user from the request header and
// stores it in both the Gin context and the request context. Requests without
// a user identifier are rejected.
func UserContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + userIDHeader + " header"})
			return
		}

		c.Set(string(userIDKey), userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, userID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDCtxVal := c.Request.Context().Value(userIDKey)
		if userIDCtxVal != nil {
			if userID, ok := userIDCtxVal.(string); ok {
				return userID, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
