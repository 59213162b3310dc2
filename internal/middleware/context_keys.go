package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// tenantIDKey is the key used to store the authorized tenant's ID once
// the tenant guard has matched it against the token claims.
const tenantIDKey = contextKey("tenantID")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetTenantIDFromContext retrieves the authorized tenant ID from the Gin context.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantIDVal, exists := c.Get(string(tenantIDKey))
	if !exists {
		tenantIDVal := c.Request.Context().Value(tenantIDKey)
		if tenantIDVal != nil {
			return tenantIDVal.(string), true
		}
		return "", false
	}

	tenantID, ok := tenantIDVal.(string)
	if !ok {
		return "", false
	}

	return tenantID, true
}
