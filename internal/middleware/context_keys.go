package middleware

import "github.com/gin-gonic/gin"

// usernameKey is the key used to store the authenticated user's username.
// Using a custom type prevents collisions.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the Gin
// context. It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	usernameVal, exists := c.Get(string(usernameKey))
	if !exists {
		// check in the request context as well
		if ctxVal := c.Request.Context().Value(usernameKey); ctxVal != nil {
			if username, ok := ctxVal.(string); ok {
				return username, true
			}
		}
		return "", false
	}

	username, ok := usernameVal.(string)
	if !ok {
		return "", false
	}

	return username, true
}
