package middleware

import (
	"errors"
	"net/http"
	"strings"

	"car-rental-backend/models"
	"car-rental-backend/services"
	"car-rental-backend/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireAuth verifies the session token and loads the caller from the
// database, so later handlers see the stored role.
func RequireAuth(sessions *services.SessionService, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "error.missingToken", "login required")
			return
		}
		userID, err := sessions.Verify(token)
		if err != nil {
			utils.AbortJSONError(c, http.StatusUnauthorized, "error.invalidToken", "session is invalid or expired")
			return
		}
		user, err := users.Get(userID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				utils.AbortJSONError(c, http.StatusUnauthorized, "error.invalidToken", "session user no longer exists")
				return
			}
			utils.AbortJSONError(c, http.StatusInternalServerError, "error.internal", "failed to load session user")
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.AbortJSONError(c, http.StatusUnauthorized, "error.missingToken", "login required")
			return
		}
		if !user.IsAdmin() {
			utils.AbortJSONError(c, http.StatusForbidden, "error.forbidden", "admin role required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user RequireAuth stored on the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
