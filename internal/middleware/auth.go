package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SeanSun10/ProjectManager/internal/auth"
	"github.com/SeanSun10/ProjectManager/internal/constants"
	apierrors "github.com/SeanSun10/ProjectManager/internal/errors"
	"github.com/SeanSun10/ProjectManager/internal/models"
	"github.com/SeanSun10/ProjectManager/internal/repository"
)

// RequireAuth validates the Authorization bearer token, resolves it to
// an active user, and binds the user to the request context.
func RequireAuth(jwtSecret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			apierrors.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				apierrors.Unauthorized(c, "Token expired")
			} else {
				apierrors.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			apierrors.Unauthorized(c, "User not found")
			c.Abort()
			return
		}
		if !user.IsActive {
			apierrors.Forbidden(c, "Inactive user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetCurrentUser retrieves the authenticated user from context
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
