package middleware

import (
	"net/http"
	"strings"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "auth_user_id"
	ContextRoles  = "auth_roles"
)

// Auth middleware verifies the bearer token and stores its claims in the
// request context
func Auth(tokens coreport.TokenManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Missing or malformed authorization header",
			})
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("Token verification failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's ID from the request context
func CurrentUserID(c *gin.Context) string {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(string)
	return userID
}

// CurrentRoles returns the authenticated user's roles from the request
// context
func CurrentRoles(c *gin.Context) []entity.Role {
	raw, _ := c.Get(ContextRoles)
	roles, _ := raw.([]entity.Role)
	return roles
}
