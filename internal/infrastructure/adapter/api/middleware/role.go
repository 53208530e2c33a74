package middleware

import (
	"net/http"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group: the authenticated user must carry at
// least one of the required roles. Must run after Auth.
func RequireRole(required ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := CurrentRoles(c)

		for _, have := range roles {
			for _, want := range required {
				if have == want {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrNotOwner),
			Message: "Insufficient permissions",
		})
	}
}
