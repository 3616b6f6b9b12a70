package http

import (
	"net/http"
	"strings"

	"campuseats/internal/domain"
	"campuseats/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "userID"
	ctxRole   = "userRole"
)

// AuthRequired verifies the bearer token and stashes the caller's id
// and role on the request context.
func AuthRequired(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no authentication token provided"})
			return
		}

		userID, role, err := auth.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireVendor admits vendors and admins.
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := callerRole(c)
		if role != domain.RoleVendor && role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied, vendor role required"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerRole(c) != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied, admin role required"})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) uint64 {
	id, _ := c.Get(ctxUserID)
	userID, _ := id.(uint64)
	return userID
}

func callerRole(c *gin.Context) domain.Role {
	r, _ := c.Get(ctxRole)
	role, _ := r.(domain.Role)
	return role
}
