package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
)

// Context keys populated by JWTMiddleware
const (
	ContextAccountID = "account_id"
	ContextEmail     = "email"
	ContextRoles     = "roles"
)

// JWTMiddleware creates JWT authentication middleware
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenMissing, "Authorization header required", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err))
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRoles, claims.Roles)
		c.Next()
	}
}

// OptionalJWTMiddleware attaches the session principal when a valid
// bearer token is presented but lets anonymous requests through. Used
// on public read endpoints whose response depends on who is asking.
func OptionalJWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(ContextAccountID, claims.AccountID)
				c.Set(ContextEmail, claims.Email)
				c.Set(ContextRoles, claims.Roles)
			}
		}
		c.Next()
	}
}

// RequireRoles rejects requests whose token carries none of the given
// roles. It must run after JWTMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		held := RolesFromContext(c)
		for _, want := range roles {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}
		c.JSON(http.StatusForbidden, domain.NewForbiddenError("Insufficient permissions"))
		c.Abort()
	}
}

// AccountIDFromContext returns the authenticated account ID, if any
func AccountIDFromContext(c *gin.Context) string {
	if id, exists := c.Get(ContextAccountID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RolesFromContext returns the authenticated roles, if any
func RolesFromContext(c *gin.Context) []string {
	if v, exists := c.Get(ContextRoles); exists {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}

// IsStaff reports whether the authenticated account holds a staff role
func IsStaff(c *gin.Context) bool {
	for _, r := range RolesFromContext(c) {
		if r == domain.RoleAdmin || r == domain.RoleModerator {
			return true
		}
	}
	return false
}
