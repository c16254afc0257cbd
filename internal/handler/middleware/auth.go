package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"promo-api/internal/domain/user"
	"promo-api/internal/handler/httperr"
	"promo-api/internal/pkg/errs"
	"promo-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

var errMissingToken = errs.New("access token required")

var roleHierarchy = map[user.Role]int{
	user.RoleViewer:   1,
	user.RoleMarketer: 2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken,
				"UNAUTHENTICATED", "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err,
				"UNAUTHENTICATED", "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Next()
	}
}

// RequireRoleAtLeast allows callers whose role sits at or above minRole in
// the Viewer < Marketer < Admin hierarchy. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError,
				errs.New("identity missing from context"),
				"INTERNAL", "Internal server error", nil)
			return
		}

		if !hasMinimumRole(identity.Role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden,
				errs.New("insufficient role"),
				"PERMISSION_DENIED", "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetIdentity(c *gin.Context) (user.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}, false
	}

	identity, ok := v.(user.Identity)
	return identity, ok
}
