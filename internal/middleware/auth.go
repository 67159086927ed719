package middleware

import (
	"net/http"
	"strings"

	"dealer_manager/pkg/token"

	"github.com/gin-gonic/gin"
)

// TokenStore checks whether a token has been revoked. A nil store skips
// the check.
type TokenStore interface {
	IsTokenRevoked(tokenString string) bool
}

// RouteRule maps a path prefix to the roles allowed under it. Rules are
// matched in order; the first matching prefix wins. A prefix with no
// roles only requires a valid token.
type RouteRule struct {
	Prefix string
	Roles  []string
}

const ClaimsKey = "auth_claims"

func AuthRequired(tokens *token.Manager, store TokenStore, rules []RouteRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		if store != nil && store.IsTokenRevoked(tokenString) {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		if rule, ok := matchRule(rules, c.Request.URL.Path); ok && len(rule.Roles) > 0 {
			if !roleAllowed(rule.Roles, claims.Role) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"status":  "error",
					"message": "Insufficient role",
					"data":    nil,
				})
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"data":    nil,
	})
}

func matchRule(rules []RouteRule, path string) (RouteRule, bool) {
	for _, rule := range rules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return RouteRule{}, false
}

func roleAllowed(allowed []string, role string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// Claims returns the authenticated claims set by AuthRequired.
func Claims(c *gin.Context) (*token.Claims, bool) {
	value, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}
