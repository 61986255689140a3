package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func identityFromClaims(claims *JWTClaims) Identity {
	return Identity{
		UserID:        claims.UserID,
		Email:         claims.Email,
		Roles:         claims.Roles,
		Authenticated: true,
	}
}

// Middleware requires a valid access token and stores the resolved identity
// on the request context.
func Middleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		c.Set(identityKey, identityFromClaims(claims))
		c.Next()
	}
}

// OptionalMiddleware resolves an identity when a valid token is present but
// lets anonymous requests through. Used by endpoints such as session info.
func OptionalMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil || claims.TokenType != "access" {
			c.Next()
			return
		}

		c.Set(identityKey, identityFromClaims(claims))
		c.Next()
	}
}

// RequireRole aborts with 403 unless the resolved identity holds the role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := GetIdentity(c)
		if !ident.Authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !ident.HasRole(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity returns the identity resolved by the middleware, or the
// anonymous identity when none was set.
func GetIdentity(c *gin.Context) Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return Anonymous()
	}

	ident, ok := v.(Identity)
	if !ok {
		return Anonymous()
	}

	return ident
}
