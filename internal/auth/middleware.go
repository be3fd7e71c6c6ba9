package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lunchscan/internal/respond"
)

// Context keys set by the gates for downstream handlers.
const (
	ContextClaims  = "claims"
	ContextAdminID = "adminId"
)

// RequireAuth is the mandatory gate: a missing, malformed, expired or
// badly-signed bearer token halts the request. A valid token only proves
// itself cryptographically; the admin record is never re-checked.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := bearerToken(c.GetHeader("Authorization"))
		if errMsg != "" {
			respond.AbortFail(c, http.StatusUnauthorized, errMsg)
			return
		}

		claims, err := Parse(token, secret)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				respond.AbortFail(c, http.StatusUnauthorized, "Token has expired")
				return
			}
			respond.AbortFail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextAdminID, claims.AdminID)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present and silently
// proceeds otherwise. It guards route classes that work with or without a
// caller identity.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := bearerToken(c.GetHeader("Authorization"))
		if errMsg == "" {
			if claims, err := Parse(token, secret); err == nil {
				c.Set(ContextClaims, claims)
				c.Set(ContextAdminID, claims.AdminID)
			}
		}
		c.Next()
	}
}

// bearerToken splits an Authorization header. The header must hold exactly a
// scheme and one token value; extra segments are rejected outright.
func bearerToken(header string) (token, errMsg string) {
	if header == "" {
		return "", "Access token is required"
	}
	parts := strings.Split(header, " ")
	if len(parts) > 2 {
		return "", "Invalid Token"
	}
	if len(parts) < 2 || parts[1] == "" {
		return "", "Access token is required"
	}
	return parts[1], ""
}

// ClaimsFrom pulls gate-attached claims out of the request context.
func ClaimsFrom(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
