package middleware

import (
	"net/http"
	"strings"

	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// ExtractToken pulls the credential from the request. Precedence,
// first match wins: Authorization Bearer header, "token" cookie,
// "token" query parameter. Empty string means absent.
func ExtractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")); tok != "" {
			return tok
		}
	}
	if v, err := c.Cookie("token"); err == nil && v != "" {
		return v
	}
	return c.Query("token")
}

// JWTAuth rejects requests without a valid token. Every decode failure
// collapses to 401, never 500.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractToken(c)
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalJWTAuth resolves claims when a valid token is present but
// lets anonymous requests through. Routes whose response shape depends
// on the caller's identity (review listing) use this.
func OptionalJWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := ExtractToken(c); tokenStr != "" {
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// CurrentClaims returns the claims resolved by JWTAuth/OptionalJWTAuth.
func CurrentClaims(c *gin.Context) (*jwtsvc.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwtsvc.Claims)
	return claims, ok
}
