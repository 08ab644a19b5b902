package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminChecker is the slice of the user repository the gate needs.
type AdminChecker interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// IsAdmin decides admin privilege for a claims record. Demo identities
// are always treated as admin so the demo session can exercise the
// admin UI. For everyone else the token's isAdmin flag is advisory
// only: the store's current flag wins whenever the store is reachable,
// and the token flag is honored only in the degraded case where it is
// not. An id the store does not know is denied.
func IsAdmin(ctx context.Context, claims *jwtsvc.Claims, users AdminChecker) bool {
	if claims == nil {
		return false
	}
	if claims.IsDemo {
		return true
	}

	u, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false
		}
		return claims.IsAdmin
	}
	return u.IsAdmin
}

// RequireAdmin gates a route group on admin privilege. Absence of
// claims yields 401, insufficient privilege 403.
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if !IsAdmin(c.Request.Context(), claims, users) {
			response.Error(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
