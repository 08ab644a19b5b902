package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
)

func claimsEchoRouter(jwt *jwtsvc.Service) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(jwt))
	router.GET("/protected", func(c *gin.Context) {
		claims, _ := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "email": claims.Email})
	})
	return router
}

func TestJWTAuth_BearerHeader(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, err := jwtService.GenerateToken(jwtsvc.Claims{UserID: 42, Email: "user@example.com"})
	require.NoError(t, err)

	router := claimsEchoRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestJWTAuth_TokenCookie(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, err := jwtService.GenerateToken(jwtsvc.Claims{UserID: 7, Email: "cookie@example.com"})
	require.NoError(t, err)

	router := claimsEchoRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cookie@example.com")
}

func TestJWTAuth_QueryParam(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, err := jwtService.GenerateToken(jwtsvc.Claims{UserID: 9, Email: "query@example.com"})
	require.NoError(t, err)

	router := claimsEchoRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "query@example.com")
}

func TestJWTAuth_HeaderWinsOverCookie(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	headerToken, err := jwtService.GenerateToken(jwtsvc.Claims{UserID: 1, Email: "header@example.com"})
	require.NoError(t, err)
	cookieToken, err := jwtService.GenerateToken(jwtsvc.Claims{UserID: 2, Email: "cookie@example.com"})
	require.NoError(t, err)

	router := claimsEchoRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+headerToken)
	req.AddCookie(&http.Cookie{Name: "token", Value: cookieToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "header@example.com")
	assert.NotContains(t, w.Body.String(), "cookie@example.com")
}

func TestJWTAuth_NoToken(t *testing.T) {
	jwtService := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("should not reach handler")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	jwtService := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("should not reach handler")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	// Decode failures are 401, never 500.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := jwtsvc.New("secret", -time.Minute)
	token, err := expired.GenerateToken(jwtsvc.Claims{UserID: 5})
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(jwtsvc.New("secret", time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("should not reach handler")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalJWTAuth_AnonymousPassesThrough(t *testing.T) {
	jwtService := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(OptionalJWTAuth(jwtService))
	router.GET("/open", func(c *gin.Context) {
		_, ok := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestOptionalJWTAuth_InvalidTokenStillAnonymous(t *testing.T) {
	jwtService := jwtsvc.New("secret", time.Hour)

	router := gin.New()
	router.Use(OptionalJWTAuth(jwtService))
	router.GET("/open", func(c *gin.Context) {
		_, ok := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer broken")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
