package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/middleware"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	tokenCookie = "token"
	stateCookie = "oauth_state"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service       *Service
	google        *GoogleOAuth
	publicBaseURL string
	tokenTTL      time.Duration
	log           *logrus.Logger
}

func NewHandler(service *Service, google *GoogleOAuth, publicBaseURL string, tokenTTL time.Duration, log *logrus.Logger) *Handler {
	return &Handler{
		service:       service,
		google:        google,
		publicBaseURL: publicBaseURL,
		tokenTTL:      tokenTTL,
		log:           log,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/demo-login", h.DemoLogin)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/google", h.GoogleRedirect)
		authGroup.GET("/google/callback", h.GoogleCallback)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/user", h.GetUser)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "Email already registered")
			return
		}
		h.log.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.log.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) DemoLogin(c *gin.Context) {
	user, token, err := h.service.DemoLogin()
	if err != nil {
		h.log.WithError(err).Error("demo login failed")
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	h.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", h.secureCookies(), true)
	response.Message(c, http.StatusOK, "Logged out")
}

func (h *Handler) GetUser(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.service.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusUnauthorized, "User not found")
			return
		}
		h.log.WithError(err).Error("current user lookup failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) GoogleRedirect(c *gin.Context) {
	if h.google == nil {
		response.Error(c, http.StatusInternalServerError, "Google sign-in is not configured")
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookie, state, int((10 * time.Minute).Seconds()), "/", "", h.secureCookies(), true)
	c.Redirect(http.StatusFound, h.google.AuthCodeURL(state))
}

func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		response.Error(c, http.StatusInternalServerError, "Google sign-in is not configured")
		return
	}

	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		response.Error(c, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secureCookies(), true)

	code := c.Query("code")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	gu, err := h.google.FetchUser(c.Request.Context(), code)
	if err != nil {
		h.log.WithError(err).Warn("google code exchange failed")
		response.Error(c, http.StatusUnauthorized, "Google sign-in failed")
		return
	}

	_, token, err := h.service.LoginWithGoogle(c.Request.Context(), gu)
	if err != nil {
		h.log.WithError(err).Error("google login failed")
		response.Error(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	h.setTokenCookie(c, token)
	c.Redirect(http.StatusFound, h.publicBaseURL+"/")
}

func (h *Handler) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie(tokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", h.secureCookies(), true)
}

func (h *Handler) secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}
