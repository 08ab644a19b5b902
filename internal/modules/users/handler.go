package users

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	"github.com/f0xyris/psycho-therapy-sub001/internal/middleware"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
	gate    middleware.AdminChecker
	log     *logrus.Logger
}

func NewHandler(service *Service, gate middleware.AdminChecker, log *logrus.Logger) *Handler {
	return &Handler{service: service, gate: gate, log: log}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.PUT("/users/:id", h.UpdateProfile)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", h.List)
	admin.PATCH("/users/:id/admin", h.SetAdmin)
}

func (h *Handler) List(c *gin.Context) {
	claims, _ := middleware.CurrentClaims(c)

	list, err := h.service.List(c.Request.Context(), claims != nil && claims.IsDemo)
	if err != nil {
		h.log.WithError(err).Error("user listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateProfile lets a user edit their own record; admins may edit
// anyone. Demo sessions get a synthetic echo instead of a write.
func (h *Handler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims.IsDemo {
		c.JSON(http.StatusOK, syntheticProfile(id, claims.Email, req))
		return
	}

	if claims.UserID != id && !middleware.IsAdmin(c.Request.Context(), claims, h.gate) {
		response.Error(c, http.StatusForbidden, "You can only update your own profile")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("profile update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) SetAdmin(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		now := time.Now().UTC()
		c.JSON(http.StatusOK, domain.User{ID: id, IsAdmin: *req.IsAdmin, UpdatedAt: now})
		return
	}

	user, err := h.service.SetAdmin(c.Request.Context(), id, *req.IsAdmin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("admin flag update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

func syntheticProfile(id int64, email string, req UpdateProfileRequest) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:              id,
		Email:           email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		ProfileImageURL: req.ProfileImageURL,
		IsAdmin:         true,
		UpdatedAt:       now,
	}
}
