package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	"github.com/f0xyris/psycho-therapy-sub001/internal/middleware"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	gate    middleware.AdminChecker
	log     *logrus.Logger
}

func NewHandler(service *Service, gate middleware.AdminChecker, log *logrus.Logger) *Handler {
	return &Handler{service: service, gate: gate, log: log}
}

// RegisterPublicRoutes expects the group to carry OptionalJWTAuth so
// listing can widen for admin identities.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/reviews", h.List)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Create)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.PUT("/reviews/:id/status", h.SetStatus)
	admin.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	claims, _ := middleware.CurrentClaims(c)
	isAdmin := middleware.IsAdmin(c.Request.Context(), claims, h.gate)

	list, err := h.service.List(c.Request.Context(), isAdmin)
	if err != nil {
		h.log.WithError(err).Error("review listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load reviews")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Invalid review")
			return
		}
		h.log.WithError(err).Error("review create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to save review")
		return
	}

	c.JSON(http.StatusCreated, rv)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Status must be pending or approved")
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.JSON(http.StatusOK, domain.Review{ID: id, Status: domain.ReviewStatus(req.Status)})
		return
	}

	rv, err := h.service.SetStatus(c.Request.Context(), id, domain.ReviewStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Review not found")
			return
		}
		h.log.WithError(err).Error("review status update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update review")
		return
	}

	c.JSON(http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Review not found")
			return
		}
		h.log.WithError(err).Error("review delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	c.Status(http.StatusNoContent)
}
