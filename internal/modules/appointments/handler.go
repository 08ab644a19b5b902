package appointments

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/appointments", h.Create)
	protected.GET("/appointments/mine", h.ListMine)
	protected.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/appointments", h.ListAll)
	admin.PUT("/appointments/:id/status", h.SetStatus)
}

func (h *Handler) Create(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Appointment date must be in the future")
			return
		}
		h.log.WithError(err).Error("appointment create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListMine(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), claims)
	if err != nil {
		h.log.WithError(err).Error("appointment listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("appointment listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.JSON(http.StatusOK, domain.Appointment{ID: id, Status: domain.AppointmentStatus(req.Status)})
		return
	}

	a, err := h.service.SetStatus(c.Request.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Appointment not found")
			return
		}
		h.log.WithError(err).Error("appointment status update failed")
		response.Error(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if claims.IsDemo {
		c.Status(http.StatusNoContent)
		return
	}

	isAdmin := middleware.IsAdmin(c.Request.Context(), claims, h.gate)
	if err := h.service.Delete(c.Request.Context(), id, claims.UserID, isAdmin); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "You can only cancel your own appointments")
		default:
			h.log.WithError(err).Error("appointment delete failed")
			response.Error(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
