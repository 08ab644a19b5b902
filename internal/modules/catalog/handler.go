package catalog

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
)

type Handler struct {
	service *Service
	log     *logrus.Logger
}

func NewHandler(service *Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/courses", h.ListCourses)
	public.GET("/courses/:id", h.GetCourse)
	public.GET("/services", h.ListServices)
	public.GET("/services/:id", h.GetService)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/courses", h.CreateCourse)
	admin.PUT("/courses/:id", h.UpdateCourse)
	admin.DELETE("/courses/:id", h.DeleteCourse)
	admin.POST("/services", h.CreateService)
	admin.PUT("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeleteService)
}

// -------------------- Courses --------------------

func (h *Handler) ListCourses(c *gin.Context) {
	list, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("course listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load courses")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	course, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.WithError(err).Error("course lookup failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load course")
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handler) CreateCourse(c *gin.Context) {
	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.JSON(http.StatusCreated, syntheticCourse(req))
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Invalid course")
			return
		}
		h.log.WithError(err).Error("course create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create course")
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		course := syntheticCourse(req)
		course.ID = id
		c.JSON(http.StatusOK, course)
		return
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Invalid course")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Course not found")
		default:
			h.log.WithError(err).Error("course update failed")
			response.Error(c, http.StatusInternalServerError, "Failed to update course")
		}
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Course not found")
			return
		}
		h.log.WithError(err).Error("course delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	c.Status(http.StatusNoContent)
}

// -------------------- Services --------------------

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("service listing failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sv, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		h.log.WithError(err).Error("service lookup failed")
		response.Error(c, http.StatusInternalServerError, "Failed to load service")
		return
	}
	c.JSON(http.StatusOK, sv)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.JSON(http.StatusCreated, syntheticService(req))
		return
	}

	sv, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "Invalid service")
			return
		}
		h.log.WithError(err).Error("service create failed")
		response.Error(c, http.StatusInternalServerError, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, sv)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		sv := syntheticService(req)
		sv.ID = id
		c.JSON(http.StatusOK, sv)
		return
	}

	sv, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "Invalid service")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		default:
			h.log.WithError(err).Error("service update failed")
			response.Error(c, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}
	c.JSON(http.StatusOK, sv)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if claims, ok := middleware.CurrentClaims(c); ok && claims.IsDemo {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		h.log.WithError(err).Error("service delete failed")
		response.Error(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid ID")
		return 0, false
	}
	return id, true
}

func syntheticCourse(req UpsertItemRequest) domain.Course {
	now := time.Now().UTC()
	return domain.Course{
		ID:          now.UnixMicro(),
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func syntheticService(req UpsertItemRequest) domain.Service {
	now := time.Now().UTC()
	return domain.Service{
		ID:          now.UnixMicro(),
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
