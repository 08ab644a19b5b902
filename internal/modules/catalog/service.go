package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/cache"
	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	"github.com/f0xyris/psycho-therapy-sub001/internal/pkg/validator"

	"gorm.io/gorm"
)

const (
	coursesCacheKey  = "catalog:courses"
	servicesCacheKey = "catalog:services"
	listCacheTTL     = 60 * time.Second
)

// CourseRepositoryInterface — only the methods the catalog service uses
type CourseRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, c *domain.Course) error
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id int64) error
}

type ServiceRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

// Service serves the read-heavy public catalog, with a short-TTL cache
// in front of the list reads when one is configured. The cache is
// best-effort: any cache failure falls through to the store.
type Service struct {
	courses  CourseRepositoryInterface
	services ServiceRepositoryInterface
	cache    cache.Cache
}

func NewService(courses CourseRepositoryInterface, services ServiceRepositoryInterface, c cache.Cache) *Service {
	return &Service{courses: courses, services: services, cache: c}
}

// -------------------- Courses --------------------

func (s *Service) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if s.cache != nil {
		var cached []domain.Course
		if hit, err := s.cache.GetJSON(ctx, coursesCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	list, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, coursesCacheKey, list, listCacheTTL)
	}
	return list, nil
}

func (s *Service) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) CreateCourse(ctx context.Context, req UpsertItemRequest) (*domain.Course, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	c := &domain.Course{
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.courses.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx, coursesCacheKey)
	return c, nil
}

func (s *Service) UpdateCourse(ctx context.Context, id int64, req UpsertItemRequest) (*domain.Course, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	c := &domain.Course{
		ID:          id,
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.courses.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, coursesCacheKey)
	return s.courses.GetByID(ctx, id)
}

func (s *Service) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.invalidate(ctx, coursesCacheKey)
	return nil
}

// -------------------- Services --------------------

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	if s.cache != nil {
		var cached []domain.Service
		if hit, err := s.cache.GetJSON(ctx, servicesCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	list, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, servicesCacheKey, list, listCacheTTL)
	}
	return list, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	sv, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sv, nil
}

func (s *Service) CreateService(ctx context.Context, req UpsertItemRequest) (*domain.Service, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	sv := &domain.Service{
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.services.Create(ctx, sv); err != nil {
		return nil, err
	}

	s.invalidate(ctx, servicesCacheKey)
	return sv, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpsertItemRequest) (*domain.Service, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrInvalidRequest
	}

	sv := &domain.Service{
		ID:          id,
		Name:        domain.LocalizedText(req.Name),
		Description: domain.LocalizedText(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.services.Update(ctx, sv); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, servicesCacheKey)
	return s.services.GetByID(ctx, id)
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.invalidate(ctx, servicesCacheKey)
	return nil
}

func (s *Service) invalidate(ctx context.Context, key string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, key)
	}
}
