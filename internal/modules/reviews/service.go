package reviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"

	"gorm.io/gorm"
)

// ReviewRepositoryInterface — only the methods the review service uses
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	List(ctx context.Context, approvedOnly bool) ([]domain.Review, error)
	SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	reviews ReviewRepositoryInterface
}

func NewService(reviews ReviewRepositoryInterface) *Service {
	return &Service{reviews: reviews}
}

// List applies the visibility filter: anonymous and non-admin callers
// see only approved reviews, admins see everything.
func (s *Service) List(ctx context.Context, isAdmin bool) ([]domain.Review, error) {
	return s.reviews.List(ctx, !isAdmin)
}

// Create stores a new review as pending. Demo identities never reach
// the store: the review is echoed back with a synthetic id so the demo
// flow looks complete while leaving the table untouched.
func (s *Service) Create(ctx context.Context, claims *jwtsvc.Claims, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrInvalidRequest
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(claims.FirstName + " " + claims.LastName)
	}

	rv := &domain.Review{
		ServiceID: req.ServiceID,
		Name:      name,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		Status:    domain.ReviewStatusPending,
	}

	if claims.IsDemo {
		rv.ID = syntheticID()
		rv.CreatedAt = time.Now().UTC()
		return rv, nil
	}

	userID := claims.UserID
	rv.UserID = &userID

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	rv, err := s.reviews.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.reviews.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// syntheticID is unique enough per demo call and can never collide
// with an autoincrement row id in practice.
func syntheticID() int64 {
	return time.Now().UnixMicro()
}
