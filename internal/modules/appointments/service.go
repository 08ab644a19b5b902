package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"

	"gorm.io/gorm"
)

// AppointmentRepositoryInterface — only the methods the booking service uses
type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Appointment, error)
	SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	appointments AppointmentRepositoryInterface
}

func NewService(appointments AppointmentRepositoryInterface) *Service {
	return &Service{appointments: appointments}
}

// Create books an appointment for the caller. A demo identity gets a
// synthetic echo with no store write.
func (s *Service) Create(ctx context.Context, claims *jwtsvc.Claims, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if req.AppointmentDate.IsZero() || req.AppointmentDate.Before(time.Now()) {
		return nil, ErrInvalidRequest
	}

	a := &domain.Appointment{
		UserID:          claims.UserID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		Status:          domain.AppointmentPending,
		Notes:           strings.TrimSpace(req.Notes),
	}

	if claims.IsDemo {
		now := time.Now().UTC()
		a.ID = now.UnixMicro()
		a.CreatedAt = now
		a.UpdatedAt = now
		return a, nil
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.ListAll(ctx)
}

// ListMine returns the caller's own appointments. Demo identities own
// nothing persistent, so the list is empty.
func (s *Service) ListMine(ctx context.Context, claims *jwtsvc.Claims) ([]domain.Appointment, error) {
	if claims.IsDemo {
		return []domain.Appointment{}, nil
	}
	return s.appointments.ListByUser(ctx, claims.UserID)
}

func (s *Service) SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	a, err := s.appointments.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an appointment owned by the caller; admins may remove
// any.
func (s *Service) Delete(ctx context.Context, id int64, callerID int64, isAdmin bool) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !isAdmin && a.UserID != callerID {
		return ErrForbidden
	}

	err = s.appointments.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
