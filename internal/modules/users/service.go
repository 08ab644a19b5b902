package users

import (
	"context"
	"strings"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
)

// UserRepositoryInterface — only the methods the users service uses
type UserRepositoryInterface interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) (*domain.User, error)
}

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// List returns all users for the admin screen. For demo-admin sessions
// PII fields are masked before transmission: the demo account gets a
// working admin UI without being able to read real emails, names or
// phone numbers.
func (s *Service) List(ctx context.Context, maskPII bool) ([]domain.User, error) {
	list, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].PasswordHash = ""
		if maskPII {
			maskUser(&list[i])
		}
	}
	return list, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		user.LastName = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(req.ProfileImageURL); v != "" {
		user.ProfileImageURL = v
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) SetAdmin(ctx context.Context, id int64, isAdmin bool) (*domain.User, error) {
	user, err := s.users.SetAdmin(ctx, id, isAdmin)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func maskUser(u *domain.User) {
	u.Email = maskEmail(u.Email)
	u.FirstName = maskValue(u.FirstName)
	u.LastName = maskValue(u.LastName)
	u.Phone = maskValue(u.Phone)
}

// maskValue keeps the first two characters so rows stay visually
// distinguishable, deterministically.
func maskValue(v string) string {
	if v == "" {
		return ""
	}
	r := []rune(v)
	if len(r) <= 2 {
		return "***"
	}
	return string(r[:2]) + "***"
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskValue(email)
	}
	return maskValue(email[:at]) + "@" + email[at+1:]
}
