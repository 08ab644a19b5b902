package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo identity: synthetic, admin-privileged, never persisted. The id
// is deliberately outside the range real rows occupy.
const (
	demoUserID    int64 = 999999
	demoEmail           = "demo@demo.com"
	demoFirstName       = "Demo"
	demoLastName        = "User"
)

// Service contains all business logic for authentication
type Service struct {
	users UserRepositoryInterface
	jwt   tokenIssuer
}

func NewService(users UserRepositoryInterface, jwt tokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(claimsFor(user))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Google-only accounts have no password to compare against.
	if user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(claimsFor(user))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// DemoLogin issues a token for the synthetic demo identity without
// touching the store. The demo claims carry isAdmin so the admin UI is
// browsable; every mutating handler short-circuits on isDemo.
func (s *Service) DemoLogin() (*domain.User, string, error) {
	user := demoUser()

	token, err := s.jwt.GenerateToken(jwtsvc.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsAdmin:   true,
		IsDemo:    true,
	})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentUser resolves claims to a user record. Demo claims never hit
// the store.
func (s *Service) CurrentUser(ctx context.Context, claims *jwtsvc.Claims) (*domain.User, error) {
	if claims.IsDemo {
		return demoUser(), nil
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// LoginWithGoogle upserts a user from a Google profile: match by
// googleId first, then by email (linking the account), otherwise
// create a fresh password-less user.
func (s *Service) LoginWithGoogle(ctx context.Context, gu *GoogleUser) (*domain.User, string, error) {
	user, err := s.users.GetByGoogleID(ctx, gu.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if user == nil {
		email := strings.ToLower(strings.TrimSpace(gu.Email))
		existing, err := s.users.GetByEmail(ctx, email)
		switch {
		case err == nil:
			if err := s.users.LinkGoogleAccount(ctx, existing.ID, gu.ID, gu.Picture); err != nil {
				return nil, "", err
			}
			existing.GoogleID = gu.ID
			user = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = &domain.User{
				Email:           email,
				FirstName:       gu.GivenName,
				LastName:        gu.FamilyName,
				ProfileImageURL: gu.Picture,
				GoogleID:        gu.ID,
			}
			if err := s.users.Create(ctx, user); err != nil {
				return nil, "", err
			}
		default:
			return nil, "", err
		}
	}

	token, err := s.jwt.GenerateToken(claimsFor(user))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func claimsFor(u *domain.User) jwtsvc.Claims {
	return jwtsvc.Claims{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsAdmin:   u.IsAdmin,
	}
}

func demoUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        demoUserID,
		Email:     demoEmail,
		FirstName: demoFirstName,
		LastName:  demoLastName,
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
