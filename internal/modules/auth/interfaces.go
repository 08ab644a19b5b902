package auth

import (
	"context"

	"github.com/f0xyris/psycho-therapy-sub001/internal/domain"
	jwtsvc "github.com/f0xyris/psycho-therapy-sub001/internal/pkg/jwt"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	LinkGoogleAccount(ctx context.Context, id int64, googleID, imageURL string) error
}

type tokenIssuer interface {
	GenerateToken(claims jwtsvc.Claims) (string, error)
}
