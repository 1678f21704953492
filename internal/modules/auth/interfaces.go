package auth

import (
	"context"

	"vehiclerental/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeUserID int64) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
