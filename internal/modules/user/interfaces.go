package user

import (
	"context"

	"vehiclerental/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	PhoneExists(ctx context.Context, phone string, excludeUserID int64) (bool, error)
	CountActiveBookings(ctx context.Context, userID int64) (int64, error)
}
