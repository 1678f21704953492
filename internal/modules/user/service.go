package user

import (
	"context"
	"errors"
	"strings"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/pkg/authz"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) List(ctx context.Context) ([]SafeUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SafeUser, 0, len(users))
	for i := range users {
		out = append(out, toSafeUser(&users[i]))
	}
	return out, nil
}

// Update lets a user edit their own profile and an admin edit anyone's.
// Role changes are admin-only regardless of ownership.
func (s *Service) Update(ctx context.Context, p authz.Principal, id int64, req UpdateUserRequest) (*domain.User, error) {
	if !authz.CanAccess(p, id, domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if req.Name == nil && req.Phone == nil && req.Password == nil && req.Role == nil {
		return nil, ErrValidation
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		u.Name = *req.Name
	}
	if req.Phone != nil {
		taken, err := s.users.PhoneExists(ctx, *req.Phone, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneAlreadyExists
		}
		u.Phone = *req.Phone
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != nil {
		if !authz.IsAdmin(p) {
			return nil, ErrForbidden
		}
		role := domain.UserRole(*req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		u.Role = role
	}

	if err := s.users.Update(ctx, u); err != nil {
		// The phone pre-check can race another writer; the unique index
		// settles it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// Delete refuses while the user still holds an active booking.
func (s *Service) Delete(ctx context.Context, id int64) error {
	active, err := s.users.CountActiveBookings(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrHasActiveBookings
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
