package auth

import (
	"context"
	"errors"
	"strings"

	"vehiclerental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepository
	jwt   TokenIssuer
}

func NewService(users UserRepository, jwt TokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if req.Role == "" {
		role = domain.RoleCustomer
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	taken, err = s.users.PhoneExists(ctx, req.Phone, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two signups can pass the pre-checks together; the unique index
		// settles it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "phone") {
				return nil, ErrPhoneAlreadyExists
			}
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Signin(ctx context.Context, req SigninRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	// One message for unknown email and wrong password.
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
