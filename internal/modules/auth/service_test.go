package auth

import (
	"context"
	"testing"

	"vehiclerental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) PhoneExists(ctx context.Context, phone string, excludeUserID int64) (bool, error) {
	args := m.Called(ctx, phone, excludeUserID)
	return args.Bool(0), args.Error(1)
}

type stubTokenIssuer struct{}

func (stubTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func TestService_Signup_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "jane@example.com").Return(false, nil)
	users.On("PhoneExists", mock.Anything, "+1555123", int64(0)).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubTokenIssuer{})

	u, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Jane",
		Email:    "Jane@Example.com",
		Phone:    "+1555123",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email) // stored lower-cased
	assert.Equal(t, domain.RoleCustomer, u.Role) // defaults to customer
	assert.NotEqual(t, "secret1", u.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "jane@example.com").Return(true, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Jane",
		Email:    "JANE@EXAMPLE.COM",
		Phone:    "+1555123",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Signup_DuplicatePhone(t *testing.T) {
	users := new(MockUserRepository)
	users.On("EmailExists", mock.Anything, "jane@example.com").Return(false, nil)
	users.On("PhoneExists", mock.Anything, "+1555123", int64(0)).Return(true, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Phone:    "+1555123",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestService_Signup_InvalidRole(t *testing.T) {
	svc := NewService(new(MockUserRepository), stubTokenIssuer{})

	_, err := svc.Signup(context.Background(), SignupRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Phone:    "+1555123",
		Password: "secret1",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestService_Signin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           7,
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	svc := NewService(users, stubTokenIssuer{})

	u, token, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "jane@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "test-token", token)
}

func TestService_Signin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	existing := &domain.User{Email: "jane@example.com", PasswordHash: string(hash)}

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, _, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Signin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewService(users, stubTokenIssuer{})

	_, _, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Same error as a wrong password; callers can't probe for accounts.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
