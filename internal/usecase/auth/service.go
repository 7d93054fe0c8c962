package auth

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Pesokrava/product_catalog/internal/domain"
	pkgauth "github.com/Pesokrava/product_catalog/internal/pkg/auth"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
)

// Service handles registration and login
type Service struct {
	users    domain.UserRepository
	tokens   *pkgauth.JWTManager
	validate *validator.Validate
	logger   *logger.Logger
}

// NewService creates a new auth service
func NewService(users domain.UserRepository, tokens *pkgauth.JWTManager, log *logger.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		validate: validator.New(),
		logger:   log,
	}
}

// Register creates a new user with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, user *domain.User, password string) error {
	if len(password) < 8 {
		return domain.NewValidationError("password", "password must be at least 8 characters")
	}
	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User validation failed", err)
		return domain.ErrInvalidInput
	}

	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password", err)
		return domain.ErrInternal
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if err == domain.ErrAlreadyExists {
			return domain.NewValidationError("username", "username or email already taken")
		}
		s.logger.Error("Failed to create user", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered successfully")

	return nil
}

// Login authenticates a user and returns a signed token. Invalid credentials
// are reported without revealing whether the username exists.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", nil, domain.ErrUnauthenticated
		}
		s.logger.Error("Failed to get user for login", err)
		return "", nil, err
	}

	if !pkgauth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrUnauthenticated
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token", err)
		return "", nil, domain.ErrInternal
	}

	return token, user, nil
}
