package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storehub/internal/errs"
	"storehub/internal/models"
	"storehub/internal/repositories"
	"storehub/internal/security"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Name     string
	Gender   models.Gender
	Email    string
	Level    int
	Password string
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Signup registers a new user with a hashed password. The public userID is
// assigned by the repository.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, errs.Conflict("Email already exists")
	} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	hashed, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     in.Name,
		Gender:   in.Gender,
		Email:    in.Email,
		Level:    in.Level,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return nil, errs.Wrap(errs.KindConflict, "Email already exists", err)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", notFoundAs(err, "Invalid account")
	}
	ok, err := security.CheckPassword(password, user.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.Unauthorized("Wrong password.")
	}
	return s.IssueToken(user.ID)
}

// IssueToken signs a token whose subject is the user's internal key.
func (s *AuthService) IssueToken(userKey string) (string, error) {
	return security.IssueToken(userKey, s.jwtSecret, s.now(), s.tokenTTL)
}

// ResolveToken turns an Authorization header value into the user it was
// issued for.
func (s *AuthService) ResolveToken(ctx context.Context, header string) (*models.User, error) {
	if header == "" {
		return nil, errs.Unauthorized("Missing token")
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, errs.Validation("Invalid token format")
	}

	claims, err := security.ParseToken(parts[1], s.jwtSecret)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, errs.Wrap(errs.KindUnauthorized, "Token expired", err)
		}
		return nil, errs.Wrap(errs.KindUnauthorized, "Invalid token", err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}
