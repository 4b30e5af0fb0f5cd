package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resumeapi/internal/auth"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
)

// Tokens issues and verifies bearer tokens.
type Tokens interface {
	Issue(userID string) (string, error)
	Parse(token string) (string, error)
}

// AuthService handles accounts and resolves bearer tokens to users.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*model.User, error)
	// Login returns a signed access token.
	Login(ctx context.Context, email, password string) (string, error)
	// Resolve maps a bearer token to its user; any failure is ErrUnauthorized.
	Resolve(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens Tokens
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens Tokens) AuthService {
	return &authService{users: users, tokens: tokens, now: func() time.Time { return time.Now().UTC() }}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.users.Create(ctx, &model.User{
		Email:          normalizeEmail(email),
		FullName:       fullName,
		HashedPassword: hash,
		CreatedAt:      s.now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := auth.CheckPassword(u.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID)
}

func (s *authService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sub, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	u, err := s.users.FindByID(ctx, sub)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return u, nil
}
