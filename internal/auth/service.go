// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/plexroulette/internal/database"
	"github.com/tomtom215/plexroulette/internal/logging"
	"github.com/tomtom215/plexroulette/internal/metrics"
	"github.com/tomtom215/plexroulette/internal/models"
)

var (
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("username or email already registered")

	// ErrInvalidCredentials is returned for an unknown user or wrong password.
	// The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned when a token refers to a deleted user.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the persistence the auth service needs. *database.DB
// implements it.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
}

// RegisterInput is the body of POST /api/auth/register.
type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=32,username"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"displayName" validate:"required,max=64"`
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service registers and logs in local users.
type Service struct {
	store      UserStore
	jwt        *JWTManager
	bcryptCost int

	// dummyHash is compared against when the user does not exist so that
	// unknown usernames take as long as wrong passwords.
	dummyHash []byte
}

// NewService creates an auth service. A cost outside bcrypt's range falls
// back to bcrypt.DefaultCost.
func NewService(store UserStore, jwtManager *JWTManager, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("plexroulette-timing-guard"), bcryptCost)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to prepare login timing guard")
	}

	return &Service{
		store:      store,
		jwt:        jwtManager,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Register creates a new account. The returned user never carries the hash
// to callers because models.User omits it from JSON.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user *models.User, err error) {
	defer func() { metrics.RecordAuthAttempt("register", err == nil) }()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.DisplayName = strings.TrimSpace(in.DisplayName)

	exists, err := s.store.UserExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user = &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logging.Ctx(ctx).Info().Str("username", user.Username).Str("user_id", user.ID).Msg("User registered")
	return user, nil
}

// Login checks the password and issues a token.
func (s *Service) Login(ctx context.Context, in LoginInput) (result *models.AuthResult, err error) {
	defer func() { metrics.RecordAuthAttempt("login", err == nil) }()

	user, err := s.store.GetUserByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, database.ErrNotFound) {
		if s.dummyHash != nil {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(in.Password))
		}
		logging.Ctx(ctx).Warn().Str("username", in.Username).Msg("Login failed: unknown user")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		logging.Ctx(ctx).Warn().Str("username", in.Username).Msg("Login failed: wrong password")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("username", user.Username).Msg("User logged in")
	return &models.AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Me returns the user behind a token.
func (s *Service) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
