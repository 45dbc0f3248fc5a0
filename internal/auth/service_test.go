// Plex Roulette - Random Picks from a Plex Media Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plexroulette

package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/plexroulette/internal/database"
	"github.com/tomtom215/plexroulette/internal/models"
)

// memoryStore is an in-process UserStore.
type memoryStore struct {
	mu    sync.Mutex
	users map[string]*models.User // by username
	err   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]*models.User)}
}

func (s *memoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[user.Username]; ok {
		return database.ErrDuplicate
	}
	user.ID = "id-" + user.Username
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *memoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, database.ErrNotFound
}

func (s *memoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memoryStore) UserExists(_ context.Context, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(t *testing.T) (*Service, *memoryStore) {
	t.Helper()
	store := newMemoryStore()
	return NewService(store, newTestJWTManager(t, time.Hour), bcrypt.MinCost), store
}

var anaInput = RegisterInput{Username: " ana ", Email: "Ana@Example.com", Password: "correct horse", DisplayName: "Ana"}

func TestRegister(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, anaInput)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Username != "ana" || user.Email != "ana@example.com" {
		t.Errorf("input not normalized: %+v", user)
	}

	stored := store.users["ana"]
	if stored.PasswordHash == "correct horse" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, anaInput); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	sameEmail := RegisterInput{Username: "other", Email: "ana@example.com", Password: "password1", DisplayName: "O"}
	for _, in := range []RegisterInput{anaInput, sameEmail} {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrUserExists) {
			t.Errorf("Register(%s) error = %v, want ErrUserExists", in.Username, err)
		}
	}

	store.err = errors.New("disk full")
	if _, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "password1", DisplayName: "Bob"}); err == nil || errors.Is(err, ErrUserExists) {
		t.Errorf("store failure should surface as a plain error, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, anaInput); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	result, err := svc.Login(ctx, LoginInput{Username: "ana", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" || result.User.Username != "ana" || result.ExpiresAt.Before(time.Now()) {
		t.Errorf("Login() = %+v", result)
	}

	claims, err := svc.jwt.ValidateToken(result.Token)
	if err != nil || claims.UserID != result.User.ID {
		t.Errorf("issued token invalid: %v %+v", err, claims)
	}

	me, err := svc.Me(ctx, claims.UserID)
	if err != nil || me.Username != "ana" {
		t.Errorf("Me() = %+v, %v", me, err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, anaInput); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	for name, in := range map[string]LoginInput{
		"wrong password": {Username: "ana", Password: "battery staple"},
		"unknown user":   {Username: "nobody", Password: "correct horse"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Login(ctx, in); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Me(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Me() error = %v, want ErrUserNotFound", err)
	}
}

func TestNewServiceClampsCost(t *testing.T) {
	svc := NewService(newMemoryStore(), nil, 99)
	if svc.bcryptCost != bcrypt.DefaultCost {
		t.Errorf("bcryptCost = %d, want default", svc.bcryptCost)
	}
}
