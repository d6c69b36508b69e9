package service

import (
	"context"
	"sync"

	"marketplace-service/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles registration, login and session tokens. Passwords are
// stored and compared in plain text; this is a simulation, not an
// authentication system.
type AuthService struct {
	store  *store.Store
	admin  config.AdminConfig
	logger *zap.Logger

	sessionsMu sync.RWMutex
	sessions   map[string]string // token -> username
}

// NewAuthService creates a new auth service
func NewAuthService(store *store.Store, admin config.AdminConfig) *AuthService {
	return &AuthService{
		store:    store,
		admin:    admin,
		logger:   util.GetLogger(),
		sessions: make(map[string]string),
	}
}

// Register appends a new user record. Duplicate usernames are not rejected;
// login resolves to the first matching record.
func (s *AuthService) Register(ctx context.Context, username, password, role, contactNumber string) models.User {
	_, span := util.StartSpan(ctx, "AuthService.Register")
	defer span.End()

	u := models.User{
		Username:      username,
		Password:      password,
		Role:          role,
		ContactNumber: contactNumber,
	}
	s.store.AddUser(u)

	util.UsersRegisteredTotal.Inc()
	s.logger.Info("User registered",
		zap.String("username", username),
		zap.String("role", role))
	return u
}

// Login scans the identity ledger for an exact username+password+role match
// and issues a session token on success.
func (s *AuthService) Login(ctx context.Context, username, password, role string) (models.User, string, error) {
	_, span := util.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	u, ok := s.store.Authenticate(username, password, role)
	if !ok {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		return models.User{}, "", models.ErrUserNotFound
	}

	token := uuid.New().String()
	s.sessionsMu.Lock()
	s.sessions[token] = u.Username
	s.sessionsMu.Unlock()

	util.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User logged in", zap.String("username", username))
	return u, token, nil
}

// SessionUser resolves a session token to a username.
func (s *AuthService) SessionUser(token string) (string, bool) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	username, ok := s.sessions[token]
	return username, ok
}

// Logout discards a session token. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	delete(s.sessions, token)
}

// AdminLogin checks the configured admin credential pair. The admin is not
// part of the identity ledger.
func (s *AuthService) AdminLogin(username, password string) bool {
	return username == s.admin.Username && password == s.admin.Password
}
