package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Errors
var (
	ErrUsernameRequired = errors.New("admin username is required")
	ErrPasswordRequired = errors.New("admin password is required")
	ErrPasswordTooLong  = errors.New("admin password must be at most 72 bytes")
)

// Config holds the fixed admin identity
type Config struct {
	Username string
	Password string
}

// DefaultConfig returns the built-in admin identity
func DefaultConfig() Config {
	return Config{
		Username: "admin",
		Password: "tournament",
	}
}

// Service checks login attempts against the single admin identity.
// The pair is fixed for the lifetime of the process.
//
// This is an exact-match gate over a static credential, not a real
// authentication system.
type Service struct {
	username     []byte
	passwordHash []byte
	logger       *slog.Logger
}

// bcrypt only compares this many bytes, so longer attempts are refused outright
const maxPasswordBytes = 72

// New creates a Service for the configured admin identity
func New(cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.Username == "" {
		return nil, ErrUsernameRequired
	}
	if cfg.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(cfg.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	return &Service{
		username:     []byte(cfg.Username),
		passwordHash: hash,
		logger:       logger.With(slog.String("component", "auth")),
	}, nil
}

// Check reports whether user and pass are exactly the admin pair.
// Failures do not reveal which half was wrong.
func (s *Service) Check(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), s.username) == 1
	passOK := len(pass) <= maxPasswordBytes &&
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(pass)) == nil

	if userOK && passOK {
		return true
	}
	s.logger.Info("admin login rejected")
	return false
}
