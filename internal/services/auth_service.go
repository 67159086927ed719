package services

import (
	"errors"
	"log"
	"time"

	"dealer_manager/internal/repository"
	"dealer_manager/pkg/token"

	"golang.org/x/crypto/bcrypt"

	"dealer_manager/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// SessionStore persists login sessions and revoked tokens. A nil store
// disables both.
type SessionStore interface {
	SaveSession(username string, userID uint, role string) error
	RevokeToken(tokenString string, ttl time.Duration) error
}

type AuthService interface {
	Login(username, password string) (string, *models.User, error)
	Logout(tokenString string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	sessions SessionStore
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, sessions SessionStore) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, sessions: sessions}
}

func (s *authService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	if s.sessions != nil {
		if err := s.sessions.SaveSession(user.Username, user.ID, user.Role); err != nil {
			log.Printf("Failed to cache session for %s: %v", user.Username, err)
		}
	}
	return tokenString, user, nil
}

// Logout revokes the token for its remaining validity window.
func (s *authService) Logout(tokenString string) error {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return err
	}
	if s.sessions == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.sessions.RevokeToken(tokenString, ttl)
}
