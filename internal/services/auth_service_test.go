package services

import (
	"testing"
	"time"

	"dealer_manager/internal/models"
	"dealer_manager/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeSessionStore struct {
	sessions map[string]uint
	revoked  map[string]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[string]uint),
		revoked:  make(map[string]time.Duration),
	}
}

func (s *fakeSessionStore) SaveSession(username string, userID uint, role string) error {
	s.sessions[username] = userID
	return nil
}

func (s *fakeSessionStore) RevokeToken(tokenString string, ttl time.Duration) error {
	s.revoked[tokenString] = ttl
	return nil
}

func newAuthFixture(t *testing.T) (AuthService, *fakeSessionStore, *token.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := newFakeUserRepo(
		models.User{ID: 1, Username: "admin", Role: string(models.RoleAdmin), PasswordHash: string(hash), IsActive: true},
		models.User{ID: 2, Username: "ghost", Role: string(models.RoleStaff), PasswordHash: string(hash), IsActive: false},
	)
	sessions := newFakeSessionStore()
	tokens := token.NewManager("test-secret", time.Hour)
	return NewAuthService(userRepo, tokens, sessions), sessions, tokens
}

func TestLogin(t *testing.T) {
	svc, sessions, tokens := newAuthFixture(t)

	tokenString, user, err := svc.Login("admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, uint(1), sessions.sessions["admin"])

	claims, err := tokens.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, err := svc.Login("ghost", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, sessions, _ := newAuthFixture(t)

	tokenString, _, err := svc.Login("admin", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(tokenString))
	ttl, ok := sessions.revoked[tokenString]
	require.True(t, ok)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestLogoutRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	assert.Error(t, svc.Logout("not-a-token"))
}
