package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		AccessTokenSecret:  "access-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenTTL:    240 * time.Hour,
		TokenIssuer:        "account-keeper-test",
	}
}

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	tokens, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)
	return tokens
}

func newTestHasher(t *testing.T) crypto.PasswordHasher {
	t.Helper()
	hasher, err := crypto.NewBcryptHasher(4)
	require.NoError(t, err)
	return hasher
}

// memUserRepository keeps users in a map. It follows the same contract as
// the SQL repository, including the compare-and-swap on refresh tokens.
type memUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: make(map[string]models.User)}
}

func (r *memUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return models.User{}, store.ErrUserAlreadyExists
		}
	}
	user.UpdatedAt = user.CreatedAt
	r.users[user.UserID] = user
	return user, nil
}

func (r *memUserRepository) FindUserByUsernameOrEmail(_ context.Context, username, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r *memUserRepository) FindUserByID(_ context.Context, userID string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepository) UpdateUser(_ context.Context, patch models.UserPatch) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[patch.UserID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.RefreshToken != nil {
		u.RefreshToken = *patch.RefreshToken
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.CoverImage != nil {
		u.CoverImage = *patch.CoverImage
	}
	r.users[u.UserID] = u
	return u, nil
}

func (r *memUserRepository) DeleteUser(_ context.Context, userID string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	delete(r.users, userID)
	return u, nil
}

func (r *memUserRepository) SwapRefreshToken(_ context.Context, userID, expected, replacement string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok || u.RefreshToken != expected {
		return store.ErrRefreshTokenMismatch
	}
	u.RefreshToken = replacement
	r.users[userID] = u
	return nil
}

// fakeImageHost hands out sequential public ids and remembers deletions.
type fakeImageHost struct {
	mu      sync.Mutex
	next    int
	deleted []string
}

func (h *fakeImageHost) Upload(_ context.Context, localPath string) (models.Image, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	id := "img-" + strconv.Itoa(h.next)
	return models.Image{URL: "https://images.test/" + id + ".png", PublicID: id}, nil
}

func (h *fakeImageHost) Delete(_ context.Context, publicID string) (models.DeletionResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deleted = append(h.deleted, publicID)
	return models.DeletionResult{Result: models.DeletionResultOK}, nil
}
