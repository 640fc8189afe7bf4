package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaradesign/portfolio-backend/internal/portfolio/repository"
)

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()
	ctx := context.Background()

	store := repository.NewMemStore()
	_, err := store.CreateAdmin(ctx, "ada", "correct horse")
	require.NoError(t, err)

	return NewService(store, NewMemorySessions(time.Hour)), ctx
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	svc, ctx := newTestService(t)

	_, _, wrongPass := svc.Login(ctx, "ada", "wrong")
	_, _, noUser := svc.Login(ctx, "nobody", "correct horse")

	// absent user and bad password must be indistinguishable
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
}

func TestLogin_SessionLifecycle(t *testing.T) {
	svc, ctx := newTestService(t)

	token, admin, err := svc.Login(ctx, "ada", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "ada", admin.Username)

	resolved, err := svc.Admin(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resolved.ID)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.Admin(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// logout is idempotent
	assert.NoError(t, svc.Logout(ctx, token))
}

func TestAdmin_UnknownToken(t *testing.T) {
	svc, ctx := newTestService(t)

	_, err := svc.Admin(ctx, "no-such-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessions_Expiry(t *testing.T) {
	ctx := context.Background()
	sessions := NewMemorySessions(-time.Second) // everything is born expired

	token, err := sessions.Create(ctx, 1)
	require.NoError(t, err)

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, 1, sessions.Sweep())
	assert.Equal(t, 0, sessions.Sweep())
}
