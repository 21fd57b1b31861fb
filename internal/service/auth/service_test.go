package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository/memory"
	apperr "github.com/medlight/clinic-api/pkg/errors"
	"github.com/medlight/clinic-api/pkg/security"
	"github.com/medlight/clinic-api/pkg/session"
)

func newTestService() (*Service, session.Store) {
	sessions := session.NewMemoryStore(time.Hour)
	// low bcrypt cost keeps the suite fast
	svc := NewService(memory.NewUserRepository(), sessions, security.NewBcryptHasher(4))
	return svc, sessions
}

func TestSignupAndLogin(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	err := svc.Signup(ctx, &model.SignupRequest{Username: "carol", Password: "s3cret-pass"})
	require.NoError(t, err)

	token, err := svc.Login(ctx, &model.LoginRequest{Username: "carol", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = sessions.Get(ctx, token)
	assert.NoError(t, err, "login token must resolve to a live session")
}

func TestSignupShortPassword(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Signup(context.Background(), &model.SignupRequest{Username: "carol", Password: "short"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &model.SignupRequest{Username: "carol", Password: "s3cret-pass"}))

	err := svc.Signup(ctx, &model.SignupRequest{Username: "carol", Password: "another-pass"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &model.SignupRequest{Username: "carol", Password: "s3cret-pass"}))

	_, err := svc.Login(ctx, &model.LoginRequest{Username: "carol", Password: "wrong-pass"})
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Login(context.Background(), &model.LoginRequest{Username: "nobody", Password: "whatever1"})
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	assert.Contains(t, err.Error(), "invalid username or password",
		"unknown user and bad password must be indistinguishable")
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &model.SignupRequest{Username: "carol", Password: "s3cret-pass"}))
	token, err := svc.Login(ctx, &model.LoginRequest{Username: "carol", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	_, err = sessions.Get(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
