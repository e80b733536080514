package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
)

func testService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mockdata.New(555, time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
	maker := jwt.NewMaker("test_secret", 15*time.Minute)
	return New(store, maker, log)
}

func TestLoginDemoAccount(t *testing.T) {
	svc := testService(t)

	session, err := svc.Login("admin@gymapp.local", mockdata.DemoPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin@gymapp.local", session.User.Email)

	claims, err := jwt.NewMaker("test_secret", 15*time.Minute).ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	svc := testService(t)
	_, err := svc.Login("Admin@GymApp.Local", mockdata.DemoPassword)
	assert.NoError(t, err)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := testService(t)
	_, err := svc.Login("admin@gymapp.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := testService(t)
	_, err := svc.Login("nobody@gymapp.local", mockdata.DemoPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	svc := testService(t)
	// Carmen Díaz в демо-наборе помечена неактивной.
	_, err := svc.Login("carmen.diaz@gymapp.local", mockdata.DemoPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
