package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/kennelhouse/kennel-backend/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenUsers struct{}

func (brokenUsers) GetByCredentials(context.Context, string, string) (*model.User, error) {
	return nil, errors.New("connection refused")
}

func (brokenUsers) Create(context.Context, *model.User) error {
	return errors.New("connection refused")
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc := NewAuthService(memory.NewUserRepository(), zerolog.Nop())
	_, err := svc.CreateUser(context.Background(), "breeder", "hunter2", model.RoleAdmin)
	require.NoError(t, err)
	return svc
}

func TestLoginReturnsMintedToken(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Login(context.Background(), "breeder", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "breeder", user.Username)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, MintSessionToken(user.ID, "breeder", "admin"), token)
}

func TestLoginTwiceYieldsSameToken(t *testing.T) {
	svc := newAuthService(t)

	_, first, err := svc.Login(context.Background(), "breeder", "hunter2")
	require.NoError(t, err)
	_, second, err := svc.Login(context.Background(), "breeder", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "breeder", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginPropagatesStoreFailure(t *testing.T) {
	svc := NewAuthService(brokenUsers{}, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "breeder", "hunter2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestVerifyTokenOnlyChecksPresence(t *testing.T) {
	svc := newAuthService(t)

	assert.False(t, svc.VerifyToken(""))
	assert.True(t, svc.VerifyToken("not-a-real-token"))
}

func TestCreateUserDefaultsRoleAndHashes(t *testing.T) {
	svc := NewAuthService(memory.NewUserRepository(), zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), "visitor", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, model.RoleGuest, user.Role)
	assert.Equal(t, HashPassword("pw"), user.PasswordHash)

	_, err = svc.CreateUser(context.Background(), "", "pw", model.RoleGuest)
	assert.Error(t, err)
}
