package service

import (
	"context"
	"testing"

	"marketplace-service/config"
	"marketplace-service/internal/models"
	"marketplace-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(store.NewStore(), config.AdminConfig{
		Username: "admin",
		Password: "admin123",
	})
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	svc.Register(ctx, "b1", "pw", models.RoleBuyer, "")

	u, token, err := svc.Login(ctx, "b1", "pw", models.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, "b1", u.Username)
	assert.Equal(t, models.RoleBuyer, u.Role)
	assert.NotEmpty(t, token)

	username, ok := svc.SessionUser(token)
	require.True(t, ok)
	assert.Equal(t, "b1", username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	svc.Register(ctx, "b1", "pw", models.RoleBuyer, "")

	_, _, err := svc.Login(ctx, "b1", "wrong", models.RoleBuyer)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestLoginWrongRole(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	svc.Register(ctx, "b1", "pw", models.RoleBuyer, "")

	_, _, err := svc.Login(ctx, "b1", "pw", models.RoleSeller)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	svc.Register(ctx, "b1", "pw", models.RoleBuyer, "")
	_, token, err := svc.Login(ctx, "b1", "pw", models.RoleBuyer)
	require.NoError(t, err)

	svc.Logout(token)

	_, ok := svc.SessionUser(token)
	assert.False(t, ok)
}

func TestAdminLogin(t *testing.T) {
	svc := newAuthFixture(t)

	assert.True(t, svc.AdminLogin("admin", "admin123"))
	assert.False(t, svc.AdminLogin("admin", "nope"))
	assert.False(t, svc.AdminLogin("root", "admin123"))
}

func TestRegisterSellerKeepsContactNumber(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	u := svc.Register(ctx, "s1", "pw", models.RoleSeller, "555-0101")
	assert.Equal(t, "555-0101", u.ContactNumber)

	got, _, err := svc.Login(ctx, "s1", "pw", models.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", got.ContactNumber)
}
