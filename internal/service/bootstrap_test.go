package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
)

func TestSeedDefaultAdmin(t *testing.T) {
	users := newFakeUserStore()
	hasher := auth.NewCredentialHasher(4)
	ctx := context.Background()

	err := SeedDefaultAdmin(ctx, users, hasher, "admin@bloghub.local", "Admin@123", "Admin", zap.NewNop())
	require.NoError(t, err)

	created, err := users.FindUserByEmail(ctx, "admin@bloghub.local")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, created.Role)
	require.True(t, hasher.Verify("Admin@123", created.PasswordHash))

	// Second run is a no-op, even with a different password.
	err = SeedDefaultAdmin(ctx, users, hasher, "admin@bloghub.local", "Other@456", "Admin", zap.NewNop())
	require.NoError(t, err)

	unchanged, err := users.FindUserByEmail(ctx, "admin@bloghub.local")
	require.NoError(t, err)
	require.Equal(t, created.PasswordHash, unchanged.PasswordHash)
}

func TestSeedDefaultAdminMissingRole(t *testing.T) {
	users := newFakeUserStore()
	users.dropRole(models.RoleAdmin)

	err := SeedDefaultAdmin(context.Background(), users, auth.NewCredentialHasher(4), "admin@bloghub.local", "Admin@123", "Admin", zap.NewNop())
	require.Error(t, err)
}

func TestAdminServiceListUsers(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAdminService(users)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := users.CreateUser(ctx, models.User{Email: email, DisplayName: email, Role: models.RoleUser})
		require.NoError(t, err)
	}

	page, err := svc.ListUsers(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.EqualValues(t, 3, page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
	require.False(t, page.Last)

	// Password hashes never appear in the admin view.
	require.Equal(t, "a@example.com", page.Content[0].Email)

	// A page past the end is empty but still carries the true total.
	page, err = svc.ListUsers(ctx, 5, 2)
	require.NoError(t, err)
	require.Empty(t, page.Content)
	require.EqualValues(t, 3, page.TotalElements)
}
