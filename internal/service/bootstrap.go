package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/models"
	"github.com/bloghub/bloghub-be/internal/storage"
)

// SeedDefaultAdmin ensures the configured admin account exists. The role rows
// themselves are seeded by migration; their absence here means the migration
// never ran and startup must abort.
func SeedDefaultAdmin(ctx context.Context, users storage.UserStore, hasher *auth.CredentialHasher, email, password, displayName string, log *zap.Logger) error {
	if _, err := users.FindRoleByName(ctx, models.RoleAdmin); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("ADMIN role not configured")
		}
		return err
	}

	exists, err := users.ExistsUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = users.CreateUser(ctx, models.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		// Another replica may have created it between the check and the insert.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	log.Info("created default admin user", zap.String("email", email))
	return nil
}
