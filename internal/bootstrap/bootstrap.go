// Package bootstrap brings the credentials store to its ready state:
// schema migrations applied and exactly one administrative seed account
// present. The whole sequence is idempotent, so it runs unconditionally on
// every startup.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/backmeup/credstore/internal/config"
	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/store"
	"github.com/backmeup/credstore/internal/utils"
	"github.com/backmeup/credstore/models"
)

// Initialize applies all pending migrations and upserts the administrative
// seed account. Calling it any number of times converges to the same schema
// and a single seed row.
func Initialize(ctx context.Context, db *store.DB, seed config.Seed, log *logger.Logger) error {
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return SeedAdmin(ctx, store.NewUserRepository(db, log), seed)
}

// SeedAdmin upserts the administrative seed row, insert-or-no-op keyed on the
// username. The seed password is bcrypt-hashed before storage; the account is
// always created with the admin role and active.
//
// An existing account with the seed username is left untouched, whatever its
// other attribute values. When the seed email is already held by a different
// username the repository's [store.ErrSeedEmailTaken] propagates unchanged.
func SeedAdmin(ctx context.Context, users store.UserRepository, seed config.Seed) error {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	inserted, err := users.SeedUser(ctx, models.User{
		Username: seed.Username,
		Email:    seed.Email,
		Password: hash,
		FullName: seed.FullName,
		Role:     models.RoleAdmin,
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	if inserted {
		log.Info().Str("username", seed.Username).Msg("seed admin account created")
	} else {
		log.Info().Str("username", seed.Username).Msg("seed admin account already present, left untouched")
	}

	return nil
}
