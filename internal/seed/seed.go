// Package seed populates the database on startup: the administrator
// account and the institution catalog. Both steps are idempotent, so the
// seeder runs on every boot and only writes on the first one.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/apperror"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/auth"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
)

// Admin describes the administrator account to seed.
type Admin struct {
	Email    string
	Username string
	Password string
}

// Run seeds the admin account (if its email is unknown) and the catalog
// (if the institutions table is empty).
func Run(
	ctx context.Context,
	admin Admin,
	accounts repository.AccountRepository,
	institutions *service.InstitutionService,
	hasher *auth.Hasher,
	logger *slog.Logger,
) error {
	if err := seedAdmin(ctx, admin, accounts, hasher, logger); err != nil {
		return err
	}
	return seedInstitutions(ctx, institutions, logger)
}

func seedAdmin(
	ctx context.Context,
	admin Admin,
	accounts repository.AccountRepository,
	hasher *auth.Hasher,
	logger *slog.Logger,
) error {
	_, err := accounts.FindByEmail(ctx, admin.Email)
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("seed: checking admin account: %w", err)
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("seed: hashing admin password: %w", err)
	}

	account := &model.Account{
		Email:        admin.Email,
		Username:     admin.Username,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := accounts.Create(ctx, account); err != nil {
		return fmt.Errorf("seed: creating admin account: %w", err)
	}

	logger.Info("seeded admin account", slog.String("email", admin.Email))
	return nil
}

func seedInstitutions(ctx context.Context, institutions *service.InstitutionService, logger *slog.Logger) error {
	existing, err := institutions.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: checking institutions: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	for i := range Catalog {
		inst := Catalog[i] // copy; Create mutates the ID
		if err := institutions.Create(ctx, &inst); err != nil {
			return fmt.Errorf("seed: creating institution %q: %w", inst.Name, err)
		}
	}

	logger.Info("seeded institution catalog", slog.Int("count", len(Catalog)))
	return nil
}
