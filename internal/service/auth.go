// Package service contains the business logic layer.
//
// Handlers parse HTTP and write JSON; services enforce the rules and talk
// to the repositories. Services receive repository interfaces, never the
// concrete SQLite types, so they are tested with in-memory fakes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/apperror"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/auth"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/model"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/repository"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/session"
)

// AuthService handles registration, login and logout.
type AuthService struct {
	accounts repository.AccountRepository
	events   repository.LoginEventRepository
	hasher   *auth.Hasher
	sessions *session.Store
	logger   *slog.Logger
}

// NewAuthService wires the authentication flow. Called once, in server
// setup.
func NewAuthService(
	accounts repository.AccountRepository,
	events repository.LoginEventRepository,
	hasher *auth.Hasher,
	sessions *session.Store,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		events:   events,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates a new account with the given credentials.
//
// The email is checked for existence first so a duplicate gets the proper
// conflict message. The check and the insert are not atomic — a concurrent
// registration can slip between them — but the storage UNIQUE constraint
// catches the loser and the repository reports it as the same conflict.
//
// No email-format or password-strength validation happens here; the
// original product accepts any non-conflicting credentials, and so do we.
func (s *AuthService) Register(ctx context.Context, email, username, password string) error {
	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return apperror.Conflict("E-mail já cadastrado")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("service/auth: checking email %s: %w", email, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("service/auth: hashing password: %w", err)
	}

	account := &model.Account{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			// Lost the race against a concurrent registration.
			return err
		}
		return fmt.Errorf("service/auth: creating account (email=%s): %w", email, err)
	}

	s.logger.Info("account registered",
		slog.Int64("accountID", account.ID),
		slog.String("email", email),
	)

	return nil
}

// Login verifies the credentials, appends a login event with the caller's
// address, and opens a session.
//
// A missing account and a wrong password both come back as
// apperror.ErrUnauthorized, so the response cannot be used to probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password, ip string) (*session.Session, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("Credenciais inválidas")
		}
		return nil, fmt.Errorf("service/auth: looking up %s: %w", email, err)
	}

	if err := s.hasher.Verify(account.PasswordHash, password); err != nil {
		return nil, err
	}

	event := &model.LoginEvent{
		AccountID: account.ID,
		IPAddress: ip,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("service/auth: recording login event: %w", err)
	}

	sess := s.sessions.Create(account.ID, account.Username, account.Email, account.IsAdmin)

	s.logger.Info("login",
		slog.Int64("accountID", account.ID),
		slog.String("email", account.Email),
		slog.String("ip", ip),
		slog.Bool("admin", account.IsAdmin),
	)

	return sess, nil
}

// Logout destroys the session for token. Unknown tokens are silently
// ignored — logout always succeeds.
func (s *AuthService) Logout(token string) {
	s.sessions.Destroy(token)
}
