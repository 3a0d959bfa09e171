// Package service contains auth workflows
package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
	"textmate/internal/platform/logger"
	"textmate/internal/services/auth/domain"
	"textmate/internal/services/auth/repo"
	"textmate/internal/services/auth/token"
)

// Service defines the service contract for auth
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	tokens *token.Codec
}

// New creates a new auth service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], tokens *token.Codec) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil Repo binder")
	}
	if tokens == nil {
		panic("auth.Service requires a non nil token codec")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, tokens: tokens}
}

// Signup creates an account with a bcrypt hashed password.
// Duplicate usernames surface as a duplicate key error (409)
func (s *Svc) Signup(ctx context.Context, in domain.SignupInput) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, perr.Wrap(err, perr.ErrorCodeUnknown, "hash password")
	}

	row, err := s.Repo.Create(ctx, in.Username, string(hash))
	if err != nil {
		return domain.User{}, err
	}

	logger.C(ctx).Info().Str("user_id", row.ID).Msg("user signed up")
	return domain.User{ID: row.ID, Username: row.Username, CreatedAt: row.CreatedAt}, nil
}

// Login verifies credentials and issues a bearer token.
// Unknown usernames and wrong passwords are indistinguishable to the caller
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (string, error) {
	row, err := s.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return "", perr.Unauthorizedf("Invalid username or password.")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(in.Password)); err != nil {
		return "", perr.Unauthorizedf("Invalid username or password.")
	}

	raw, err := s.tokens.Issue(row.Username)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "issue token")
	}

	logger.C(ctx).Info().Str("user_id", row.ID).Msg("user logged in")
	return raw, nil
}

// Identify verifies a bearer token and resolves its subject to a user id
func (s *Svc) Identify(ctx context.Context, raw string) (string, error) {
	username, err := s.tokens.Verify(raw)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Msg("token rejected")
		return "", perr.Unauthorizedf("invalid bearer token")
	}

	row, err := s.Repo.FindByUsername(ctx, username)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return "", perr.Unauthorizedf("invalid bearer token")
		}
		return "", err
	}
	return row.ID, nil
}
