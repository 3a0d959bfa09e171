// Package repo provides postgres access for user accounts
package repo

import (
	"context"
	stderrs "errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
)

// Repo defines the repository contract for users
type Repo interface {
	Create(ctx context.Context, username, passwordHash string) (RowUser, error)
	FindByUsername(ctx context.Context, username string) (RowUser, error)
}

// RowUser is a user row from the database
type RowUser struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Create(ctx context.Context, username, passwordHash string) (RowUser, error) {
	const sql = `
insert into users (id, username, password_hash)
values ($1, $2, $3)
returning id::text, username, password_hash, created_at::text
`
	var u RowUser
	err := r.q.QueryRow(ctx, sql, uuid.NewString(), username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return RowUser{}, perr.DuplicateKeyf("Username already taken.")
		}
		return RowUser{}, perr.Wrap(err, perr.ErrorCodeDB, "create user")
	}
	return u, nil
}

func (r *queries) FindByUsername(ctx context.Context, username string) (RowUser, error) {
	const sql = `
select id::text, username, password_hash, created_at::text
from users
where username = $1
`
	var u RowUser
	err := r.q.QueryRow(ctx, sql, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if stderrs.Is(err, pgx.ErrNoRows) {
			return RowUser{}, perr.ErrNotFound
		}
		return RowUser{}, perr.Wrap(err, perr.ErrorCodeDB, "find user by username")
	}
	return u, nil
}
