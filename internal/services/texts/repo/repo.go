// Package repo provides postgres access for the operation history log
package repo

import (
	"context"

	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
)

// Repo defines the repository contract for appending operation logs
type Repo interface {
	Insert(ctx context.Context, row RowLog) error
}

// RowLog is an operation log row headed for the database.
// Exactly one of TransformedText and AnalysisResult is set,
// and at most one of UserID and SessionID
type RowLog struct {
	UserID          *string
	SessionID       *string
	OperationType   string
	OriginalText    string
	TransformedText *string
	AnalysisResult  []byte
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

func (r *queries) Insert(ctx context.Context, row RowLog) error {
	const sql = `
insert into operation_logs
(user_id, session_id, operation_type, original_text, transformed_text, analysis_result)
values ($1, $2, $3, $4, $5, $6)
`
	_, err := r.q.Exec(ctx, sql,
		row.UserID,
		row.SessionID,
		row.OperationType,
		row.OriginalText,
		row.TransformedText,
		row.AnalysisResult,
	)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "insert operation log")
	}
	return nil
}
