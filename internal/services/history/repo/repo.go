// Package repo provides postgres access for reading operation history
package repo

import (
	"context"

	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
)

// Repo defines the repository contract for operation history reads
type Repo interface {
	FindByUser(ctx context.Context, userID string) ([]RowLog, error)
}

// RowLog is an operation log row from the database
type RowLog struct {
	ID              int64
	OperationType   string
	OriginalText    string
	TransformedText *string
	AnalysisResult  []byte
	CreatedAt       string
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

func (r *queries) FindByUser(ctx context.Context, userID string) ([]RowLog, error) {
	const sql = `
select id, operation_type, original_text, transformed_text, analysis_result, created_at::text
from operation_logs
where user_id = $1
order by created_at desc, id desc
`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "query operation logs")
	}
	defer rows.Close()

	var out []RowLog
	for rows.Next() {
		var l RowLog
		if err := rows.Scan(
			&l.ID,
			&l.OperationType,
			&l.OriginalText,
			&l.TransformedText,
			&l.AnalysisResult,
			&l.CreatedAt,
		); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan operation log")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate operation logs")
	}
	return out, nil
}
