// Package service contains history read workflows
package service

import (
	"context"
	"encoding/json"

	"textmate/internal/modkit/repokit"
	"textmate/internal/services/history/domain"
	"textmate/internal/services/history/repo"
)

// Service defines the service contract for operation history
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new history service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("history.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("history.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ForUser returns the user's operation logs, newest first
func (s *Svc) ForUser(ctx context.Context, userID string) ([]domain.OperationLog, error) {
	rows, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.OperationLog, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.OperationLog{
			ID:              r.ID,
			OperationType:   r.OperationType,
			OriginalText:    r.OriginalText,
			TransformedText: r.TransformedText,
			AnalysisResult:  json.RawMessage(r.AnalysisResult),
			Timestamp:       r.CreatedAt,
		})
	}
	return out, nil
}
