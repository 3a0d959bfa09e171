// Package service contains text operation workflows
package service

import (
	"context"
	"encoding/json"

	"textmate/internal/core/attrib"
	"textmate/internal/core/textkit"
	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
	"textmate/internal/platform/logger"
	"textmate/internal/services/texts/domain"
	"textmate/internal/services/texts/repo"
)

// Service defines the service contract for text operations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new texts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("texts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("texts.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Transform applies op to text and appends a history record
func (s *Svc) Transform(
	ctx context.Context,
	op domain.Operation,
	text string,
	att attrib.Attribution,
) (string, error) {
	var out string
	switch op {
	case domain.OpUppercase:
		out = textkit.Upper(text)
	case domain.OpLowercase:
		out = textkit.Lower(text)
	case domain.OpTitlecase:
		out = textkit.Title(text)
	case domain.OpReverse:
		out = textkit.Reverse(text)
	default:
		return "", perr.InvalidArgf("unknown operation %q", op)
	}

	s.logOperation(ctx, op, text, &out, nil, att)
	return out, nil
}

// Analyze computes text statistics and appends a history record
func (s *Svc) Analyze(ctx context.Context, text string, att attrib.Attribution) (domain.Analysis, error) {
	res := textkit.Analyze(text)

	payload, err := json.Marshal(res)
	if err != nil {
		// result still goes back to the caller, only the history record is lost
		logger.C(ctx).Error().Err(err).Msg("encode analysis for history")
		return res, nil
	}
	s.logOperation(ctx, domain.OpAnalyze, text, nil, payload, att)
	return res, nil
}
