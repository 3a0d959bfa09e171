package service

import (
	"context"

	"textmate/internal/core/attrib"
	"textmate/internal/platform/logger"
	"textmate/internal/services/texts/domain"
	"textmate/internal/services/texts/repo"
)

// logOperation appends a history record best effort.
// Write failures are logged and never surface to the caller
func (s *Svc) logOperation(
	ctx context.Context,
	op domain.Operation,
	original string,
	transformed *string,
	analysis []byte,
	att attrib.Attribution,
) {
	row := repo.RowLog{
		OperationType:   string(op),
		OriginalText:    original,
		TransformedText: transformed,
		AnalysisResult:  analysis,
	}

	switch att.Kind {
	case attrib.KindUser:
		uid := att.UserID
		row.UserID = &uid
	case attrib.KindSession:
		sid := att.SessionID
		row.SessionID = &sid
	default:
		logger.C(ctx).Warn().
			Str("operation", string(op)).
			Msg("operation logged without user or session id")
	}

	if err := s.Repo.Insert(ctx, row); err != nil {
		logger.C(ctx).Warn().
			Err(err).
			Str("operation", string(op)).
			Msg("operation history write failed")
	}
}
