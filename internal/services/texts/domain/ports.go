package domain

import (
	"context"

	"textmate/internal/core/attrib"
)

// ServicePort defines the service contract for text operations
type ServicePort interface {
	// Transform applies op and appends a history record attributed per att
	Transform(ctx context.Context, op Operation, text string, att attrib.Attribution) (string, error)

	// Analyze computes text statistics and appends a history record
	Analyze(ctx context.Context, text string, att attrib.Attribution) (Analysis, error)
}
