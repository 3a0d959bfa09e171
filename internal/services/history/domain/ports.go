package domain

import "context"

// ServicePort defines the service contract for reading operation history
type ServicePort interface {
	// ForUser returns the user's operation logs, newest first
	ForUser(ctx context.Context, userID string) ([]OperationLog, error)
}
