// Package domain contains DTOs and ports for operation history
package domain

import "encoding/json"

// OperationLog is one entry of a user's operation history
type OperationLog struct {
	ID              int64           `json:"id"`
	OperationType   string          `json:"operationType"`
	OriginalText    string          `json:"originalText"`
	TransformedText *string         `json:"transformedText,omitempty"`
	AnalysisResult  json.RawMessage `json:"analysisResult,omitempty"`
	Timestamp       string          `json:"timestamp"`
}
