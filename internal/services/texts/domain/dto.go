// Package domain holds DTOs for text operation http and service contracts
package domain

import "textmate/internal/core/textkit"

// Operation names a text operation as stored in the history log
type Operation string

// Operations accepted by the API
const (
	OpUppercase Operation = "uppercase"
	OpLowercase Operation = "lowercase"
	OpTitlecase Operation = "titlecase"
	OpReverse   Operation = "reverse"
	OpAnalyze   Operation = "analyze"
)

// TextInput is the request payload for all text operations
type TextInput struct {
	Text string `json:"text" example:"Hello world"`
}

// Analysis is the result shape produced by the analyzer
type Analysis = textkit.Analysis
