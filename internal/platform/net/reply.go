package net

import (
	"net/http"

	perr "textmate/internal/platform/errors"
)

// Wire is the common envelope used by transports.
// Exactly one of TransformedText, Analysis, Token or Data is set on success
type Wire struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message"`
	TransformedText *string        `json:"transformedText,omitempty"`
	Analysis        any            `json:"analysis,omitempty"`
	Token           string         `json:"token,omitempty"`
	Data            any            `json:"data,omitempty"`
	Code            perr.ErrorCode `json:"code,omitempty"`
	RequestID       string         `json:"request_id,omitempty"`
}

// OK builds a 200 envelope carrying generic data
func OK(msg string, data any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		Success:   true,
		Message:   msg,
		Data:      data,
		RequestID: reqID,
	}
}

// Created builds a 201 envelope
func Created(msg string, data any, reqID string) (int, Wire) {
	return http.StatusCreated, Wire{
		Success:   true,
		Message:   msg,
		Data:      data,
		RequestID: reqID,
	}
}

// Transformed builds a 200 envelope carrying a transformation result.
// The pointer keeps an empty result distinguishable from no result on the wire
func Transformed(msg, text, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		Success:         true,
		Message:         msg,
		TransformedText: &text,
		RequestID:       reqID,
	}
}

// Analyzed builds a 200 envelope carrying analysis results
func Analyzed(msg string, analysis any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		Success:   true,
		Message:   msg,
		Analysis:  analysis,
		RequestID: reqID,
	}
}

// Token builds a 200 envelope carrying an auth token
func Token(msg, token, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		Success:   true,
		Message:   msg,
		Token:     token,
		RequestID: reqID,
	}
}

// Error builds an error envelope
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK("", nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		Success:   false,
		Message:   w.Message,
		Code:      w.Code,
		RequestID: reqID,
	}
}
