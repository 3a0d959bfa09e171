// Package http provides helpers for writing JSON responses with a consistent envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"

	lumnet "textmate/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
type Envelope = lumnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes only a status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	reqID := lumnet.RequestID(r.Context())
	status, env := lumnet.Error(err, reqID)
	JSON(w, status, env)
}

//
// Return-style helpers for early returns in handlers
//

// Response is a functional response object for return-style handlers.
// Err takes precedence over Wire when set
type Response struct {
	Status int
	Wire   Envelope
	Err    error
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	// allow header overrides
	if resp.Header != nil {
		for k, vv := range resp.Header {
			for _, v := range vv {
				w.Header().Add(k, v)
			}
		}
	}
	if resp.Status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	reqID := lumnet.RequestID(r.Context())

	// derive status from the error before building the envelope
	if resp.Err != nil {
		status, env := lumnet.Error(resp.Err, reqID)
		JSON(w, status, env)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	env := resp.Wire
	env.RequestID = reqID
	JSON(w, status, env)
}

// OK returns a 200 response carrying generic data
func OK(msg string, data any) Response {
	status, env := lumnet.OK(msg, data, "")
	return Response{Status: status, Wire: env}
}

// Created returns a 201 response
func Created(msg string, data any) Response {
	status, env := lumnet.Created(msg, data, "")
	return Response{Status: status, Wire: env}
}

// Transformed returns a 200 response carrying a transformation result
func Transformed(msg, text string) Response {
	status, env := lumnet.Transformed(msg, text, "")
	return Response{Status: status, Wire: env}
}

// Analyzed returns a 200 response carrying analysis results
func Analyzed(msg string, analysis any) Response {
	status, env := lumnet.Analyzed(msg, analysis, "")
	return Response{Status: status, Wire: env}
}

// Token returns a 200 response carrying an auth token
func Token(msg, token string) Response {
	status, env := lumnet.Token(msg, token, "")
	return Response{Status: status, Wire: env}
}

// Message returns a 200 response with a message and no payload
func Message(msg string) Response { return OK(msg, nil) }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Data is an alias for OK with no message
func Data(v any) Response { return OK("", v) }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Err: err} }
