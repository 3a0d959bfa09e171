// Package http provides http transport for text operations
package http

import (
	stdhttp "net/http"
	"strings"

	"textmate/internal/core/attrib"
	"textmate/internal/modkit/httpkit"
	perr "textmate/internal/platform/errors"
	pnet "textmate/internal/platform/net"
	"textmate/internal/services/texts/domain"
	svc "textmate/internal/services/texts/service"
)

// SessionHeader carries the anonymous client session id
const SessionHeader = "Session-Id"

// Register mounts text operation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TextInput](r, "/uppercase", h.transform(domain.OpUppercase, "Converted to uppercase."))
	httpkit.PostJSON[domain.TextInput](r, "/lowercase", h.transform(domain.OpLowercase, "Converted to lowercase."))
	httpkit.PostJSON[domain.TextInput](r, "/titlecase", h.transform(domain.OpTitlecase, "Converted to title case."))
	httpkit.PostJSON[domain.TextInput](r, "/reverse", h.transform(domain.OpReverse, "Text reversed successfully."))
	httpkit.PostJSON[domain.TextInput](r, "/analyze", h.analyze)
}

type handlers struct{ svc svc.Service }

// attribution resolves who the operation belongs to: the authenticated
// user when present, otherwise the Session-Id header
func attribution(r *stdhttp.Request) attrib.Attribution {
	return attrib.Resolve(pnet.UserID(r.Context()), r.Header.Get(SessionHeader))
}

// transform builds the handler for a single transformation route.
// msg is the success message the route replies with
func (h *handlers) transform(
	op domain.Operation,
	msg string,
) func(*stdhttp.Request, domain.TextInput) (any, error) {
	return func(r *stdhttp.Request, in domain.TextInput) (any, error) {
		if strings.TrimSpace(in.Text) == "" {
			return nil, perr.New(perr.ErrorCodeValidation, "Please enter some text to perform operations.")
		}
		out, err := h.svc.Transform(r.Context(), op, in.Text, attribution(r))
		if err != nil {
			return nil, err
		}
		return httpkit.Transformed(msg, out), nil
	}
}

// swagger:route POST /analyze Texts textsAnalyze
// @Summary Analyze text statistics
// @Tags Texts
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Param Session-Id header string false "Anonymous session id"
// @Success 200 {object} httpkit.Envelope "analysis"
// @Failure 400 {object} httpkit.Envelope "empty text"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.TextInput) (any, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, perr.New(perr.ErrorCodeValidation, "Please enter some text to analyze.")
	}
	res, err := h.svc.Analyze(r.Context(), in.Text, attribution(r))
	if err != nil {
		return nil, err
	}
	return httpkit.Analyzed("Text analyzed successfully.", res), nil
}
