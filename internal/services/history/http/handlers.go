// Package http provides http transport for operation history
package http

import (
	stdhttp "net/http"

	"textmate/internal/modkit/httpkit"
	svc "textmate/internal/services/history/service"
)

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/history", h.list)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /history History historyList
// @Summary List the caller's operation history
// @Tags History
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpkit.Envelope "data"
// @Failure 401 {object} httpkit.Envelope "missing or invalid bearer"
// @Router /history [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}

	logs, err := h.svc.ForUser(r.Context(), uid)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return httpkit.OK("No history found.", nil), nil
	}
	return httpkit.OK("History retrieved successfully.", logs), nil
}
