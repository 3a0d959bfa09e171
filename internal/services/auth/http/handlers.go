// Package http provides http transport for auth
package http

import (
	stdhttp "net/http"

	"textmate/internal/modkit/httpkit"
	"textmate/internal/services/auth/domain"
	svc "textmate/internal/services/auth/service"
)

// Register mounts auth endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SignupInput](r, "/signup", h.signup)
	httpkit.PostJSON[domain.LoginInput](r, "/login", h.login)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /signup Auth authSignup
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.SignupInput true "Credentials"
// @Success 201 {object} httpkit.Envelope "created"
// @Failure 409 {object} httpkit.Envelope "username taken"
// @Router /signup [post]
func (h *handlers) signup(r *stdhttp.Request, in domain.SignupInput) (any, error) {
	if _, err := h.svc.Signup(r.Context(), in); err != nil {
		return nil, err
	}
	return httpkit.Created("Signed up successfully! Please log in.", nil), nil
}

// swagger:route POST /login Auth authLogin
// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body domain.LoginInput true "Credentials"
// @Success 200 {object} httpkit.Envelope "token"
// @Failure 401 {object} httpkit.Envelope "bad credentials"
// @Router /login [post]
func (h *handlers) login(r *stdhttp.Request, in domain.LoginInput) (any, error) {
	tok, err := h.svc.Login(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Token("Logged in successfully!", tok), nil
}
