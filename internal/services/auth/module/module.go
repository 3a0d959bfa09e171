// Package module wires auth into the API using modkit
package module

import (
	"net/http"

	modkit "textmate/internal/modkit"
	"textmate/internal/modkit/httpkit"
	str "textmate/internal/platform/strings"
	authhttp "textmate/internal/services/auth/http"
	authrepo "textmate/internal/services/auth/repo"
	authsvc "textmate/internal/services/auth/service"
	"textmate/internal/services/auth/token"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	name string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc authsvc.Service
}

// New constructs an auth module with the provided dependencies and options.
// Reads AUTH_SECRET (required) and AUTH_TOKEN_TTL from config
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("auth")}, opts...)...)

	codec := token.New(
		deps.Cfg.MustString("AUTH_SECRET"),
		deps.Cfg.MayDuration("AUTH_TOKEN_TTL", token.DefaultTTL),
	)

	repo := authrepo.NewPG()
	svc := authsvc.New(deps.PG, repo, codec)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = NewPorts(svc)

	external := b.Register
	m.register = func(r httpkit.Router) {
		authhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface.
// Auth endpoints live at the API root, so routes are grouped rather than prefixed
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
