// Package module wires operation history into the API using modkit
package module

import (
	"net/http"

	modkit "textmate/internal/modkit"
	"textmate/internal/modkit/httpkit"
	"textmate/internal/platform/net/middleware"
	str "textmate/internal/platform/strings"
	historyhttp "textmate/internal/services/history/http"
	historyrepo "textmate/internal/services/history/repo"
	historysvc "textmate/internal/services/history/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	name string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	auth middleware.AuthPort
	svc  historysvc.Service
}

// New constructs a history module with the provided dependencies and options.
// Every route mounts behind bearer auth resolved through the given port
func New(deps modkit.Deps, auth middleware.AuthPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("history")}, opts...)...)

	svc := historysvc.New(deps.PG, historyrepo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		auth:      auth,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		historyhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface.
// The history endpoint lives at the API root, so routes group under the
// protected router rather than a prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.Protected(r, m.auth, func(rr httpkit.Router) {
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

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
