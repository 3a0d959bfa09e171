// Package module wires text operations into the API using modkit
package module

import (
	"net/http"

	modkit "textmate/internal/modkit"
	"textmate/internal/modkit/httpkit"
	str "textmate/internal/platform/strings"
	textshttp "textmate/internal/services/texts/http"
	textsrepo "textmate/internal/services/texts/repo"
	textssvc "textmate/internal/services/texts/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps modkit.Deps
	name string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc textssvc.Service
}

// New constructs a texts module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("texts")}, opts...)...)

	svc := textssvc.New(deps.PG, textsrepo.NewPG())

	m := &Module{
		deps:      deps,
		name:      b.Name,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		textshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface.
// Operation endpoints live at the API root, so routes are grouped rather than prefixed
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

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
