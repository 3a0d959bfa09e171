package module

import (
	"context"

	"textmate/internal/modkit/httpkit"
	authsvc "textmate/internal/services/auth/service"
)

// Ports exposes auth capabilities to other modules
type Ports struct {
	// Identity backs the bearer auth middleware, resolving tokens to user ids
	Identity *httpkit.Port
}

// NewPorts adapts the auth service into a port set
func NewPorts(svc authsvc.Service) Ports {
	return Ports{
		Identity: httpkit.NewPortFunc(func(ctx context.Context, raw string) (string, error) {
			return svc.Identify(ctx, raw)
		}),
	}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
