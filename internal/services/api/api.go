// Package api composes the HTTP API from the service modules
package api

import (
	"textmate/internal/platform/config"
	"textmate/internal/platform/logger"
	phttp "textmate/internal/platform/net/http"
	"textmate/internal/platform/store"

	"textmate/internal/modkit"
	"textmate/internal/modkit/httpkit"
	"textmate/internal/modkit/module"
	"textmate/internal/modkit/swaggerkit"

	authmod "textmate/internal/services/auth/module"
	historymod "textmate/internal/services/history/module"
	metamod "textmate/internal/services/meta/module"
	textsmod "textmate/internal/services/texts/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct auth first and extract its Identity port; the text and
	// history modules hang their bearer middleware off it
	auth := authmod.New(deps)
	identity := module.MustPortsOf[authmod.Ports](auth).Identity

	mods := []module.Module{
		metamod.New(deps),
		auth,
		// text operations accept anonymous callers; a valid bearer only
		// upgrades attribution
		textsmod.New(deps, modkit.WithMiddlewares(httpkit.OptionalAuth(identity))),
		// history routes mount behind bearer auth via the protected router
		historymod.New(deps, identity),
	}

	// single API surface with a common middleware stack
	httpkit.MountAPI(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
