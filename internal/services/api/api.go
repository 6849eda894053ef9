// Package api provides the HTTP API for the bot
package api

import (
	"wordlebot/internal/platform/config"
	phttp "wordlebot/internal/platform/net/http"

	"wordlebot/internal/modkit/httpkit"
	"wordlebot/internal/modkit/module"
	"wordlebot/internal/modkit/swaggerkit"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Modules        []module.Module
	EnableSwagger  bool
	EnableProfiler bool
}

// FromConfig reads the CORE_API_ switches
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  c.MayBool("SWAGGER", false),
		EnableProfiler: c.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router. Modules are built by
// the caller so that the same ports serve the gateway and the API
func Mount(r phttp.Router, opt Options) {
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range opt.Modules {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
