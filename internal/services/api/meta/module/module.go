// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"wordlebot/internal/modkit"
	"wordlebot/internal/modkit/httpkit"

	metahttp "wordlebot/internal/services/api/meta/http"
)

// Checks are the adapters the ready probe pings, by name
type Checks = map[string]metahttp.Pinger

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	checks    Checks
	startedAt time.Time
}

// New constructs a meta module. Ready checks come in through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	checks, _ := b.Ports.(Checks)
	return &Module{deps: deps, built: b, checks: checks, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: m.deps.Cfg.MayString("SERVICE_NAME", "wordlebot"),
			StartedAt:   m.startedAt,
			Checks:      m.checks,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Ports implements the modkit.Module interface; meta exposes none
func (m *Module) Ports() any { return nil }
