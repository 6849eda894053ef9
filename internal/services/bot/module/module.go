// Package module wires the bot service and exposes its ports and routes
package module

import (
	"wordlebot/internal/modkit"
	"wordlebot/internal/modkit/httpkit"
	"wordlebot/internal/services/bot/service"

	bothttp "wordlebot/internal/services/bot/http"
)

// Module defines the bot module
type Module struct {
	deps  modkit.Deps
	opts  Options
	built modkit.Built
	svc   *service.Svc
	ports Ports
}

// New constructs the bot module. Adapters come in through modkit.WithPorts;
// a missing roster file or a bad one is returned as an error
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	o := FromConfig(deps.Cfg)
	merge(&o, overrides)

	roster, err := LoadRoster(o.RosterFile)
	if err != nil {
		return nil, err
	}

	b := modkit.Build(append([]modkit.Option{modkit.WithName("bot"), modkit.WithPrefix("/bot")}, opts...)...)
	ad, _ := b.Ports.(service.Adapters)

	svc := service.New(deps, service.Config{
		TestMode:        o.TestMode,
		WordleChannel:   o.WordleChannel,
		WinnerChannel:   o.WinnerChannel,
		SelfID:          o.SelfID,
		RequiredUsers:   union(o.RequiredUsers, roster.RequiredUsers),
		Admins:          union(o.Admins, roster.Admins),
		Aliases:         roster.Aliases,
		Messages:        roster.Messages,
		Commands:        roster.Commands,
		ResultResponses: roster.ResultResponses,
		PollAt:          o.PollAt,
		RoundupCooldown: o.RoundupCooldown,
		RoundupLimit:    o.RoundupLimit,
		HistoryWinner:   o.HistoryWinner,
		HistoryWordle:   o.HistoryWordle,
		Location:        o.Location,
	}, ad)

	deps.Logger("bot").Info().
		Bool("test_mode", o.TestMode).
		Int("required_users", len(o.RequiredUsers)+len(roster.RequiredUsers)).
		Str("roster", o.RosterFile).
		Msg("bot configured")

	return &Module{
		deps:  deps,
		opts:  o,
		built: b,
		svc:   svc,
		ports: Ports{Bot: svc, Runner: svc},
	}, nil
}

func merge(o *Options, in Options) {
	if in.TestMode {
		o.TestMode = true
	}
	if in.GuildID != "" {
		o.GuildID = in.GuildID
	}
	if in.WordleChannel != "" {
		o.WordleChannel = in.WordleChannel
	}
	if in.WinnerChannel != "" {
		o.WinnerChannel = in.WinnerChannel
	}
	if in.SelfID != "" {
		o.SelfID = in.SelfID
	}
	if len(in.RequiredUsers) > 0 {
		o.RequiredUsers = in.RequiredUsers
	}
	if len(in.Admins) > 0 {
		o.Admins = in.Admins
	}
	if in.PollAt != 0 {
		o.PollAt = in.PollAt
	}
	if in.RoundupCooldown != 0 {
		o.RoundupCooldown = in.RoundupCooldown
	}
	if in.RoundupLimit != 0 {
		o.RoundupLimit = in.RoundupLimit
	}
	if in.HistoryWinner != 0 {
		o.HistoryWinner = in.HistoryWinner
	}
	if in.HistoryWordle != 0 {
		o.HistoryWordle = in.HistoryWordle
	}
	if in.RosterFile != "" {
		o.RosterFile = in.RosterFile
	}
	if in.Location != nil {
		o.Location = in.Location
	}
}

// Options returns the resolved options
func (m *Module) Options() Options { return m.opts }

// Ports returns the module ports (Bot, Runner)
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// MountRoutes mounts the bot endpoints under /bot
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(br httpkit.Router) {
		bothttp.Register(br, m.svc, bothttp.Options{
			WordleChannel: m.opts.WordleChannel,
			SelfID:        m.opts.SelfID,
		})
	})
}
