// @title         Wordlebot API
// @version       0.1.0
// @description   Submission ingest, day tables and answer lookups for the Wordle bot

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"wordlebot/internal/adapters/discord"
	"wordlebot/internal/adapters/nyt"
	"wordlebot/internal/core/version"
	"wordlebot/internal/modkit"
	"wordlebot/internal/modkit/module"
	"wordlebot/internal/platform/config"
	"wordlebot/internal/platform/logger"
	phttp "wordlebot/internal/platform/net/http"

	"wordlebot/internal/services/api"
	metamod "wordlebot/internal/services/api/meta/module"
	botmod "wordlebot/internal/services/bot/module"
)

func main() {
	// .env is optional; real env wins
	_ = godotenv.Load()

	logger.Init(logger.FromEnv())
	l := logger.Get()
	root := config.New()
	botCfg := root.Prefix("BOT_")

	bi := version.Info("wordlebot")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dc, err := discord.New(discord.Options{
		Token:   botCfg.MustString("TOKEN"),
		GuildID: botCfg.MayString("GUILD_ID", ""),
	})
	if err != nil {
		l.Fatal().Err(err).Msg("discord client")
	}
	answers := nyt.NewClient(nyt.FromConfig(root))

	deps := modkit.Deps{Log: l, Cfg: root}
	bot, err := botmod.New(deps,
		botmod.Options{SelfID: botCfg.MustString("SELF_ID")},
		modkit.WithPorts(botmod.Adapters{Answers: answers, Names: dc, History: dc, Sink: dc}),
	)
	if err != nil {
		l.Fatal().Err(err).Msg("bot module")
	}
	runner := module.MustPortsOf[botmod.Ports](bot).Runner

	// rebuild today's state before going live
	if err := runner.Replay(ctx); err != nil {
		l.Error().Err(err).Msg("replay failed; starting with empty state")
	}

	apiOpts := api.FromConfig(root)
	apiOpts.Modules = []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Checks{"discord": dc})),
		bot,
	}
	srv := phttp.NewServer(root.Prefix("CORE_API_"))
	api.Mount(srv.Router(), apiOpts)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return dc.Run(gctx, runner.OnMessage) })
	g.Go(func() error { return runner.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		l.Fatal().Err(err).Msg("stopped")
	}
	l.Info().Msg("bye")
}
