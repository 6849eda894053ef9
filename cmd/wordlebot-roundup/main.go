// Command wordlebot-roundup replays an exported announcement channel and
// prints the season report, or answers a find query
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/platform/logger"

	botmod "wordlebot/internal/services/bot/module"
)

func main() {
	_ = godotenv.Load()
	logger.Init(logger.FromEnv())
	l := logger.Get()

	var (
		fYear    = flag.Int("year", time.Now().Year(), "season year to report")
		fSelf    = flag.String("self", os.Getenv("BOT_SELF_ID"), "only count messages by this author id (the bot)")
		fAliases = flag.String("aliases", os.Getenv("BOT_ROSTER_FILE"), "roster YAML with aliases and messages")
		fFind    = flag.String("find", "", "print when this word was the answer instead of the report")
		fQuiet   = flag.Bool("quiet", false, "no progress bar")
	)
	flag.Parse()

	roster, err := botmod.LoadRoster(*fAliases)
	if err != nil {
		l.Fatal().Err(err).Msg("load roster")
	}

	in := io.Reader(os.Stdin)
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			l.Fatal().Err(err).Msg("open export")
		}
		defer f.Close()
		in = f
	}

	lines, err := readExport(in)
	if err != nil {
		l.Fatal().Err(err).Msg("read export")
	}

	tick := func() {}
	if !*fQuiet {
		bar := progressbar.Default(int64(len(lines)), "replaying")
		tick = func() { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	res, err := replay(lines, filter{Year: *fYear, Self: *fSelf}, roster.Aliases, tick)
	if err != nil {
		l.Fatal().Err(err).Msg("replay")
	}
	l.Debug().Int("lines", len(lines)).Int("skipped", res.Skipped).Int("days", res.Season.Days()).Msg("replayed")

	msgs := roster.Messages.Merge(announce.DefaultMessages())
	if *fFind != "" {
		fmt.Fprintln(os.Stdout, find(res.Answers, msgs, *fFind))
		return
	}
	fmt.Fprint(os.Stdout, res.Season.Report(*fYear))
}
