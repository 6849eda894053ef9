// Package service implements the bot: it feeds chat messages through the
// core pipeline and decides what to say back
package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/answers"
	"wordlebot/internal/core/command"
	"wordlebot/internal/core/ledger"
	"wordlebot/internal/core/season"
	"wordlebot/internal/core/wordle"
	"wordlebot/internal/modkit"
	"wordlebot/internal/platform/logger"

	dom "wordlebot/internal/services/bot/domain"
)

// Service is everything the module exposes
type Service interface {
	dom.BotPort
	dom.RunnerPort
}

// Config controls the bot
type Config struct {
	TestMode        bool
	WordleChannel   string
	WinnerChannel   string
	SelfID          string
	RequiredUsers   []string
	Admins          []string
	Aliases         season.Aliases
	Messages        announce.Messages
	Commands        command.Names
	ResultResponses map[string][]string
	PollAt          time.Duration
	RoundupCooldown time.Duration
	RoundupLimit    int
	HistoryWinner   int
	HistoryWordle   int
	Location        *time.Location
}

// Adapters are the outside collaborators; any may be nil
type Adapters struct {
	Answers dom.AnswerPort
	Names   dom.NamePort
	History dom.HistoryPort
	Sink    dom.SinkPort
}

// Svc implements Service. mu guards book, index and nextRoundup; no I/O
// happens while it is held
type Svc struct {
	cfg    Config
	ad     Adapters
	log    *logger.Logger
	win    ledger.WinPredicate
	admins map[string]struct{}

	now  func() time.Time
	pick func(n int) int

	mu          sync.Mutex
	book        *ledger.Book
	index       *answers.Index
	nextRoundup time.Time
}

// FallbackName is shown when a user cannot be resolved
const FallbackName = "?????"

// New constructs the service. Aliases must already be validated, see season.New
func New(deps modkit.Deps, cfg Config, ad Adapters) *Svc {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	cfg.Messages = cfg.Messages.Merge(announce.DefaultMessages())
	if cfg.Commands == (command.Names{}) {
		cfg.Commands = command.DefaultNames()
	}
	if ad.Sink == nil {
		cfg.TestMode = true
	}

	keys := make([]ledger.Key, 0, len(cfg.RequiredUsers))
	for _, u := range cfg.RequiredUsers {
		keys = append(keys, ledger.Key(u))
	}
	admins := make(map[string]struct{}, len(cfg.Admins))
	for _, a := range cfg.Admins {
		admins[a] = struct{}{}
	}

	return &Svc{
		cfg:    cfg,
		ad:     ad,
		log:    deps.Logger("bot"),
		win:    ledger.RequireAll(keys...),
		admins: admins,
		now:    time.Now,
		pick:   rand.IntN,
		book:   ledger.NewBook(),
		index:  answers.New(),
	}
}

// IsAdmin reports whether userID is in the admin allowlist
func (s *Svc) IsAdmin(userID string) bool {
	_, ok := s.admins[userID]
	return ok
}

// Day returns a ranked snapshot of day
func (s *Svc) Day(ctx context.Context, day wordle.Day) (dom.DayView, error) {
	s.mu.Lock()
	l, ok := s.book.Get(day)
	if !ok {
		s.mu.Unlock()
		return dom.DayView{}, unknownDay(day)
	}
	announced := l.Announced()
	ranked := l.Ranked()
	s.mu.Unlock()

	names := s.names(ctx, ranked)
	out := dom.DayView{Day: day, Date: day.ISODate(), Announced: announced, Standings: make([]dom.Standing, 0, len(ranked))}
	for i, r := range ranked {
		out.Standings = append(out.Standings, dom.Standing{
			Rank:      i + 1,
			UserID:    string(r.Participant),
			Name:      names[r.Participant],
			Attempts:  r.Attempts,
			Score:     r.Score,
			Timestamp: r.Timestamp,
		})
	}
	return out, nil
}

// FindAnswer looks word up in the answer index
func (s *Svc) FindAnswer(word string) (dom.AnswerView, bool) {
	s.mu.Lock()
	day, ok := s.index.LookupDay(word)
	s.mu.Unlock()
	if !ok {
		return dom.AnswerView{}, false
	}
	return dom.AnswerView{Word: normWord(word), Day: day, Date: day.ISODate()}, true
}

// SeasonReport aggregates announcement texts into the year's report and
// returns it with the number of days counted
func (s *Svc) SeasonReport(texts []string, year int) (string, int, error) {
	agg, err := season.New(s.cfg.Aliases)
	if err != nil {
		return "", 0, err
	}
	for _, t := range texts {
		agg.Feed(t)
	}
	return agg.Report(year), agg.Days(), nil
}

// resultResponse picks a canned reply for attempts, if any are configured
func (s *Svc) resultResponse(a wordle.Attempts) (string, bool) {
	opts := s.cfg.ResultResponses[a.String()]
	if len(opts) == 0 {
		return "", false
	}
	return opts[s.pick(len(opts))], true
}
