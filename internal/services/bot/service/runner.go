package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wordlebot/internal/core/wordle"
	"wordlebot/internal/platform/logger"

	perr "wordlebot/internal/platform/errors"
	dom "wordlebot/internal/services/bot/domain"
)

// OnMessage handles a live gateway message and delivers whatever it produces
func (s *Svc) OnMessage(ctx context.Context, m dom.Message) {
	switch m.ChannelID {
	case s.cfg.WordleChannel:
		ctx = logger.WithMessage(ctx, m.ID, dom.ForWordle.String())
		replies, err := s.HandleWordle(ctx, m, true)
		if err != nil {
			logger.C(ctx).Error().Err(err).Msg("handle submission")
		}
		if err := s.Deliver(ctx, replies); err != nil {
			logger.C(ctx).Warn().Err(err).Msg("deliver replies")
		}
	case s.cfg.WinnerChannel:
		ctx = logger.WithMessage(ctx, m.ID, dom.ForWinner.String())
		s.HandleWinner(ctx, m)
	}
}

// Replay rebuilds the ledgers and answer index from channel history. The
// announcement channel goes first so that replayed days already know they
// are closed. Days completed while the bot was away are announced once the
// pass is over
func (s *Svc) Replay(ctx context.Context) error {
	if s.ad.History == nil {
		return nil
	}
	ctx = logger.WithRun(ctx, uuid.NewString())
	log := logger.C(ctx)
	start := time.Now()

	winners, err := s.ad.History.History(ctx, s.cfg.WinnerChannel, s.cfg.HistoryWinner)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "read announcement history")
	}
	seen := 0
	for _, m := range winners {
		if _, ok := s.HandleWinner(ctx, m); ok {
			seen++
		}
	}

	subs, err := s.ad.History.History(ctx, s.cfg.WordleChannel, s.cfg.HistoryWordle)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "read submission history")
	}
	for _, m := range subs {
		if _, err := s.HandleWordle(ctx, m, false); err != nil {
			log.Warn().Err(err).Str("message_id", m.ID).Msg("replay skipped message")
		}
	}

	caught := s.catchUp(ctx)
	if err := s.Deliver(ctx, caught); err != nil {
		log.Warn().Err(err).Msg("deliver catch-up announcements")
	}

	log.Info().
		Int("announcements", seen).
		Int("messages", len(subs)).
		Int("caught_up", len(caught)).
		Dur("took", time.Since(start)).
		Msg("replay done")
	return nil
}

// catchUp renders the announcement of every day that satisfies the win
// predicate but was never announced
func (s *Svc) catchUp(ctx context.Context) []dom.Reply {
	s.mu.Lock()
	var days []wordle.Day
	for _, day := range s.book.Days() {
		l, _ := s.book.Get(day)
		if !l.Announced() && s.win(l) {
			days = append(days, day)
		}
	}
	s.mu.Unlock()

	var out []dom.Reply
	for _, day := range days {
		if r, ok := s.announceIfOpen(ctx, day); ok {
			out = append(out, r)
		}
	}
	return out
}

// Run fires the daily poll at PollAt in the configured zone until ctx is done
func (s *Svc) Run(ctx context.Context) error {
	log := s.log
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := s.now()
		next := nextPoll(now, s.cfg.PollAt, s.cfg.Location)
		log.Debug().Time("next", next).Msg("poll scheduled")

		t := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		s.poll(logger.WithRun(ctx, uuid.NewString()), next)
	}
}

// poll announces the puzzle day of at if it is still open
func (s *Svc) poll(ctx context.Context, at time.Time) {
	day := wordle.DayOf(at.In(s.cfg.Location))
	r, ok := s.announceIfOpen(ctx, day)
	if !ok {
		logger.C(ctx).Info().Int("day", int(day)).Msg("nothing to announce")
		return
	}
	if err := s.Deliver(ctx, []dom.Reply{r}); err != nil {
		logger.C(ctx).Warn().Err(err).Int("day", int(day)).Msg("deliver announcement")
	}
}

// nextPoll is the first wall-clock time at offset from midnight in loc that
// is strictly after now
func nextPoll(now time.Time, at time.Duration, loc *time.Location) time.Time {
	now = now.In(loc)
	y, m, d := now.Date()
	next := time.Date(y, m, d, 0, 0, 0, 0, loc).Add(at)
	if !next.After(now) {
		next = time.Date(y, m, d+1, 0, 0, 0, 0, loc).Add(at)
	}
	return next
}

// Deliver sends replies to their channels, or only logs them in test mode
func (s *Svc) Deliver(ctx context.Context, replies []dom.Reply) error {
	var first error
	for _, r := range replies {
		ch := s.channel(r.To)
		if s.cfg.TestMode {
			logger.C(ctx).Info().Str("to", r.To.String()).Str("text", r.Text).Msg("test mode, not sending")
			continue
		}
		if err := s.ad.Sink.Send(ctx, ch, r.Text); err != nil && first == nil {
			first = perr.Wrapf(err, perr.ErrorCodeUnavailable, "send to %s", r.To)
		}
	}
	return first
}

func (s *Svc) channel(d dom.Destination) string {
	if d == dom.ForWinner {
		return s.cfg.WinnerChannel
	}
	return s.cfg.WordleChannel
}
