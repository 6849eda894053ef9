package service

import (
	"context"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/ledger"
	"wordlebot/internal/core/wordle"
	"wordlebot/internal/platform/logger"

	perr "wordlebot/internal/platform/errors"
	dom "wordlebot/internal/services/bot/domain"
)

// HandleWordle processes a submissions channel message. live is false while
// replaying history, in which case nothing is ever said back
func (s *Svc) HandleWordle(ctx context.Context, m dom.Message, live bool) ([]dom.Reply, error) {
	if m.AuthorID == "" || m.AuthorID == s.cfg.SelfID {
		return nil, nil
	}
	log := logger.C(ctx)

	if cmd, ok := s.cfg.Commands.Parse(m.Content, m.Timestamp.In(s.cfg.Location)); ok {
		if !live {
			return nil, nil
		}
		return s.command(ctx, m, cmd)
	}

	o := wordle.Validate(m.Content)
	if !o.OK() {
		log.Trace().Str("outcome", o.Kind.String()).Msg("not a submission")
		return nil, nil
	}
	score, err := wordle.Score(o, o.Grid)
	if err != nil {
		log.Error().Err(err).Str("author_id", m.AuthorID).Msg("score failed")
		return nil, perr.WithOp(err, "bot.score")
	}
	rec := ledger.Record{
		Participant: ledger.Key(m.AuthorID),
		Timestamp:   m.Timestamp,
		Attempts:    o.Attempts,
		Score:       score,
	}

	s.mu.Lock()
	l := s.book.Ensure(o.Day)
	if live && l.Announced() && !l.Has(rec.Participant) {
		s.mu.Unlock()
		log.Debug().Int("day", int(o.Day)).Msg("submission after announcement")
		return s.notice(ctx, s.cfg.Messages.SubmittedTooLate, m.AuthorID, o.Day), nil
	}
	res := l.AddSubmission(rec, s.win)
	var ranked []ledger.Record
	if res == ledger.TriggersWin && live {
		l.MarkAnnounced()
		ranked = l.Ranked()
	}
	s.mu.Unlock()

	log.Debug().
		Int("day", int(o.Day)).
		Str("attempts", o.Attempts.String()).
		Int("score", score).
		Str("result", res.String()).
		Bool("live", live).
		Msg("submission")

	if !live {
		return nil, nil
	}
	switch res {
	case ledger.AlreadyKnown:
		return s.notice(ctx, s.cfg.Messages.AlreadySubmitted, m.AuthorID, o.Day), nil
	case ledger.TriggersWin:
		return []dom.Reply{s.render(ctx, o.Day, ranked)}, nil
	default:
		if text, ok := s.resultResponse(o.Attempts); ok {
			return []dom.Reply{{To: dom.ForWordle, Text: text}}, nil
		}
		return nil, nil
	}
}

// HandleWinner processes an announcement channel message. Only the bot's own
// announcements count; they close the day and feed the answer index
func (s *Svc) HandleWinner(ctx context.Context, m dom.Message) (announce.Announcement, bool) {
	if m.AuthorID != s.cfg.SelfID {
		return announce.Announcement{}, false
	}
	a, ok := announce.Parse(m.Content)
	if !ok {
		logger.C(ctx).Trace().Msg("not an announcement")
		return announce.Announcement{}, false
	}

	s.mu.Lock()
	s.book.Ensure(a.Day).MarkAnnounced()
	if a.Answer != "" {
		s.index.Add(a.Day, a.Answer)
	}
	s.mu.Unlock()

	logger.C(ctx).Debug().Int("day", int(a.Day)).Str("winner", a.Winner).Msg("announcement seen")
	return a, true
}

// Announce closes day and renders its announcement, even if it was already
// announced. A day with no submissions is a conflict
func (s *Svc) Announce(ctx context.Context, day wordle.Day) (dom.Reply, error) {
	s.mu.Lock()
	l, ok := s.book.Get(day)
	if !ok {
		s.mu.Unlock()
		return dom.Reply{}, unknownDay(day)
	}
	if l.Len() == 0 {
		s.mu.Unlock()
		return dom.Reply{}, perr.Conflictf("day %d has no submissions", day)
	}
	l.MarkAnnounced()
	ranked := l.Ranked()
	s.mu.Unlock()

	return s.render(ctx, day, ranked), nil
}

// announceIfOpen is Announce for the daily poll: it skips days that are
// unknown, empty or already closed
func (s *Svc) announceIfOpen(ctx context.Context, day wordle.Day) (dom.Reply, bool) {
	s.mu.Lock()
	l, ok := s.book.Get(day)
	if !ok || l.Announced() || l.Len() == 0 {
		s.mu.Unlock()
		return dom.Reply{}, false
	}
	l.MarkAnnounced()
	ranked := l.Ranked()
	s.mu.Unlock()

	return s.render(ctx, day, ranked), true
}

func (s *Svc) render(ctx context.Context, day wordle.Day, ranked []ledger.Record) dom.Reply {
	text := s.cfg.Messages.Format(day, s.entries(ctx, ranked), s.answer(ctx, day))
	return dom.Reply{To: dom.ForWinner, Text: text}
}

func (s *Svc) notice(ctx context.Context, tmpl, userID string, day wordle.Day) []dom.Reply {
	text := announce.Expand(tmpl, "name", s.displayName(ctx, userID), "day", day.String())
	return []dom.Reply{{To: dom.ForWordle, Text: text}}
}

func unknownDay(day wordle.Day) error {
	return perr.WithField(perr.NotFoundf("day %d has not been seen", day), "day")
}
