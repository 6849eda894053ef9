package service

import (
	"context"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/command"
	"wordlebot/internal/core/season"
	"wordlebot/internal/platform/logger"

	perr "wordlebot/internal/platform/errors"
	dom "wordlebot/internal/services/bot/domain"
)

func (s *Svc) command(ctx context.Context, m dom.Message, cmd command.Command) ([]dom.Reply, error) {
	msgs := s.cfg.Messages
	say := func(text string) []dom.Reply { return []dom.Reply{{To: dom.ForWordle, Text: text}} }
	logger.C(ctx).Debug().Str("command", cmd.Kind.String()).Str("author_id", m.AuthorID).Msg("command")

	switch cmd.Kind {
	case command.List:
		view, err := s.Day(ctx, cmd.Day)
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return say(announce.Expand(msgs.UnknownDay, "day", cmd.Day.String())), nil
		}
		if err != nil {
			return nil, err
		}
		entries := make([]announce.Entry, 0, len(view.Standings))
		for _, st := range view.Standings {
			entries = append(entries, announce.Entry{Name: st.Name, Attempts: st.Attempts, Score: st.Score})
		}
		return say(msgs.Listing(cmd.Day, entries)), nil

	case command.End:
		if !s.IsAdmin(m.AuthorID) {
			return say(announce.Expand(msgs.NotAdmin, "name", s.displayName(ctx, m.AuthorID))), nil
		}
		r, err := s.Announce(ctx, cmd.Day)
		if perr.IsCode(err, perr.ErrorCodeNotFound) || perr.IsCode(err, perr.ErrorCodeConflict) {
			return say(announce.Expand(msgs.UnknownDay, "day", cmd.Day.String())), nil
		}
		if err != nil {
			return nil, err
		}
		return []dom.Reply{r}, nil

	case command.Roundup:
		text, err := s.roundup(ctx)
		if perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
			return say(msgs.RoundupEarly), nil
		}
		if err != nil {
			return nil, err
		}
		return say(text), nil

	case command.Find:
		shown := cmd.Word
		if cmd.Spoiler {
			shown = "||" + cmd.Word + "||"
		}
		if v, ok := s.FindAnswer(cmd.Word); ok {
			return say(announce.Expand(msgs.FindHit, "word", shown, "date", v.Date)), nil
		}
		return say(announce.Expand(msgs.FindMiss, "word", shown)), nil

	case command.Help:
		n := s.cfg.Commands
		return say(announce.Expand(msgs.Help,
			"ls", n.Prefix+" "+n.List,
			"end", n.Prefix+" "+n.End,
			"roundup", n.Prefix+" "+n.Roundup,
			"find", n.Prefix+" "+n.Find,
		)), nil

	default:
		return say(msgs.UnknownCommand), nil
	}
}

// roundup replays the announcement channel into a fresh season report for
// the current year. Calls inside the cooldown are rejected
func (s *Svc) roundup(ctx context.Context) (string, error) {
	now := s.now().In(s.cfg.Location)

	s.mu.Lock()
	if now.Before(s.nextRoundup) {
		s.mu.Unlock()
		return "", perr.TooManyf("roundup available again at %s", s.nextRoundup.Format("15:04:05"))
	}
	s.nextRoundup = now.Add(s.cfg.RoundupCooldown)
	s.mu.Unlock()

	agg, err := season.New(s.cfg.Aliases)
	if err != nil {
		return "", err
	}
	if s.ad.History != nil {
		msgs, err := s.ad.History.History(ctx, s.cfg.WinnerChannel, s.cfg.RoundupLimit)
		if err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "read announcement history")
		}
		for _, m := range msgs {
			if m.AuthorID != s.cfg.SelfID || m.Timestamp.In(s.cfg.Location).Year() != now.Year() {
				continue
			}
			agg.Feed(m.Content)
		}
	}
	logger.C(ctx).Info().Int("year", now.Year()).Int("days", agg.Days()).Msg("roundup")
	return agg.Report(now.Year()), nil
}

