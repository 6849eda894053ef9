package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/ledger"
	"wordlebot/internal/core/wordle"
	"wordlebot/internal/platform/logger"
)

const nameLookups = 4

// displayName resolves one user, never failing
func (s *Svc) displayName(ctx context.Context, userID string) string {
	if s.ad.Names == nil {
		return FallbackName
	}
	if n := strings.TrimSpace(s.ad.Names.DisplayName(ctx, userID)); n != "" {
		return n
	}
	return FallbackName
}

// names resolves every participant of records concurrently
func (s *Svc) names(ctx context.Context, records []ledger.Record) map[ledger.Key]string {
	out := make([]string, len(records))
	var g errgroup.Group
	g.SetLimit(nameLookups)
	for i, r := range records {
		g.Go(func() error {
			out[i] = s.displayName(ctx, string(r.Participant))
			return nil
		})
	}
	_ = g.Wait()

	m := make(map[ledger.Key]string, len(records))
	for i, r := range records {
		m[r.Participant] = out[i]
	}
	return m
}

// entries turns ranked records into template entries
func (s *Svc) entries(ctx context.Context, records []ledger.Record) []announce.Entry {
	names := s.names(ctx, records)
	out := make([]announce.Entry, 0, len(records))
	for _, r := range records {
		out = append(out, announce.Entry{Name: names[r.Participant], Attempts: r.Attempts, Score: r.Score})
	}
	return out
}

// answer asks the provider for day's answer; failures mean unknown
func (s *Svc) answer(ctx context.Context, day wordle.Day) string {
	if s.ad.Answers == nil {
		return ""
	}
	w, err := s.ad.Answers.Answer(ctx, day)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Int("day", int(day)).Msg("answer unavailable")
		return ""
	}
	return w
}

func normWord(w string) string { return strings.ToUpper(strings.TrimSpace(w)) }
