package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"wordlebot/internal/core/wordle"
	"wordlebot/internal/modkit"
	"wordlebot/internal/platform/config"
	kit "wordlebot/internal/platform/testkit"

	dom "wordlebot/internal/services/bot/domain"
)

const (
	selfID   = "1000"
	wordleCh = "w-chan"
	winnerCh = "x-chan"
	ay       = "11"
	bee      = "22"
	admin    = "99"
)

var day753 = wordle.Day(753)

type fakeAnswers struct {
	words map[wordle.Day]string
	err   error
}

func (f fakeAnswers) Answer(_ context.Context, day wordle.Day) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	w, ok := f.words[day]
	if !ok {
		return "", errors.New("unknown")
	}
	return w, nil
}

type fakeNames map[string]string

func (f fakeNames) DisplayName(_ context.Context, id string) string { return f[id] }

type fakeHistory struct {
	channels map[string][]dom.Message
	err      error
	calls    []string
}

func (f *fakeHistory) History(_ context.Context, ch string, limit int) ([]dom.Message, error) {
	f.calls = append(f.calls, ch)
	if f.err != nil {
		return nil, f.err
	}
	msgs := f.channels[ch]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

type sent struct{ ch, text string }

type fakeSink struct {
	mu   sync.Mutex
	out  []sent
	fail bool
}

func (f *fakeSink) Send(_ context.Context, ch, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("gateway down")
	}
	f.out = append(f.out, sent{ch, text})
	return nil
}

func baseConfig() Config {
	return Config{
		WordleChannel:   wordleCh,
		WinnerChannel:   winnerCh,
		SelfID:          selfID,
		RequiredUsers:   []string{ay, bee},
		Admins:          []string{admin},
		RoundupCooldown: 5 * time.Minute,
		RoundupLimit:    1000,
		HistoryWinner:   100,
		HistoryWordle:   250,
		PollAt:          23*time.Hour + 59*time.Minute,
		Location:        time.UTC,
	}
}

func newSvc(t *testing.T, cfg Config, ad Adapters) (*Svc, *kit.Clock) {
	t.Helper()
	if ad.Names == nil {
		ad.Names = fakeNames{ay: "Ay", bee: "Bee", admin: "Boss"}
	}
	s := New(modkit.Deps{Cfg: config.New()}, cfg, ad)
	clk := kit.NewClock(day753.Date().Add(12 * time.Hour))
	s.now = clk.Now
	s.pick = func(int) int { return 0 }
	return s, clk
}

func share(lines ...string) string {
	return lines[0] + "\n\n" + strings.Join(lines[1:], "\n")
}

// four753 scores 55, three753 scores 69
var (
	four753  = share("Wordle 753 4/6", "⬜⬜🟩⬜⬜", "⬜🟨🟩⬜⬜", "⬜🟩🟩🟨⬜", "🟩🟩🟩🟩🟩")
	three753 = share("Wordle 753 3/6", "⬛🟨⬛⬛⬛", "⬛🟩⬛🟩⬛", "🟩🟩🟩🟩🟩")
)

func msg(author, content string) dom.Message {
	return dom.Message{
		ID:        author + "-m",
		ChannelID: wordleCh,
		AuthorID:  author,
		Timestamp: day753.Date().Add(10 * time.Hour),
		Content:   content,
	}
}

// mustOne and mustNone take a handler's results directly:
// mustOne(t)(s.HandleWordle(...))
func mustOne(t *testing.T) func([]dom.Reply, error) dom.Reply {
	return func(replies []dom.Reply, err error) dom.Reply {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(replies) != 1 {
			t.Fatalf("want 1 reply, got %d: %+v", len(replies), replies)
		}
		return replies[0]
	}
}

func mustNone(t *testing.T) func([]dom.Reply, error) {
	return func(replies []dom.Reply, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(replies) != 0 {
			t.Fatalf("want no replies, got %+v", replies)
		}
	}
}
