package service

import (
	"context"
	"errors"
	"testing"
	"time"

	kit "wordlebot/internal/platform/testkit"

	perr "wordlebot/internal/platform/errors"
	dom "wordlebot/internal/services/bot/domain"
)

func TestReplayWinnersFirst(t *testing.T) {
	hist := &fakeHistory{channels: map[string][]dom.Message{
		winnerCh: {
			{AuthorID: selfID, Content: "Wordle 753 winner is Bee! Who scored 3/6 (69).\nToday's answer was CRANE"},
			{AuthorID: ay, Content: "Wordle 754 winner is Ay! Who scored 1/6 (100)."},
		},
		wordleCh: {
			msg(ay, four753),
			msg(bee, three753),
			msg(selfID, four753),
			msg(ay, "wordle-bot end 753"),
		},
	}}
	sink := &fakeSink{}
	s, _ := newSvc(t, baseConfig(), Adapters{History: hist, Sink: sink})

	if err := s.Replay(context.Background()); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(hist.calls) != 2 || hist.calls[0] != winnerCh || hist.calls[1] != wordleCh {
		t.Fatalf("history order = %v", hist.calls)
	}
	if len(sink.out) != 0 {
		t.Fatalf("replay sent %+v", sink.out)
	}

	view, err := s.Day(context.Background(), day753)
	if err != nil || !view.Announced || len(view.Standings) != 2 {
		t.Fatalf("day 753 after replay = %+v, %v", view, err)
	}
	if _, err := s.Day(context.Background(), 754); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("foreign announcement was replayed: %v", err)
	}
	if _, ok := s.FindAnswer("crane"); !ok {
		t.Fatalf("replayed answer missing from index")
	}
}

func TestReplayAnnouncesDaysCompletedWhileAway(t *testing.T) {
	hist := &fakeHistory{channels: map[string][]dom.Message{
		winnerCh: {
			{AuthorID: selfID, Content: "Wordle 752 winner is Ay! Who scored 2/6 (90)."},
		},
		wordleCh: {
			msg(ay, share("Wordle 752 2/6", "⬜🟨🟩⬜⬜", "🟩🟩🟩🟩🟩")),
			msg(bee, share("Wordle 752 3/6", "⬜⬜⬜⬜⬜", "⬜🟨🟩⬜⬜", "🟩🟩🟩🟩🟩")),
			msg(ay, four753),
			msg(bee, three753),
			msg(ay, share("Wordle 754 1/6", "🟩🟩🟩🟩🟩")),
		},
	}}
	sink := &fakeSink{}
	s, clk := newSvc(t, baseConfig(), Adapters{History: hist, Sink: sink})
	clk.Advance(24 * time.Hour)
	ctx := context.Background()

	if err := s.Replay(ctx); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(sink.out) != 1 || sink.out[0].ch != winnerCh {
		t.Fatalf("sent = %+v", sink.out)
	}
	kit.MustContain(t, sink.out[0].text, "Wordle 753 winner is Bee!")

	view, err := s.Day(ctx, day753)
	if err != nil || !view.Announced {
		t.Fatalf("day 753 after replay = %+v, %v", view, err)
	}
	if view, _ := s.Day(ctx, 754); view.Announced {
		t.Fatalf("incomplete day 754 was closed")
	}

	// a second pass finds nothing new to say
	if err := s.Replay(ctx); err != nil || len(sink.out) != 1 {
		t.Fatalf("second replay sent %+v, %v", sink.out, err)
	}
}

func TestReplayHistoryError(t *testing.T) {
	s, _ := newSvc(t, baseConfig(), Adapters{History: &fakeHistory{err: errors.New("503")}})
	if err := s.Replay(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestOnMessageDelivers(t *testing.T) {
	sink := &fakeSink{}
	s, _ := newSvc(t, baseConfig(), Adapters{Sink: sink})
	ctx := context.Background()

	s.OnMessage(ctx, msg(ay, four753))
	s.OnMessage(ctx, msg(bee, three753))
	s.OnMessage(ctx, msg(bee, "wordle-bot dance"))
	s.OnMessage(ctx, dom.Message{ChannelID: "elsewhere", AuthorID: ay, Content: "wordle-bot help"})

	if len(sink.out) != 2 {
		t.Fatalf("sent = %+v", sink.out)
	}
	if sink.out[0].ch != winnerCh {
		t.Fatalf("announcement sent to %q", sink.out[0].ch)
	}
	kit.MustContain(t, sink.out[0].text, "winner is Bee!")
	if sink.out[1].ch != wordleCh || sink.out[1].text != "Unknown command" {
		t.Fatalf("command reply = %+v", sink.out[1])
	}

	// the bot sees its own announcement come back and indexes it
	s.OnMessage(ctx, dom.Message{ChannelID: winnerCh, AuthorID: selfID, Content: "Wordle 753 winner is Bee! Who scored 3/6 (69).\nToday's answer was CRANE"})
	if _, ok := s.FindAnswer("CRANE"); !ok {
		t.Fatalf("live announcement not indexed")
	}
}

func TestDeliver(t *testing.T) {
	sink := &fakeSink{}
	cfg := baseConfig()
	cfg.TestMode = true
	s, _ := newSvc(t, cfg, Adapters{Sink: sink})

	replies := []dom.Reply{{To: dom.ForWordle, Text: "a"}, {To: dom.ForWinner, Text: "b"}}
	if err := s.Deliver(context.Background(), replies); err != nil || len(sink.out) != 0 {
		t.Fatalf("test mode sent %+v, %v", sink.out, err)
	}

	s.cfg.TestMode = false
	if err := s.Deliver(context.Background(), replies); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if len(sink.out) != 2 || sink.out[0] != (sent{wordleCh, "a"}) || sink.out[1] != (sent{winnerCh, "b"}) {
		t.Fatalf("sent = %+v", sink.out)
	}

	sink.fail = true
	if err := s.Deliver(context.Background(), replies); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestPoll(t *testing.T) {
	sink := &fakeSink{}
	s, _ := newSvc(t, baseConfig(), Adapters{Sink: sink})
	ctx := context.Background()
	at := day753.Date().Add(23*time.Hour + 59*time.Minute)

	s.poll(ctx, at)
	if len(sink.out) != 0 {
		t.Fatalf("poll announced an unknown day: %+v", sink.out)
	}

	mustNone(t)(s.HandleWordle(ctx, msg(ay, four753), true))
	s.poll(ctx, at)
	if len(sink.out) != 1 || sink.out[0].ch != winnerCh {
		t.Fatalf("poll sent %+v", sink.out)
	}

	s.poll(ctx, at)
	if len(sink.out) != 1 {
		t.Fatalf("poll announced twice: %+v", sink.out)
	}
}

func TestNextPoll(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("no zoneinfo")
	}
	at := 23*time.Hour + 59*time.Minute

	cases := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Time
	}{
		{"same day", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), time.UTC, time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)},
		{"exactly at", time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC), time.UTC, time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)},
		{"after", time.Date(2024, 12, 31, 23, 59, 30, 0, time.UTC), time.UTC, time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)},
		{"zone", time.Date(2024, 3, 1, 22, 59, 30, 0, time.UTC), berlin, time.Date(2024, 3, 2, 23, 59, 0, 0, berlin)},
	}
	for _, c := range cases {
		if got := nextPoll(c.now, at, c.loc); !got.Equal(c.want) {
			t.Fatalf("%s: nextPoll = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newSvc(t, baseConfig(), Adapters{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v", err)
	}
}
