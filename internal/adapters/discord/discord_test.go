package discord

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	perr "wordlebot/internal/platform/errors"
)

type fakeAPI struct {
	// newest first, as Discord returns them
	msgs    []*discordgo.Message
	limits  []int
	befores []string
	sent    []string
	users   map[string]*discordgo.User
	err     error
}

func (f *fakeAPI) ChannelMessages(_ string, limit int, beforeID, _, _ string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	f.limits = append(f.limits, limit)
	f.befores = append(f.befores, beforeID)
	if f.err != nil {
		return nil, f.err
	}
	start := 0
	if beforeID != "" {
		for i, m := range f.msgs {
			if m.ID == beforeID {
				start = i + 1
			}
		}
	}
	end := min(start+limit, len(f.msgs))
	return f.msgs[start:end], nil
}

func (f *fakeAPI) ChannelMessageSend(ch, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, ch+":"+content)
	return &discordgo.Message{ChannelID: ch, Content: content}, nil
}

func (f *fakeAPI) User(id string, _ ...discordgo.RequestOption) (*discordgo.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("404 unknown user")
	}
	return u, nil
}

func history(n int) []*discordgo.Message {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*discordgo.Message, 0, n)
	for i := n; i >= 1; i-- {
		out = append(out, &discordgo.Message{
			ID:        strconv.Itoa(i),
			ChannelID: "c",
			Content:   "m" + strconv.Itoa(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Author:    &discordgo.User{ID: "u" + strconv.Itoa(i)},
		})
	}
	return out
}

func TestHistoryPagesOldestFirst(t *testing.T) {
	f := &fakeAPI{msgs: history(250)}
	c := &Client{api: f}

	got, err := c.History(context.Background(), "c", 230)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 230 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].ID != "21" || got[229].ID != "250" || got[229].AuthorID != "u250" {
		t.Fatalf("order: first %s last %s", got[0].ID, got[229].ID)
	}
	if len(f.limits) != 3 || f.limits[0] != 100 || f.limits[2] != 30 {
		t.Fatalf("page limits = %v", f.limits)
	}
	if f.befores[0] != "" || f.befores[1] != "151" {
		t.Fatalf("before ids = %v", f.befores)
	}
}

func TestHistoryShortChannel(t *testing.T) {
	f := &fakeAPI{msgs: history(3)}
	c := &Client{api: f}

	got, err := c.History(context.Background(), "c", 100)
	if err != nil || len(got) != 3 || got[0].ID != "1" {
		t.Fatalf("History = %+v, %v", got, err)
	}
	if len(f.limits) != 1 {
		t.Fatalf("short page should stop paging, calls = %d", len(f.limits))
	}
}

func TestHistoryError(t *testing.T) {
	c := &Client{api: &fakeAPI{err: errors.New("502")}}
	if _, err := c.History(context.Background(), "c", 10); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestSend(t *testing.T) {
	f := &fakeAPI{}
	c := &Client{api: f}
	if err := c.Send(context.Background(), "w", "hello"); err != nil || f.sent[0] != "w:hello" {
		t.Fatalf("Send = %v, %v", f.sent, err)
	}
	f.err = errors.New("429")
	if err := c.Send(context.Background(), "w", "again"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	c := &Client{api: &fakeAPI{users: map[string]*discordgo.User{
		"1": {ID: "1", Username: "jon", GlobalName: "Jonathan"},
		"2": {ID: "2", Username: "bee"},
		"3": {ID: "3", GlobalName: "  "},
	}}}
	cases := map[string]string{"1": "Jonathan", "2": "bee", "3": "", "4": ""}
	for id, want := range cases {
		if got := c.DisplayName(context.Background(), id); got != want {
			t.Fatalf("DisplayName(%s) = %q, want %q", id, got, want)
		}
	}
}

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(Options{}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
	c, err := New(Options{Token: "abc"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.session.Identify.Intents != Intents {
		t.Fatalf("intents = %v", c.session.Identify.Intents)
	}
	if c.SelfID() != "" {
		t.Fatalf("SelfID before ready = %q", c.SelfID())
	}
}

func TestPing(t *testing.T) {
	c, err := New(Options{Token: "abc"})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Ping(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Ping before ready = %v", err)
	}
	c.session.DataReady = true
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping when ready = %v", err)
	}
}
