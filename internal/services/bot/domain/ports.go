package domain

import (
	"context"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/wordle"
)

// AnswerPort returns the uppercase answer of a day. Any error means unknown
type AnswerPort interface {
	Answer(ctx context.Context, day wordle.Day) (string, error)
}

// NamePort resolves a chat user id to a display name; it must not fail
type NamePort interface {
	DisplayName(ctx context.Context, userID string) string
}

// HistoryPort returns up to limit of the latest messages of a channel, oldest first
type HistoryPort interface {
	History(ctx context.Context, channelID string, limit int) ([]Message, error)
}

// SinkPort posts text to a channel
type SinkPort interface {
	Send(ctx context.Context, channelID, text string) error
}

// BotPort is the message handling surface used by transports
type BotPort interface {
	HandleWordle(ctx context.Context, m Message, live bool) ([]Reply, error)
	HandleWinner(ctx context.Context, m Message) (announce.Announcement, bool)
	Announce(ctx context.Context, day wordle.Day) (Reply, error)
	Day(ctx context.Context, day wordle.Day) (DayView, error)
	FindAnswer(word string) (AnswerView, bool)
	SeasonReport(texts []string, year int) (string, int, error)
	Deliver(ctx context.Context, replies []Reply) error
	IsAdmin(userID string) bool
}

// RunnerPort drives the bot from a live gateway
type RunnerPort interface {
	// Replay rebuilds state from channel history without producing output
	Replay(ctx context.Context) error
	// Run fires the daily poll until ctx is done
	Run(ctx context.Context) error
	// OnMessage handles a live gateway message end to end
	OnMessage(ctx context.Context, m Message)
}
