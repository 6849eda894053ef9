// Package domain holds the bot's ports and the values that cross them
package domain

import (
	"time"

	"wordlebot/internal/core/wordle"
)

// Message is one chat message as the bot sees it
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	Timestamp time.Time
	Content   string
}

// Destination is the logical channel a reply goes to
type Destination uint8

const (
	// ForWordle is the submissions channel
	ForWordle Destination = iota + 1
	// ForWinner is the announcement channel
	ForWinner
)

func (d Destination) String() string {
	switch d {
	case ForWordle:
		return "wordle"
	case ForWinner:
		return "winner"
	default:
		return "none"
	}
}

// MarshalText renders the destination name in JSON
func (d Destination) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Reply is outbound text; the service never sends it itself
type Reply struct {
	To   Destination `json:"to"`
	Text string      `json:"text"`
}

// Standing is one ranked entry of a day
type Standing struct {
	Rank      int             `json:"rank"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Attempts  wordle.Attempts `json:"attempts"`
	Score     int             `json:"score"`
	Timestamp time.Time       `json:"timestamp"`
}

// DayView is a read-only snapshot of a day
type DayView struct {
	Day       wordle.Day `json:"day"`
	Date      string     `json:"date"`
	Announced bool       `json:"announced"`
	Standings []Standing `json:"standings"`
}

// AnswerView is an answer index hit
type AnswerView struct {
	Word string     `json:"word"`
	Day  wordle.Day `json:"day"`
	Date string     `json:"date"`
}
