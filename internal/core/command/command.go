// Package command parses chat commands addressed to the bot
package command

import (
	"strconv"
	"strings"
	"time"

	"wordlebot/internal/core/normalize"
	"wordlebot/internal/core/wordle"
)

// Kind is the command verb
type Kind uint8

const (
	// Unknown is a prefixed message with no recognised verb or bad arguments
	Unknown Kind = iota
	// List shows the running table of a day
	List
	// End announces a day immediately
	End
	// Roundup shows the season report
	Roundup
	// Find looks up when a word was the answer
	Find
	// Help shows usage
	Help
)

func (k Kind) String() string {
	return [...]string{"unknown", "list", "end", "roundup", "find", "help"}[k]
}

// Command is a parsed command
type Command struct {
	Kind    Kind
	Day     wordle.Day
	Word    string
	Spoiler bool
}

// Names are the configurable command words
type Names struct {
	Prefix  string `yaml:"prefix"`
	List    string `yaml:"list"`
	End     string `yaml:"end"`
	Roundup string `yaml:"roundup"`
	Find    string `yaml:"find"`
	Help    string `yaml:"help"`
}

// DefaultNames returns the stock command words
func DefaultNames() Names {
	return Names{Prefix: "wordle-bot", List: "ls", End: "end", Roundup: "roundup", Find: "find", Help: "help"}
}

// Parse reads content as a command. ok is false when content does not start
// with the prefix. at is the message time in the bot's zone and picks the
// default day for List
func (n Names) Parse(content string, at time.Time) (cmd Command, ok bool) {
	s := normalize.Fold(content)
	prefix := normalize.Fold(n.Prefix)
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return Command{}, false
	}
	s = strings.TrimSpace(s[len(prefix):])

	verb := func(name string) (string, bool) {
		name = normalize.Fold(name)
		if name == "" || !strings.HasPrefix(s, name) {
			return "", false
		}
		return strings.TrimSpace(s[len(name):]), true
	}

	if rest, ok := verb(n.List); ok {
		if rest == "" {
			return Command{Kind: List, Day: wordle.DayOf(at)}, true
		}
		return dayCommand(List, rest), true
	}
	if rest, ok := verb(n.End); ok {
		return dayCommand(End, rest), true
	}
	if _, ok := verb(n.Roundup); ok {
		return Command{Kind: Roundup}, true
	}
	if rest, ok := verb(n.Find); ok {
		return findCommand(rest), true
	}
	if _, ok := verb(n.Help); ok {
		return Command{Kind: Help}, true
	}
	return Command{Kind: Unknown}, true
}

func dayCommand(k Kind, rest string) Command {
	tok, _, _ := strings.Cut(rest, " ")
	d, err := strconv.Atoi(tok)
	if err != nil || d < 0 {
		return Command{Kind: Unknown}
	}
	return Command{Kind: k, Day: wordle.Day(d)}
}

func findCommand(rest string) Command {
	switch {
	case len(rest) == 5:
		return Command{Kind: Find, Word: strings.ToUpper(rest)}
	case len(rest) == 9 && strings.HasPrefix(rest, "||") && strings.HasSuffix(rest, "||"):
		return Command{Kind: Find, Word: strings.ToUpper(rest[2:7]), Spoiler: true}
	default:
		return Command{Kind: Unknown}
	}
}
