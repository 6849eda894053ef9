package announce

import (
	"strconv"
	"strings"

	"wordlebot/internal/core/wordle"
)

// Messages holds the outbound text templates. Placeholders are written as
// {day}, {name}, {attempts}, {score}, {answer}, {rank}, {word}, {date}
type Messages struct {
	Winner           string `yaml:"winner"`
	TodaysAnswer     string `yaml:"todays_answer"`
	RunnerUp         string `yaml:"runner_up"`
	DayHeader        string `yaml:"day_header"`
	AlreadySubmitted string `yaml:"already_submitted"`
	SubmittedTooLate string `yaml:"submitted_too_late"`
	UnknownDay       string `yaml:"unknown_day"`
	NotAdmin         string `yaml:"not_admin"`
	RoundupEarly     string `yaml:"roundup_early"`
	UnknownCommand   string `yaml:"unknown_command"`
	FindHit          string `yaml:"find_hit"`
	FindMiss         string `yaml:"find_miss"`
	Help             string `yaml:"help"`
}

// DefaultMessages returns the stock templates. Winner, TodaysAnswer and
// RunnerUp must stay in the shape Parse understands
func DefaultMessages() Messages {
	return Messages{
		Winner:           "Wordle {day} winner is {name}! Who scored {attempts}/6 ({score}).",
		TodaysAnswer:     "Today's answer was {answer}",
		RunnerUp:         "{rank} - {name}: {score} points",
		DayHeader:        "Wordle {day}",
		AlreadySubmitted: "{name} has already submitted an answer for Wordle {day}",
		SubmittedTooLate: "{name} is too late for Wordle {day}",
		UnknownDay:       "Day {day} has not been seen yet",
		NotAdmin:         "{name} is not allowed to do that",
		RoundupEarly:     "Cannot do another roundup now, try again later",
		UnknownCommand:   "Unknown command",
		FindHit:          "{word} was the answer on {date}",
		FindMiss:         "{word} has not been the answer before",
		Help: "Wordle bot help:\n" +
			"{ls} [day number] : display current results for a day, default today\n" +
			"{end} [day number] : immediately announces the results for the given day (admin only)\n" +
			"{roundup} : show player stats for the current year\n" +
			"{find} <word> : returns the date the word was the Wordle answer, or that it has not been the answer",
	}
}

// Merge returns m with every blank field taken from base
func (m Messages) Merge(base Messages) Messages {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return Messages{
		Winner:           pick(m.Winner, base.Winner),
		TodaysAnswer:     pick(m.TodaysAnswer, base.TodaysAnswer),
		RunnerUp:         pick(m.RunnerUp, base.RunnerUp),
		DayHeader:        pick(m.DayHeader, base.DayHeader),
		AlreadySubmitted: pick(m.AlreadySubmitted, base.AlreadySubmitted),
		SubmittedTooLate: pick(m.SubmittedTooLate, base.SubmittedTooLate),
		UnknownDay:       pick(m.UnknownDay, base.UnknownDay),
		NotAdmin:         pick(m.NotAdmin, base.NotAdmin),
		RoundupEarly:     pick(m.RoundupEarly, base.RoundupEarly),
		UnknownCommand:   pick(m.UnknownCommand, base.UnknownCommand),
		FindHit:          pick(m.FindHit, base.FindHit),
		FindMiss:         pick(m.FindMiss, base.FindMiss),
		Help:             pick(m.Help, base.Help),
	}
}

// Expand substitutes {key} placeholders from kv pairs
func Expand(tmpl string, kv ...string) string {
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Entry is one ranked line of a day
type Entry struct {
	Name     string
	Attempts wordle.Attempts
	Score    int
}

// Format renders an announcement for a ranked day. entries must be ordered
// best first and hold at least the winner; answer may be empty
func (m Messages) Format(day wordle.Day, entries []Entry, answer string) string {
	if len(entries) == 0 {
		return ""
	}
	w := entries[0]
	var b strings.Builder
	b.WriteString(Expand(m.Winner,
		"day", day.String(), "name", w.Name, "attempts", w.Attempts.String(), "score", strconv.Itoa(w.Score)))
	if answer != "" {
		b.WriteByte('\n')
		b.WriteString(Expand(m.TodaysAnswer, "answer", strings.ToUpper(answer)))
	}
	for i, e := range entries[1:] {
		b.WriteByte('\n')
		b.WriteString(m.runnerUp(i+2, e))
	}
	return b.String()
}

// Listing renders the running table of a day for the ls command
func (m Messages) Listing(day wordle.Day, entries []Entry) string {
	var b strings.Builder
	b.WriteString(Expand(m.DayHeader, "day", day.String()))
	for i, e := range entries {
		b.WriteByte('\n')
		b.WriteString(m.runnerUp(i+1, e))
	}
	return b.String()
}

func (m Messages) runnerUp(rank int, e Entry) string {
	return Expand(m.RunnerUp, "rank", strconv.Itoa(rank), "name", e.Name, "score", strconv.Itoa(e.Score))
}
