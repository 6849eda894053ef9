// Package announce reads and writes the bot's win announcements
package announce

import (
	"regexp"
	"strconv"
	"strings"

	"wordlebot/internal/core/wordle"
)

// Placing is a runner-up line
type Placing struct {
	Rank  int
	Name  string
	Score int
}

// Announcement is a parsed win announcement
type Announcement struct {
	Day            wordle.Day
	Winner         string
	WinnerAttempts wordle.Attempts
	WinnerScore    int
	// Answer is empty when the announcement had no answer line
	Answer    string
	RunnersUp []Placing
}

var (
	winnerLine = regexp.MustCompile(`^Wordle (\d+) winner is (.+)! Who scored ([1-6X])/6 \((\d+)%?\)\.$`)
	answerLine = regexp.MustCompile(`^Today's answer was ([A-Za-z]{5})$`)
	runnerLine = regexp.MustCompile(`^(\d+) - (.+): (\d+) points$`)
)

// Parse recognises an announcement. Most text in the announcement channel is
// something else, so a miss is reported with ok=false rather than an error
func Parse(text string) (a Announcement, ok bool) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	m := winnerLine.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if m == nil {
		return Announcement{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return Announcement{}, false
	}
	attempts, _ := wordle.ParseAttempts(m[3])
	score, err := strconv.Atoi(m[4])
	if err != nil {
		return Announcement{}, false
	}
	a = Announcement{Day: wordle.Day(day), Winner: m[2], WinnerAttempts: attempts, WinnerScore: score}

	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		if am := answerLine.FindStringSubmatch(l); am != nil {
			a.Answer = strings.ToUpper(am[1])
			continue
		}
		rm := runnerLine.FindStringSubmatch(l)
		if rm == nil {
			continue
		}
		rank, err1 := strconv.Atoi(rm[1])
		pts, err2 := strconv.Atoi(rm[3])
		if err1 != nil || err2 != nil {
			continue
		}
		a.RunnersUp = append(a.RunnersUp, Placing{Rank: rank, Name: rm[2], Score: pts})
	}
	return a, true
}
