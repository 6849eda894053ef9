package wordle

import (
	"regexp"
	"strconv"
	"strings"

	"wordlebot/internal/core/grid"
)

// Kind classifies a message against the share-text format
type Kind uint8

const (
	// Success means the message is a well-formed share text
	Success Kind = iota
	// RegexMismatch means the message does not have the share-text shape
	RegexMismatch
	// InvalidAttemptLineCount means the grid has more or fewer lines than declared
	InvalidAttemptLineCount
	// InvalidLineGlyphLength means a grid line is not exactly five squares wide
	InvalidLineGlyphLength
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case RegexMismatch:
		return "regex_mismatch"
	case InvalidAttemptLineCount:
		return "invalid_attempt_line_count"
	case InvalidLineGlyphLength:
		return "invalid_line_glyph_length"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Outcome is the result of Validate. Day, Attempts and Grid are only set
// when Kind is Success
type Outcome struct {
	Kind     Kind
	Day      Day
	Attempts Attempts
	Grid     []string
}

// OK reports whether the outcome is Success
func (o Outcome) OK() bool { return o.Kind == Success }

// Squares may be one or two runes wide depending on the client, so the
// pattern admits 5-10 per line; the exact width is checked on the UTF-32 form
const squares = `[⬜⬛🟨🟩🟦🟧]`

var shareText = regexp.MustCompile(`^Wordle\s(\d+)\s([1-6X])/6\n{2}(?:` + squares + `{5,10}\n){0,5}` + squares + `{5,10}$`)

// Validate classifies text as a share text. It never fails: anything that
// is not a submission is reported through Kind
func Validate(text string) Outcome {
	text = strings.TrimSuffix(text, "\n")
	m := shareText.FindStringSubmatch(text)
	if m == nil {
		return Outcome{Kind: RegexMismatch}
	}

	day, err := strconv.Atoi(m[1])
	if err != nil {
		return Outcome{Kind: RegexMismatch}
	}
	attempts, ok := ParseAttempts(m[2])
	if !ok {
		return Outcome{Kind: RegexMismatch}
	}

	lines := strings.Split(text, "\n")[2:]
	if len(lines) != attempts.Lines() {
		return Outcome{Kind: InvalidAttemptLineCount}
	}
	for _, l := range lines {
		b, err := grid.Encode(l)
		if err != nil || len(b) != grid.LineBytes {
			return Outcome{Kind: InvalidLineGlyphLength}
		}
	}

	return Outcome{Kind: Success, Day: Day(day), Attempts: attempts, Grid: lines}
}
