package wordle

import (
	"wordlebot/internal/core/grid"
	perr "wordlebot/internal/platform/errors"
)

// BaseScore is the flat reward for finishing in a given number of guesses
func BaseScore(a Attempts) int {
	switch a {
	case 1:
		return 50
	case 2:
		return 40
	case 3:
		return 30
	case 4:
		return 20
	case 5:
		return 10
	default:
		return 0
	}
}

// Score rates a validated result. On top of BaseScore, the first time a
// column turns green on line i earns max(1, 10-2i) and the first time it
// turns yellow earns 5-i. A column is credited once per color.
//
// Score panics if o is not a Success outcome. A grid line the decoder
// cannot read returns a contract error.
func Score(o Outcome, lines []string) (int, error) {
	if !o.OK() {
		panic("wordle: Score called with " + o.Kind.String() + " outcome")
	}

	var knownGreen, knownYellow [grid.Width]bool
	total := BaseScore(o.Attempts)
	for i, raw := range lines {
		line, err := grid.DecodeLine(raw)
		if err != nil {
			return 0, perr.WithField(err, "grid")
		}
		greens, yellows := 0, 0
		for j, sq := range line {
			if sq == grid.Green && !knownGreen[j] {
				greens++
				knownGreen[j] = true
			} else if sq == grid.Yellow && !knownYellow[j] {
				yellows++
				knownYellow[j] = true
			}
		}
		total += greens*max(1, 10-2*i) + yellows*(5-i)
	}
	return total, nil
}
