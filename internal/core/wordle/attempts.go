package wordle

import (
	"fmt"
	"strconv"

	perr "wordlebot/internal/platform/errors"
)

// MaxAttempts is the number of guesses a player gets
const MaxAttempts = 6

// Attempts is either a win in 1..6 guesses or Loss. Loss sorts after a
// sixth-guess win and still renders six grid lines
type Attempts uint8

// Loss is the attempts value of an unsolved puzzle, shared as "X/6"
const Loss Attempts = MaxAttempts + 1

// Won returns the Attempts for a win in n guesses; n must be 1..6
func Won(n int) Attempts {
	if n < 1 || n > MaxAttempts {
		panic(fmt.Sprintf("wordle: Won(%d) out of range", n))
	}
	return Attempts(n)
}

// ParseAttempts reads the share-text token: "1".."6" or "X"
func ParseAttempts(s string) (Attempts, bool) {
	if s == "X" || s == "x" {
		return Loss, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxAttempts {
		return 0, false
	}
	return Attempts(n), true
}

// Valid reports whether a is a win in 1..6 or Loss
func (a Attempts) Valid() bool { return a >= 1 && a <= Loss }

// IsLoss reports whether the puzzle went unsolved
func (a Attempts) IsLoss() bool { return a == Loss }

// Lines is the number of grid lines the share text carries
func (a Attempts) Lines() int {
	if a.IsLoss() {
		return MaxAttempts
	}
	return int(a)
}

// String renders the share-text token
func (a Attempts) String() string {
	if a.IsLoss() {
		return "X"
	}
	return strconv.Itoa(int(a))
}

// MarshalText renders the share-text token
func (a Attempts) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, perr.InvalidArgf("attempts %d out of range", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts "1".."6" and "X"
func (a *Attempts) UnmarshalText(b []byte) error {
	v, ok := ParseAttempts(string(b))
	if !ok {
		return perr.InvalidArgf("attempts %q must be 1-6 or X", string(b))
	}
	*a = v
	return nil
}
