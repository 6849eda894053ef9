// Package answers remembers which word was the answer on which day
package answers

import (
	"strings"
	"time"

	"wordlebot/internal/core/announce"
	"wordlebot/internal/core/wordle"
)

// Index maps an uppercase answer to the date it was last seen
type Index struct {
	words map[string]wordle.Day
}

// New returns an empty Index
func New() *Index { return &Index{words: make(map[string]wordle.Day)} }

// Feed indexes text if it is an announcement carrying an answer
func (x *Index) Feed(text string) bool {
	a, ok := announce.Parse(text)
	if !ok {
		return false
	}
	return x.Add(a.Day, a.Answer)
}

// Add records word as the answer of day. Later calls for the same word
// overwrite earlier ones
func (x *Index) Add(day wordle.Day, word string) bool {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != 5 {
		return false
	}
	x.words[word] = day
	return true
}

// Lookup returns the date word was the answer
func (x *Index) Lookup(word string) (time.Time, bool) {
	d, ok := x.LookupDay(word)
	if !ok {
		return time.Time{}, false
	}
	return d.Date(), true
}

// LookupDay returns the puzzle day word was the answer
func (x *Index) LookupDay(word string) (wordle.Day, bool) {
	d, ok := x.words[strings.ToUpper(strings.TrimSpace(word))]
	return d, ok
}

// Len returns the number of indexed words
func (x *Index) Len() int { return len(x.words) }
