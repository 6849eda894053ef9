package ledger

import (
	"maps"
	"slices"

	"wordlebot/internal/core/wordle"
)

// Book holds the ledgers of every day seen by the process. Like Ledger it
// expects its owner to serialise access
type Book struct {
	days map[wordle.Day]*Ledger
}

// NewBook returns an empty Book
func NewBook() *Book { return &Book{days: make(map[wordle.Day]*Ledger)} }

// Get returns the ledger for day if one exists
func (b *Book) Get(day wordle.Day) (*Ledger, bool) {
	l, ok := b.days[day]
	return l, ok
}

// Ensure returns the ledger for day, creating it on first use
func (b *Book) Ensure(day wordle.Day) *Ledger {
	l, ok := b.days[day]
	if !ok {
		l = NewLedger(day)
		b.days[day] = l
	}
	return l
}

// Days returns the known days in ascending order
func (b *Book) Days() []wordle.Day {
	return slices.Sorted(maps.Keys(b.days))
}
