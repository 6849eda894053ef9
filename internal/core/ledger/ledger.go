// Package ledger keeps one submission per participant per puzzle day and
// decides when a day is complete
package ledger

import (
	"cmp"
	"slices"
	"time"

	"wordlebot/internal/core/wordle"
)

// Key identifies a participant, usually the chat user id
type Key string

// Record is one accepted submission; it is never replaced
type Record struct {
	Participant Key
	Timestamp   time.Time
	Attempts    wordle.Attempts
	Score       int
}

// Result reports what AddSubmission did
type Result uint8

const (
	// New means the record was stored and the day is not complete yet
	New Result = iota
	// AlreadyKnown means the participant had already submitted; nothing changed
	AlreadyKnown
	// TriggersWin means the record was stored and completed the day
	TriggersWin
)

func (r Result) String() string {
	switch r {
	case New:
		return "new"
	case AlreadyKnown:
		return "already_known"
	case TriggersWin:
		return "triggers_win"
	default:
		return "result(?)"
	}
}

// WinPredicate decides whether a ledger is complete
type WinPredicate func(*Ledger) bool

// RequireAll is complete once every key has submitted. With no keys it is
// never complete, leaving the day to the daily poll or an admin
func RequireAll(keys ...Key) WinPredicate {
	required := slices.Clone(keys)
	return func(l *Ledger) bool {
		if len(required) == 0 {
			return false
		}
		for _, k := range required {
			if !l.Has(k) {
				return false
			}
		}
		return true
	}
}

// Ledger is the record of one puzzle day. It is not safe for concurrent use
type Ledger struct {
	day       wordle.Day
	records   map[Key]Record
	announced bool
}

// NewLedger returns an empty ledger for day
func NewLedger(day wordle.Day) *Ledger {
	return &Ledger{day: day, records: make(map[Key]Record)}
}

// Day returns the puzzle day
func (l *Ledger) Day() wordle.Day { return l.day }

// Len returns the number of submissions
func (l *Ledger) Len() int { return len(l.records) }

// Has reports whether k has submitted
func (l *Ledger) Has(k Key) bool {
	_, ok := l.records[k]
	return ok
}

// Get returns k's submission
func (l *Ledger) Get(k Key) (Record, bool) {
	r, ok := l.records[k]
	return r, ok
}

// Announced reports whether the day's winner has been announced
func (l *Ledger) Announced() bool { return l.announced }

// MarkAnnounced closes the day; repeated calls are no-ops
func (l *Ledger) MarkAnnounced() { l.announced = true }

// AddSubmission stores rec unless its participant already submitted. A
// stored record on a day not yet announced is checked against win
func (l *Ledger) AddSubmission(rec Record, win WinPredicate) Result {
	if l.Has(rec.Participant) {
		return AlreadyKnown
	}
	l.records[rec.Participant] = rec
	if !l.announced && win != nil && win(l) {
		return TriggersWin
	}
	return New
}

// Ranked returns the submissions best first: fewer attempts, then higher
// score, then earlier timestamp
func (l *Ledger) Ranked() []Record {
	out := make([]Record, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, r)
	}
	slices.SortFunc(out, compare)
	return out
}

func compare(a, b Record) int {
	if c := cmp.Compare(a.Attempts, b.Attempts); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.Participant, b.Participant)
}
