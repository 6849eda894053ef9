package answers

import (
	"testing"
	"time"
)

func TestFeedAndLookup(t *testing.T) {
	x := New()
	if !x.Feed("Wordle 681 winner is Jonathan! Who scored 2/6 (97).\nToday's answer was RANGE\n2 - Zefiren: 84 points") {
		t.Fatalf("announcement with answer not indexed")
	}
	if x.Feed("Wordle 682 winner is Ann! Who scored 2/6 (97).") {
		t.Fatalf("announcement without answer indexed")
	}
	if x.Feed("lol") {
		t.Fatalf("chat indexed")
	}

	got, ok := x.Lookup("range")
	if !ok || !got.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Lookup(range) = %v, %v", got, ok)
	}
	if _, ok := x.Lookup("CRANE"); ok {
		t.Fatalf("Lookup(CRANE) should miss")
	}
	if x.Len() != 1 {
		t.Fatalf("Len = %d", x.Len())
	}
}

func TestLastSeenWins(t *testing.T) {
	x := New()
	x.Add(100, "crane")
	x.Add(900, "CRANE")
	x.Add(50, "CRANE")
	if d, _ := x.LookupDay("Crane"); d != 50 {
		t.Fatalf("LookupDay = %d, want last fed 50", d)
	}
	if x.Add(10, "toolong") {
		t.Fatalf("Add accepted a six letter word")
	}
}
