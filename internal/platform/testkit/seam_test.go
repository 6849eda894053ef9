package testkit

import (
	"testing"
	"time"
)

var (
	greet   = func() string { return "hello" }
	counter = 10
)

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &greet, func() string { return "bye" })
		Swap(t, &counter, 99)
		if greet() != "bye" || counter != 99 {
			t.Fatalf("swap did not take effect")
		}
	})
	if greet() != "hello" || counter != 10 {
		t.Fatalf("swap did not restore: %q %d", greet(), counter)
	}
}

func TestSerial(t *testing.T) {
	t.Run("a", func(t *testing.T) { Serial(t) })
	t.Run("b", func(t *testing.T) { Serial(t) })
}

func TestClock(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", c.Now(), start)
	}
	c.Advance(5 * time.Minute)
	if got := c.Now().Sub(start); got != 5*time.Minute {
		t.Fatalf("Advance moved %v, want 5m", got)
	}
}
