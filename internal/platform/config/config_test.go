package config

import (
	"testing"
	"time"

	kit "wordlebot/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	bot := New().Prefix("BOT_")
	if got := bot.key("TOKEN"); got != "BOT_TOKEN" {
		t.Fatalf("key() = %q, want %q", got, "BOT_TOKEN")
	}
	if got := bot.Prefix("HISTORY_").key("WINNER"); got != "BOT_HISTORY_WINNER" {
		t.Fatalf("nested key() = %q, want %q", got, "BOT_HISTORY_WINNER")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("BOT_")
	t.Setenv("BOT_TOKEN", "  abc ")
	if got := c.MustString("TOKEN"); got != "abc" {
		t.Fatalf("MustString = %q, want %q", got, "abc")
	}
	t.Setenv("BOT_BLANK", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("BLANK") })
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustIntBoolDuration(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_N", " 8 ")
	t.Setenv("M_B", "true")
	t.Setenv("M_D", "250ms")
	if got := c.MustInt("N"); got != 8 {
		t.Fatalf("MustInt = %d, want 8", got)
	}
	if !c.MustBool("B") {
		t.Fatalf("MustBool = false, want true")
	}
	if got := c.MustDuration("D"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v, want 250ms", got)
	}

	t.Setenv("M_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMustURL(t *testing.T) {
	c := New().Prefix("ANSWER_")
	t.Setenv("ANSWER_BASE_URL", "https://www.nytimes.com/svc/wordle/v2/")
	if u := c.MustURL("BASE_URL"); u.Host != "www.nytimes.com" {
		t.Fatalf("MustURL host = %q", u.Host)
	}
	t.Setenv("ANSWER_REL", "/relative")
	kit.MustPanic(t, func() { _ = c.MustURL("REL") })
}

func TestMayFallbacks(t *testing.T) {
	c := New().Prefix("MAY_")
	if got := c.MayString("MISS", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("MAY_INT", "x")
	if got := c.MayInt("INT", 3); got != 3 {
		t.Fatalf("MayInt bad = %d, want 3", got)
	}
	t.Setenv("MAY_BOOL", "nope")
	if got := c.MayBool("BOOL", true); !got {
		t.Fatalf("MayBool bad = false, want default true")
	}
	t.Setenv("MAY_DUR", "5m")
	if got := c.MayDuration("DUR", time.Second); got != 5*time.Minute {
		t.Fatalf("MayDuration = %v, want 5m", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("BOT_")
	t.Setenv("BOT_ADMINS", " 11, 22 , ,33 ,, ")
	got := c.MayCSV("ADMINS", nil)
	want := []string{"11", "22", "33"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("BOT_EMPTY", " , ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all blank = %#v", got)
	}
}

func TestMayClock(t *testing.T) {
	c := New().Prefix("BOT_")
	def := 23*time.Hour + 59*time.Minute
	if got := c.MayClock("POLL_AT", def); got != def {
		t.Fatalf("MayClock default = %v", got)
	}
	t.Setenv("BOT_POLL_AT", "23:59:00")
	if got := c.MayClock("POLL_AT", 0); got != def {
		t.Fatalf("MayClock = %v, want %v", got, def)
	}
	t.Setenv("BOT_POLL_AT", "07:30")
	if got := c.MayClock("POLL_AT", 0); got != 7*time.Hour+30*time.Minute {
		t.Fatalf("MayClock short = %v", got)
	}
	t.Setenv("BOT_POLL_AT", "late")
	if got := c.MayClock("POLL_AT", def); got != def {
		t.Fatalf("MayClock bad = %v, want default", got)
	}
}

func TestMayLocation(t *testing.T) {
	c := New().Prefix("BOT_")
	if got := c.MayLocation("TIMEZONE"); got != time.Local {
		t.Fatalf("MayLocation default = %v, want Local", got)
	}
	t.Setenv("BOT_TIMEZONE", "UTC")
	if got := c.MayLocation("TIMEZONE"); got.String() != "UTC" {
		t.Fatalf("MayLocation = %v, want UTC", got)
	}
	t.Setenv("BOT_TIMEZONE", "Nowhere/Special")
	if got := c.MayLocation("TIMEZONE"); got != time.Local {
		t.Fatalf("MayLocation bad = %v, want Local", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_FMT", "Console")
	if got := c.MayEnum("FMT", "json", "json", "console"); got != "Console" {
		t.Fatalf("MayEnum = %q, want Console", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "console") })
}
