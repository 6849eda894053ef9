package module

import (
	"time"

	"wordlebot/internal/platform/config"
)

// Options controls the bot service
type Options struct {
	TestMode        bool
	GuildID         string
	WordleChannel   string
	WinnerChannel   string
	SelfID          string
	RequiredUsers   []string
	Admins          []string
	PollAt          time.Duration
	RoundupCooldown time.Duration
	RoundupLimit    int
	HistoryWinner   int
	HistoryWordle   int
	RosterFile      string
	Location        *time.Location
}

// FromConfig reads with BOT_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("BOT_")
	return Options{
		TestMode:        c.MayBool("TEST_MODE", true),
		GuildID:         c.MayString("GUILD_ID", ""),
		WordleChannel:   c.MayString("WORDLE_CHANNEL", ""),
		WinnerChannel:   c.MayString("WINNER_CHANNEL", ""),
		SelfID:          c.MayString("SELF_ID", ""),
		RequiredUsers:   c.MayCSV("REQUIRED_USERS", nil),
		Admins:          c.MayCSV("ADMINS", nil),
		PollAt:          c.MayClock("POLL_AT", 23*time.Hour+59*time.Minute),
		RoundupCooldown: c.MayDuration("ROUNDUP_COOLDOWN", 5*time.Minute),
		RoundupLimit:    c.MayInt("ROUNDUP_LIMIT", 1000),
		HistoryWinner:   c.MayInt("HISTORY_WINNER", 100),
		HistoryWordle:   c.MayInt("HISTORY_WORDLE", 250),
		RosterFile:      c.MayString("ROSTER_FILE", ""),
		Location:        c.MayLocation("TIMEZONE"),
	}
}
