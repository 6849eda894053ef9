package nyt

import "wordlebot/internal/platform/config"

// FromConfig reads with ANSWER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("ANSWER_")
	return Options{
		BaseURL:    c.MayString("BASE_URL", baseURLDefault),
		UserAgent:  c.MayString("USER_AGENT", defaultUA),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		MaxRetries: c.MayInt("MAX_RETRIES", defaultMaxRetry),
		RetryBase:  c.MayDuration("RETRY_BASE", defaultRetryBase),
	}
}
