// Package nyt fetches the answer of a puzzle day from the New York Times
// Wordle feed
package nyt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"wordlebot/internal/core/wordle"
	perr "wordlebot/internal/platform/errors"
	"wordlebot/internal/platform/logger"
)

const (
	baseURLDefault   = "https://www.nytimes.com/svc/wordle/v2/"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "wordlebot"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	maxBackoff       = 10 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// Client resolves answers and caches every hit; answers never change
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(context.Context, time.Duration) error

	mu    sync.Mutex
	cache map[wordle.Day]string
}

// puzzle is the subset of the feed we read
type puzzle struct {
	Solution  string `json:"solution"`
	PrintDate string `json:"print_date"`
	DaysSince int    `json:"days_since_launch"`
}

// NewClient fills in defaults for zero-valued options
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if !strings.HasSuffix(o.BaseURL, "/") {
		o.BaseURL += "/"
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("nyt"),
		sleep: sleepCtx,
		cache: make(map[wordle.Day]string),
	}
}

// Answer returns the uppercase answer for day. A day the feed does not know
// is a NotFound error
func (c *Client) Answer(ctx context.Context, day wordle.Day) (string, error) {
	c.mu.Lock()
	if w, ok := c.cache[day]; ok {
		c.mu.Unlock()
		return w, nil
	}
	c.mu.Unlock()

	resp, err := c.get(ctx, c.opts.BaseURL+day.ISODate()+".json")
	if err != nil {
		return "", perr.WithOp(err, "nyt.answer")
	}
	defer resp.Body.Close()

	var p puzzle
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&p); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "decode answer for day %d", day)
	}
	w := strings.ToUpper(strings.TrimSpace(p.Solution))
	if len(w) != 5 {
		return "", perr.NotFoundf("no answer for day %d", day)
	}

	c.mu.Lock()
	c.cache[day] = w
	c.mu.Unlock()
	return w, nil
}

// get issues a GET, retrying transport errors, 429 and 5xx with exponential backoff
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "nyt new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil || attempt >= c.opts.MaxRetries {
				return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "nyt request failed")
			}
			if err := c.backoff(ctx, attempt, "transport error"); err != nil {
				return nil, err
			}
			continue
		}

		c.log.Debug().Str("url", url).Int("status", resp.StatusCode).Int("attempt", attempt).Msg("nyt http response")

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusNotFound:
			drainAndClose(resp.Body)
			return nil, perr.NotFoundf("nyt has no puzzle at %s", url)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			drainAndClose(resp.Body)
			if attempt >= c.opts.MaxRetries {
				if resp.StatusCode == http.StatusTooManyRequests {
					return nil, perr.TooManyf("nyt rate limited")
				}
				return nil, perr.Unavailablef("nyt status %d", resp.StatusCode)
			}
			if err := c.backoff(ctx, attempt, "transient status"); err != nil {
				return nil, err
			}
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "nyt unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) backoff(ctx context.Context, attempt int, why string) error {
	d := min(c.opts.RetryBase<<uint(attempt), maxBackoff)
	c.log.Warn().Dur("retry_in", d).Int("attempt", attempt).Msg("nyt " + why + "; retrying")
	if err := c.sleep(ctx, d); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "nyt retry cancelled")
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drainAndClose(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 4<<10))
	_ = rc.Close()
}
