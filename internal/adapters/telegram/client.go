// Package telegram provides a resilient client and poller for the Bot API
package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perr "quipbot/internal/platform/errors"
	"quipbot/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.telegram.org"
	defaultTimeout   = 40 * time.Second // must exceed the long poll window
	defaultMaxRetry  = 5
	defaultRetryBase = 500 * time.Millisecond
	defaultPollSecs  = 30
)

// Options configures the Client
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration

	// PollSecs is the getUpdates long poll window in seconds
	PollSecs int
}

// Client is a minimal Bot API client with retries and rate limit handling
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.PollSecs <= 0 {
		o.PollSecs = defaultPollSecs
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("telegram"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// apiResponse is the Bot API envelope
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// call posts a Bot API method with retries and returns the result payload
// the token only ever appears in the request URL, never in logs
func (c *Client) call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	endpoint := c.opts.BaseURL + "/bot" + c.opts.Token + "/" + method
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "telegram new request failed")
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "telegram %s failed", method)
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Str("method", method).
				Msg("telegram transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, perr.Wrapf(readErr, perr.ErrorCodeUnavailable, "telegram %s read failed", method)
		}

		c.log.Debug().
			Str("method", method).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("telegram http response")

		switch {
		case resp.StatusCode == http.StatusOK:
			var env apiResponse
			if err := json.Unmarshal(body, &env); err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "telegram %s bad envelope", method)
			}
			if !env.OK {
				return nil, perr.Newf(perr.ErrorCodeUnknown, "telegram %s: %s", method, env.Description)
			}
			return env.Result, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			wait := c.backoff(attempts)
			var env apiResponse
			if json.Unmarshal(body, &env) == nil && env.Parameters != nil && env.Parameters.RetryAfter > 0 {
				wait = time.Duration(env.Parameters.RetryAfter) * time.Second
			}
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "telegram rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Str("method", method).Msg("telegram rate limited backing off")
			c.sleep(wait)
			attempts++
			continue

		case resp.StatusCode >= 500:
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "telegram transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Str("method", method).
				Msg("telegram transient error retrying")
			c.sleep(back)
			attempts++
			continue

		default:
			return nil, perr.Newf(perr.ErrorCodeUnknown,
				"telegram %s unexpected status %d body %s", method, resp.StatusCode, truncate(body, 512))
		}
	}
}

// GetUpdates long polls for updates with ids >= offset
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	params := url.Values{}
	if offset > 0 {
		params.Set("offset", strconv.FormatInt(offset, 10))
	}
	params.Set("timeout", strconv.Itoa(c.opts.PollSecs))

	raw, err := c.call(ctx, "getUpdates", params)
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "telegram getUpdates bad result")
	}
	return updates, nil
}

// SendMessage posts text to a chat
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(chatID, 10))
	params.Set("text", text)
	_, err := c.call(ctx, "sendMessage", params)
	return err
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
