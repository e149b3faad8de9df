package tracker

import (
	"log/slog"
	"net/http"
	"time"
)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout cambia el límite por request (default 10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHeaderPicker inyecta la fuente de aleatoriedad para elegir el preset de headers.
func WithHeaderPicker(pick func(n int) int) Option {
	return func(c *Client) {
		if pick != nil {
			c.pick = pick
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}
