package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/AkshatTyagi05/potato-league/internal/domain"
)

const (
	defaultBase    = "https://api.tracker.gg"
	defaultTimeout = 10 * time.Second
	profilePath    = "/api/v2/rocket-league/standard/profile/%s/%s"
)

type Client struct {
	apiKey  string
	http    *http.Client
	baseURL string
	pick    func(n int) int
	log     *slog.Logger
}

func New(apiKey string, opts ...Option) *Client {
	h := cleanhttp.DefaultPooledClient()
	h.Timeout = defaultTimeout
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		http:    h,
		baseURL: defaultBase,
		pick:    rand.IntN,
		log:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON: un solo intento. Clasifica el status en los errores de domain.
func (c *Client) doJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("tracker request: %w", err)
	}
	preset := choosePreset(c.pick)
	preset.apply(req.Header)
	if c.apiKey != "" {
		req.Header.Set("TRN-Api-Key", c.apiKey)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("tracker request failed", "path", path, "preset", preset.Name, "error", err)
		return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer res.Body.Close()
	c.log.Debug("tracker response", "path", path, "status", res.StatusCode, "preset", preset.Name, "dur", time.Since(start))

	if err := classify(res); err != nil {
		return err
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
		}
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

func classify(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return domain.ErrAuthRejected
	case http.StatusForbidden:
		return domain.ErrBlocked
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
	return &domain.UnexpectedStatusError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
}
