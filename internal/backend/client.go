// Package backend talks to the optional hosted service: anonymous
// identity, leaderboard submission and rank queries, and cloud save
// sync. The service is never required for gameplay; every failure here
// degrades to ErrUnavailable and callers log and move on.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/samdwyer/monsterslayer/internal/save"
)

// ErrUnavailable wraps every backend failure so callers can treat the
// whole feature as off with a single errors.Is check.
var ErrUnavailable = errors.New("backend: service unavailable")

// DeviceKey is the storage key holding the anonymous device identity.
const DeviceKey = "monster_slayer_device"

const defaultTimeout = 5 * time.Second

// Client is the backend HTTP client. A Client built without a base URL
// is disabled: every call reports ErrUnavailable without touching the
// network.
type Client struct {
	baseURL    string
	httpClient *http.Client
	deviceID   string
	maxElapsed time.Duration
}

// NewClient creates a client for the given base URL. The anonymous
// device id is loaded from the store, or minted and persisted on first
// run; if the store cannot hold it, a session-scoped id is used instead.
func NewClient(baseURL string, store save.Store) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxElapsed: 15 * time.Second,
	}

	if raw, err := store.Get(DeviceKey); err == nil && len(raw) > 0 {
		c.deviceID = string(raw)
	} else {
		c.deviceID = uuid.NewString()
		// Best effort; an ephemeral id still works for this session.
		_ = store.Set(DeviceKey, []byte(c.deviceID))
	}
	return c
}

// Enabled reports whether a backend is configured at all.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// DeviceID returns the anonymous identity used for submissions.
func (c *Client) DeviceID() string {
	if c == nil {
		return ""
	}
	return c.deviceID
}

// Available checks the service health endpoint. It is the gate callers
// consult before offering online features.
func (c *Client) Available(ctx context.Context) bool {
	if !c.Enabled() {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// SubmitScore posts a score for the given mode's leaderboard, retrying
// transient failures with exponential backoff.
func (c *Client) SubmitScore(ctx context.Context, mode string, score int) error {
	if !c.Enabled() {
		return ErrUnavailable
	}

	body, err := json.Marshal(map[string]any{
		"device": c.deviceID,
		"mode":   mode,
		"score":  score,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	_, err = c.retry(ctx, func() ([]byte, error) {
		return c.do(ctx, http.MethodPost, "/scores", body)
	})
	if err != nil {
		return fmt.Errorf("%w: submit score: %v", ErrUnavailable, err)
	}
	return nil
}

// Rank returns this device's rank on the given mode's leaderboard.
func (c *Client) Rank(ctx context.Context, mode string) (int, error) {
	if !c.Enabled() {
		return 0, ErrUnavailable
	}

	raw, err := c.retry(ctx, func() ([]byte, error) {
		return c.do(ctx, http.MethodGet, "/scores/"+mode+"/rank?device="+c.deviceID, nil)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: rank query: %v", ErrUnavailable, err)
	}

	var result struct {
		Rank int `json:"rank"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return 0, fmt.Errorf("%w: malformed rank response: %v", ErrUnavailable, err)
	}
	return result.Rank, nil
}

// SyncSave uploads an exported save payload for this device.
func (c *Client) SyncSave(ctx context.Context, payload []byte) error {
	if !c.Enabled() {
		return ErrUnavailable
	}

	_, err := c.retry(ctx, func() ([]byte, error) {
		return c.do(ctx, http.MethodPut, "/saves/"+c.deviceID, payload)
	})
	if err != nil {
		return fmt.Errorf("%w: save sync: %v", ErrUnavailable, err)
	}
	return nil
}

// FetchSave downloads the cloud copy of this device's save, if any.
func (c *Client) FetchSave(ctx context.Context) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrUnavailable
	}

	raw, err := c.retry(ctx, func() ([]byte, error) {
		return c.do(ctx, http.MethodGet, "/saves/"+c.deviceID, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: save fetch: %v", ErrUnavailable, err)
	}
	return raw, nil
}

// retry wraps an operation in capped exponential backoff. Client errors
// (4xx) are permanent; everything else is worth another try.
func (c *Client) retry(ctx context.Context, op func() ([]byte, error)) ([]byte, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(c.maxElapsed),
	)
}

// do performs one HTTP exchange and classifies the outcome for retry.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
}
