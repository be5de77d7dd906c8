package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrUnavailable       = errors.New("classifier service unavailable")
	ErrUnexpectedStatus  = errors.New("classifier returned unexpected status")
	ErrMalformedResponse = errors.New("classifier returned malformed response")
)

type predictRequest struct {
	Link string `json:"link"`
}

// predictResponse mirrors POST /predict. IsFraud is a pointer so a missing
// field is distinguishable from false.
type predictResponse struct {
	IsFraud *bool `json:"isFraud"`
}

// RemoteClient calls the ML prediction service over HTTP.
type RemoteClient struct {
	predictURL string
	healthURL  string
	httpClient *http.Client
}

// NewRemoteClient builds a client for predictURL. Every call is bounded by
// timeout regardless of the caller's context.
func NewRemoteClient(predictURL string, timeout time.Duration) (*RemoteClient, error) {
	u, err := url.Parse(predictURL)
	if err != nil {
		return nil, fmt.Errorf("parse classifier url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("classifier url %q must be absolute", predictURL)
	}

	return &RemoteClient{
		predictURL: u.String(),
		healthURL:  u.ResolveReference(&url.URL{Path: "health"}).String(),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Predict returns the service's verdict for link. Transport failures wrap
// ErrUnavailable, non-200 responses ErrUnexpectedStatus and anything that does
// not decode to a boolean isFraud ErrMalformedResponse.
func (c *RemoteClient) Predict(ctx context.Context, link string) (bool, error) {
	body, err := json.Marshal(predictRequest{Link: link})
	if err != nil {
		return false, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if out.IsFraud == nil {
		return false, fmt.Errorf("%w: missing isFraud", ErrMalformedResponse)
	}

	return *out.IsFraud, nil
}

// Health reports whether the service answers HTTP at all. The prediction
// service does not expose a health route, so any response counts.
func (c *RemoteClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}

// FailureReason buckets a Predict error into a metric label.
func FailureReason(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		return "unavailable"
	}
}
