package mailchimp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	memberStatusSubscribed = "subscribed"
	maxErrorBodySize       = 64 << 10
)

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Member is the body of a members POST.
type Member struct {
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}

// Client talks to one audience.
type Client struct {
	cfg     Config
	http    HTTPDoer
	baseURL string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the timeout-bound default client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithBaseURL points the client at another API root, such as a test server.
// The root replaces https://<dc>.api.mailchimp.com/3.0.
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		if u != "" {
			cl.baseURL = u
		}
	}
}

// New builds a client for cfg.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		baseURL: fmt.Sprintf("https://%s.api.mailchimp.com/3.0", cfg.Datacenter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewRequest builds the members POST for email.
func (c *Client) NewRequest(ctx context.Context, email string) (*http.Request, error) {
	body, err := json.Marshal(Member{EmailAddress: email, Status: memberStatusSubscribed})
	if err != nil {
		return nil, err
	}

	endpoint, err := url.JoinPath(c.baseURL, "lists", c.cfg.ListID, "members")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+basicCredentials(c.cfg.APIKey))
	return req, nil
}

// Subscribe adds email to the audience with status "subscribed".
func (c *Client) Subscribe(ctx context.Context, email string) error {
	req, err := c.NewRequest(ctx, email)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeAPIError(resp)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		apiErr.StatusCode = resp.StatusCode
		return errors.Join(apiErr, ErrInvalidResponse, err)
	}
	// problem-JSON is optional, a plain body still yields the status
	_ = json.Unmarshal(raw, apiErr)
	apiErr.StatusCode = resp.StatusCode
	return apiErr
}

func basicCredentials(apiKey string) string {
	return base64.StdEncoding.EncodeToString([]byte("anystring:" + apiKey))
}
