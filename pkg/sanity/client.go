package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxBodySize = 1 << 20

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// MutationResult is the mutate endpoint answer.
type MutationResult struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// DocumentIDs lists the ids of the mutated documents.
func (r MutationResult) DocumentIDs() []string {
	ids := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		ids = append(ids, res.ID)
	}
	return ids
}

type mutation struct {
	Create any `json:"create"`
}

type mutationRequest struct {
	Mutations []mutation `json:"mutations"`
}

// Client writes to one dataset.
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

// WithBaseURL replaces https://<projectId>.api.sanity.io.
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
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2021-06-07"
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		baseURL: fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) endpoint(parts ...string) (string, error) {
	version := "v" + strings.TrimPrefix(c.cfg.APIVersion, "v")
	return url.JoinPath(c.baseURL, append([]string{version}, parts...)...)
}

// Create stores doc as a new document. doc must carry a _type and no _id.
func (c *Client) Create(ctx context.Context, doc any) (MutationResult, error) {
	var result MutationResult

	body, err := json.Marshal(mutationRequest{Mutations: []mutation{{Create: doc}}})
	if err != nil {
		return result, err
	}

	endpoint, err := c.endpoint("data", "mutate", c.cfg.Dataset)
	if err != nil {
		return result, err
	}
	endpoint += "?returnIds=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return result, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, &result); err != nil {
		return MutationResult{}, err
	}
	return result, nil
}

// Ping lists the project datasets, which requires a valid token.
func (c *Client) Ping(ctx context.Context) error {
	endpoint, err := c.endpoint("datasets")
	if err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	if err := c.do(req, nil); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errors.Join(ErrInvalidResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(ErrInvalidResponse, err)
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	var body struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)

	desc := body.Error.Description
	if desc == "" {
		desc = body.Message
	}
	return &APIError{StatusCode: status, Description: desc}
}
