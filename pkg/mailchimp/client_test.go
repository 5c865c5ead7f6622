package mailchimp_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outputfield/web/pkg/mailchimp"
)

var testConfig = mailchimp.Config{
	APIKey:     "secret-us6",
	ListID:     "list123",
	Datacenter: "us6",
}

func TestNewRequest(t *testing.T) {
	t.Parallel()

	client := mailchimp.New(testConfig)
	req, err := client.NewRequest(context.Background(), "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://us6.api.mailchimp.com/3.0/lists/list123/members", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "anystring", user)
	assert.Equal(t, "secret-us6", pass)

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email_address":"user@example.com","status":"subscribed"}`, string(body))
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			assert.Equal(t, "/3.0/lists/list123/members", r.URL.Path)
			var m mailchimp.Member
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
			assert.Equal(t, "user@example.com", m.EmailAddress)
			assert.Equal(t, "subscribed", m.Status)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"abc","status":"subscribed"}`))
		}))
		defer srv.Close()

		client := mailchimp.New(testConfig, mailchimp.WithBaseURL(srv.URL+"/3.0"))
		require.NoError(t, client.Subscribe(context.Background(), "user@example.com"))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("problem json", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":400,"title":"Member Exists","detail":"user@example.com is already a list member."}`))
		}))
		defer srv.Close()

		err := mailchimp.New(testConfig, mailchimp.WithBaseURL(srv.URL)).Subscribe(context.Background(), "user@example.com")
		var apiErr *mailchimp.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus())
		assert.Equal(t, "Member Exists", apiErr.Title)
		assert.Contains(t, apiErr.Detail, "already a list member")
	})

	t.Run("status without body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		err := mailchimp.New(testConfig, mailchimp.WithBaseURL(srv.URL)).Subscribe(context.Background(), "user@example.com")
		var apiErr *mailchimp.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusForbidden, apiErr.HTTPStatus())
		assert.Equal(t, "mailchimp: status 403", apiErr.Error())
	})

	t.Run("body status never overrides transport status", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"status":400,"title":"confused"}`))
		}))
		defer srv.Close()

		err := mailchimp.New(testConfig, mailchimp.WithBaseURL(srv.URL)).Subscribe(context.Background(), "user@example.com")
		var apiErr *mailchimp.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.HTTPStatus())
	})

	t.Run("timeout is a request failure", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		client := mailchimp.New(testConfig,
			mailchimp.WithBaseURL(srv.URL),
			mailchimp.WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}),
		)
		err := client.Subscribe(context.Background(), "user@example.com")
		assert.ErrorIs(t, err, mailchimp.ErrRequestFailed)

		var apiErr *mailchimp.APIError
		assert.False(t, errors.As(err, &apiErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := mailchimp.New(testConfig, mailchimp.WithBaseURL("http://127.0.0.1:1")).Subscribe(ctx, "user@example.com")
		assert.ErrorIs(t, err, mailchimp.ErrRequestFailed)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
