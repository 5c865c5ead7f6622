package signup_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outputfield/web/modules/signup"
	"github.com/outputfield/web/pkg/logger"
	"github.com/outputfield/web/pkg/mailchimp"
)

type callLog struct {
	calls []string
}

type fakeSubscriber struct {
	log    *callLog
	err    error
	emails []string
}

func (f *fakeSubscriber) Subscribe(_ context.Context, email string) error {
	f.log.calls = append(f.log.calls, "subscribe")
	f.emails = append(f.emails, email)
	return f.err
}

type fakeStore struct {
	log  *callLog
	err  error
	docs []signup.Document
}

func (f *fakeStore) Create(_ context.Context, doc signup.Document) error {
	f.log.calls = append(f.log.calls, "store")
	f.docs = append(f.docs, doc)
	return f.err
}

type fixture struct {
	log        *callLog
	subscriber *fakeSubscriber
	store      *fakeStore
	handler    http.Handler
}

func newFixture(subscribeErr, storeErr error) *fixture {
	log := &callLog{}
	sub := &fakeSubscriber{log: log, err: subscribeErr}
	store := &fakeStore{log: log, err: storeErr}
	return &fixture{
		log:        log,
		subscriber: sub,
		store:      store,
		handler:    signup.NewService(sub, store).Handle(),
	}
}

func (f *fixture) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	assert.Equal(t, code, rec.Code)
	var body struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.StatusCode)
	assert.Equal(t, message, body.Message)
}

func TestSignupSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, nil)
	rec := f.post(t, `{"email":"USER@Example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"user@example.com"}`, rec.Body.String())
	assert.Equal(t, []string{"subscribe", "store"}, f.log.calls)
	assert.Equal(t, []string{"user@example.com"}, f.subscriber.emails)
	require.Len(t, f.store.docs, 1)
	assert.Equal(t, signup.NewDocument("user@example.com"), f.store.docs[0])
}

func TestSignupRejectsBeforeSideEffects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"missing email", `{}`, 501, "Missing email."},
		{"null email", `{"email":null}`, 501, "Missing email."},
		{"number email", `{"email":42}`, 501, "Missing email."},
		{"object email", `{"email":{"a":1}}`, 501, "Missing email."},
		{"empty email", `{"email":""}`, 501, "Missing email."},
		{"malformed body", `{"email":`, 501, "Missing email."},
		{"not an email", `{"email":"not-an-email"}`, 502, "Please enter valid email."},
		{"too short", `{"email":"a@b.c"}`, 502, "Please enter valid email."},
		{"whitespace", `{"email":" "}`, 502, "Please enter valid email."},
		{"long s", `{"email":"ro\u017fe@example.com"}`, 502, "Please enter valid email."},
		{"kelvin sign", "{\"email\":\"\u212Aate@example.com\"}", 502, "Please enter valid email."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(nil, nil)
			rec := f.post(t, tt.body)
			assertError(t, rec, tt.code, tt.message)
			assert.Empty(t, f.log.calls)
		})
	}
}

func TestSignupWithoutContentType(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`email=a@b.co`))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assertError(t, rec, 501, "Missing email.")
	assert.Empty(t, f.log.calls)
}

func TestSignupDataStarQueryOnPost(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/?datastar=", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assertError(t, rec, 502, "Please enter valid email.")
}

func TestSignupLogsRejectedInput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sub := &fakeSubscriber{log: &callLog{}}
	h := signup.NewService(sub, &fakeStore{log: sub.log},
		signup.WithLogger(logger.New(logger.WithOutput(buf))),
	).Handle()

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assertError(t, post(`{"email":"not-an-email"}`), 502, "Please enter valid email.")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "signup input rejected", entry["msg"])
	assert.EqualValues(t, 502, entry["status_code"])
	assert.Equal(t, false, entry["is_datastar"])

	buf.Reset()
	assert.Equal(t, http.StatusOK, post(`{"email":"user@example.com"}`).Code)
	assert.NotContains(t, buf.String(), "signup input rejected")
}

func TestSignupIgnoresExtraFields(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, nil)
	rec := f.post(t, `{"email":"user@example.com","source":"rsvp"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignupProviderFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"already subscribed", &mailchimp.APIError{StatusCode: 400, Title: "Member Exists"}, 400, "Email is already used."},
		{"bad credentials", &mailchimp.APIError{StatusCode: 403}, 403, "Internal auth issue"},
		{"unauthorized maps to generic", &mailchimp.APIError{StatusCode: 401}, 500, "Failed to subscribe."},
		{"provider outage", &mailchimp.APIError{StatusCode: 503}, 500, "Failed to subscribe."},
		{"transport failure", errors.Join(mailchimp.ErrRequestFailed, context.DeadlineExceeded), 500, "Failed to subscribe."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(tt.err, nil)
			rec := f.post(t, `{"email":"user@example.com"}`)
			assertError(t, rec, tt.code, tt.message)
			assert.Equal(t, []string{"subscribe"}, f.log.calls, "store must not be written")
			assert.NotContains(t, rec.Body.String(), "Member Exists")
		})
	}
}

func TestSignupStoreFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, errors.New("dataset unavailable"))
	rec := f.post(t, `{"email":"user@example.com"}`)

	assertError(t, rec, 500, "Failed to subscribe.")
	assert.Equal(t, []string{"subscribe", "store"}, f.log.calls)
	assert.NotContains(t, rec.Body.String(), "dataset")
}

func TestSignupStoreFailureWithStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, &mailchimp.APIError{StatusCode: 400})
	rec := f.post(t, `{"email":"user@example.com"}`)
	assertError(t, rec, 500, "Failed to subscribe.")
}

func TestSignupMethodNotAllowed(t *testing.T) {
	t.Parallel()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		f := newFixture(nil, nil)
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))

		assertError(t, rec, 405, "Only accepts POSTs with body of { email: string }")
		assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
		assert.Empty(t, f.log.calls)
	}
}

func TestSignupDataStar(t *testing.T) {
	t.Parallel()

	send := func(h http.Handler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("success fragment", func(t *testing.T) {
		t.Parallel()
		f := newFixture(nil, nil)
		rec := send(f.handler, `{"email":"User@Example.com"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#signup-result")
		assert.Contains(t, body, "signup-result--success")
		assert.Equal(t, []string{"subscribe", "store"}, f.log.calls)
		assert.Equal(t, []string{"user@example.com"}, f.subscriber.emails)
	})

	t.Run("outcome message fragment", func(t *testing.T) {
		t.Parallel()
		f := newFixture(&mailchimp.APIError{StatusCode: 400}, nil)
		body := send(f.handler, `{"email":"user@example.com"}`).Body.String()
		assert.Contains(t, body, "Email is already used.")
		assert.Contains(t, body, "signup-result--error")
	})

	t.Run("malformed signals", func(t *testing.T) {
		t.Parallel()
		f := newFixture(nil, nil)
		body := send(f.handler, `{"email":`).Body.String()
		assert.Contains(t, body, "Missing email.")
		assert.Empty(t, f.log.calls)
	})
}

func TestSignupDirect(t *testing.T) {
	t.Parallel()

	f := newFixture(nil, nil)
	svc := signup.NewService(f.subscriber, f.store)

	resp, err := svc.Signup(context.Background(), "A@B.co")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", resp.Email)

	_, err = svc.Signup(context.Background(), nil)
	assert.Equal(t, signup.ErrMissingEmail, err)

	_, err = svc.Signup(context.Background(), "nope")
	assert.Equal(t, signup.ErrInvalidEmail, err)
}
