package signup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/outputfield/web/modules/signup"
	"github.com/outputfield/web/pkg/sanity"
)

func TestDocumentShape(t *testing.T) {
	t.Parallel()

	doc := signup.NewDocument("user@example.com")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_type":"signupform","data":{"email":"user@example.com"}}`, string(raw))

	b, err := bson.Marshal(doc)
	require.NoError(t, err)
	var m bson.M
	require.NoError(t, bson.Unmarshal(b, &m))
	assert.Equal(t, "signupform", m["_type"])
	data, ok := m["data"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", data["email"])
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := signup.NewMemoryStore()
	require.NoError(t, store.Create(context.Background(), signup.NewDocument("a@b.co")))
	require.NoError(t, store.Create(context.Background(), signup.NewDocument("c@d.co")))

	docs := store.Documents()
	require.Len(t, docs, 2)
	assert.Equal(t, "a@b.co", docs[0].Data.Email)

	docs[0].Data.Email = "mutated"
	assert.Equal(t, "a@b.co", store.Documents()[0].Data.Email)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Create(ctx, signup.NewDocument("x@y.co")), context.Canceled)
}

func TestSanityStore(t *testing.T) {
	t.Parallel()

	var got json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		var body struct {
			Mutations []struct {
				Create json.RawMessage `json:"create"`
			} `json:"mutations"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if assert.Len(t, body.Mutations, 1) {
			got = body.Mutations[0].Create
		}
		_, _ = w.Write([]byte(`{"transactionId":"tx","results":[{"id":"d1","operation":"create"}]}`))
	}))
	defer srv.Close()

	client := sanity.New(sanity.Config{ProjectID: "p", Token: "t"}, sanity.WithBaseURL(srv.URL))
	store := signup.NewSanityStore(client)

	require.NoError(t, store.Create(context.Background(), signup.NewDocument("user@example.com")))
	assert.JSONEq(t, `{"_type":"signupform","data":{"email":"user@example.com"}}`, string(got))
	assert.NoError(t, store.Healthcheck(context.Background()))
}

func TestSanityStoreError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := sanity.New(sanity.Config{ProjectID: "p", Token: "t"}, sanity.WithBaseURL(srv.URL))
	err := signup.NewSanityStore(client).Create(context.Background(), signup.NewDocument("user@example.com"))

	var apiErr *sanity.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
