package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outputfield/web/handler"
)

func staticComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func dataStarRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]string{"email": "a@b.co"}).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"email":"a@b.co"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSON(nil, handler.WithJSONStatus(http.StatusCreated)).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", handler.NewHTTPError(http.StatusBadGateway, "Please enter valid email."), 502, `{"statusCode":502,"message":"Please enter valid email."}`},
		{"wrapped http error", errors.Join(errors.New("ctx"), handler.ErrNotFound), 404, `{"statusCode":404,"message":"Page not found"}`},
		{"plain error", errors.New("secret"), 500, `{"statusCode":500,"message":"An error occurred processing your request"}`},
		{"non error status", handler.NewHTTPError(http.StatusOK, "fine"), 500, `{"statusCode":500,"message":"An error occurred processing your request"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Templ(staticComponent("<p>hi</p>")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", rec.Body.String())
	})

	t.Run("html with status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplWithStatus(http.StatusNotFound, staticComponent("nope")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("datastar patches over sse", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.Templ(staticComponent("<div>ok</div>"), handler.WithTarget("#signup-result"), handler.WithPatchMode(handler.PatchInner))
		require.NoError(t, resp.Render(rec, dataStarRequest(http.MethodPost, "/")))

		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#signup-result")
		assert.Contains(t, body, "inner")
		assert.Contains(t, body, "<div>ok</div>")
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/rsvp").Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/rsvp", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.RedirectWithCode("/rsvp", http.StatusFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/rsvp").Render(rec, dataStarRequest(http.MethodGet, "/")))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, rec.Body.String(), "/rsvp")
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	assert.True(t, handler.IsDataStar(dataStarRequest(http.MethodGet, "/")))

	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(accept))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))
	assert.False(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/", nil)))

	post := httptest.NewRequest(http.MethodPost, "/?datastar=", strings.NewReader(`{}`))
	post.Header.Set("Content-Type", "application/json")
	assert.False(t, handler.IsDataStar(post))
}
