package omdb_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omdb_smoke_testing/internal/mockserver"
	"omdb_smoke_testing/internal/model"
	"omdb_smoke_testing/internal/omdb"
)

const testKey = "k3y-123"

func newClient(t *testing.T, url string, timeout time.Duration) *omdb.Client {
	t.Helper()
	c, err := omdb.NewClient(url, testKey, timeout, slog.Default())
	require.NoError(t, err)
	return c
}

func TestExecuteAddsAPIKeyWithoutMutatingParams(t *testing.T) {
	var gotKey, gotTerm string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		gotTerm = r.URL.Query().Get("s")
		w.Write([]byte(`{"Response":"True","Search":[]}`))
	}))
	defer srv.Close()

	params := model.Params{"s": "Matrix"}
	env, err := newClient(t, srv.URL, time.Second).Execute(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, testKey, gotKey)
	assert.Equal(t, "Matrix", gotTerm)
	assert.Equal(t, model.Params{"s": "Matrix"}, params)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, model.Found, env.Body.Kind)
}

func TestExecuteAgainstMockServer(t *testing.T) {
	srv := httptest.NewServer(mockserver.New(mockserver.Options{APIKey: testKey}))
	defer srv.Close()
	c := newClient(t, srv.URL+"/", 5*time.Second)

	env, err := c.Execute(context.Background(), model.Params{"i": "tt0133093"})
	require.NoError(t, err)
	assert.Equal(t, model.Found, env.Body.Kind)
	assert.Equal(t, "The Matrix", env.Body.Title)
	assert.Equal(t, "1999", env.Body.Year)

	env, err = c.Execute(context.Background(), model.Params{"s": "ThisMovieDoesNotExist123456"})
	require.NoError(t, err)
	assert.Equal(t, model.NotFound, env.Body.Kind)
	assert.Equal(t, "Movie not found!", env.Body.Error)
}

func TestExecuteNonOKStatusIsStillEnvelope(t *testing.T) {
	srv := httptest.NewServer(mockserver.New(mockserver.Options{APIKey: "other"}))
	defer srv.Close()

	env, err := newClient(t, srv.URL, time.Second).Execute(context.Background(), model.Params{"s": "test"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
	assert.Equal(t, model.NotFound, env.Body.Kind)
}

func TestExecuteResponseTimeRounded(t *testing.T) {
	srv := httptest.NewServer(mockserver.New(mockserver.Options{Latency: 15 * time.Millisecond}))
	defer srv.Close()

	env, err := newClient(t, srv.URL, time.Second).Execute(context.Background(), model.Params{"s": "test"})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, env.ResponseTimeMs, 15.0)
	scaled := env.ResponseTimeMs * 100
	assert.InDelta(t, float64(int64(scaled+0.5)), scaled, 1e-6)
}

func TestExecuteTransportErrors(t *testing.T) {
	slow := httptest.NewServer(mockserver.New(mockserver.Options{Latency: 500 * time.Millisecond}))
	defer slow.Close()

	html := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer html.Close()

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name    string
		url     string
		timeout time.Duration
		wantOp  string
	}{
		{"timeout", slow.URL, 50 * time.Millisecond, "send request"},
		{"connection refused", closedURL, time.Second, "send request"},
		{"non-json body", html.URL, time.Second, "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := newClient(t, tt.url, tt.timeout).Execute(context.Background(), model.Params{"s": "test"})
			require.Error(t, err)
			assert.Nil(t, env)

			var te *omdb.TransportError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.wantOp, te.Op)
			assert.NotEmpty(t, err.Error())
			assert.NotContains(t, err.Error(), testKey)
		})
	}
}
