package mockserver

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenWriter struct {
	header http.Header
	status int
}

func (b *brokenWriter) Header() http.Header {
	if b.header == nil {
		b.header = http.Header{}
	}
	return b.header
}

func (b *brokenWriter) WriteHeader(status int) { b.status = status }

func (b *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	var logs bytes.Buffer
	s := New(Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))})

	w := &brokenWriter{}
	s.writeError(w, http.StatusUnauthorized, "No API key provided.")

	assert.Equal(t, http.StatusUnauthorized, w.status)
	assert.Contains(t, logs.String(), "write mock response")
	assert.Contains(t, logs.String(), "connection reset by peer")
}
