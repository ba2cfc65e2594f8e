package testutil

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CapturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// RequestLog records every request received by a fake upstream.
type RequestLog struct {
	mu       sync.Mutex
	requests []CapturedRequest
}

func (l *RequestLog) record(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, CapturedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
}

func (l *RequestLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.requests)
}

func (l *RequestLog) Last(t *testing.T) CapturedRequest {
	t.Helper()

	l.mu.Lock()
	defer l.mu.Unlock()

	require.NotEmpty(t, l.requests, "Upstream should have received a request")

	return l.requests[len(l.requests)-1]
}

// NewJSONServer answers every request with status and body encoded as JSON.
func NewJSONServer(t *testing.T, status int, body any) (*httptest.Server, *RequestLog) {
	t.Helper()

	return NewServer(t, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(t, w, status, body)
	})
}

// NewRawServer answers every request with status and body written verbatim.
func NewRawServer(t *testing.T, status int, body string) (*httptest.Server, *RequestLog) {
	t.Helper()

	return NewServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func NewServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *RequestLog) {
	t.Helper()

	log := &RequestLog{mu: sync.Mutex{}, requests: nil}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, log
}

func WriteJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	assert.NoError(t, json.NewEncoder(w).Encode(body), "Fake upstream should encode its payload")
}

// UnreachableURL returns a loopback URL that refuses connections.
func UnreachableURL(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	return "http://" + addr
}

func AssertQuery(t *testing.T, req CapturedRequest, expected map[string]string) {
	t.Helper()

	require.Len(t, req.Query, len(expected), "Query parameter count mismatch: %v", req.Query)

	for key, value := range expected {
		assert.Equal(t, value, req.Query.Get(key), "Query parameter %s mismatch", key)
	}
}

func AssertHeader(t *testing.T, req CapturedRequest, header, expectedValue string) {
	t.Helper()
	assert.Equal(t, expectedValue, req.Header.Get(header), "Header %s mismatch", header)
}
