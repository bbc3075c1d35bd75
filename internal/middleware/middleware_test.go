package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := Use(resty.New().SetBaseURL(server.URL), zap.NewNop().Sugar())

	_, err := client.R().Get("/a")
	require.NoError(t, err)
	_, err = client.R().Get("/b")
	require.NoError(t, err)
	_, err = client.R().SetHeader(RequestIDHeader, "fixed").Get("/c")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 3)
	_, err = uuid.Parse(seen[0])
	assert.NoError(t, err)
	assert.NotEqual(t, seen[0], seen[1])
	assert.Equal(t, "fixed", seen[2])
}

func TestUseLogsResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := Use(resty.New().SetBaseURL(server.URL), zap.New(core).Sugar())

	_, err := client.R().Get("/missing")
	require.NoError(t, err)

	entries := logs.FilterMessage("backend response").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
}

func TestUseLogsCancellationQuietly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := Use(resty.New().SetBaseURL(server.URL), zap.New(core).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.R().SetContext(ctx).Get("/slow")
	require.Error(t, err)

	assert.Equal(t, 0, logs.FilterMessage("backend request failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("backend request cancelled").Len())
}
