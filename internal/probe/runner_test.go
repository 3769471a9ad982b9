package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/pulse/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Init()
	m.Run()
}

func consistentServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/get_data", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"timestamp":"2026-08-24T10:00:00Z","identity":0,"category":"start"},
			{"timestamp":"2026-08-24T10:00:05Z","identity":7,"category":"view"}
		]`))
	})
	mux.HandleFunc("/plot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"type":"bar","x":["start","view"],"y":[1,1]}],"layout":{"title":{"text":"t"}}}`))
	})
	return httptest.NewServer(mux)
}

func TestRunAgainstConsistentService(t *testing.T) {
	srv := consistentServer()
	defer srv.Close()

	stats, err := Run(context.Background(), &Config{
		BaseURL:  srv.URL,
		Polls:    3,
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Polls)
	assert.Equal(t, 2, stats.RecordsFirst)
	assert.Equal(t, 2, stats.RecordsLast)
	assert.Zero(t, stats.ChecksFailed)
	assert.Positive(t, stats.ChecksPassed)
}

func TestRunDetectsInconsistentAggregate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/get_data", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"timestamp":"2026-08-24T10:00:00Z","identity":0,"category":"start"}]`))
	})
	mux.HandleFunc("/plot", func(w http.ResponseWriter, r *http.Request) {
		// Aggregate claims more records than the listing returns.
		_, _ = w.Write([]byte(`{"data":[{"type":"bar","x":["start"],"y":[5]}],"layout":{"title":{"text":"t"}}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	stats, err := Run(context.Background(), &Config{
		BaseURL:  srv.URL,
		Polls:    1,
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	require.Error(t, err)
	assert.Positive(t, stats.ChecksFailed)
}

func TestRunReportsFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Run(context.Background(), &Config{
		BaseURL:  srv.URL,
		Polls:    1,
		Interval: time.Millisecond,
		Timeout:  time.Second,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "plot fetch failed")
}
