package render

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agenttrace/core"
)

type webhookRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
}

type recordedRequest struct {
	method      string
	contentType string
	body        map[string]any
}

func (rec *webhookRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)

		rec.mu.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			method:      r.Method,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		status := rec.status
		rec.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
		}
	}
}

func (rec *webhookRecorder) recorded() []recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]recordedRequest, len(rec.requests))
	copy(out, rec.requests)
	return out
}

func TestWebhook_PostsEvent(t *testing.T) {
	rec := &webhookRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	w := NewWebhook(srv.URL)
	ev := core.NewLLMCallEvent("gpt-4o-mini")
	ev.SessionID = "sess-1"
	require.NoError(t, w.Render(ev))

	requests := rec.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].method)
	assert.Equal(t, "application/json", requests[0].contentType)
	assert.Equal(t, "llm_call", requests[0].body["event_type"])
	assert.Equal(t, "sess-1", requests[0].body["session_id"])
}

func TestWebhook_PostsTaggedSummary(t *testing.T) {
	rec := &webhookRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	w := NewWebhook(srv.URL)
	require.NoError(t, w.RenderSummary(core.Summary{LLMCallsCount: 2}))

	requests := rec.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "session_summary", requests[0].body["event_type"])
	assert.Equal(t, float64(2), requests[0].body["llm_calls_count"])
}

func TestWebhook_NonSuccessStatusIsAnError(t *testing.T) {
	rec := &webhookRecorder{status: http.StatusInternalServerError}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	w := NewWebhook(srv.URL)
	err := w.Render(core.NewSessionStartEvent(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhook_UnreachableEndpointIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	w := NewWebhook(url)
	assert.Error(t, w.Render(core.NewSessionStartEvent("")))
}
