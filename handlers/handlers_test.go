package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ytbrief/config"
	"ytbrief/models"
	"ytbrief/services/summary"
	"ytbrief/services/transcript"
	"ytbrief/services/video"
	"ytbrief/validation"
)

// stubCompleter returns a deterministic summary derived from the prompt.
type stubCompleter struct {
	err error
}

func (s *stubCompleter) Complete(ctx context.Context, req summary.CompletionRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "Stub summary of the video.", nil
}

func testHandler(t *testing.T, providerURL string, completerErr error) *Handler {
	t.Helper()

	cfg := &config.Config{
		RequestTimeout: 30 * time.Second,
		Summary: config.SummaryConfig{
			APIKey: "configured-key",
			Model:  "test-model",
		},
		Version: "test",
	}

	client := transcript.NewClient(transcript.ClientConfig{
		APIURL:  providerURL,
		Timeout: 5 * time.Second,
	})

	summaryConfig := summary.Config{
		Model:         "test-model",
		MaxTokens:     2000,
		MaxInputChars: 15000,
	}

	service := video.NewService(
		transcript.NewService(client),
		summary.NewService(&stubCompleter{err: completerErr}, summaryConfig),
		validation.NewValidator(),
		video.Config{Languages: []string{"en"}},
	)

	return New(service, cfg)
}

func transcriptProvider(t *testing.T, segments string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success": true, "language": "en", "segments": %s}`, segments)
	}))
}

func postForm(handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestSummarizeEndToEnd(t *testing.T) {
	provider := transcriptProvider(t, `[
		{"text": "Hello world.", "start": 0.0, "duration": 1.0},
		{"text": "This is a test.", "start": 1.0, "duration": 1.5}
	]`)
	defer provider.Close()

	h := testHandler(t, provider.URL, nil)

	form := url.Values{}
	form.Set("url", "https://youtu.be/dQw4w9WgXcQ")
	form.Set("language", "en")
	form.Set("length", "short")

	recorder := postForm(h.Summarize, "/api/summarize", form)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp models.BriefResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("expected video ID dQw4w9WgXcQ, got %q", resp.VideoID)
	}
	if resp.Summary == nil || resp.Summary.Text != "Stub summary of the video." {
		t.Errorf("unexpected summary: %+v", resp.Summary)
	}
	if resp.Transcript == nil || resp.Transcript.Text != "Hello world. This is a test." {
		t.Errorf("unexpected transcript: %+v", resp.Transcript)
	}
	if resp.Stats == nil || resp.Stats.WordCount != 6 {
		t.Errorf("expected word count 6, got %+v", resp.Stats)
	}
	if resp.Error != "" {
		t.Errorf("expected no error in response, got %q", resp.Error)
	}
}

func TestSummarizeInvalidURL(t *testing.T) {
	h := testHandler(t, "http://transcript.invalid", nil)

	form := url.Values{}
	form.Set("url", "not a url")

	recorder := postForm(h.Summarize, "/api/summarize", form)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["kind"] != "invalid_url" {
		t.Errorf("expected kind invalid_url, got %q", resp["kind"])
	}
}

func TestSummarizeTranscriptUnavailable(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer provider.Close()

	h := testHandler(t, provider.URL, nil)

	form := url.Values{}
	form.Set("url", "https://youtu.be/dQw4w9WgXcQ")

	recorder := postForm(h.Summarize, "/api/summarize", form)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["kind"] != "transcript_unavailable" {
		t.Errorf("expected kind transcript_unavailable, got %q", resp["kind"])
	}
}

func TestSummarizePartialResultOnCompletionFailure(t *testing.T) {
	provider := transcriptProvider(t, `[{"text": "Hello world.", "start": 0.0, "duration": 1.0}]`)
	defer provider.Close()

	h := testHandler(t, provider.URL, fmt.Errorf("401 unauthorized"))

	form := url.Values{}
	form.Set("url", "https://youtu.be/dQw4w9WgXcQ")

	recorder := postForm(h.Summarize, "/api/summarize", form)

	// Partial result: the transcript is still returned with 200.
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp models.BriefResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Summary != nil {
		t.Errorf("expected no summary, got %+v", resp.Summary)
	}
	if resp.Transcript == nil || resp.Transcript.Text != "Hello world." {
		t.Errorf("unexpected transcript: %+v", resp.Transcript)
	}
	if resp.ErrorKind != "auth" {
		t.Errorf("expected error kind auth, got %q", resp.ErrorKind)
	}
	if resp.Error == "" {
		t.Error("expected a user-facing error message")
	}
}

func TestSummarizeMethodNotAllowed(t *testing.T) {
	h := testHandler(t, "http://transcript.invalid", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/summarize", nil)
	recorder := httptest.NewRecorder()
	h.Summarize(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", recorder.Code)
	}
}

func TestTranscriptEndpoint(t *testing.T) {
	provider := transcriptProvider(t, `[{"text": "Hello world.", "start": 0.0, "duration": 1.0}]`)
	defer provider.Close()

	h := testHandler(t, provider.URL, nil)

	form := url.Values{}
	form.Set("url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	recorder := postForm(h.Transcript, "/api/transcript", form)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var resp models.BriefResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Transcript == nil || resp.Transcript.Text != "Hello world." {
		t.Errorf("unexpected transcript: %+v", resp.Transcript)
	}
	if resp.Summary != nil {
		t.Errorf("expected no summary, got %+v", resp.Summary)
	}
}

func TestExport(t *testing.T) {
	h := testHandler(t, "http://transcript.invalid", nil)

	form := url.Values{}
	form.Set("kind", "summary")
	form.Set("video_id", "dQw4w9WgXcQ")
	form.Set("text", "A summary to download.")

	recorder := postForm(h.Export, "/api/export", form)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	disposition := recorder.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "youtube_summary_dQw4w9WgXcQ.txt") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}
	if recorder.Body.String() != "A summary to download." {
		t.Errorf("unexpected body: %q", recorder.Body.String())
	}
}

func TestExportRejectsBadInput(t *testing.T) {
	h := testHandler(t, "http://transcript.invalid", nil)

	tests := []struct {
		name string
		form url.Values
	}{
		{
			name: "bad kind",
			form: url.Values{"kind": {"audio"}, "video_id": {"dQw4w9WgXcQ"}, "text": {"x"}},
		},
		{
			name: "bad video id",
			form: url.Values{"kind": {"summary"}, "video_id": {"../../etc"}, "text": {"x"}},
		},
		{
			name: "missing text",
			form: url.Values{"kind": {"summary"}, "video_id": {"dQw4w9WgXcQ"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postForm(h.Export, "/api/export", tt.form)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", recorder.Code)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	h := testHandler(t, "http://transcript.invalid", nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	h.HealthCheck(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %q", recorder.Body.String())
	}
}
