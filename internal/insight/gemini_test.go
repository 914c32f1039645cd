package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sandeepkv93/zenflow/internal/model"
)

func analysisServer(t *testing.T, status int, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("expected json response mime type, got %q", req.GenerationConfig.ResponseMimeType)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
}

func candidate(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	out, _ := json.Marshal(resp)
	return string(out)
}

func TestAnalyzeParsesStructuredResult(t *testing.T) {
	body := `{"conflicts":["Run overlaps Dentist"],"suggestions":["a","b","c"],"insight":"Keep going."}`
	srv := analysisServer(t, http.StatusOK, candidate(body))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	analysis, err := client.Analyze(context.Background(), []model.Routine{
		{ID: "r-1", Title: "Run", Time: "07:00", Frequency: model.FrequencyDaily},
	}, nil)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if len(analysis.Conflicts) != 1 || len(analysis.Suggestions) != 3 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
	if analysis.Insight != "Keep going." {
		t.Fatalf("unexpected insight: %q", analysis.Insight)
	}
}

func TestAnalyzeHTTPErrorYieldsNil(t *testing.T) {
	srv := analysisServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	analysis, err := client.Analyze(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if analysis != nil {
		t.Fatalf("expected nil analysis, got %+v", analysis)
	}
}

func TestAnalyzeMalformedPayloadYieldsNil(t *testing.T) {
	srv := analysisServer(t, http.StatusOK, candidate("this is not json"))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	analysis, err := client.Analyze(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if analysis != nil {
		t.Fatalf("expected nil analysis, got %+v", analysis)
	}
}

func TestAnalyzeMissingKey(t *testing.T) {
	client := NewClient("")
	if _, err := client.Analyze(context.Background(), nil, nil); err != ErrNoAPIKey {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}
