package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codementor-be/internal/pkg/apperrors"
)

func stubGemini(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing api key header")
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []geminiCandidate{
					{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
				},
			})
		}
	}))
}

func TestAnalyzeCode(t *testing.T) {
	srv := stubGemini(t, http.StatusOK, "## Code Analysis\nlooks fine")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	got, err := client.AnalyzeCode(context.Background(), "print('hi')", "python", "")
	if err != nil {
		t.Fatalf("AnalyzeCode() error: %v", err)
	}
	if !strings.Contains(got, "Code Analysis") {
		t.Errorf("unexpected response: %q", got)
	}
}

func TestUpstreamFailureIsTyped(t *testing.T) {
	srv := stubGemini(t, http.StatusInternalServerError, "")
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.FindBugs(context.Background(), "x = ", "python")
	if !errors.Is(err, apperrors.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestEmptyCandidatesIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-key", srv.URL)
	_, err := client.ExplainCode(context.Background(), "x = 1", "python", "beginner")
	if !errors.Is(err, apperrors.ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestExplainPromptLevelFallback(t *testing.T) {
	prompt := explainPrompt("x", "python", "galactic")
	if !strings.Contains(prompt, "intermediate level") {
		t.Errorf("unknown level should fall back to intermediate, got: %s", prompt[:120])
	}
}
