package transcribe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
)

func TestTranscribe_DisabledWithoutKey(t *testing.T) {
	g := New("", "")
	if got := g.Transcribe(context.Background(), make([]byte, 8000), "nl"); got != "" {
		t.Fatalf("disabled gateway must return empty text, got %q", got)
	}
}

func TestTranscribe_EmptyClip(t *testing.T) {
	g := New("test-key", "")
	if got := g.Transcribe(context.Background(), nil, "nl"); got != "" {
		t.Fatalf("empty clip must return empty text, got %q", got)
	}
}

func TestTranscribe_CollaboratorFailureIsEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := New("test-key", "", option.WithBaseURL(srv.URL))
	if got := g.Transcribe(context.Background(), make([]byte, 8000), "nl"); got != "" {
		t.Fatalf("collaborator failure must yield empty text, got %q", got)
	}
}

func TestTranscribe_TrimsWhitespace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": "  Hallo daar.  "})
	}))
	defer srv.Close()

	g := New("test-key", "", option.WithBaseURL(srv.URL))
	if got := g.Transcribe(context.Background(), make([]byte, 8000), "nl"); got != "Hallo daar." {
		t.Fatalf("expected trimmed transcript, got %q", got)
	}
}
