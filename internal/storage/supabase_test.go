package storage

import (
	"testing"

	"github.com/julienmatondotezolo/losteria-ai-receptionist-v2/internal/dialog"
)

func TestDisabledArchiveIsNoOp(t *testing.T) {
	s := New(Config{})
	if s.Enabled() {
		t.Fatalf("archive without config must report disabled")
	}
	err := s.ArchiveTranscript("CA1", []dialog.Turn{{Role: "user", Text: "hallo"}})
	if err != nil {
		t.Fatalf("disabled archive must swallow uploads, got %v", err)
	}
}

func TestFormatTranscript(t *testing.T) {
	turns := []dialog.Turn{
		{Role: "user", Text: "Hebben jullie lasagne?"},
		{Role: "assistant", Text: "Jazeker, onze lasagne is vers bereid."},
	}
	want := "user: Hebben jullie lasagne?\nassistant: Jazeker, onze lasagne is vers bereid.\n"
	if got := FormatTranscript(turns); got != want {
		t.Fatalf("unexpected transcript:\n%s", got)
	}
}
