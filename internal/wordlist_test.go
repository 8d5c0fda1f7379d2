package internal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadWords(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"listen",
		"  Silent  ",
		"",
		"can't",
		"\t",
		"listen",
	}, "\n")

	got, err := ReadWords(t.Context(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadWords() error = %v", err)
	}
	want := []string{"listen", "Silent", "can't", "listen"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadWords() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWords_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := ReadWords(ctx, strings.NewReader("a\nb\n")); err == nil {
		t.Error("ReadWords() error = nil, want context error")
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("tinsel\nenlist\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadWords(t.Context(), path)
	if err != nil {
		t.Fatalf("LoadWords() error = %v", err)
	}
	if diff := cmp.Diff([]string{"tinsel", "enlist"}, got); diff != "" {
		t.Errorf("LoadWords() mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadWords(t.Context(), filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadWords() error = nil for missing file")
	}
}
