package anagrams

import (
	"slices"
	"testing"
)

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	if len(words) == 0 {
		t.Fatal("DefaultWords() is empty")
	}
	for _, w := range []string{"listen", "silent", "night", "can't"} {
		if !slices.Contains(words, w) {
			t.Errorf("DefaultWords() is missing %q", w)
		}
	}
	for _, w := range words {
		if w == "" {
			t.Fatal("DefaultWords() contains an empty entry")
		}
	}

	again := DefaultWords()
	if &words[0] != &again[0] {
		t.Error("DefaultWords() parsed the list twice")
	}
}
