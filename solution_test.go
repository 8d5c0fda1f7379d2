package anagrams

import "testing"

func TestIsValidSolution(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  bool
	}{
		{"empty", nil, true},
		{"one short word", []string{"a"}, true},
		{"three short words", []string{"a", "is", "the"}, true},
		{"four words two short", []string{"night", "is", "a", "silent"}, true},
		{"four words three short", []string{"night", "is", "a", "an"}, false},
		{"five words two short", []string{"dear", "list", "ran", "on", "time"}, true},
		{"five words three short", []string{"dear", "list", "ran", "on", "me"}, false},
		{"length counts bytes", []string{"can't", "won't", "i", "a"}, true},
		{"four letter words are not short", []string{"list", "sent", "dear", "near"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSolution(tt.words); got != tt.want {
				t.Errorf("IsValidSolution(%q) = %v, want %v", tt.words, got, tt.want)
			}
		})
	}
}

func TestSolution_Repr(t *testing.T) {
	if got := (Solution{"silent", "night"}).Repr(); got != "silent night" {
		t.Errorf("Repr() = %q", got)
	}
	if got := (Solution{}).Repr(); got != "" {
		t.Errorf("Repr() of empty solution = %q", got)
	}
}

func TestSolution_Letters(t *testing.T) {
	s := Solution{"Can't", "Stop"}
	if got := s.Letters().String(); got != "acnopstt" {
		t.Errorf("Letters() = %q, want %q", got, "acnopstt")
	}
}
