package anagrams

import (
	"fmt"
	"strings"

	"crosswarped.com/anagrams/pkg/primitives"
)

// shortWordLength is the longest a word can be and still count as filler.
const shortWordLength = 3

// Solution is an ordered sequence of dictionary words whose letters together
// are exactly the letters of the searched phrase.
type Solution []string

// Repr renders the solution as its words separated by single spaces.
func (s Solution) Repr() string {
	return strings.Join(s, " ")
}

// Letters returns the combined letter counts of every word in the solution.
func (s Solution) Letters() primitives.LetterCounts {
	return primitives.LettersOf(strings.Join(s, ""))
}

func (s Solution) DebugString() string {
	return fmt.Sprintf("Solution{words: %d, letters: %s, text: %q}", len(s), s.Letters(), s.Repr())
}

// IsValidSolution reports whether a solution reads naturally enough to emit.
//
// Solutions of up to three words are always valid. Longer ones may have at
// most half of their words (rounded down) be three bytes long or shorter.
func IsValidSolution(words []string) bool {
	if len(words) <= 3 {
		return true
	}
	short := 0
	for _, w := range words {
		if len(w) <= shortWordLength {
			short++
		}
	}
	return short <= len(words)/2
}
