package anagrams

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// RotMatch is a Caesar-shifted version of an input that is a dictionary word.
type RotMatch struct {
	Text  string
	Shift int
}

func (m RotMatch) String() string {
	return fmt.Sprintf("%s +%d", m.Text, m.Shift)
}

// RotSolver brute-forces Caesar shifts of an input against a set of words.
type RotSolver struct {
	wordset map[string]struct{}
}

func CreateRotSolver(words []string) *RotSolver {
	return &RotSolver{wordset: lo.Keyify(words)}
}

// Solve tries every shift from 1 to 25 and returns, in shift order, those
// whose result is exactly a word of the dictionary.
func (r *RotSolver) Solve(input string) []RotMatch {
	var matches []RotMatch
	for shift := 1; shift < 26; shift++ {
		candidate := Rotate(input, shift)
		if _, ok := r.wordset[candidate]; ok {
			matches = append(matches, RotMatch{Text: candidate, Shift: shift})
		}
	}
	return matches
}

// Rotate shifts each ASCII letter of s forward by shift places, wrapping
// around and keeping its case. Other characters are left as they are.
func Rotate(s string, shift int) string {
	shift %= 26
	if shift < 0 {
		shift += 26
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune('a' + (r-'a'+rune(shift))%26)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune('A' + (r-'A'+rune(shift))%26)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
