package primitives

import "strings"

const numLetters = 26

// LetterCounts counts occurrences of each ASCII letter a to z, ignoring case.
//
// It is an array so that assigning or passing it copies the counts; no two
// values ever share state.
type LetterCounts [numLetters]uint32

// LettersOf counts the letters of s. Characters that are not ASCII letters are ignored.
func LettersOf(s string) LetterCounts {
	var c LetterCounts
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z':
			c[b-'a']++
		case b >= 'A' && b <= 'Z':
			c[b-'A']++
		}
	}
	return c
}

// IsEmpty returns true if no letters are counted.
func (c LetterCounts) IsEmpty() bool {
	for _, n := range c {
		if n != 0 {
			return false
		}
	}
	return true
}

// Subtract returns c with the letters of other removed.
//
// ok is false if other has more of some letter than c does; the returned
// counts are meaningless in that case.
func (c LetterCounts) Subtract(other LetterCounts) (result LetterCounts, ok bool) {
	for i := range c {
		if c[i] < other[i] {
			return LetterCounts{}, false
		}
		result[i] = c[i] - other[i]
	}
	return result, true
}

// Len returns the total number of letters counted.
func (c LetterCounts) Len() int {
	total := 0
	for _, n := range c {
		total += int(n)
	}
	return total
}

// String returns the counted letters in alphabetical order, e.g. "eilnst" for "Listen".
func (c LetterCounts) String() string {
	var sb strings.Builder
	sb.Grow(c.Len())
	for i, n := range c {
		for range n {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}
