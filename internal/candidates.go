package internal

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"crosswarped.com/anagrams/pkg/primitives"
)

// Candidate is a dictionary word together with its letter counts.
type Candidate struct {
	Text    string
	Letters primitives.LetterCounts
}

type CandidateParams struct {
	Words         []string
	ExcludedWords []string
	MinWordLength *int
	MaxWordLength *int
}

type params struct {
	words         []string
	excludedWords map[string]struct{}
	minWordLength int
	maxWordLength int
}

func asParams(p CandidateParams) params {
	pp := params{
		words:         p.Words,
		excludedWords: lo.Keyify(p.ExcludedWords),
	}

	if p.MinWordLength != nil {
		pp.minWordLength = *p.MinWordLength
	}

	if p.MaxWordLength == nil {
		pp.maxWordLength = -1
	} else {
		pp.maxWordLength = *p.MaxWordLength
	}

	return pp
}

func (p params) keep(word string) bool {
	if len(word) < p.minWordLength {
		return false
	}
	if p.maxWordLength >= 0 && len(word) > p.maxWordLength {
		return false
	}
	_, excluded := p.excludedWords[word]
	return !excluded
}

// MakeCandidates computes the letter counts of every word, in order.
//
// Words are only dropped by the length bounds and exclusions in p; with no
// bounds or exclusions every word is kept, including empty ones and
// duplicates.
func MakeCandidates(p CandidateParams) []Candidate {
	params := asParams(p)
	candidates := make([]Candidate, 0, len(params.words))
	for _, word := range params.words {
		if !params.keep(word) {
			continue
		}
		candidates = append(candidates, Candidate{Text: word, Letters: primitives.LettersOf(word)})
	}
	return candidates
}

// FilterCandidates returns the candidates that can take part in an anagram of target,
// ordered longest first and then alphabetically.
//
// A candidate takes part if its letters are a subset of target and it has at
// least one letter. Repeated texts are collapsed to their first occurrence.
// The input slice is not modified.
func FilterCandidates(all []Candidate, target primitives.LetterCounts) []Candidate {
	usable := lo.Filter(all, func(c Candidate, _ int) bool {
		if c.Letters.IsEmpty() {
			return false
		}
		_, ok := target.Subtract(c.Letters)
		return ok
	})
	usable = lo.UniqBy(usable, func(c Candidate) string {
		return c.Text
	})

	slices.SortStableFunc(usable, func(a, b Candidate) int {
		if byLength := cmp.Compare(len(b.Text), len(a.Text)); byLength != 0 {
			return byLength
		}
		return cmp.Compare(a.Text, b.Text)
	})
	return usable
}
