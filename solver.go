package anagrams

import (
	"context"
	"iter"

	"github.com/rs/zerolog/log"

	"crosswarped.com/anagrams/internal"
	"crosswarped.com/anagrams/pkg/primitives"
)

// ctxCheckInterval is how many search steps run between checks of the context.
const ctxCheckInterval = 1 << 12

// Solver finds multi-word anagrams of phrases using a fixed dictionary.
//
// A Solver is read-only once created and may be shared by concurrent searches.
type Solver struct {
	candidates []internal.Candidate
}

type SolverParams struct {
	// MinWordLength and MaxWordLength bound dictionary entries by byte length.
	// Zero means unbounded.
	MinWordLength int
	MaxWordLength int
	ExcludedWords []string
}

// CreateSolver computes the letter counts of every dictionary word up front.
func CreateSolver(words []string, params SolverParams) *Solver {
	var minWordLength, maxWordLength *int
	if params.MinWordLength > 0 {
		minWordLength = &params.MinWordLength
	}
	if params.MaxWordLength > 0 {
		maxWordLength = &params.MaxWordLength
	}
	candidates := internal.MakeCandidates(internal.CandidateParams{
		Words:         words,
		ExcludedWords: params.ExcludedWords,
		MinWordLength: minWordLength,
		MaxWordLength: maxWordLength,
	})
	log.Debug().Int("words", len(words)).Int("candidates", len(candidates)).Msg("created solver")
	return &Solver{candidates: candidates}
}

// NumCandidates returns how many dictionary words the solver considers.
func (s *Solver) NumCandidates() int {
	return len(s.candidates)
}

// frame is one level of the depth-first search.
type frame struct {
	remaining primitives.LetterCounts
	// next is the index of the next candidate to try at this level.
	next int
}

// Search is an in-progress enumeration of the anagrams of one phrase.
//
// Solutions are produced one at a time by Next; the search only advances
// while Next runs. A Search is not safe for concurrent use.
type Search struct {
	candidates []internal.Candidate

	frames []frame
	// path[i] is the candidate chosen to go from frames[i] to frames[i+1].
	path []int

	steps uint64
	err   error
}

// Search starts a search for anagrams of phrase.
//
// Only candidates whose letters all appear in phrase are tried, longest first,
// so solutions made of fewer, longer words tend to come out earlier. A phrase
// with no letters has no solutions.
func (s *Solver) Search(phrase string) *Search {
	target := primitives.LettersOf(phrase)
	candidates := internal.FilterCandidates(s.candidates, target)

	search := &Search{candidates: candidates}
	if !target.IsEmpty() {
		search.frames = []frame{{remaining: target}}
	}

	log.Debug().
		Str("letters", target.String()).
		Int("candidates", len(candidates)).
		Msg("starting anagram search")
	return search
}

// Next advances the search to the next valid solution.
//
// It returns false once the search is exhausted, and keeps returning false on
// every later call. It also returns false if ctx is done before a solution is
// found; Err then reports why, and calling Next again with a live context
// resumes where the search stopped.
func (s *Search) Next(ctx context.Context) (Solution, bool) {
	s.err = nil
	for len(s.frames) > 0 {
		s.steps++
		if s.steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				s.err = err
				return nil, false
			}
		}

		top := &s.frames[len(s.frames)-1]

		if top.remaining.IsEmpty() {
			solution := s.solution()
			s.pop()
			if IsValidSolution(solution) {
				return solution, true
			}
			continue
		}

		if top.next < len(s.candidates) {
			idx := top.next
			top.next++
			if remaining, ok := top.remaining.Subtract(s.candidates[idx].Letters); ok {
				s.frames = append(s.frames, frame{remaining: remaining})
				s.path = append(s.path, idx)
			}
			continue
		}

		s.pop()
	}
	return nil, false
}

// Err returns the context error that interrupted the last call to Next, if any.
func (s *Search) Err() error {
	return s.err
}

// Done reports whether the search is exhausted.
func (s *Search) Done() bool {
	return len(s.frames) == 0
}

// Steps returns how many search steps have been taken so far.
func (s *Search) Steps() uint64 {
	return s.steps
}

func (s *Search) solution() Solution {
	words := make(Solution, len(s.path))
	for i, idx := range s.path {
		words[i] = s.candidates[idx].Text
	}
	return words
}

func (s *Search) pop() {
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.path) > 0 {
		s.path = s.path[:len(s.path)-1]
	}
}

// Solutions returns a sequence of the valid anagrams of phrase.
//
// Every iteration over the sequence runs a new search from the start. The
// sequence ends when the search is exhausted or ctx is done.
func (s *Solver) Solutions(ctx context.Context, phrase string) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		search := s.Search(phrase)
		for ctx.Err() == nil {
			solution, ok := search.Next(ctx)
			if !ok {
				return
			}
			if !yield(solution) {
				return
			}
		}
	}
}
