package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"

	"crosswarped.com/anagrams"
)

const (
	defaultProject = "xword-x"
	maxResultsCap  = 100
)

type AnagramRequest struct {
	Phrase        string   `json:"phrase"`
	Cipher        string   `json:"cipher"`
	WordScope     string   `json:"wordScope"`
	Words         []string `json:"words"`
	ExcludedWords []string `json:"excludedWords"`
	MinWordLength int      `json:"minWordLength"`
	MaxResults    int      `json:"maxResults"`
}

type AnagramResponse struct {
	Success   bool     `json:"success"`
	Solutions []string `json:"solutions"`
	Error     string   `json:"error,omitempty"`
}

// wordSource loads the words of a named scope.
type wordSource func(ctx context.Context, scope string) ([]string, error)

func bigQueryProject() string {
	if p := os.Getenv("BIGQUERY_PROJECT"); p != "" {
		return p
	}
	return defaultProject
}

func getWords(ctx context.Context, scope string) ([]string, error) {
	client, err := bigquery.NewClient(ctx, bigQueryProject())
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query("SELECT word_key FROM `xword-x.FirestoreQuery.all_words` WHERE scope = @scope")
	q.Parameters = []bigquery.QueryParameter{{Name: "scope", Value: scope}}
	q.Location = "US"
	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}

func execute(ctx context.Context, req AnagramRequest, source wordSource) ([]string, error) {
	if req.Phrase == "" {
		return nil, fmt.Errorf("phrase must not be empty")
	}
	if req.MaxResults <= 0 {
		return nil, fmt.Errorf("maxResults must be at least 1")
	}
	if req.MaxResults > maxResultsCap {
		return nil, fmt.Errorf("maxResults must be at most %d", maxResultsCap)
	}

	words := req.Words
	if req.WordScope != "" {
		scoped, err := source(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("getWords: %w", err)
		}
		log.Info().Int("words", len(scoped)).Str("scope", req.WordScope).Msg("loaded words")
		words = append(words, scoped...)
	}
	if len(words) == 0 {
		words = anagrams.DefaultWords()
	}

	switch req.Cipher {
	case "", "anagrams":
	case "rot13", "rot":
		var out []string
		for _, match := range anagrams.CreateRotSolver(words).Solve(req.Phrase) {
			out = append(out, match.String())
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown cipher %q", req.Cipher)
	}

	solver := anagrams.CreateSolver(words, anagrams.SolverParams{
		MinWordLength: req.MinWordLength,
		ExcludedWords: req.ExcludedWords,
	})

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		log.Debug().Dur("timeout", timeout).Msg("setting search timeout")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var solutions []string
	for solution := range solver.Solutions(ctx, req.Phrase) {
		solutions = append(solutions, solution.Repr())
		if len(solutions) >= req.MaxResults {
			break
		}
	}

	return solutions, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func newHandler(source wordSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
			return
		}

		var req AnagramRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn().Err(err).Msg("parsing JSON body")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnagramResponse{
				Success: false,
				Error:   fmt.Sprintf("Invalid JSON: %v", err),
			})
			return
		}

		solutions, err := execute(r.Context(), req, source)

		response := AnagramResponse{
			Success:   err == nil,
			Solutions: solutions,
		}
		if err != nil {
			response.Error = err.Error()
		} else if len(solutions) == 0 {
			response.Error = "No anagrams could be found for the given phrase"
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Error().Err(err).Msg("marshaling response")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
			return
		}
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/anagrams", newHandler(getWords))

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
