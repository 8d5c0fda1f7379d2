package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadWords reads a word list with one entry per line.
//
// Lines are trimmed; blank lines and lines starting with '#' are skipped. Case
// and inner punctuation are preserved.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list: %w", err)
	}
	return words, nil
}

// LoadWords reads the word list at path. See ReadWords.
func LoadWords(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
