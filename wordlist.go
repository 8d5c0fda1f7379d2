package anagrams

import (
	"context"
	_ "embed"
	"strings"
	"sync"

	"crosswarped.com/anagrams/internal"
)

//go:embed assets/wordlist.txt
var defaultWordlist string

// DefaultWords returns the built-in dictionary.
//
// The list is parsed on first use and shared afterwards; callers must not
// modify the returned slice.
var DefaultWords = sync.OnceValue(func() []string {
	words, err := internal.ReadWords(context.Background(), strings.NewReader(defaultWordlist))
	if err != nil {
		panic("parsing embedded word list: " + err.Error())
	}
	return words
})
