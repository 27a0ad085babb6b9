// Package wordlist maps SLIP-39 share words to their 10-bit indices and
// back. Word-list content and loading are deliberately outside the core
// splitting/combining algorithms (see package slip39), this package is
// the concrete, swappable collaborator those algorithms consume through
// an index/word lookup, not a dependency of the Shamir or Feistel math.
package wordlist

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// wordCount is the fixed size of a SLIP-39 dictionary: exactly enough
// words to pack 10 bits per word.
const wordCount = 1024

//go:embed words_en.txt
var englishWordsData string

var (
	// ErrWrongSize is returned by New when the supplied word slice does
	// not contain exactly 1024 entries.
	ErrWrongSize = errors.New("wordlist: word list must contain exactly 1024 words")

	// ErrDuplicateWord is returned by New when two entries normalize to
	// the same lowercase word.
	ErrDuplicateWord = errors.New("wordlist: duplicate word")

	// ErrUnknownWord is returned by WordsToIndices when a token in the
	// sentence is not present in the list.
	ErrUnknownWord = errors.New("wordlist: unknown word")
)

// List is an immutable, ordered 1024-word dictionary plus its inverse
// index. The zero value is not usable; construct one with New or use
// English.
type List struct {
	words []string
	index map[string]uint16
}

// New builds a List from exactly 1024 lowercase words. The word at
// position i is assigned index i. Returns ErrWrongSize or
// ErrDuplicateWord on malformed input.
func New(words []string) (*List, error) {
	if len(words) != wordCount {
		return nil, ErrWrongSize
	}
	l := &List{
		words: make([]string, wordCount),
		index: make(map[string]uint16, wordCount),
	}
	for i, w := range words {
		lw := strings.ToLower(w)
		if _, exists := l.index[lw]; exists {
			return nil, ErrDuplicateWord
		}
		l.words[i] = lw
		l.index[lw] = uint16(i)
	}
	return l, nil
}

var (
	english     *List
	englishOnce sync.Once
)

// English returns the module's default embedded 1024-word list. It is
// built once and shared; callers must treat the returned *List as
// read-only, like every other List.
func English() *List {
	englishOnce.Do(func() {
		words := strings.Fields(englishWordsData)
		l, err := New(words)
		if err != nil {
			// The embedded dictionary is a build-time asset under our
			// control; a malformed copy is a packaging bug, not a
			// runtime condition callers can recover from.
			panic("wordlist: embedded English word list is malformed: " + err.Error())
		}
		english = l
	})
	return english
}

// Len returns the number of words in the list (always 1024).
func (l *List) Len() int {
	return len(l.words)
}

// Word returns the word at index i. Callers are expected to pass indices
// already known to be in range (e.g. from ShareCodec); Word panics
// otherwise.
func (l *List) Word(i uint16) string {
	return l.words[i]
}

// IndexOf returns the index of word and true, or (0, false) if word is
// not in the list.
func (l *List) IndexOf(word string) (uint16, bool) {
	idx, ok := l.index[strings.ToLower(word)]
	return idx, ok
}

// WordsToIndices splits sentence on ASCII whitespace, lowercases each
// token, and resolves it to its index. Returns ErrUnknownWord (wrapped
// with the offending word) on the first unresolvable token.
func (l *List) WordsToIndices(sentence string) ([]uint16, error) {
	tokens := strings.Fields(sentence)
	indices := make([]uint16, len(tokens))
	for i, tok := range tokens {
		idx, ok := l.IndexOf(tok)
		if !ok {
			return nil, fmt.Errorf("wordlist: unknown word %q: %w", tok, ErrUnknownWord)
		}
		indices[i] = idx
	}
	return indices, nil
}

// IndicesToWords renders indices as a single space-joined, lowercase
// sentence.
func (l *List) IndicesToWords(indices []uint16) (string, error) {
	words := make([]string, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(l.words) {
			return "", errors.New("wordlist: index out of range")
		}
		words[i] = l.words[idx]
	}
	return strings.Join(words, " "), nil
}
