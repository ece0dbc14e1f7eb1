package spellcore

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode"
)

// A WordSet is a growable list of words that is kept in case-insensitive
// sorted order so that lookups can use binary search. The zero value is an
// empty set ready for use.
type WordSet struct {
	words []string
}

// Load reads a newline-delimited word list from path and appends its entries
// to the set. Trailing whitespace is trimmed and blank lines are skipped.
// When skipComments is true, lines starting with "#" are skipped as well.
//
// Entries that were added before a mid-read failure are kept, so a failed
// load can leave the set partially populated. The set is re-sorted before
// Load returns, in both the success and the failure case.
func (s *WordSet) Load(path string, skipComments bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		if line == "" {
			continue
		}

		if skipComments && strings.HasPrefix(line, "#") {
			continue
		}

		s.words = append(s.words, line)
	}

	s.sort()

	err = scanner.Err()
	if err != nil {
		return fmt.Errorf("read word list: %w", err)
	}

	return nil
}

// Contains reports whether word is in the set, compared case-insensitively.
func (s *WordSet) Contains(word string) bool {
	_, ok := slices.BinarySearchFunc(s.words, word, compareFold)

	return ok
}

// Insert adds word to the set unless an entry already matches it
// case-insensitively. The set is re-sorted after every insert to keep the
// lookup invariant.
func (s *WordSet) Insert(word string) {
	if s.Contains(word) {
		return
	}

	s.words = append(s.words, word)
	s.sort()
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Clear removes all words from the set, keeping the allocated capacity.
func (s *WordSet) Clear() {
	s.words = s.words[:0]
}

// Save writes the set to path, one word per line. The set is re-sorted
// before writing.
func (s *WordSet) Save(path string) (outErr error) {
	s.sort()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create word list: %w", err)
	}

	defer func() {
		err := f.Close()
		if err != nil && outErr == nil {
			outErr = fmt.Errorf("close word list: %w", err)
		}
	}()

	w := bufio.NewWriter(f)

	for _, word := range s.words {
		_, err := w.WriteString(word)
		if err == nil {
			err = w.WriteByte('\n')
		}

		if err != nil {
			return fmt.Errorf("write word list: %w", err)
		}
	}

	err = w.Flush()
	if err != nil {
		return fmt.Errorf("write word list: %w", err)
	}

	return nil
}

func (s *WordSet) sort() {
	slices.SortFunc(s.words, compareFold)
}

// compareFold compares two strings byte-wise after folding ASCII upper case
// letters to lower case.
func compareFold(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca := lowerByte(a[i])
		cb := lowerByte(b[i])

		if ca != cb {
			return int(ca) - int(cb)
		}
	}

	return len(a) - len(b)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
