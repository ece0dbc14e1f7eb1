// Package spellcore implements a plain-text spellchecking engine backed by
// newline-delimited word lists. A Checker owns a main dictionary, a user
// dictionary and a session ignore list, and records the misspelled words of
// the last checked text together with their byte offsets.
package spellcore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// maxSuggestDistance is the largest edit distance that still counts
	// as a usable suggestion candidate.
	maxSuggestDistance = 2
	// suggestScanCap bounds how many candidates a dictionary scan
	// collects before ranking.
	suggestScanCap = 10
	// maxSuggestions is the number of ranked suggestions returned.
	maxSuggestions = 5
)

// A MisspelledWord is one token that failed lookup in all three word sets.
// Start and End are byte offsets into the text passed to the Check call that
// produced it, as a half-open interval.
type MisspelledWord struct {
	Word  string
	Start int
	End   int
}

// Options configures a Checker.
type Options struct {
	// Logger is used for debug and warning output. Defaults to
	// slog.Default().
	Logger *slog.Logger
	// Registerer is used to register the checker metrics. Metrics are
	// collected into a throwaway registry if it is nil.
	Registerer prometheus.Registerer
}

// A Checker spellchecks texts against a main dictionary, a user dictionary
// and a session-only ignore list.
//
// A Checker is not safe for concurrent use. Check replaces the recorded
// misspelled word list in place, so callers that share a Checker between
// goroutines must serialize access to all of its methods.
type Checker struct {
	log     *slog.Logger
	metrics *checkerMetrics

	main    WordSet
	user    WordSet
	ignored WordSet

	misspelled []MisspelledWord

	enabled            bool
	suggestionsEnabled bool
}

// New creates a Checker with empty dictionaries. Checking and suggestions
// start out enabled.
func New(opts Options) (*Checker, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("set up metrics: %w", err)
	}

	return &Checker{
		log:                opts.Logger,
		metrics:            m,
		enabled:            true,
		suggestionsEnabled: true,
	}, nil
}

// LoadDictionary loads the main dictionary from path. Lines starting with
// "#" are treated as comments. The main dictionary is required, so a missing
// file or an empty word list is an error.
func (c *Checker) LoadDictionary(path string) error {
	err := c.main.Load(path, true)
	if err != nil {
		return fmt.Errorf("load main dictionary: %w", err)
	}

	if c.main.Len() == 0 {
		return fmt.Errorf("main dictionary %q contains no words", path)
	}

	c.log.Debug("loaded main dictionary",
		"path", path,
		"words", c.main.Len())

	return nil
}

// LoadUserDictionary loads the user dictionary from path. The user
// dictionary is optional, so a missing file leaves the dictionary empty and
// is not an error. Unlike the main dictionary, "#"-prefixed lines are kept
// as ordinary entries.
func (c *Checker) LoadUserDictionary(path string) error {
	err := c.user.Load(path, false)

	if errors.Is(err, fs.ErrNotExist) {
		// The user just hasn't learned any words yet.
		return nil
	}

	if err != nil {
		return fmt.Errorf("load user dictionary: %w", err)
	}

	c.log.Debug("loaded user dictionary",
		"path", path,
		"words", c.user.Len())

	return nil
}

// SaveUserDictionary writes the user dictionary to path, one word per line.
// A failed save is logged as a warning but not reported to the caller.
func (c *Checker) SaveUserDictionary(path string) {
	err := c.user.Save(path)
	if err != nil {
		c.log.Warn("failed to save user dictionary",
			"path", path,
			"err", err)
	}
}

// Check tokenizes text and records every word that is missing from all
// three word sets, in scan order. The result of any previous Check call is
// discarded first. A disabled checker, or an empty or whitespace-only text,
// yields an empty result.
func (c *Checker) Check(text string) {
	c.misspelled = c.misspelled[:0]

	if !c.enabled || strings.TrimSpace(text) == "" {
		return
	}

	c.metrics.checkedTexts.Inc()

	for t := range Tokens(text) {
		c.metrics.checkedWords.Inc()

		if c.correct(t.Text) {
			continue
		}

		c.misspelled = append(c.misspelled, MisspelledWord{
			Word:  t.Text,
			Start: t.Start,
			End:   t.End,
		})
	}

	c.metrics.misspellings.Add(float64(len(c.misspelled)))
}

// correct reports whether word is considered correctly spelled. The ignore
// list takes precedence over the main dictionary, which takes precedence
// over the user dictionary. All lookups are case-insensitive. An empty word
// is correct by definition.
func (c *Checker) correct(word string) bool {
	if word == "" {
		return true
	}

	return c.ignored.Contains(word) ||
		c.main.Contains(word) ||
		c.user.Contains(word)
}

// Misspelled returns the misspelled words recorded by the last Check call.
// The returned slice is a read view that is only valid until the next call
// to Check.
func (c *Checker) Misspelled() []MisspelledWord {
	return c.misspelled
}

// WordAt returns the recorded misspelled word whose interval contains the
// byte offset pos, if any.
func (c *Checker) WordAt(pos int) (string, bool) {
	for _, w := range c.misspelled {
		if pos >= w.Start && pos < w.End {
			return w.Word, true
		}
	}

	return "", false
}

// Suggestions returns up to five correction candidates for word, ranked by
// ascending edit distance with dictionary order breaking ties. Only the main
// dictionary is scanned, and the scan stops once ten candidates within
// distance two have been collected. An exact match is never suggested.
func (c *Checker) Suggestions(word string) []string {
	c.metrics.suggestions.Inc()

	type candidate struct {
		word     string
		distance int
	}

	var candidates []candidate

	for _, entry := range c.main.words {
		if len(candidates) == suggestScanCap {
			break
		}

		d := editDistance(word, entry)

		if d > 0 && d <= maxSuggestDistance {
			candidates = append(candidates, candidate{
				word:     entry,
				distance: d,
			})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.distance - b.distance
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	res := make([]string, len(candidates))

	for i, cand := range candidates {
		res[i] = cand.word
	}

	return res
}

// Learn adds word to the user dictionary. Adding a word that is already
// present is a no-op.
func (c *Checker) Learn(word string) {
	c.user.Insert(word)
}

// Ignore adds word to the session ignore list. Ignored words are treated as
// correct until ResetIgnoreList is called, and are never persisted.
func (c *Checker) Ignore(word string) {
	c.ignored.Insert(word)
}

// ResetIgnoreList clears the session ignore list.
func (c *Checker) ResetIgnoreList() {
	c.ignored.Clear()
}

// SetEnabled turns checking on or off. Disabling does not clear an existing
// result list, it only affects the next Check call.
func (c *Checker) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Enabled reports whether checking is enabled.
func (c *Checker) Enabled() bool {
	return c.enabled
}

// SetSuggestionsEnabled toggles the suggestion flag. The engine keeps the
// state but does not gate Suggestions on it, that is left to the host.
func (c *Checker) SetSuggestionsEnabled(enabled bool) {
	c.suggestionsEnabled = enabled
}

// SuggestionsEnabled reports whether suggestions are enabled.
func (c *Checker) SuggestionsEnabled() bool {
	return c.suggestionsEnabled
}
