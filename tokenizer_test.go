package spellcore_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/skribent/spellcore"
)

func collectTokens(text string) []spellcore.Token {
	var tokens []spellcore.Token

	for t := range spellcore.Tokens(text) {
		tokens = append(tokens, t)
	}

	return tokens
}

func TestTokens(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want []spellcore.Token
	}{
		{
			Name: "Words separated by spaces",
			Text: "Ths is a tst",
			Want: []spellcore.Token{
				{Text: "Ths", Start: 0, End: 3},
				{Text: "is", Start: 4, End: 6},
				{Text: "a", Start: 7, End: 8},
				{Text: "tst", Start: 9, End: 12},
			},
		},
		{
			Name: "Digits and punctuation separate runs",
			Text: "foo123bar, baz!",
			Want: []spellcore.Token{
				{Text: "foo", Start: 0, End: 3},
				{Text: "bar", Start: 6, End: 9},
				{Text: "baz", Start: 11, End: 14},
			},
		},
		{
			Name: "Leading and trailing separators",
			Text: "  ...word-- ",
			Want: []spellcore.Token{
				{Text: "word", Start: 5, End: 9},
			},
		},
		{
			Name: "Empty text",
			Text: "",
			Want: nil,
		},
		{
			Name: "No alphabetic characters",
			Text: "123 456 !?",
			Want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := collectTokens(tt.Text)

			if !slices.Equal(got, tt.Want) {
				t.Errorf("Tokens(%q) = \n%#v\nwant \n%#v",
					tt.Text, got, tt.Want)
			}
		})
	}
}

func TestTokensTruncatesLongRuns(t *testing.T) {
	run := strings.Repeat("a", 300)

	tokens := collectTokens(run + "!" + "ok")

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}

	long := tokens[0]

	if len(long.Text) != 255 {
		t.Errorf("captured text is %d bytes, want 255", len(long.Text))
	}

	// The end offset must reflect the true end of the run even though the
	// captured text was truncated.
	if long.Start != 0 || long.End != 300 {
		t.Errorf("got interval [%d,%d), want [0,300)",
			long.Start, long.End)
	}

	want := spellcore.Token{Text: "ok", Start: 301, End: 303}
	if tokens[1] != want {
		t.Errorf("got trailing token %#v, want %#v", tokens[1], want)
	}
}

func TestTokensCoverAlphabeticRuns(t *testing.T) {
	text := "No1 should ever mix-up d1g1ts & words."

	isLetter := func(c byte) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}

	covered := make([]bool, len(text))

	for tok := range spellcore.Tokens(text) {
		for i := tok.Start; i < tok.End; i++ {
			if !isLetter(text[i]) {
				t.Errorf("interval [%d,%d) spans non-letter %q",
					tok.Start, tok.End, text[i])
			}

			covered[i] = true
		}
	}

	for i := range text {
		if isLetter(text[i]) != covered[i] {
			t.Errorf("position %d (%q): covered=%v, want %v",
				i, text[i], covered[i], isLetter(text[i]))
		}
	}
}
