package spellcore

import "iter"

// maxWordLen caps the captured text of a token. Longer alphabetic runs are
// truncated, but End still points one past the true end of the run so that
// highlighting stays aligned with the original text.
const maxWordLen = 255

// A Token is one maximal run of ASCII letters in a scanned text. Start and
// End are byte offsets into the original string, as a half-open interval.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokens returns an iterator over the alphabetic runs of text. Digits,
// punctuation and whitespace separate runs and never occur in a token.
// Offsets are yielded in increasing order.
func Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		i := 0

		for i < len(text) {
			for i < len(text) && !isLetter(text[i]) {
				i++
			}

			if i == len(text) {
				return
			}

			start := i

			for i < len(text) && isLetter(text[i]) {
				i++
			}

			capture := i
			if capture-start > maxWordLen {
				capture = start + maxWordLen
			}

			ok := yield(Token{
				Text:  text[start:capture],
				Start: start,
				End:   i,
			})
			if !ok {
				return
			}
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
