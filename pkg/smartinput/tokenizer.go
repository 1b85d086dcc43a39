package smartinput

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Tokenize splits text on runs of whitespace. Empty or blank input yields no
// tokens. Tokens keep their original casing and punctuation.
func Tokenize(text string) []Token {
	// A Caser carries state, so each call gets its own.
	fold := cases.Fold()

	var tokens []Token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, newToken(fold, text, start, i))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, newToken(fold, text, start, len(text)))
	}
	return tokens
}

func newToken(fold cases.Caser, text string, start, end int) Token {
	raw := text[start:end]
	folded := raw
	if !isLowerASCII(raw) {
		folded = fold.String(raw)
	}
	return Token{Text: raw, Folded: folded, Start: start, End: end}
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}
