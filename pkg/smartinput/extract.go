package smartinput

import "strings"

// extraction is the per-call working state shared by the extractors. A token
// claimed by one extractor is invisible to every later one, which keeps the
// consumed spans disjoint.
type extraction struct {
	text    string
	tokens  []Token
	claimed []bool
	spans   []Span
	result  Result
}

func newExtraction(text string) *extraction {
	tokens := Tokenize(text)
	return &extraction{
		text:    text,
		tokens:  tokens,
		claimed: make([]bool, len(tokens)),
	}
}

// claim consumes tokens [from, to) as a single span of the given kind,
// including the whitespace between them.
func (e *extraction) claim(from, to int, kind Kind) {
	for i := from; i < to; i++ {
		e.claimed[i] = true
	}
	e.spans = append(e.spans, Span{
		Start: e.tokens[from].Start,
		End:   e.tokens[to-1].End,
		Kind:  kind,
	})
}

// unclaimed returns the indices of the first n unclaimed tokens at or after
// i, stepping over claimed ones. Token i itself must be unclaimed.
func (e *extraction) unclaimed(i, n int) ([]int, bool) {
	if i < 0 || i >= len(e.tokens) || e.claimed[i] {
		return nil, false
	}
	idx := make([]int, 0, n)
	for j := i; j < len(e.tokens) && len(idx) < n; j++ {
		if !e.claimed[j] {
			idx = append(idx, j)
		}
	}
	return idx, len(idx) == n
}

// prevUnclaimed returns the closest unclaimed token before i, or -1.
func (e *extraction) prevUnclaimed(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !e.claimed[j] {
			return j
		}
	}
	return -1
}

// claimRuns consumes the ascending token indices idx as one entity, with one
// span per run of adjacent tokens. A tag claimed earlier inside the phrase
// keeps its own span.
func (e *extraction) claimRuns(idx []int, kind Kind) {
	from := 0
	for k := 1; k <= len(idx); k++ {
		if k == len(idx) || idx[k] != idx[k-1]+1 {
			e.claim(idx[from], idx[k-1]+1, kind)
			from = k
		}
	}
}

// first returns the index of the first unclaimed token accepted by match, or -1.
func (e *extraction) first(match func(Token) bool) int {
	for i, tok := range e.tokens {
		if !e.claimed[i] && match(tok) {
			return i
		}
	}
	return -1
}

// extractNotes consumes everything from the first token starting with "//"
// to the end of the text. An empty note is left alone.
func extractNotes(e *extraction) {
	for i, tok := range e.tokens {
		if e.claimed[i] || !strings.HasPrefix(tok.Text, "//") {
			continue
		}
		note := strings.TrimSpace(e.text[tok.Start+2:])
		if note == "" {
			return
		}
		e.result.Notes = note
		e.claim(i, len(e.tokens), KindNotes)
		return
	}
}

// extractPriority takes the first p1..p4 token. Later ones stay in the title.
func extractPriority(e *extraction) {
	i := e.first(func(tok Token) bool {
		t := tok.Text
		return len(t) == 2 && (t[0] == 'p' || t[0] == 'P') && '1' <= t[1] && t[1] <= '4'
	})
	if i < 0 {
		return
	}
	e.result.Priority = int(e.tokens[i].Text[1] - '0')
	e.claim(i, i+1, KindPriority)
}

func extractProject(e *extraction) {
	if name, ok := extractTag(e, '#', KindProject); ok {
		e.result.Project = name
	}
}

func extractLabel(e *extraction) {
	if name, ok := extractTag(e, '@', KindLabel); ok {
		e.result.Label = name
	}
}

// extractTag takes the first token made of prefix followed by a valid tag name.
func extractTag(e *extraction, prefix byte, kind Kind) (string, bool) {
	i := e.first(func(tok Token) bool {
		return len(tok.Text) > 1 && tok.Text[0] == prefix && isTagName(tok.Text[1:])
	})
	if i < 0 {
		return "", false
	}
	e.claim(i, i+1, kind)
	return e.tokens[i].Text[1:], true
}

// isTagName reports whether s is a non-empty run of [A-Za-z0-9_-].
func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
