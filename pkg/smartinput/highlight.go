package smartinput

import (
	"cmp"
	"slices"
)

// Segment is a piece of the input text with its classification. Plain text
// has an empty Kind.
type Segment struct {
	Start int
	End   int
	Kind  Kind
	Text  string
}

// Classified reports whether the segment belongs to an extracted field.
func (s Segment) Classified() bool {
	return s.Kind != ""
}

// Highlight covers text with segments in order, without gaps: each span
// becomes a classified segment and the text between spans becomes plain
// segments. Spans that fall outside text or overlap an earlier span are
// ignored.
func Highlight(text string, spans []Span) []Segment {
	if text == "" {
		return nil
	}

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })

	segments := make([]Segment, 0, 2*len(sorted)+1)
	prev := 0
	for _, s := range sorted {
		if s.Start < prev || s.End > len(text) || s.Start >= s.End {
			continue
		}
		if s.Start > prev {
			segments = append(segments, Segment{Start: prev, End: s.Start, Text: text[prev:s.Start]})
		}
		segments = append(segments, Segment{Start: s.Start, End: s.End, Kind: s.Kind, Text: text[s.Start:s.End]})
		prev = s.End
	}
	if prev < len(text) {
		segments = append(segments, Segment{Start: prev, End: len(text), Text: text[prev:]})
	}
	return segments
}
