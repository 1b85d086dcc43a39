package smartinput

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// compose turns the extraction state into the final Result: spans sorted,
// the dangling-time date default applied and the title rebuilt from the text
// left between spans.
func compose(e *extraction, ref time.Time) Result {
	r := e.result

	slices.SortFunc(e.spans, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })
	r.Spans = e.spans

	if r.Time != nil && r.Date == nil {
		today := DateOf(ref)
		r.Date = &today
		r.DateDefaulted = true
	}

	var b strings.Builder
	b.Grow(len(e.text))
	prev := 0
	for _, s := range r.Spans {
		b.WriteString(e.text[prev:s.Start])
		b.WriteByte(' ')
		prev = s.End
	}
	b.WriteString(e.text[prev:])

	r.Title = strings.Join(strings.Fields(b.String()), " ")
	if r.Title == "" && len(r.Spans) > 0 {
		r.Title = e.text
		r.TitleFallback = true
	}
	return r
}
