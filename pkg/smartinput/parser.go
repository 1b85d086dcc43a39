package smartinput

import (
	"time"

	"smart-task-input/pkg/datemath"
)

// Parser extracts task fields from free text. The zero value is ready to use.
// A Parser holds only configuration and is safe for concurrent use.
type Parser struct {
	notes bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithNotes enables note extraction: text after a token starting with "//"
// becomes Result.Notes.
func WithNotes() Option {
	return func(p *Parser) { p.notes = true }
}

// New returns a Parser configured with opts.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NotesEnabled reports whether the parser extracts notes.
func (p *Parser) NotesEnabled() bool {
	return p.notes
}

// Parse extracts a Result from raw. Relative dates resolve against the
// calendar date of ref in loc; a nil loc means ref's own location.
//
// Extractors run in a fixed order (notes, priority, project, label, date,
// time). A token taken by one is skipped by all later ones.
func (p *Parser) Parse(raw string, ref time.Time, loc *time.Location) Result {
	if loc == nil {
		loc = ref.Location()
	}
	ref = ref.In(loc)

	e := newExtraction(raw)
	if p.notes {
		extractNotes(e)
	}
	extractPriority(e)
	extractProject(e)
	extractLabel(e)
	extractDate(e, datemath.NewParserIn(loc), ref)
	extractTime(e)

	return compose(e, ref)
}

// Parse parses raw with a default Parser.
func Parse(raw string, ref time.Time, loc *time.Location) Result {
	return New().Parse(raw, ref, loc)
}
