// Package smartinput turns one line of free text typed into a task-creation
// field into a structured task record: title, due date and time, project,
// label and priority.
//
// Parsing is a pure function of the raw text, a reference instant and a
// location. It never fails: anything it does not recognize stays in the title.
package smartinput

import (
	"fmt"
	"time"
)

// Kind classifies a consumed span.
type Kind string

const (
	KindPriority Kind = "priority"
	KindProject  Kind = "project"
	KindLabel    Kind = "label"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindNotes    Kind = "notes"
)

// Token is a maximal run of non-whitespace characters.
// Start and End are byte offsets into the original text, End exclusive.
type Token struct {
	Text   string
	Folded string // case-folded Text, used for vocabulary matching
	Start  int
	End    int
}

// Span is a byte range of the original text consumed by one extractor.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is a time of day in 24-hour form.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Result is the structured record extracted from one input line.
// Absent fields are nil, empty or zero.
type Result struct {
	Title    string
	Date     *Date
	Time     *Clock
	Project  string
	Label    string
	Priority int // 1..4, 0 when absent
	Notes    string

	// DateDefaulted is set when a time was found without any date and the
	// date was filled in with the reference date.
	DateDefaulted bool

	// TitleFallback is set when every word was consumed by an extractor and
	// the title is the raw input instead. Callers that require a human
	// readable name should reject such results.
	TitleFallback bool

	// Spans are the consumed ranges, sorted by Start.
	Spans []Span
}

// Clone returns a copy of r that shares no memory with it.
func (r Result) Clone() Result {
	out := r
	if r.Date != nil {
		d := *r.Date
		out.Date = &d
	}
	if r.Time != nil {
		c := *r.Time
		out.Time = &c
	}
	if r.Spans != nil {
		out.Spans = append([]Span(nil), r.Spans...)
	}
	return out
}

// Empty reports whether no field besides the title was extracted.
func (r Result) Empty() bool {
	return r.Date == nil && r.Time == nil && r.Project == "" && r.Label == "" &&
		r.Priority == 0 && r.Notes == ""
}
