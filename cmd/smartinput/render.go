package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"smart-task-input/internal/smartinput"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

// renderer prints a parsed line as the input with its spans colored, a row
// of markers under each span and one line per extracted field.
type renderer struct {
	kinds map[pkgSmartinput.Kind]*color.Color
	label *color.Color
	faint *color.Color
}

func newRenderer(useColor bool) renderer {
	r := renderer{
		kinds: map[pkgSmartinput.Kind]*color.Color{
			pkgSmartinput.KindDate:     color.New(color.FgBlue, color.Bold),
			pkgSmartinput.KindTime:     color.New(color.FgCyan, color.Bold),
			pkgSmartinput.KindProject:  color.New(color.FgMagenta),
			pkgSmartinput.KindLabel:    color.New(color.FgGreen),
			pkgSmartinput.KindPriority: color.New(color.FgRed, color.Bold),
			pkgSmartinput.KindNotes:    color.New(color.FgYellow),
		},
		label: color.New(color.Bold),
		faint: color.New(color.Faint),
	}

	all := []*color.Color{r.label, r.faint}
	for _, c := range r.kinds {
		all = append(all, c)
	}
	for _, c := range all {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r renderer) paint(kind pkgSmartinput.Kind, s string) string {
	if c, ok := r.kinds[kind]; ok {
		return c.Sprint(s)
	}
	return s
}

func (r renderer) render(w io.Writer, input string, out smartinput.ParseOutput) error {
	var line, marks strings.Builder
	for _, seg := range out.Segments {
		if !seg.Classified() {
			line.WriteString(seg.Text)
			marks.WriteString(underline(seg.Text, " "))
			continue
		}
		line.WriteString(r.paint(seg.Kind, seg.Text))
		marks.WriteString(r.paint(seg.Kind, underline(seg.Text, "^")))
	}

	var b strings.Builder
	b.WriteString(line.String())
	b.WriteString("\n")
	if m := strings.TrimRight(marks.String(), " "); m != "" {
		b.WriteString(m)
		b.WriteString("\n")
	}

	res := out.Result
	title := res.Title
	if res.TitleFallback {
		title += r.faint.Sprint(" (whole input, nothing left for a title)")
	}
	r.field(&b, "title", title)

	if res.Date != nil {
		date := r.paint(pkgSmartinput.KindDate, res.Date.String()+" "+res.Date.Weekday().String()[:3])
		if res.DateDefaulted {
			date += r.faint.Sprint(" (today, no date given)")
		}
		r.field(&b, "date", date)
	}
	if res.Time != nil {
		r.field(&b, "time", r.paint(pkgSmartinput.KindTime, res.Time.String()))
	}
	if res.Project != "" {
		r.field(&b, "project", r.paint(pkgSmartinput.KindProject, "#"+res.Project))
	}
	if res.Label != "" {
		r.field(&b, "label", r.paint(pkgSmartinput.KindLabel, "@"+res.Label))
	}
	if res.Priority > 0 {
		r.field(&b, "priority", r.paint(pkgSmartinput.KindPriority, fmt.Sprintf("p%d", res.Priority)))
	}
	if res.Notes != "" {
		r.field(&b, "notes", r.paint(pkgSmartinput.KindNotes, res.Notes))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r renderer) field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", r.label.Sprint(runewidth.FillRight(name, 9)), value)
}

// underline returns mark repeated to the display width of s. Tabs are copied
// through so the terminal moves both rows to the same tab stop.
func underline(s, mark string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(mark, runewidth.RuneWidth(r)))
	}
	return b.String()
}
