package http

import (
	"errors"
	"time"
	"unicode/utf8"

	"smart-task-input/internal/smartinput"
	"smart-task-input/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text          string     `json:"text"`
	ReferenceTime *time.Time `json:"reference_time"`
	Timezone      string     `json:"timezone" binding:"max=64"`
}

func (r parseReq) validate() error {
	if !utf8.ValidString(r.Text) {
		return errors.New("text is not valid UTF-8")
	}
	return nil
}

func (r parseReq) toInput() smartinput.ParseInput {
	input := smartinput.ParseInput{
		Text:     r.Text,
		Timezone: r.Timezone,
	}
	if r.ReferenceTime != nil {
		input.ReferenceTime = *r.ReferenceTime
	}
	return input
}

// --- Response DTOs ---

// spanResp is a classified range of the input. Offsets count runes, so a
// JavaScript client can slice with them directly for BMP text.
type spanResp struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Kind  string `json:"kind"`
	Text  string `json:"text"`
}

type parseResp struct {
	Title         string     `json:"title"`
	Date          string     `json:"date,omitempty"`
	Time          string     `json:"time,omitempty"`
	Project       string     `json:"project,omitempty"`
	Label         string     `json:"label,omitempty"`
	Priority      int        `json:"priority,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	DateDefaulted bool       `json:"date_defaulted"`
	TitleFallback bool       `json:"title_fallback"`
	Timezone      string     `json:"timezone"`
	ReferenceTime string     `json:"reference_time"`
	Spans         []spanResp `json:"spans"`
	Segments      []spanResp `json:"segments"`
}

func (h *handler) newParseResp(text string, out smartinput.ParseOutput) parseResp {
	res := out.Result
	resp := parseResp{
		Title:         res.Title,
		Project:       res.Project,
		Label:         res.Label,
		Priority:      res.Priority,
		Notes:         res.Notes,
		DateDefaulted: res.DateDefaulted,
		TitleFallback: res.TitleFallback,
		Timezone:      out.Timezone,
		ReferenceTime: out.ReferenceTime.Format(time.RFC3339),
		Spans:         make([]spanResp, 0, len(res.Spans)),
		Segments:      make([]spanResp, 0, len(out.Segments)),
	}
	if res.Date != nil {
		resp.Date = res.Date.String()
	}
	if res.Time != nil {
		resp.Time = res.Time.String()
	}

	idx := newRuneIndex(text)
	for _, s := range res.Spans {
		resp.Spans = append(resp.Spans, spanResp{
			Start: idx.at(s.Start),
			End:   idx.at(s.End),
			Kind:  string(s.Kind),
			Text:  text[s.Start:s.End],
		})
	}
	for _, s := range out.Segments {
		resp.Segments = append(resp.Segments, spanResp{
			Start: idx.at(s.Start),
			End:   idx.at(s.End),
			Kind:  string(s.Kind),
			Text:  s.Text,
		})
	}
	return resp
}

type draftResp struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	DueDate  *response.Date `json:"due_date,omitempty"`
	DueTime  string         `json:"due_time,omitempty"`
	DueAt    string         `json:"due_at,omitempty"`
	AllDay   bool           `json:"all_day"`
	Project  string         `json:"project,omitempty"`
	Label    string         `json:"label,omitempty"`
	Priority int            `json:"priority,omitempty"`
	Notes    string         `json:"notes,omitempty"`
	Timezone string         `json:"timezone"`
}

func (h *handler) newDraftResp(out smartinput.DraftOutput) draftResp {
	d := out.Draft
	resp := draftResp{
		ID:       d.ID,
		Title:    d.Title,
		AllDay:   d.AllDay,
		Project:  d.Project,
		Label:    d.Label,
		Priority: d.Priority,
		Notes:    d.Notes,
		Timezone: d.Timezone,
	}
	if d.HasDue() {
		day := response.Date(*d.Due)
		resp.DueDate = &day
		if !d.AllDay {
			resp.DueTime = d.Due.Format("15:04")
			resp.DueAt = d.Due.Format(time.RFC3339)
		}
	}
	return resp
}

// runeIndex converts byte offsets of one string into rune offsets.
type runeIndex []int

func newRuneIndex(text string) runeIndex {
	idx := make(runeIndex, len(text)+1)
	n := -1
	for i := 0; i < len(text); i++ {
		if utf8.RuneStart(text[i]) {
			n++
		}
		idx[i] = n
	}
	idx[len(text)] = utf8.RuneCountInString(text)
	return idx
}

func (idx runeIndex) at(byteOffset int) int {
	if byteOffset < 0 || byteOffset >= len(idx) {
		return 0
	}
	return idx[byteOffset]
}
