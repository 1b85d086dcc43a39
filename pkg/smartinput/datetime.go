package smartinput

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smart-task-input/pkg/datemath"
)

// maxDatePhrase is the token count of the longest date phrase ("in 3 days").
const maxDatePhrase = 3

var (
	meridiemRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)$`)
	clock24Re  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// extractDate finds the leftmost date phrase, preferring the longest phrase
// that starts at a given token. Tokens already taken by a tag are stepped
// over, so "jan p1 5" still reads as "jan 5". Only the first phrase is taken.
func extractDate(e *extraction, dates *datemath.Parser, ref time.Time) {
	for i := range e.tokens {
		for n := maxDatePhrase; n >= 1; n-- {
			idx, ok := e.unclaimed(i, n)
			if !ok {
				continue
			}
			day, err := dates.Parse(e.phrase(idx), ref)
			if err != nil {
				continue
			}
			d := DateOf(day)
			e.result.Date = &d
			e.claimRuns(idx, KindDate)
			return
		}
	}
}

// extractTime finds the first time of day: "3pm", "9:30am", "15:00" or the
// split form "3 pm". A preceding "at" or "by" is consumed with it. As with
// dates, tokens taken by earlier extractors are stepped over.
func extractTime(e *extraction) {
	for i, tok := range e.tokens {
		if e.claimed[i] {
			continue
		}

		idx := []int{i}
		clock, ok := parseClock(tok.Folded)
		if !ok {
			if pair, found := e.unclaimed(i, 2); found && isMeridiem(e.tokens[pair[1]].Folded) {
				clock, ok = parseClock(tok.Folded + e.tokens[pair[1]].Folded)
				idx = pair
			}
		}
		if !ok {
			continue
		}

		if j := e.prevUnclaimed(i); j >= 0 {
			if prev := e.tokens[j].Folded; prev == "at" || prev == "by" {
				idx = append([]int{j}, idx...)
			}
		}

		e.result.Time = &clock
		e.claimRuns(idx, KindTime)
		return
	}
}

// parseClock parses a single case-folded token as a time of day.
func parseClock(s string) (Clock, bool) {
	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return Clock{}, false
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
		return Clock{Hour: hour, Minute: minute}, true
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return Clock{}, false
		}
		return Clock{Hour: hour, Minute: minute}, true
	}

	return Clock{}, false
}

func isMeridiem(s string) bool {
	return s == "am" || s == "pm"
}

// phrase joins the folded tokens at idx with single spaces.
func (e *extraction) phrase(idx []int) string {
	if len(idx) == 1 {
		return e.tokens[idx[0]].Folded
	}
	parts := make([]string, 0, len(idx))
	for _, i := range idx {
		parts = append(parts, e.tokens[i].Folded)
	}
	return strings.Join(parts, " ")
}
