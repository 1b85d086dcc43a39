package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownExpression is returned when a phrase is not part of the date vocabulary.
var ErrUnknownExpression = errors.New("unknown date expression")

// DateFormatISO is the layout of absolute dates accepted and produced by the parser.
const DateFormatISO = "2006-01-02"

var (
	inDurationRe = regexp.MustCompile(`^in (\d{1,3}) (day|days|week|weeks|month|months)$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+) (\d{1,2})(?:st|nd|rd|th)?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already resolved location. A nil
// location means UTC.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the timezone the parser resolves dates in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time at the start
// of the resolved day. The baseTime is the reference point; its calendar date
// is taken in the parser's timezone.
//
// Unrecognized phrases return ErrUnknownExpression.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")
	base := p.startOfDay(baseTime)

	switch relative {
	case "today":
		return base, nil
	case "tomorrow":
		return base.AddDate(0, 0, 1), nil
	case "yesterday":
		return base.AddDate(0, 0, -1), nil
	case "this week":
		return p.endOfWeek(base), nil
	case "next week":
		return base.AddDate(0, 0, 7), nil
	}

	if wd, ok := weekdays[relative]; ok {
		return p.upcoming(base, wd), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	if t, err := time.ParseInLocation(DateFormatISO, relative, p.location); err == nil {
		return t, nil
	}

	if t, ok := p.parseMonthDay(relative, base); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownExpression, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnknownExpression, relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), nil
	default:
		return base.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The result lies in the week after the one a bare weekday name resolves to.
func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnknownExpression, dayName)
	}
	return p.upcoming(base, targetWeekday).AddDate(0, 0, 7), nil
}

// parseMonthDay handles "jan 15", "january 15th". Dates already behind the
// base day roll over to the next year.
func (p *Parser) parseMonthDay(relative string, base time.Time) (time.Time, bool) {
	matches := monthDayRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, false
	}
	month, ok := months[matches[1]]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(matches[2])

	for _, year := range []int{base.Year(), base.Year() + 1} {
		t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
		if t.Month() != month || t.Day() != day {
			// Normalized away, e.g. feb 29 outside a leap year.
			continue
		}
		if !t.Before(base) {
			return t, true
		}
	}
	return time.Time{}, false
}

// upcoming returns the first day strictly after base falling on wd.
func (p *Parser) upcoming(base time.Time, wd time.Weekday) time.Time {
	daysUntil := int(wd - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// endOfWeek returns the Sunday closing the Monday-based week of base.
func (p *Parser) endOfWeek(base time.Time) time.Time {
	weekday := int(base.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return base.AddDate(0, 0, 7-weekday)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
