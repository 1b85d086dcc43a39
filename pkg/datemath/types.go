package datemath

import "time"

// ParseResult holds the result of parsing a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

// AllDay returns an all-day result for the day containing t.
func (p *Parser) AllDay(t time.Time) ParseResult {
	return ParseResult{AbsoluteTime: p.startOfDay(t), IsAllDay: true}
}

// At returns the instant hour:minute on the day containing t, in the parser's timezone.
func (p *Parser) At(t time.Time, hour, minute int) ParseResult {
	day := p.startOfDay(t)
	return ParseResult{
		AbsoluteTime: time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location),
	}
}
