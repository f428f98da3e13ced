package datemath

import (
	"fmt"
	"time"
)

// Parser anchors relative date arithmetic to a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Istanbul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// At returns the calendar day of base offset by daysAhead, at hour:min
// in the parser's timezone.
func (p *Parser) At(base time.Time, daysAhead, hour, min int) time.Time {
	t := base.In(p.location).AddDate(0, 0, daysAhead)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, p.location)
}

// NextWeekday returns the next future occurrence of target after base.
// A weekday equal to base's own resolves one week ahead.
func (p *Parser) NextWeekday(base time.Time, target time.Weekday) time.Time {
	base = base.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// EndOfWeek returns Sunday 23:59 of base's calendar week.
// The week runs Monday through Sunday; time.Weekday counts Sunday as 0.
func (p *Parser) EndOfWeek(base time.Time) time.Time {
	base = base.In(p.location)
	weekday := int(base.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return p.At(base, 7-weekday, 23, 59)
}

// EndOfMonth returns 23:59 on the last day of base's month.
func (p *Parser) EndOfMonth(base time.Time) time.Time {
	base = base.In(p.location)
	firstOfNext := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, 1, 0)
	last := firstOfNext.AddDate(0, 0, -1)
	return time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the given day in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
