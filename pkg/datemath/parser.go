package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves free-text date and time expressions to absolute time.Time
// values. Parse never fails: when nothing in the text is recognizable the
// result is a best-effort default (tomorrow at 23:59).
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	dayFirstRe  = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	yearFirstRe = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
	inDaysRe    = regexp.MustCompile(`in (\d+) days?`)
	clockRe     = regexp.MustCompile(`(?i)(\d{1,2})(:\d{2})?\s*(am|pm)`)
)

// relativePhrases is an ordered (pattern, offset) sequence; the longer
// "day after tomorrow" must come before "tomorrow" so substring matching
// cannot shadow it.
var relativePhrases = []struct {
	phrase string
	days   int
}{
	{"today", 0},
	{"day after tomorrow", 2},
	{"tomorrow", 1},
	{"next week", 7},
	{"next month", 30},
}

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Parse resolves the text to an absolute due timestamp relative to baseTime.
// Date rules are tried in priority order, first match wins; a clock time
// ("3pm", "10:30 am") is searched independently and overrides the time of
// day. Without a clock time the result is pinned to 23:59.
func (p *Parser) Parse(text string, baseTime time.Time) time.Time {
	base := baseTime.In(p.location)
	lower := strings.ToLower(text)

	date := p.parseDate(lower, base)

	if m := clockRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		hour = hour % 12
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2][1:])
		}
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
		return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 0, 0, p.location)
}

// parseDate resolves only the calendar date portion.
func (p *Parser) parseDate(lower string, base time.Time) time.Time {
	if d, ok := p.parseAbsolute(lower); ok {
		return d
	}

	for _, rel := range relativePhrases {
		if strings.Contains(lower, rel.phrase) {
			return base.AddDate(0, 0, rel.days)
		}
	}

	if m := inDaysRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return base.AddDate(0, 0, n)
	}

	for _, wd := range weekdays {
		if strings.Contains(lower, wd.name) {
			delta := (int(wd.day) - int(base.Weekday()) + 7) % 7
			return base.AddDate(0, 0, delta)
		}
	}

	return base.AddDate(0, 0, 1)
}

// parseAbsolute handles numeric date patterns like 25/12/2026, 2026-12-25
// and 25-12-26. Disambiguation: a first group above 31 means year-first; a
// last group above 31 means day-first with a full year; otherwise the last
// group is a 2-digit year expanded to 20YY.
func (p *Parser) parseAbsolute(lower string) (time.Time, bool) {
	for _, re := range []*regexp.Regexp{dayFirstRe, yearFirstRe} {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		g1, _ := strconv.Atoi(m[1])
		g2, _ := strconv.Atoi(m[2])
		g3, _ := strconv.Atoi(m[3])

		var year, month, day int
		switch {
		case g1 > 31: // YYYY/MM/DD
			year, month, day = g1, g2, g3
		case g3 > 31: // DD/MM/YYYY
			year, month, day = g3, g2, g1
		default: // DD/MM/YY
			year, month, day = 2000+g3, g2, g1
		}

		if !validDate(year, month, day) {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), true
	}
	return time.Time{}, false
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	// Normalizing through time.Date detects day overflow (e.g. Feb 30).
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Day() == day && d.Month() == time.Month(month) && d.Year() == year
}
