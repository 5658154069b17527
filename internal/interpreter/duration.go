package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// MinDuration is the hard floor for any estimate, in minutes.
const MinDuration = 10

const defaultBase = 45

// categoryBase is the per-category base duration in minutes.
var categoryBase = map[string]int{
	"shopping": 45, "work": 90, "office": 30, "interview": 60,
	"personal": 30, "health": 45, "finance": 30,
	"learning": 60, "travel": 120, "home": 60, "other": 45,
}

// intensityRules is an ordered (keyword, multiplier) sequence; the first
// textual match wins.
var intensityRules = []struct {
	keyword    string
	multiplier float64
}{
	{"quick", 0.3},
	{"fast", 0.3},
	{"brief", 0.4},
	{"standard", 1.0},
	{"complete", 1.7},
	{"deep", 2.0},
}

// keywordMinutes is an ordered (keyword, minutes) sequence. A match here
// overrides the category base entirely; the intensity multiplier still
// applies.
var keywordMinutes = []struct {
	keyword string
	minutes int
}{
	{"email", 15},
	{"call", 20},
	{"meeting", 60},
	{"report", 120},
	{"project", 180},
	{"shopping", 60},
	{"study", 90},
	{"doctor", 60},
}

var (
	minutesRe = regexp.MustCompile(`(\d+)\s*(minutes?|mins?)`)
	hoursRe   = regexp.MustCompile(`(\d+)\s*(hours?|hrs?)`)
)

// EstimateDuration maps text plus category to an estimated duration in
// minutes. Explicit numeric durations ignore the intensity multiplier; the
// keyword table and the category base both honor it. Result is always at
// least MinDuration.
func EstimateDuration(text, category string) int {
	base, ok := categoryBase[category]
	if !ok {
		base = defaultBase
	}

	lower := strings.ToLower(text)

	multiplier := 1.0
	for _, rule := range intensityRules {
		if strings.Contains(lower, rule.keyword) {
			multiplier = rule.multiplier
			break
		}
	}

	for _, kw := range keywordMinutes {
		if strings.Contains(lower, kw.keyword) {
			return atLeastMin(int(float64(kw.minutes) * multiplier))
		}
	}

	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		val, _ := strconv.Atoi(m[1])
		return atLeastMin(val)
	}
	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		val, _ := strconv.Atoi(m[1])
		return atLeastMin(val * 60)
	}

	return atLeastMin(int(float64(base) * multiplier))
}

func atLeastMin(minutes int) int {
	if minutes < MinDuration {
		return MinDuration
	}
	return minutes
}
