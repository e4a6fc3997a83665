package demo

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateQualifier records the precision of a GenDate.
type DateQualifier string

const (
	DateExact DateQualifier = "exact"
	DateAbout DateQualifier = "abt"
	DateEst   DateQualifier = "est"
	DateBef   DateQualifier = "bef"
	DateAft   DateQualifier = "aft"
)

// IsValid reports whether d is one of the known qualifiers.
func (d DateQualifier) IsValid() bool {
	switch d {
	case DateExact, DateAbout, DateEst, DateBef, DateAft:
		return true
	default:
		return false
	}
}

// GenDate is a fuzzy-precision date: genealogical records routinely carry
// "about 1850" or "before 1901" rather than a calendar date, so Year/Month/Day
// are pointers and may be partially known.
type GenDate struct {
	Raw       string
	Qualifier DateQualifier
	Year      *int
	Month     *int
	Day       *int
}

// ParseGenDate parses a loosely formatted date string such as "abt 1850",
// "bef 12 MAR 1901", or "1850" into a GenDate.
func ParseGenDate(s string) GenDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return GenDate{}
	}

	gd := GenDate{Raw: s, Qualifier: DateExact}
	upper := strings.ToUpper(s)

	switch {
	case strings.HasPrefix(upper, "ABT "):
		gd.Qualifier = DateAbout
		upper = strings.TrimPrefix(upper, "ABT ")
	case strings.HasPrefix(upper, "ABOUT "):
		gd.Qualifier = DateAbout
		upper = strings.TrimPrefix(upper, "ABOUT ")
	case strings.HasPrefix(upper, "EST "):
		gd.Qualifier = DateEst
		upper = strings.TrimPrefix(upper, "EST ")
	case strings.HasPrefix(upper, "BEF "):
		gd.Qualifier = DateBef
		upper = strings.TrimPrefix(upper, "BEF ")
	case strings.HasPrefix(upper, "BEFORE "):
		gd.Qualifier = DateBef
		upper = strings.TrimPrefix(upper, "BEFORE ")
	case strings.HasPrefix(upper, "AFT "):
		gd.Qualifier = DateAft
		upper = strings.TrimPrefix(upper, "AFT ")
	case strings.HasPrefix(upper, "AFTER "):
		gd.Qualifier = DateAft
		upper = strings.TrimPrefix(upper, "AFTER ")
	}

	parseSimpleDate(upper, &gd.Year, &gd.Month, &gd.Day)
	return gd
}

var monthMap = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var reverseMonthMap = map[int]string{
	1: "JAN", 2: "FEB", 3: "MAR", 4: "APR", 5: "MAY", 6: "JUN",
	7: "JUL", 8: "AUG", 9: "SEP", 10: "OCT", 11: "NOV", 12: "DEC",
}

func parseSimpleDate(s string, year, month, day **int) {
	parts := strings.Fields(strings.TrimSpace(s))
	switch len(parts) {
	case 1:
		if y, err := strconv.Atoi(parts[0]); err == nil {
			*year = &y
		}
	case 2:
		if m, ok := monthMap[parts[0]]; ok {
			*month = &m
		}
		if y, err := strconv.Atoi(parts[1]); err == nil {
			*year = &y
		}
	case 3:
		if d, err := strconv.Atoi(parts[0]); err == nil {
			*day = &d
		}
		if m, ok := monthMap[parts[1]]; ok {
			*month = &m
		}
		if y, err := strconv.Atoi(parts[2]); err == nil {
			*year = &y
		}
	}
}

// String renders the date for display, preferring the qualifier prefix
// over the originally parsed raw text so re-parsed dates render uniformly.
func (g GenDate) String() string {
	if g.Year == nil {
		return g.Raw
	}
	var prefix string
	switch g.Qualifier {
	case DateAbout:
		prefix = "abt "
	case DateEst:
		prefix = "est "
	case DateBef:
		prefix = "bef "
	case DateAft:
		prefix = "aft "
	}
	return prefix + formatSimpleDate(g.Year, g.Month, g.Day)
}

func formatSimpleDate(year, month, day *int) string {
	if year == nil {
		return ""
	}
	var parts []string
	if day != nil {
		parts = append(parts, strconv.Itoa(*day))
	}
	if month != nil && *month >= 1 && *month <= 12 {
		parts = append(parts, reverseMonthMap[*month])
	}
	parts = append(parts, strconv.Itoa(*year))
	return strings.Join(parts, " ")
}

// IsEmpty reports whether the date carries no parsed components.
func (g GenDate) IsEmpty() bool {
	return g.Year == nil && g.Month == nil && g.Day == nil
}

// ToTime converts the date to a time.Time for sorting, using the earliest
// plausible value for any unknown component.
func (g GenDate) ToTime() time.Time {
	if g.Year == nil {
		return time.Time{}
	}
	month := time.January
	day := 1
	if g.Month != nil {
		month = time.Month(*g.Month)
	}
	if g.Day != nil {
		day = *g.Day
	}
	return time.Date(*g.Year, month, day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether g sorts before other.
func (g GenDate) Before(other GenDate) bool {
	return g.ToTime().Before(other.ToTime())
}

// After reports whether g sorts after other.
func (g GenDate) After(other GenDate) bool {
	return g.ToTime().After(other.ToTime())
}

// Validate checks the parsed components are in range.
func (g GenDate) Validate() error {
	if g.Month != nil && (*g.Month < 1 || *g.Month > 12) {
		return fmt.Errorf("invalid month: %d", *g.Month)
	}
	if g.Day != nil && (*g.Day < 1 || *g.Day > 31) {
		return fmt.Errorf("invalid day: %d", *g.Day)
	}
	return nil
}
