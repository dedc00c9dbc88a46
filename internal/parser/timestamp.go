package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseTimestamp converts a cue timestamp into seconds.
//
// Accepted shapes are "h:m:s", "m:s" and a bare seconds value; the seconds
// field may carry a fraction with either '.' or ','. Hour and minute fields
// that are not numbers count as zero, while an unparseable seconds field makes
// the whole result NaN. The function never fails.
func ParseTimestamp(raw string) float64 {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	switch len(parts) {
	case 1:
		return parseSeconds(parts[0])
	case 2:
		return float64(parseWhole(parts[0]))*60 + parseSeconds(parts[1])
	case 3:
		return float64(parseWhole(parts[0]))*3600 + float64(parseWhole(parts[1]))*60 + parseSeconds(parts[2])
	default:
		return math.NaN()
	}
}

func parseWhole(field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return n
}

func parseSeconds(field string) float64 {
	field = strings.ReplaceAll(strings.TrimSpace(field), ",", ".")
	s, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return math.NaN()
	}
	return s
}

// roundMillis rounds seconds to 3 decimal places.
func roundMillis(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}
