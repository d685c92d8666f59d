// Package cli implements the line-oriented command surface of the parking
// system: tokenizing, dispatch to the core services and console formatting.
package cli

import (
	"strconv"
	"strings"

	"github.com/citypark/parking-system/internal/core/domain"
)

// tokenize splits a command line into fields. A field opened with a double
// quote runs to the closing quote and may contain spaces; an unterminated
// quote runs to the end of the line. Quotes are stripped from the result.
func tokenize(line string) []string {
	var tokens []string
	rest := strings.TrimSpace(line)
	for rest != "" {
		if rest[0] == '"' {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				tokens = append(tokens, rest[1:])
				break
			}
			tokens = append(tokens, rest[1:1+end])
			rest = strings.TrimLeft(rest[end+2:], " \t")
			continue
		}
		cut := strings.IndexAny(rest, " \t")
		if cut < 0 {
			tokens = append(tokens, rest)
			break
		}
		tokens = append(tokens, rest[:cut])
		rest = strings.TrimLeft(rest[cut:], " \t")
	}
	return tokens
}

// parseDate reads a DD-MM-YYYY field. Only the shape is checked here;
// calendar bounds are the core's concern.
func parseDate(s string) (domain.Date, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return domain.Date{}, false
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.Date{}, false
	}
	return domain.Date{Day: day, Month: month, Year: year}, true
}

// parseClock reads an HH:MM field, zero padding optional.
func parseClock(s string) (domain.Clock, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return domain.Clock{}, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return domain.Clock{}, false
	}
	return domain.Clock{Hour: hour, Minute: minute}, true
}

// parseTimestamp reads a date field and a clock field together.
func parseTimestamp(dateField, clockField string) (domain.Timestamp, bool) {
	date, ok := parseDate(dateField)
	if !ok {
		return domain.Timestamp{}, false
	}
	clock, ok := parseClock(clockField)
	if !ok {
		return domain.Timestamp{}, false
	}
	return domain.Timestamp{Date: date, Clock: clock}, true
}
