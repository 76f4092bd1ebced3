package etltime

import (
	"fmt"
	"strings"
	"time"
)

// formatTokens maps display tokens to Go layout elements. Longer tokens
// come first so that scanning picks the longest match.
var formatTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"SSS", "000"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"hh", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"ZZ", "-0700"},
	{"M", "1"},
	{"D", "2"},
	{"H", "15"},
	{"h", "3"},
	{"m", "4"},
	{"s", "5"},
	{"A", "PM"},
	{"a", "pm"},
	{"Z", "-07:00"},
}

// formatLiterals are the only non-token characters a format may contain.
// Go layouts have no escape syntax, so letters and digits outside tokens
// would be read back as layout elements.
const formatLiterals = " -/:,.T"

// Layout translates a display date format (e.g. "MM-DD-YY") into a Go
// time layout (e.g. "01-02-06").
//
// Supported tokens are YYYY YY MMMM MMM MM M DD D dddd ddd HH H hh h mm m
// ss s SSS A a ZZ Z. Between tokens only the characters of
// formatLiterals may appear; bracketed escapes ("[at]") and ordinals
// ("Do") are rejected.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("empty date format")
	}

	var b strings.Builder

	for i := 0; i < len(format); {
		matched := false

		for _, t := range formatTokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true

				break
			}
		}

		if matched {
			continue
		}

		if strings.IndexByte(formatLiterals, format[i]) < 0 {
			return "", fmt.Errorf("date format %q: unsupported character %q at offset %d", format, format[i], i)
		}

		b.WriteByte(format[i])
		i++
	}

	return b.String(), nil
}

// Parse parses value using a display date format.
func Parse(format, value string) (time.Time, error) {
	layout, err := Layout(format)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(layout, strings.TrimSpace(value))
}

// Format renders t using a display date format.
func Format(format string, t time.Time) (string, error) {
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}

	return t.Format(layout), nil
}
