package etl

import (
	"strings"

	"github.com/EdmundsEcho/data-join-ui-sub004/utils"
)

//go:generate go tool stringer -type=TimeUnit -linecomment -output=timeunit_string.go

// TimeUnit is a sampling granularity. Values are declared smallest to
// largest; the declaration order is the total order used to pick the
// coarsest interval.
type TimeUnit int

const (
	_ TimeUnit = iota // zero value means "unit not specified"

	Milliseconds // milliseconds
	Seconds      // seconds
	Minutes      // minutes
	Hours        // hours
	Days         // days
	Weeks        // weeks
	Months       // months
	Years        // years
)

// IsValid returns true if the unit is one of the declared units.
func (u TimeUnit) IsValid() bool {
	return utils.IsInRange(Milliseconds, u, Years)
}

// Less reports whether u is strictly finer than other.
func (u TimeUnit) Less(other TimeUnit) bool {
	return u < other
}

var timeUnitAliases = map[string]TimeUnit{
	"millisecond": Milliseconds,
	"ms":          Milliseconds,
	"second":      Seconds,
	"minute":      Minutes,
	"hour":        Hours,
	"day":         Days,
	"week":        Weeks,
	"month":       Months,
	"year":        Years,
}

// ParseTimeUnit converts a unit name into a TimeUnit. Plural names are
// canonical; singular names are accepted as aliases.
func ParseTimeUnit(s string) (TimeUnit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for u := Milliseconds; u <= Years; u++ {
		if u.String() == name {
			return u, nil
		}
	}

	if u, ok := timeUnitAliases[name]; ok {
		return u, nil
	}

	return 0, &UnknownTimeUnitError{Value: s}
}

// MarshalText renders the canonical unit name; the zero unit renders empty.
func (u TimeUnit) MarshalText() ([]byte, error) {
	if !u.IsValid() {
		return []byte{}, nil
	}

	return []byte(u.String()), nil
}

// UnmarshalText parses a unit name. An empty value leaves the unit unset.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*u = 0
		return nil
	}

	parsed, err := ParseTimeUnit(string(text))
	if err != nil {
		return err
	}

	*u = parsed

	return nil
}
