package migration

import (
	"fmt"
	"strings"
)

// CurrentVersion is the schema version written by this build.
const CurrentVersion = "0.5.0"

// DefaultSteps returns the project's migration chain in order.
func DefaultSteps() []Step {
	return []Step{
		{
			From:        InitialVersion,
			To:          "0.3.6",
			Description: "initialize project metadata and view slices",
			Migrate:     initProjectMeta,
		},
		{
			From:        "0.3.6",
			To:          "0.3.7",
			Description: "drop cached header view errors",
			Migrate:     dropCachedErrors,
		},
		{
			From:        "0.3.7",
			To:          "0.4.0",
			Description: "nest map-symbols under arrows",
			Migrate:     nestSymbolArrows,
		},
		{
			From:        "0.4.0",
			To:          "0.4.1",
			Description: "use plural time interval units",
			Migrate:     pluralizeUnits,
		},
		{
			From:        "0.4.1",
			To:          CurrentVersion,
			Description: "default enabled flag on header view fields",
			Migrate:     defaultEnabled,
		},
	}
}

// Store layout keys.
const (
	headerViewKey  = "headerView"
	headerViewsKey = "headerViews"
	errorsKey      = "headerViewErrors"
	etlViewKey     = "etlView"
	etlFieldsKey   = "etlFields"
	fieldsKey      = "fields"
	symbolsKey     = "map-symbols"
	arrowsKey      = "arrows"
)

func initProjectMeta(s Store) (Store, error) {
	meta := s.meta()
	if meta[HistoryKey] == nil {
		meta[HistoryKey] = []any{}
	}

	if _, ok := asMap(s[headerViewKey]); !ok {
		s[headerViewKey] = map[string]any{headerViewsKey: map[string]any{}}
	}

	if _, ok := asMap(s[etlViewKey]); !ok {
		s[etlViewKey] = map[string]any{etlFieldsKey: map[string]any{}}
	}

	return s, nil
}

func dropCachedErrors(s Store) (Store, error) {
	hv, ok := asMap(s[headerViewKey])
	if !ok {
		return s, nil
	}

	delete(hv, errorsKey)

	return s, eachHeaderField(s, func(_ string, field map[string]any) error {
		delete(field, "errors")
		return nil
	})
}

func nestSymbolArrows(s Store) (Store, error) {
	nest := func(where string, field map[string]any) error {
		raw, present := field[symbolsKey]
		if !present || raw == nil {
			return nil
		}

		symbols, ok := asMap(raw)
		if !ok {
			return fmt.Errorf("%s: map-symbols is %T, not an object", where, raw)
		}

		if _, nested := symbols[arrowsKey]; nested {
			return nil
		}

		field[symbolsKey] = map[string]any{arrowsKey: symbols}

		return nil
	}

	if err := eachHeaderField(s, nest); err != nil {
		return nil, err
	}

	return s, eachEtlField(s, nest)
}

var singularUnits = map[string]string{
	"millisecond": "milliseconds",
	"second":      "seconds",
	"minute":      "minutes",
	"hour":        "hours",
	"day":         "days",
	"week":        "weeks",
	"month":       "months",
	"year":        "years",
}

func pluralizeUnits(s Store) (Store, error) {
	pluralize := func(where string, field map[string]any) error {
		tm, ok := asMap(field["time"])
		if !ok {
			return nil
		}

		interval, ok := asMap(tm["interval"])
		if !ok {
			return nil
		}

		unit, ok := interval["unit"].(string)
		if !ok {
			return nil
		}

		if plural, found := singularUnits[strings.ToLower(unit)]; found {
			interval["unit"] = plural
		}

		return nil
	}

	if err := eachHeaderField(s, pluralize); err != nil {
		return nil, err
	}

	return s, eachEtlField(s, pluralize)
}

func defaultEnabled(s Store) (Store, error) {
	return s, eachHeaderField(s, func(_ string, field map[string]any) error {
		if _, ok := field["enabled"]; !ok {
			field["enabled"] = true
		}

		return nil
	})
}

// eachHeaderField calls fn for every field object of every header view.
func eachHeaderField(s Store, fn func(where string, field map[string]any) error) error {
	hv, ok := asMap(s[headerViewKey])
	if !ok {
		return nil
	}

	views, ok := asMap(hv[headerViewsKey])
	if !ok {
		return nil
	}

	for filename, raw := range views {
		view, ok := asMap(raw)
		if !ok {
			return fmt.Errorf("header view %q is %T, not an object", filename, raw)
		}

		fields, _ := view[fieldsKey].([]any)
		for i, rawField := range fields {
			field, ok := asMap(rawField)
			if !ok {
				return fmt.Errorf("header view %q field %d is %T, not an object", filename, i, rawField)
			}

			if err := fn(fmt.Sprintf("%s[%d]", filename, i), field); err != nil {
				return err
			}
		}
	}

	return nil
}

// eachEtlField calls fn for every merged field object.
func eachEtlField(s Store, fn func(where string, field map[string]any) error) error {
	ev, ok := asMap(s[etlViewKey])
	if !ok {
		return nil
	}

	fields, ok := asMap(ev[etlFieldsKey])
	if !ok {
		return nil
	}

	for name, raw := range fields {
		field, ok := asMap(raw)
		if !ok {
			return fmt.Errorf("etl field %q is %T, not an object", name, raw)
		}

		if err := fn(name, field); err != nil {
			return err
		}
	}

	return nil
}
