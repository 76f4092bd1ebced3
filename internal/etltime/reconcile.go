package etltime

import (
	"time"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
)

// Reference finds the chronologically earliest reference date across the
// sources and renders it in formatOut. Each source's date is parsed with
// that source's own format. Only a strictly earlier date replaces the
// current candidate, so the first source wins ties. The returned Idx is
// the winning source's reference index.
func Reference(sources []etl.Source, formatOut string) (etl.Reference, error) {
	if len(sources) == 0 {
		return etl.Reference{}, &etl.EmptyInputError{Op: "time reference"}
	}

	var (
		earliest time.Time
		winner   etl.Reference
	)

	for i := range sources {
		src := &sources[i]

		date, err := referenceDate(src)
		if err != nil {
			return etl.Reference{}, err
		}

		if i == 0 || date.Before(earliest) {
			earliest = date
			winner = src.Time.Reference
		}
	}

	value, err := Format(formatOut, earliest)
	if err != nil {
		return etl.Reference{}, err
	}

	return etl.Reference{Idx: winner.Idx, Value: value, Format: formatOut}, nil
}

func referenceDate(src *etl.Source) (time.Time, error) {
	if src.Time == nil || src.Time.Reference.Value == "" {
		return time.Time{}, &etl.MissingReferenceError{
			Filename: src.Filename,
			Field:    src.FieldAlias,
			What:     "time.reference.value",
		}
	}

	format := src.DateFormat()
	if format == "" {
		return time.Time{}, &etl.MissingReferenceError{
			Filename: src.Filename,
			Field:    src.FieldAlias,
			What:     "format",
		}
	}

	date, err := Parse(format, src.Time.Reference.Value)
	if err != nil {
		return time.Time{}, &etl.DateParseError{
			Filename: src.Filename,
			Value:    src.Time.Reference.Value,
			Format:   format,
			Err:      err,
		}
	}

	return date, nil
}

// Interval selects the coarsest interval across the sources. The winning
// source's {unit, count} pair is returned unchanged; counts are never
// compared or combined. Only a strictly larger unit replaces the current
// candidate.
func Interval(sources []etl.Source) (etl.Interval, error) {
	if len(sources) == 0 {
		return etl.Interval{}, &etl.EmptyInputError{Op: "time interval"}
	}

	var coarsest etl.Interval

	for i := range sources {
		src := &sources[i]
		if src.Time == nil || !src.Time.Interval.Unit.IsValid() {
			return etl.Interval{}, &etl.MissingReferenceError{
				Filename: src.Filename,
				Field:    src.FieldAlias,
				What:     "time.interval.unit",
			}
		}

		if i == 0 || coarsest.Unit.Less(src.Time.Interval.Unit) {
			coarsest = src.Time.Interval
		}
	}

	return coarsest, nil
}

// Combine reconciles both the reference date and the interval.
func Combine(sources []etl.Source, formatOut string) (etl.TimeSpec, error) {
	ref, err := Reference(sources, formatOut)
	if err != nil {
		return etl.TimeSpec{}, err
	}

	interval, err := Interval(sources)
	if err != nil {
		return etl.TimeSpec{}, err
	}

	return etl.TimeSpec{Reference: ref, Interval: interval}, nil
}
