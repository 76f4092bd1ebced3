package merge

import (
	"slices"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
)

// Units derives the analysis units of a merged field set: one quality unit
// per quality field and one measurement unit per measurement value. A
// measurement's span and components are the mspan and mcomp fields that
// share at least one file with it.
func Units(fields []etl.EtlField) []etl.EtlUnit {
	var subject string

	for i := range fields {
		if fields[i].Purpose == etl.PurposeSubject {
			subject = fields[i].Name
			break
		}
	}

	var units []etl.EtlUnit

	for i := range fields {
		f := &fields[i]

		switch f.Purpose {
		case etl.PurposeQuality:
			units = append(units, etl.EtlUnit{
				Name:     f.Name,
				Kind:     etl.UnitQuality,
				Subject:  subject,
				Codomain: f.Name,
			})
		case etl.PurposeMValue:
			unit := etl.EtlUnit{
				Name:     f.Name,
				Kind:     etl.UnitMeasurement,
				Subject:  subject,
				Codomain: f.Name,
			}

			files := f.Filenames()

			for j := range fields {
				other := &fields[j]
				if !other.Purpose.IsMeasurement() || !sharesFile(files, other) {
					continue
				}

				switch other.Purpose {
				case etl.PurposeMSpan:
					if unit.Span == "" {
						unit.Span = other.Name
					}
				case etl.PurposeMComp:
					unit.Components = append(unit.Components, other.Name)
				case etl.PurposeSubject, etl.PurposeQuality, etl.PurposeMValue:
				}
			}

			units = append(units, unit)
		case etl.PurposeSubject, etl.PurposeMComp, etl.PurposeMSpan:
		}
	}

	return units
}

func sharesFile(files []string, f *etl.EtlField) bool {
	for _, s := range f.Sources {
		if slices.Contains(files, s.Filename) {
			return true
		}
	}

	return false
}
