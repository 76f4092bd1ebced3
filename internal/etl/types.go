package etl

import (
	"slices"
	"strings"
)

// Level is one observed categorical value and its frequency in one file.
// It is encoded as a two element sequence: [value, count].
type Level struct {
	Value string
	Count int `validate:"gte=0"`
}

// LevelSet is a sequence of levels.
type LevelSet []Level

// Sorted returns a copy of the set ordered by value.
func (ls LevelSet) Sorted() LevelSet {
	out := slices.Clone(ls)
	slices.SortStableFunc(out, func(a, b Level) int {
		return strings.Compare(a.Value, b.Value)
	})

	return out
}

// Total returns the sum of all counts.
func (ls LevelSet) Total() int {
	total := 0
	for _, l := range ls {
		total += l.Count
	}

	return total
}

// SymbolMap is a value remapping dictionary; Arrows maps a raw value to
// the value it should be published as.
type SymbolMap struct {
	Arrows map[string]string `yaml:"arrows" json:"arrows"`
}

// Reference is the anchor date of a time span field.
type Reference struct {
	// Idx is the position of the reference value within its source.
	Idx    int    `yaml:"idx" json:"idx"`
	Value  string `yaml:"value" json:"value"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Interval is the sampling interval of a time span field.
type Interval struct {
	Unit  TimeUnit `yaml:"unit,omitempty" json:"unit,omitempty"`
	Count int      `yaml:"count,omitempty" json:"count,omitempty"`
}

// IsComplete returns true if both unit and count are specified.
func (i Interval) IsComplete() bool {
	return i.Unit.IsValid() && i.Count > 0
}

// TimeSpec describes the temporal layout of an mspan field.
type TimeSpec struct {
	Reference Reference `yaml:"reference" json:"reference"`
	Interval  Interval  `yaml:"interval" json:"interval"`
}

// Source is one file's declaration of a single logical field.
// Sources are treated as immutable by every merge operation.
type Source struct {
	Filename   string     `yaml:"filename,omitempty" json:"filename" validate:"required"`
	HeaderIdx  int        `yaml:"header-idx" json:"header-idx" validate:"gte=0"`
	FieldAlias string     `yaml:"field-alias" json:"field-alias" validate:"required"`
	Enabled    bool       `yaml:"enabled" json:"enabled"`
	Purpose    Purpose    `yaml:"purpose" json:"purpose" validate:"required,oneof=subject quality mvalue mcomp mspan"`
	Levels     LevelSet   `yaml:"levels,omitempty" json:"levels,omitempty" validate:"dive"`
	MapSymbols *SymbolMap `yaml:"map-symbols,omitempty" json:"map-symbols,omitempty"`
	Time       *TimeSpec  `yaml:"time,omitempty" json:"time,omitempty"`
	// Format is the date format of the raw values (mspan only).
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// DateFormat returns the format the source's reference date is written in.
func (s *Source) DateFormat() string {
	if s.Format != "" {
		return s.Format
	}

	if s.Time != nil {
		return s.Time.Reference.Format
	}

	return ""
}

// HeaderView is one file's full set of field declarations.
type HeaderView struct {
	Filename string   `yaml:"filename,omitempty" json:"filename" validate:"required"`
	Enabled  bool     `yaml:"enabled" json:"enabled"`
	Fields   []Source `yaml:"fields" json:"fields" validate:"dive"`
}

// EnabledFields returns the fields that participate in validation and
// merging, ordered by header index.
func (hv *HeaderView) EnabledFields() []Source {
	var out []Source

	for _, f := range hv.Fields {
		if f.Enabled {
			out = append(out, f)
		}
	}

	slices.SortStableFunc(out, func(a, b Source) int {
		return a.HeaderIdx - b.HeaderIdx
	})

	return out
}

// EtlField is the canonical representation of one logical field merged
// across all of its sources.
type EtlField struct {
	Name       string    `yaml:"name" json:"name"`
	Purpose    Purpose   `yaml:"purpose" json:"purpose"`
	Levels     LevelSet  `yaml:"levels" json:"levels"`
	MapSymbols SymbolMap `yaml:"map-symbols" json:"map-symbols"`
	Time       *TimeSpec `yaml:"time,omitempty" json:"time,omitempty"`
	Format     string    `yaml:"format,omitempty" json:"format,omitempty"`
	// Sources is kept for provenance; sources do not reference back.
	Sources []Source `yaml:"sources" json:"sources"`
}

// Filenames returns the distinct files contributing to the field.
func (f *EtlField) Filenames() []string {
	var out []string

	for _, s := range f.Sources {
		if !slices.Contains(out, s.Filename) {
			out = append(out, s.Filename)
		}
	}

	return out
}

// UnitKind distinguishes quality units from measurement units.
type UnitKind string

const (
	UnitQuality     UnitKind = "quality"
	UnitMeasurement UnitKind = "mvalue"
)

// EtlUnit is an analysis unit derived from merged fields: a quality of the
// subject, or a measurement with its span and components.
type EtlUnit struct {
	Name       string   `yaml:"name" json:"name"`
	Kind       UnitKind `yaml:"kind" json:"kind"`
	Subject    string   `yaml:"subject" json:"subject"`
	Codomain   string   `yaml:"codomain" json:"codomain"`
	Span       string   `yaml:"mspan,omitempty" json:"mspan,omitempty"`
	Components []string `yaml:"mcomps,omitempty" json:"mcomps,omitempty"`
}
