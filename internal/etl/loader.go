package etl

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// HeaderViews maps a filename to the header view declared for it.
type HeaderViews map[string]HeaderView

// Filenames returns the filenames in sorted order.
func (hvs HeaderViews) Filenames() []string {
	return slices.Sorted(maps.Keys(hvs))
}

// SubjectAlias returns the alias of the first enabled subject field,
// visiting enabled views in filename order and fields in header order.
// It is the name the merged subject field is published under.
func (hvs HeaderViews) SubjectAlias() (string, bool) {
	for _, name := range hvs.Filenames() {
		hv := hvs[name]
		if !hv.Enabled {
			continue
		}

		for _, f := range hv.EnabledFields() {
			if f.Purpose == PurposeSubject {
				return f.FieldAlias, true
			}
		}
	}

	return "", false
}

// LoadHeaderViews loads and parses a YAML (or JSON) header view document.
func LoadHeaderViews(path string) (HeaderViews, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header views %s: %w", path, err)
	}

	return ParseHeaderViews(data)
}

// ParseHeaderViews parses a header view document keyed by filename.
func ParseHeaderViews(data []byte) (HeaderViews, error) {
	var hvs HeaderViews

	err := yaml.Unmarshal(data, &hvs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header views: %w", err)
	}

	if hvs == nil {
		hvs = HeaderViews{}
	}

	applyDefaults(hvs)

	return hvs, nil
}

// applyDefaults propagates the document key into each view and its fields.
func applyDefaults(hvs HeaderViews) {
	for name, hv := range hvs {
		if hv.Filename == "" {
			hv.Filename = name
		}

		for i := range hv.Fields {
			if hv.Fields[i].Filename == "" {
				hv.Fields[i].Filename = hv.Filename
			}
		}

		hvs[name] = hv
	}
}

// Marshal serializes any model value to YAML.
func Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
