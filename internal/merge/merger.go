package merge

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/diagnostic"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etltime"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/headerview"
)

// Merger builds EtlFields from sources.
type Merger struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a Merger. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Merger{cfg: cfg, logger: logger}
}

// ValidationError is returned by Fields when the header views break the
// structural rules; Diagnostics carries the full report.
type ValidationError struct {
	Diagnostics *diagnostic.Diagnostics
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("header views are invalid: %v", e.Diagnostics.Error())
}

// Group is the set of sources that declare one logical field.
type Group struct {
	Name    string
	Sources []etl.Source
}

// GroupSources groups the enabled fields of enabled header views by field
// alias. Files are visited in filename order and fields in header order;
// groups keep the order in which their name was first seen. Subject fields
// of every file form a single group named after the first subject seen.
func GroupSources(hvs etl.HeaderViews) []Group {
	var groups []Group

	index := map[string]int{}
	subject := -1

	for _, name := range hvs.Filenames() {
		hv := hvs[name]
		if !hv.Enabled {
			continue
		}

		for _, f := range hv.EnabledFields() {
			if f.Purpose == etl.PurposeSubject {
				if subject < 0 {
					subject = len(groups)
					groups = append(groups, Group{Name: f.FieldAlias})
				}

				groups[subject].Sources = append(groups[subject].Sources, f)

				continue
			}

			i, ok := index[f.FieldAlias]
			if !ok {
				i = len(groups)
				index[f.FieldAlias] = i
				groups = append(groups, Group{Name: f.FieldAlias})
			}

			groups[i].Sources = append(groups[i].Sources, f)
		}
	}

	return groups
}

// Field merges the sources of one logical field.
func (m *Merger) Field(name string, sources []etl.Source) (etl.EtlField, error) {
	if len(sources) == 0 {
		return etl.EtlField{}, &etl.EmptyInputError{Op: "merge field " + name}
	}

	purpose, err := m.CombineSourcePurposes(sources)
	if err != nil {
		return etl.EtlField{}, fmt.Errorf("field %q: %w", name, err)
	}

	field := etl.EtlField{
		Name:       name,
		Purpose:    purpose,
		Levels:     m.CombineLevels(sources),
		MapSymbols: m.CombineSymbolMaps(sources),
		Sources:    slices.Clone(sources),
	}

	if purpose == etl.PurposeMSpan {
		format := m.cfg.TimeFormat
		if format == "" {
			format = sources[0].DateFormat()
		}

		ts, err := etltime.Combine(sources, format)
		if err != nil {
			return etl.EtlField{}, fmt.Errorf("field %q: %w", name, err)
		}

		field.Time = &ts
		field.Format = format
	}

	m.logger.Debug("merged field",
		zap.String("field", name),
		zap.String("purpose", string(purpose)),
		zap.Int("sources", len(sources)),
		zap.Int("levels", len(field.Levels)),
		zap.Int("observations", field.Levels.Total()))

	return field, nil
}

// Fields validates the header views, groups their fields and merges every
// group. Groups are merged concurrently; the result keeps group order.
func (m *Merger) Fields(ctx context.Context, hvs etl.HeaderViews) ([]etl.EtlField, error) {
	diags := headerview.ValidateDiagnostics(hvs)
	for _, w := range diags.Warnings {
		m.logger.Warn(w.Message, zap.String("file", w.File), zap.String("field", w.Field), zap.String("code", w.Code))
	}

	if diags.HasErrors() {
		return nil, &ValidationError{Diagnostics: diags}
	}

	groups := GroupSources(hvs)
	fields := make([]etl.EtlField, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	if m.cfg.Workers > 0 {
		g.SetLimit(m.cfg.Workers)
	}

	for i := range groups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			field, err := m.Field(groups[i].Name, groups[i].Sources)
			if err != nil {
				return err
			}

			fields[i] = field

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return fields, nil
}
