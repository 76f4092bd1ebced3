package merge

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/headerview"
)

const twoFiles = `
sales-2016.csv:
  fields:
    - header-idx: 0
      field-alias: store
      purpose: subject
      levels: [[s1, 10], [s2, 4]]
    - header-idx: 1
      field-alias: month
      purpose: mspan
      format: MM-DD-YY
      levels: [[01-06-16, 14]]
      time:
        reference: {idx: 0, value: 01-06-16}
        interval: {unit: months, count: 1}
    - header-idx: 2
      field-alias: units
      purpose: mvalue
    - header-idx: 3
      field-alias: color
      purpose: quality
      levels: [[red, 8], [blue, 6]]
      map-symbols:
        arrows: {r: red}
sales-2017.csv:
  fields:
    - header-idx: 0
      field-alias: store_code
      purpose: subject
      levels: [[s2, 1], [s3, 9]]
    - header-idx: 1
      field-alias: month
      purpose: mspan
      format: MM-DD-YY
      time:
        reference: {idx: 3, value: 05-01-16}
        interval: {unit: years, count: 1}
    - header-idx: 2
      field-alias: color
      purpose: quality
      levels: [[red, 1], [green, 2]]
      map-symbols:
        arrows: {r: RED, g: green}
    - header-idx: 3
      field-alias: promo
      purpose: mcomp
    - header-idx: 4
      field-alias: units
      purpose: mvalue
`

func loadTwoFiles(t *testing.T) etl.HeaderViews {
	t.Helper()

	hvs, err := etl.ParseHeaderViews([]byte(twoFiles))
	require.NoError(t, err)
	require.NoError(t, etl.ValidateSchema(hvs))

	return hvs
}

func TestGroupSources(t *testing.T) {
	groups := GroupSources(loadTwoFiles(t))

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}

	assert.Equal(t, []string{"store", "month", "units", "color", "promo"}, names)
	assert.Len(t, groups[0].Sources, 2, "subjects of every file form one group")
	assert.Equal(t, "store_code", groups[0].Sources[1].FieldAlias)
	assert.Len(t, groups[4].Sources, 1)
}

func TestMerger_Field_TimeSpan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeFormat = "YY-MM"
	m := New(cfg, nil)

	groups := GroupSources(loadTwoFiles(t))
	field, err := m.Field(groups[1].Name, groups[1].Sources)
	require.NoError(t, err, spew.Sdump(groups[1]))

	assert.Equal(t, etl.PurposeMSpan, field.Purpose)
	require.NotNil(t, field.Time)
	assert.Equal(t, "16-01", field.Time.Reference.Value)
	assert.Equal(t, 0, field.Time.Reference.Idx)
	assert.Equal(t, etl.Interval{Unit: etl.Years, Count: 1}, field.Time.Interval)
	assert.Equal(t, "YY-MM", field.Format)
	assert.Len(t, field.Sources, 2)
}

func TestMerger_Field_DefaultFormat(t *testing.T) {
	m := New(DefaultConfig(), nil)

	groups := GroupSources(loadTwoFiles(t))
	field, err := m.Field(groups[1].Name, groups[1].Sources)
	require.NoError(t, err)

	assert.Equal(t, "MM-DD-YY", field.Format)
	assert.Equal(t, "01-06-16", field.Time.Reference.Value)
}

func TestMerger_Field_Errors(t *testing.T) {
	m := New(DefaultConfig(), nil)

	_, err := m.Field("nothing", nil)
	var empty *etl.EmptyInputError
	require.ErrorAs(t, err, &empty)

	_, err = m.Field("month", []etl.Source{{Filename: "a.csv", FieldAlias: "month", Purpose: etl.PurposeMSpan}})
	var missing *etl.MissingReferenceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "a.csv", missing.Filename)
}

func TestMerger_Fields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 2
	m := New(cfg, nil)

	fields, err := m.Fields(context.Background(), loadTwoFiles(t))
	require.NoError(t, err)
	require.Len(t, fields, 5)

	store := fields[0]
	assert.Equal(t, "store", store.Name)
	assert.Equal(t, etl.PurposeSubject, store.Purpose)
	assert.Equal(t, etl.LevelSet{{Value: "s1", Count: 10}, {Value: "s2", Count: 5}, {Value: "s3", Count: 9}}, store.Levels)

	color := fields[3]
	assert.Equal(t, "color", color.Name)
	assert.Equal(t, etl.LevelSet{{Value: "blue", Count: 6}, {Value: "green", Count: 2}, {Value: "red", Count: 9}}, color.Levels)
	assert.Equal(t, map[string]string{"r": "RED", "g": "green"}, color.MapSymbols.Arrows)
	assert.Equal(t, []string{"sales-2016.csv", "sales-2017.csv"}, color.Filenames())
}

func TestMerger_Fields_Invalid(t *testing.T) {
	hvs := loadTwoFiles(t)
	hv := hvs["sales-2017.csv"]
	hv.Fields[0].Purpose = etl.PurposeQuality
	hvs["sales-2017.csv"] = hv

	_, err := New(DefaultConfig(), nil).Fields(context.Background(), hvs)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, map[string][]string{
		"sales-2017.csv": {headerview.MsgMissingSubject},
	}, invalid.Diagnostics.ByFile())
}

func TestMerger_Fields_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig(), nil).Fields(ctx, loadTwoFiles(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGroupSources_SkipsDisabledView(t *testing.T) {
	hvs, err := etl.ParseHeaderViews([]byte(`
archive.csv:
  enabled: false
  fields:
    - {header-idx: 0, field-alias: legacy, purpose: quality}
sales.csv:
  fields:
    - {header-idx: 0, field-alias: store, purpose: subject}
`))
	require.NoError(t, err)

	groups := GroupSources(hvs)
	require.Len(t, groups, 1)
	assert.Equal(t, "store", groups[0].Name)
	assert.Equal(t, "sales.csv", groups[0].Sources[0].Filename)
}

func TestMerger_Fields_AliasCollidesWithSubject(t *testing.T) {
	hvs, err := etl.ParseHeaderViews([]byte(`
a.csv:
  fields:
    - {header-idx: 0, field-alias: store, purpose: subject}
b.csv:
  fields:
    - {header-idx: 0, field-alias: id, purpose: subject}
    - {header-idx: 1, field-alias: store, purpose: quality}
`))
	require.NoError(t, err)

	fields, err := New(DefaultConfig(), nil).Fields(context.Background(), hvs)
	assert.Nil(t, fields)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, map[string][]string{
		"b.csv": {headerview.MsgSubjectCollision},
	}, invalid.Diagnostics.ByFile())
}

func TestMerger_Field_LogsObservations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := New(DefaultConfig(), zap.New(core))

	groups := GroupSources(loadTwoFiles(t))
	_, err := m.Field(groups[0].Name, groups[0].Sources)
	require.NoError(t, err)

	entries := logs.FilterMessage("merged field").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(24), entries[0].ContextMap()["observations"])
}
