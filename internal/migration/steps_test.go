package migration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyStore = `{
  "headerView": {
    "headerViewErrors": {"a.csv": ["There must be 1 subject"]},
    "headerViews": {
      "a.csv": {
        "filename": "a.csv",
        "fields": [
          {"field-alias": "npi", "purpose": "subject", "errors": ["x"]},
          {"field-alias": "region", "purpose": "quality", "enabled": false,
           "map-symbols": {"N": "North"}},
          {"field-alias": "date", "purpose": "mspan",
           "time": {"interval": {"unit": "month", "count": 1},
                    "reference": {"idx": 0, "value": "01-06-16", "format": "MM-DD-YY"}}}
        ]
      }
    }
  },
  "etlView": {
    "etlFields": {
      "region": {"name": "region", "purpose": "quality", "map-symbols": {"N": "North"}},
      "date": {"name": "date", "purpose": "mspan",
               "time": {"interval": {"unit": "Year", "count": 1}}}
    }
  }
}`

func decode(t *testing.T, raw string) Store {
	t.Helper()

	var s Store
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	return s
}

func headerFields(t *testing.T, s Store) []any {
	t.Helper()

	view := s[headerViewKey].(map[string]any)[headerViewsKey].(map[string]any)["a.csv"].(map[string]any)

	return view[fieldsKey].([]any)
}

func etlField(t *testing.T, s Store, name string) map[string]any {
	t.Helper()

	return s[etlViewKey].(map[string]any)[etlFieldsKey].(map[string]any)[name].(map[string]any)
}

func TestDefaultSteps_LegacyStore(t *testing.T) {
	r := newTestRunner(t, DefaultSteps()...)

	out, err := r.Run(decode(t, legacyStore))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, out.Version())

	history := out.History()
	require.Len(t, history, 5)
	assert.Equal(t, InitialVersion, history[0].From)
	assert.Equal(t, CurrentVersion, history[4].To)

	hv := out[headerViewKey].(map[string]any)
	assert.NotContains(t, hv, errorsKey)

	fields := headerFields(t, out)
	require.Len(t, fields, 3)

	subject := fields[0].(map[string]any)
	assert.NotContains(t, subject, "errors")
	assert.Equal(t, true, subject["enabled"])

	region := fields[1].(map[string]any)
	assert.Equal(t, false, region["enabled"], "an explicit enabled flag is kept")
	assert.Equal(t, map[string]any{arrowsKey: map[string]any{"N": "North"}}, region[symbolsKey])

	date := fields[2].(map[string]any)
	interval := date["time"].(map[string]any)["interval"].(map[string]any)
	assert.Equal(t, "months", interval["unit"])

	assert.Equal(t,
		map[string]any{arrowsKey: map[string]any{"N": "North"}},
		etlField(t, out, "region")[symbolsKey])
	assert.Equal(t, "years",
		etlField(t, out, "date")["time"].(map[string]any)["interval"].(map[string]any)["unit"])
}

func TestDefaultSteps_FromIntermediateVersion(t *testing.T) {
	r := newTestRunner(t, DefaultSteps()...)

	in := decode(t, legacyStore)
	in[MetaKey] = map[string]any{VersionKey: "0.3.6", HistoryKey: []any{}}

	out, err := r.Run(in)
	require.NoError(t, err)

	history := out.History()
	require.Len(t, history, 4)

	var versions []string
	for _, h := range history {
		versions = append(versions, h.From+"->"+h.To)
	}

	assert.Equal(t, []string{"0.3.6->0.3.7", "0.3.7->0.4.0", "0.4.0->0.4.1", "0.4.1->0.5.0"}, versions)
}

func TestDefaultSteps_EmptyStoreGetsViews(t *testing.T) {
	r := newTestRunner(t, DefaultSteps()...)

	out, err := r.Run(Store{})
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, out.Version())
	assert.Equal(t, map[string]any{headerViewsKey: map[string]any{}}, out[headerViewKey])
	assert.Equal(t, map[string]any{etlFieldsKey: map[string]any{}}, out[etlViewKey])
}

func TestDefaultSteps_AlreadyNestedSymbols(t *testing.T) {
	in := decode(t, `{"etlView": {"etlFields": {"r": {"map-symbols": {"arrows": {"a": "b"}}}}}}`)
	in[MetaKey] = map[string]any{VersionKey: "0.3.7"}

	out, err := newTestRunner(t, DefaultSteps()...).Run(in)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{arrowsKey: map[string]any{"a": "b"}}, etlField(t, out, "r")[symbolsKey])
}

func TestDefaultSteps_MalformedSymbolsFail(t *testing.T) {
	in := decode(t, `{"etlView": {"etlFields": {"r": {"map-symbols": "N=North"}}}}`)

	out, err := newTestRunner(t, DefaultSteps()...).Run(in)
	assert.Nil(t, out)

	var stepErr *MigrationStepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "0.3.7", stepErr.FromVersion)
	assert.Equal(t, "0.4.0", stepErr.ToVersion)
	assert.Equal(t, []string{"0.3.6", "0.3.7"}, stepErr.Completed)
	assert.Contains(t, err.Error(), "map-symbols")
}

func TestDefaultSteps_KeepsForeignHistory(t *testing.T) {
	in := Store{MetaKey: map[string]any{HistoryKey: map[string]any{"note": "hand edited"}}}

	_, err := newTestRunner(t, DefaultSteps()...).Run(in)

	var stepErr *MigrationStepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, InitialVersion, stepErr.FromVersion)
	assert.Empty(t, stepErr.Completed)
}
