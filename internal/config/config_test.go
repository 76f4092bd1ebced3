package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/merge"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etlfield.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
merge:
  purpose_policy: LAST
  time_format: YYYY-MM
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, merge.PolicyLast, cfg.Merge.PurposePolicy)
	assert.Equal(t, "YYYY-MM", cfg.Merge.TimeFormat)
	assert.Equal(t, merge.DefaultConfig().Workers, cfg.Merge.Workers, "unset keys keep defaults")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad policy", "merge:\n  purpose_policy: MIDDLE\n", "MIDDLE"},
		{"unknown key", "merge:\n  strategy: x\n", "strategy"},
		{"not yaml", "log: [\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read config")
}
