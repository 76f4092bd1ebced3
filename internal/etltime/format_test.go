package etltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		format string
		layout string
	}{
		{"MM-DD-YY", "01-02-06"},
		{"YYYY-MM-DD", "2006-01-02"},
		{"YY-MM", "06-01"},
		{"DD/MM/YYYY", "02/01/2006"},
		{"MMM D, YYYY", "Jan 2, 2006"},
		{"MMMM YYYY", "January 2006"},
		{"YYYY-MM-DDTHH:mm:ss.SSS", "2006-01-02T15:04:05.000"},
		{"h:mm A", "3:04 PM"},
		{"YYYYMMDD", "20060102"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			layout, err := Layout(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.layout, layout)
		})
	}

	_, err := Layout("")
	require.Error(t, err)
}

func TestLayout_RejectsUnsafeLiterals(t *testing.T) {
	for _, format := range []string{
		"YYYY 1",          // digit would read as a month
		"Do MMM",          // ordinal suffix
		"[on] YYYY-MM-DD", // bracketed escape
		"YYYY_D",          // "_2" is a padded day in Go
		"MMM DD, YYYY Jan",
	} {
		t.Run(format, func(t *testing.T) {
			_, err := Layout(format)
			assert.ErrorContains(t, err, "unsupported character")
		})
	}
}

func TestParseFormat(t *testing.T) {
	got, err := Parse("MM-DD-YY", "01-06-16")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2016, time.January, 6, 0, 0, 0, 0, time.UTC), got)

	out, err := Format("YY-MM", got)
	require.NoError(t, err)
	assert.Equal(t, "16-01", out)

	got, err = Parse("MMM D, YYYY", " Jul 4, 2019 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.July, 4, 0, 0, 0, 0, time.UTC), got)

	_, err = Parse("YYYY-MM-DD", "2016/01/06")
	require.Error(t, err)
}
