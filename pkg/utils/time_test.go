package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339 with offset is normalized to UTC",
			input: "2024-04-30T23:30:00+07:00",
			want:  time.Date(2024, 4, 30, 16, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date is midnight UTC",
			input: "2024-04-01",
			want:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUserTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-12-31", FormatDate(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
}
