package timex_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/timex"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}

	tests := []testCase{
		{
			name:  "RFC3339",
			input: "2024-03-15T10:30:00Z",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339WithOffset",
			input: "2024-03-15T10:30:00+06:00",
			want:  time.Date(2024, 3, 15, 4, 30, 0, 0, time.UTC),
		},
		{
			name:  "NaiveDatetime",
			input: "2024-03-15T10:30:00",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "NaiveDatetimeWithSpace",
			input: "2024-03-15 10:30:00",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "DateOnly",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "EpochSeconds",
			input: "1710498600",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "EpochMillis",
			input: "1710498600000",
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "Garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timex.Parse(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestTime_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Date timex.Time `json:"date"`
	}

	t.Run("String", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"date": "2024-03-15"}`), &p))
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), p.Date.Time)
	})

	t.Run("Number", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"date": 1710498600}`), &p))
		assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), p.Date.Time)
	})

	t.Run("Null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"date": null}`), &p))
		assert.True(t, p.Date.IsZero())
	})

	t.Run("EmptyString", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"date": ""}`), &p))
		assert.True(t, p.Date.IsZero())
	})

	t.Run("Invalid", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"date": "yesterday"}`), &p))
	})
}
