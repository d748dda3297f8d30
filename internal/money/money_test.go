package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/money"
)

func TestNormalizeCurrency(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Empty", input: "", want: money.DefaultCurrency},
		{name: "Whitespace", input: "  ", want: money.DefaultCurrency},
		{name: "Upper", input: "USD", want: "USD"},
		{name: "Lower", input: "usd", want: "USD"},
		{name: "Padded", input: " eur ", want: "EUR"},
		{name: "Default", input: "BDT", want: "BDT"},
		{name: "Unknown", input: "ZZZ", wantErr: true},
		{name: "TooShort", input: "US", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.NormalizeCurrency(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrUnknownCurrency)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
